// Package queue implements the batch driver's pop-only work list: a slot
// array populated once by the CLI before any worker starts, drained
// concurrently by a worker pool through a single atomic counter. It is
// explicitly not a general-purpose MPMC queue — there is no Push once
// workers are running, and slots are never recycled.
package queue

import "sync/atomic"

// Queue is a fixed slot array of paths, safe for concurrent Pop calls once
// built. The zero value is not usable; construct with New.
type Queue struct {
	slots     []string
	initial   int64
	remaining atomic.Int64
}

// New builds a Queue over paths. The caller must not retain or mutate
// paths afterward; Queue takes ownership of the backing array.
func New(paths []string) *Queue {
	q := &Queue{slots: paths, initial: int64(len(paths))}
	q.remaining.Store(q.initial)
	return q
}

// Len reports the total number of slots the queue was built with.
func (q *Queue) Len() int {
	return int(q.initial)
}

// Pop claims the next slot, if any. Each successful call returns a
// distinct slot exactly once across all goroutines; ok is false once the
// queue is drained. Safe for concurrent use by any number of callers.
func (q *Queue) Pop() (path string, ok bool) {
	n := q.remaining.Add(-1)
	if n < 0 {
		return "", false
	}
	return q.slots[q.initial-1-n], true
}
