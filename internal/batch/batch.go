// Package batch implements the worker pool that drains an internal/queue
// over internal/driver.Process: a fixed number of goroutines pop paths
// until the queue is drained, aggregating any processing errors for the
// CLI to map onto its exit code.
package batch

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Akron/packed12/internal/driver"
	"github.com/Akron/packed12/internal/queue"
)

// Stopwatch is a thin wrapper over time.Now/time.Since, used only to
// report elapsed wall-clock time and throughput when verbose logging is
// enabled.
type Stopwatch struct {
	start time.Time
}

// NewStopwatch starts a running stopwatch.
func NewStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was started.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}

// FilesPerSecond reports throughput for n completed files over the
// stopwatch's elapsed time so far.
func (s Stopwatch) FilesPerSecond(n int) float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / elapsed
}

// Run spins up workers goroutines, each looping Pop -> driver.Process
// until q is drained, and joins them. Any worker that encountered a
// processing error makes Run return a non-nil, joined error — the CLI
// maps that to exit code 2. When logger is non-nil, each processed path
// and a final throughput summary are reported through it.
func Run(q *queue.Queue, workers int, logger *log.Logger) error {
	if workers < 1 {
		workers = 1
	}

	sw := NewStopwatch()
	var mu sync.Mutex
	var errs []error
	processed := 0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				path, ok := q.Pop()
				if !ok {
					return
				}
				err := driver.Process(path)

				mu.Lock()
				processed++
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", path, err))
				}
				mu.Unlock()

				if logger != nil {
					if err != nil {
						logger.Printf("FAIL %s: %v", path, err)
					} else {
						logger.Printf("OK %s", path)
					}
				}
			}
		}()
	}
	wg.Wait()

	if logger != nil {
		logger.Printf("processed %d file(s) in %s (%.1f files/sec)",
			processed, sw.Elapsed().Round(time.Millisecond), sw.FilesPerSecond(processed))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d file(s) failed: %w", len(errs), errors.Join(errs...))
	}
	return nil
}
