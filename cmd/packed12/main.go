// Command packed12 runs the in-place log-encode transform over one or more
// packed 12-bit sample files.
//
// Usage:
//
//	packed12 [-t threads] [-v] [-i] [path ...]
//
// Paths may be given as positional arguments, streamed newline-delimited
// on stdin with -i, or both.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/Akron/packed12/internal/batch"
	"github.com/Akron/packed12/internal/queue"
)

const maxStdinPathLen = 255

var (
	dashi    bool
	dasht    int
	dashv    bool
	dashhelp bool
)

func init() {
	flag.BoolVar(&dashi, "i", false, "read newline-delimited paths from stdin")
	flag.BoolVar(&dashi, "input", false, "alias of -i")
	flag.IntVar(&dasht, "t", runtime.NumCPU(), "worker count")
	flag.IntVar(&dasht, "threads", runtime.NumCPU(), "alias of -t")
	flag.BoolVar(&dashv, "v", false, "verbose: log per-file status and a throughput summary")
	flag.BoolVar(&dashv, "verbose", false, "alias of -v")
	flag.BoolVar(&dashhelp, "h", false, "show usage")
	flag.BoolVar(&dashhelp, "help", false, "alias of -h")
}

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if dashhelp {
		flag.Usage()
		os.Exit(0)
	}

	paths := append([]string(nil), flag.Args()...)
	if dashi {
		streamed, err := readStdinPaths(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "packed12:", err)
			os.Exit(1)
		}
		paths = append(paths, streamed...)
	}

	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "packed12: no input files")
		os.Exit(1)
	}

	var logger *log.Logger
	if dashv {
		logger = log.New(os.Stderr, "", log.Ltime)
	}

	q := queue.New(paths)
	if err := batch.Run(q, dasht, logger); err != nil {
		fmt.Fprintln(os.Stderr, "packed12:", err)
		os.Exit(2)
	}
}

// readStdinPaths reads newline-delimited paths from r. A line longer than
// maxStdinPathLen bytes (excluding the newline) is a usage error; no paths
// are returned, not even those read before it, so the whole command fails
// before any file is touched.
func readStdinPaths(r *os.File) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), 4096)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if len(line) > maxStdinPathLen {
			return nil, fmt.Errorf("stdin path exceeds %d bytes", maxStdinPathLen)
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return paths, nil
}
