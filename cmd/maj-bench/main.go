// Command maj-bench measures throughput of the two-round hash preset.
//
// Usage:
//
//	maj-bench
//	maj-bench -v -cpuprofile cpu.out
//
// The benchmark hashes one million coordinates (i/n, i/n) and prints the
// elapsed time per call, calls per second, and a nominal MiB/s figure that
// counts four bytes per call. The final r={x,y} line prints the summed
// outputs, which must be identical across runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/tphakala/simd/cpu"

	majhash "github.com/tphakala/go-maj-hash"
	"github.com/tphakala/go-maj-hash/internal/bench"
	"github.com/tphakala/go-maj-hash/internal/format"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) (err error) {
	fs := flag.NewFlagSet("maj-bench", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	cpuprofile := fs.String("cpuprofile", "", "Write CPU profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	if *verbose {
		log.Printf("SIMD: %s", cpu.Info())
		log.Printf("Samples: %d", bench.DefaultSamples)
	}

	result := bench.Run(benchmarkName, bench.DefaultSamples, majhash.Hash2)
	if *verbose {
		log.Printf("Throughput: %scalls/s", format.Rate(result.CallsPerSec()))
	}
	return bench.WriteReport(out, &result)
}
