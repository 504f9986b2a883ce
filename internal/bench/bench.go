// Package bench measures hash throughput over a fixed coordinate ramp.
package bench

import (
	"time"
)

// DefaultSamples is the number of calls timed by maj-bench.
const DefaultSamples = 1_000_000

// bytesPerCall is the nominal payload of one call, sizeof(float32). The
// MiB/s figure is derived from it and does not measure memory traffic.
const bytesPerCall = 4

const bytesPerMiB = 1 << 20

const nsPerSecond = 1e9

// Func is a two-dimensional hash under test.
type Func func(x, y float32) (float32, float32)

// Result holds one timed run.
type Result struct {
	Name    string
	Samples int
	Elapsed time.Duration

	// SumX and SumY accumulate every output so the calls cannot be
	// eliminated as dead code.
	SumX, SumY float64
}

// Run calls fn with (i/n, i/n) for every i in [0, n) and reports the
// elapsed wall-clock time and the accumulated outputs.
func Run(name string, n int, fn Func) Result {
	var sx, sy float64
	step := float32(n)

	start := time.Now()
	for i := range n {
		f := float32(i) / step
		x, y := fn(f, f)
		sx += float64(x)
		sy += float64(y)
	}
	elapsed := time.Since(start)

	return Result{
		Name:    name,
		Samples: n,
		Elapsed: elapsed,
		SumX:    sx,
		SumY:    sy,
	}
}

// NsPerCall returns the mean time per call in nanoseconds.
func (r *Result) NsPerCall() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) / float64(r.Samples)
}

// CallsPerSec returns the call rate.
func (r *Result) CallsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Samples) * (nsPerSecond / float64(r.Elapsed.Nanoseconds()))
}

// MiBPerSec returns the nominal throughput assuming bytesPerCall per call.
func (r *Result) MiBPerSec() float64 {
	return r.CallsPerSec() * bytesPerCall / bytesPerMiB
}
