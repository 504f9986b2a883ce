package stats

import (
	"context"
	"fmt"
	"sync"

	majhash "github.com/tphakala/go-maj-hash"
	"github.com/tphakala/go-maj-hash/internal/format"
)

// Sweep generates the i-th coordinate of a sweep over [0, count) divided
// down by rng.
type Sweep struct {
	// Name identifies the sweep in logs.
	Name string

	// Coord returns the i-th coordinate.
	Coord func(i, rng uint64) majhash.Vec2

	// Label renders the report label for a sweep of count samples.
	Label func(count, rng string) string
}

// ratio is i/rng computed in float32, matching the hash's input precision.
func ratio(i, rng uint64) float32 {
	return float32(i) / float32(rng)
}

// Built-in sweeps varying one or both axes.
var (
	// SweepY holds x at 0 and sweeps y.
	SweepY = Sweep{
		Name:  "y",
		Coord: func(i, rng uint64) majhash.Vec2 { return majhash.Vec2{Y: ratio(i, rng)} },
		Label: func(c, r string) string { return fmt.Sprintf("(%14s, (0 - %s)/%s )", "0", c, r) },
	}

	// SweepX sweeps x and holds y at 0.
	SweepX = Sweep{
		Name:  "x",
		Coord: func(i, rng uint64) majhash.Vec2 { return majhash.Vec2{X: ratio(i, rng)} },
		Label: func(c, r string) string { return fmt.Sprintf("( (0 - %s)/%s ),%12s )", c, r, "0") },
	}

	// SweepXY sweeps both axes with identical values.
	SweepXY = Sweep{
		Name: "xy",
		Coord: func(i, rng uint64) majhash.Vec2 {
			f := ratio(i, rng)
			return majhash.Vec2{X: f, Y: f}
		},
		Label: func(c, r string) string { return fmt.Sprintf("( (0 - %s)/%s ), (0 - %s)/%s )", c, r, c, r) },
	}
)

// Sweeps lists the built-in sweeps in report order.
var Sweeps = []Sweep{SweepY, SweepX, SweepXY}

// LabelFor renders the report label of s for count samples over rng.
func LabelFor(s Sweep, count, rng uint64) string {
	return s.Label(format.Unit(int64(count)), format.Unit(int64(rng)))
}

// Run hashes count coordinates from sweep and accumulates the results.
// With workers > 1 the range is split into contiguous shards accumulated
// concurrently and merged in shard order. Run returns ctx.Err() if the
// context is cancelled before the sweep completes.
func Run(ctx context.Context, h *majhash.Hasher, count, rng uint64, sweep Sweep, workers int) (Accumulator, error) {
	if workers <= 1 || count < uint64(workers) {
		return runRange(ctx, h, 0, count, rng, sweep)
	}

	shard := (count + uint64(workers) - 1) / uint64(workers)
	accs := make([]Accumulator, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := range workers {
		lo := uint64(w) * shard
		if lo >= count {
			break
		}
		hi := min(lo+shard, count)
		wg.Add(1)
		go func(w int, lo, hi uint64) {
			defer wg.Done()
			accs[w], errs[w] = runRange(ctx, h, lo, hi, rng, sweep)
		}(w, lo, hi)
	}
	wg.Wait()

	var total Accumulator
	for w := range workers {
		if errs[w] != nil {
			return Accumulator{}, errs[w]
		}
		total.Merge(accs[w])
	}
	return total, nil
}

func runRange(ctx context.Context, h *majhash.Hasher, lo, hi, rng uint64, sweep Sweep) (Accumulator, error) {
	var acc Accumulator
	for i := lo; i < hi; i++ {
		if (i-lo)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Accumulator{}, err
			}
		}
		p := sweep.Coord(i, rng)
		acc.Add(h.Sum(p.X, p.Y))
	}
	return acc, nil
}
