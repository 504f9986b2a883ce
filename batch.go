package majhash

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/tphakala/go-maj-hash/internal/engine"
	"github.com/tphakala/go-maj-hash/internal/simdops"
)

// Fill hashes every coordinate in src, writing the X results to dstX and
// the Y results to dstY. Both destinations must be at least len(src) long.
func (h *Hasher) Fill(dstX, dstY []float32, src []Vec2) error {
	if err := h.checkFill(dstX, dstY, src); err != nil {
		return err
	}
	h.fill(dstX, dstY, src)
	return nil
}

// FillParallel is like Fill but splits src into contiguous shards hashed
// on up to workers goroutines. workers <= 0 uses GOMAXPROCS. The output is
// identical to Fill.
func (h *Hasher) FillParallel(dstX, dstY []float32, src []Vec2, workers int) error {
	if err := h.checkFill(dstX, dstY, src); err != nil {
		return err
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	shard := (len(src) + workers - 1) / workers
	if shard < minShardSize {
		shard = minShardSize
	}

	if shard >= len(src) {
		h.fill(dstX, dstY, src)
		return nil
	}

	var wg sync.WaitGroup
	for start := 0; start < len(src); start += shard {
		end := min(start+shard, len(src))
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			h.fill(dstX[lo:hi], dstY[lo:hi], src[lo:hi])
		}(start, end)
	}
	wg.Wait()

	return nil
}

func (h *Hasher) fill(dstX, dstY []float32, src []Vec2) {
	for i, p := range src {
		dstX[i], dstY[i] = engine.Hash(p.X, p.Y, h.rounds)
	}
}

func (h *Hasher) checkFill(dstX, dstY []float32, src []Vec2) error {
	if err := engine.ValidateRounds(h.rounds); err != nil {
		return err
	}
	if len(dstX) < len(src) || len(dstY) < len(src) {
		return fmt.Errorf("%w: need %d, have %d and %d",
			ErrLengthMismatch, len(src), len(dstX), len(dstY))
	}
	return nil
}

// Mean returns the arithmetic mean of s using a SIMD sum, or 0 for an
// empty slice. The sum is accumulated in float64 to keep large batches
// accurate.
func Mean(s []float32) float64 {
	if len(s) == 0 {
		return 0
	}
	wide := simdops.Widen(nil, s)
	return simdops.For[float64]().Sum(wide) / float64(len(s))
}
