package majhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-maj-hash/internal/testutil"
)

func TestFill_MatchesSum(t *testing.T) {
	h, err := New(Rounds2)
	require.NoError(t, err)

	src := sampleCoords(1000)
	xs := make([]float32, len(src))
	ys := make([]float32, len(src))
	require.NoError(t, h.Fill(xs, ys, src))

	for i, p := range src {
		x, y := h.Sum(p.X, p.Y)
		assert.Equal(t, x, xs[i])
		assert.Equal(t, y, ys[i])
	}
	testutil.AssertAllInUnitRange(t, xs)
	testutil.AssertAllInUnitRange(t, ys)
}

func TestFill_ShortDestination(t *testing.T) {
	h, err := New(Rounds8)
	require.NoError(t, err)

	src := sampleCoords(10)
	err = h.Fill(make([]float32, 10), make([]float32, 9), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = h.FillParallel(make([]float32, 3), make([]float32, 10), src, 4)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestFillParallel_MatchesFill(t *testing.T) {
	h, err := New(4)
	require.NoError(t, err)

	src := sampleCoords(3*minShardSize + 17)
	wantX := make([]float32, len(src))
	wantY := make([]float32, len(src))
	require.NoError(t, h.Fill(wantX, wantY, src))

	for _, workers := range []int{0, 1, 2, 3, 16} {
		gotX := make([]float32, len(src))
		gotY := make([]float32, len(src))
		require.NoError(t, h.FillParallel(gotX, gotY, src, workers))
		assert.Equal(t, wantX, gotX, "workers=%d", workers)
		assert.Equal(t, wantY, gotY, "workers=%d", workers)
	}
}

func TestFill_Empty(t *testing.T) {
	h, err := New(Rounds2)
	require.NoError(t, err)
	require.NoError(t, h.Fill(nil, nil, nil))
	require.NoError(t, h.FillParallel(nil, nil, nil, 4))
}

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.InDelta(t, 0.5, Mean([]float32{0, 1, 0.25, 0.75}), 1e-12)

	h, err := New(Rounds8)
	require.NoError(t, err)
	src := make([]Vec2, 100_000)
	for i := range src {
		f := float32(i) / float32(len(src))
		src[i] = Vec2{f, f}
	}
	xs := make([]float32, len(src))
	ys := make([]float32, len(src))
	require.NoError(t, h.Fill(xs, ys, src))

	assert.InDelta(t, testutil.IdealMean, Mean(xs), testutil.LooseTolerance)
	assert.InDelta(t, testutil.IdealMean, Mean(ys), testutil.LooseTolerance)
}
