package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	majhash "github.com/tphakala/go-maj-hash"
	"github.com/tphakala/go-maj-hash/internal/engine"
	"github.com/tphakala/go-maj-hash/internal/simdops"
)

// ErrTooFewSamples indicates an analysis input too short to be meaningful.
var ErrTooFewSamples = errors.New("too few samples")

// Analysis summarizes distribution checks beyond the first two moments.
type Analysis struct {
	Rounds int

	// ChiSquare and PValue test the X and Y histograms against U(0,1).
	ChiSquare [axes]float64
	PValue    [axes]float64

	// Flatness is the spectral flatness of each axis along the sweep:
	// near 0.56 for white noise, near 0 for tonal or constant signals.
	Flatness [axes]float64

	// Avalanche is the mean fraction of output bits that flip when one
	// input bit flips. An ideal mixer scores 0.5.
	Avalanche float64
}

// Analyze runs the chi-square, spectral flatness and avalanche checks for
// one round count over count samples of sweep divided by rng.
func Analyze(ctx context.Context, rounds int, count, rng uint64, sweep Sweep) (Analysis, error) {
	h, err := majhash.New(rounds)
	if err != nil {
		return Analysis{}, err
	}
	if count < DefaultBins {
		return Analysis{}, fmt.Errorf("%w: %d < %d", ErrTooFewSamples, count, DefaultBins)
	}

	src := make([]majhash.Vec2, count)
	for i := range src {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Analysis{}, err
			}
		}
		src[i] = sweep.Coord(uint64(i), rng)
	}
	xs := make([]float32, count)
	ys := make([]float32, count)
	if err := h.FillParallel(xs, ys, src, 0); err != nil {
		return Analysis{}, err
	}

	a := Analysis{Rounds: rounds}
	for axis, samples := range [axes][]float32{xs, ys} {
		wide := simdops.Widen(nil, samples)
		a.ChiSquare[axis], a.PValue[axis] = ChiSquareUniform(wide, DefaultBins)

		n := min(len(wide), DefaultSpectrumSize)
		if a.Flatness[axis], err = SpectralFlatness(wide[:n]); err != nil {
			return Analysis{}, err
		}
	}
	if a.Avalanche, err = Avalanche(rounds, DefaultAvalancheSamples); err != nil {
		return Analysis{}, err
	}

	return a, nil
}

// ChiSquareUniform bins samples from [0, 1] into bins equal-width buckets
// and returns Pearson's chi-square statistic against a uniform expectation
// with its upper-tail p-value. A sample of exactly 1.0 falls in the last
// bucket.
func ChiSquareUniform(samples []float64, bins int) (chi2, pValue float64) {
	if bins < 2 || len(samples) == 0 {
		return 0, 1
	}

	obs := make([]float64, bins)
	for _, v := range samples {
		b := int(v * float64(bins))
		b = max(0, min(b, bins-1))
		obs[b]++
	}

	exp := make([]float64, bins)
	for i := range exp {
		exp[i] = float64(len(samples)) / float64(bins)
	}

	chi2 = stat.ChiSquare(obs, exp)
	dist := distuv.ChiSquared{K: float64(bins - 1)}
	return chi2, 1 - dist.CDF(chi2)
}

// SpectralFlatness returns the ratio of the geometric to the arithmetic
// mean of the power spectrum of signal, excluding the DC bin. The mean is
// removed first. A constant signal has flatness 0.
func SpectralFlatness(signal []float64) (float64, error) {
	const minLen = 4
	if len(signal) < minLen {
		return 0, fmt.Errorf("%w: spectrum needs at least %d samples", ErrTooFewSamples, minLen)
	}

	centered := make([]float64, len(signal))
	copy(centered, signal)
	floats.AddConst(-stat.Mean(signal, nil), centered)

	fft := fourier.NewFFT(len(centered))
	coeffs := fft.Coefficients(nil, centered)

	power := make([]float64, 0, len(coeffs)-1)
	for _, c := range coeffs[1:] {
		power = append(power, real(c)*real(c)+imag(c)*imag(c))
	}

	arith := stat.Mean(power, nil)
	if arith == 0 {
		return 0, nil
	}
	var logSum float64
	for _, p := range power {
		if p == 0 {
			return 0, nil
		}
		logSum += math.Log(p)
	}
	geo := math.Exp(logSum / float64(len(power)))
	return geo / arith, nil
}

// Avalanche flips each of the 23 magnitude bits of each axis for samples
// spread base coordinates and returns the mean fraction of the 46
// normalized output bits that change. It returns ErrInvalidRounds for a
// round count outside [1, 8], and 0 when samples is not positive.
func Avalanche(rounds, samples int) (float64, error) {
	if err := engine.ValidateRounds(rounds); err != nil {
		return 0, err
	}
	if samples <= 0 {
		return 0, nil
	}

	var flipped, trials uint64
	for k := range uint64(samples) {
		i := (k * avalancheMulX) & fieldMask
		j := (k*avalancheMulY + avalancheAddY) & fieldMask
		a0, a1 := outputBits(i, j, rounds)

		for bit := range fieldBits {
			for axis := range axes {
				ii, jj := i, j
				if axis == 0 {
					ii ^= 1 << bit
				} else {
					jj ^= 1 << bit
				}
				b0, b1 := outputBits(ii, jj, rounds)
				flipped += uint64(bits.OnesCount32(a0^b0) + bits.OnesCount32(a1^b1))
				trials++
			}
		}
	}
	return float64(flipped) / float64(trials) / float64(axes*fieldBits), nil
}

// outputBits hashes field coordinates (i, j) / 2^23 and returns the masked
// output words.
func outputBits(i, j uint64, rounds int) (uint32, uint32) {
	x := float32(i) / (1 << fieldBits)
	y := float32(j) / (1 << fieldBits)
	a, b := engine.Fold(engine.Compress(engine.Extract(x, y), rounds))
	return a & fieldMask, b & fieldMask
}
