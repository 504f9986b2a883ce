// Package stats measures the output distribution of the coordinate hash.
//
// The harness is a regression check, not a formal test: it reports the
// sample mean, variance and standard deviation of each output axis over
// large coordinate sweeps so that quality changes across round counts are
// visible. It has no built-in thresholds.
package stats

import "math"

// Accumulator keeps running sums over hash results. Variance is the mean
// squared deviation from 0.5: the expected mean of a uniform output is
// assumed, not measured.
//
// The zero value is an empty accumulator ready for use.
type Accumulator struct {
	n     uint64
	sum   [axes]float64
	sumSq [axes]float64
}

// Add records one result pair.
func (a *Accumulator) Add(x, y float32) {
	fx, fy := float64(x), float64(y)
	a.n++
	a.sum[0] += fx
	a.sum[1] += fy
	a.sumSq[0] += (fx - center) * (fx - center)
	a.sumSq[1] += (fy - center) * (fy - center)
}

// Merge folds other into a. Merging is order independent up to float64
// rounding.
func (a *Accumulator) Merge(other Accumulator) {
	a.n += other.n
	for i := range axes {
		a.sum[i] += other.sum[i]
		a.sumSq[i] += other.sumSq[i]
	}
}

// Count returns the number of recorded samples.
func (a *Accumulator) Count() uint64 {
	return a.n
}

// Mean returns the per-axis sample mean, or zeros when empty.
func (a *Accumulator) Mean() (float64, float64) {
	if a.n == 0 {
		return 0, 0
	}
	n := float64(a.n)
	return a.sum[0] / n, a.sum[1] / n
}

// Variance returns the per-axis mean squared deviation from 0.5.
func (a *Accumulator) Variance() (float64, float64) {
	if a.n == 0 {
		return 0, 0
	}
	n := float64(a.n)
	return a.sumSq[0] / n, a.sumSq[1] / n
}

// StdDev returns the square root of Variance.
func (a *Accumulator) StdDev() (float64, float64) {
	vx, vy := a.Variance()
	return math.Sqrt(vx), math.Sqrt(vy)
}
