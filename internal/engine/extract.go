package engine

import "math"

// Seed is the two-word message derived from a coordinate.
type Seed [seedWords]uint32

// Extract packs 48 bits of entropy from the magnitude and sign of x and y
// into a Seed. The exponent is ignored: inputs are expected to be
// normalized texture coordinates with |v| < 1.
//
// Each axis becomes a 24-bit field (23 magnitude bits plus the sign in
// bit 23). The fields are interleaved so both output words carry entropy
// from both axes:
//
//	w0 = X | Y<<24
//	w1 = Y>>8 | X<<16
func Extract(x, y float32) Seed {
	fx := packAxis(x)
	fy := packAxis(y)

	return Seed{
		fx | fy<<yLowShift,
		fy>>yHighShift | fx<<xHighShift,
	}
}

// packAxis returns the 24-bit field for one axis.
func packAxis(v float32) uint32 {
	field := truncate(abs32(v) * mantissaScale)
	if v < 0 {
		field |= signBit
	}
	return field
}

// truncate converts a non-negative scaled magnitude to an integer.
// Magnitudes at or beyond 2^32 are reduced modulo 2^32 first so the
// result stays deterministic outside the intended domain. NaN maps to 0.
func truncate(f float32) uint32 {
	switch {
	case math.IsNaN(float64(f)), math.IsInf(float64(f), 0):
		return 0
	case f < wordRange:
		return uint32(f)
	default:
		return uint32(math.Mod(float64(f), wordRange))
	}
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}
