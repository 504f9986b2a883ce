package engine

// Round limits
const (
	// MaxRounds is the length of the round-constant table.
	MaxRounds = 8

	// MinRounds is the smallest round count the core accepts.
	MinRounds = 1
)

// Digest and seed geometry
const (
	digestWords = 8
	seedWords   = 2
	foldWidth   = digestWords / seedWords // Words XORed into each output word
)

// Extractor constants
const (
	// mantissaBits is the number of magnitude bits kept per axis.
	mantissaBits = 23

	// mantissaScale maps [0,1) onto [0, 2^23).
	mantissaScale = float32(1 << mantissaBits)

	// signBit marks a negative axis in the packed 24-bit field.
	signBit = 1 << mantissaBits

	// Interleave shifts: the low 8 bits of Y fill the top of w0, the top
	// 16 bits of X fill the top of w1.
	yLowShift  = 24
	yHighShift = 8
	xHighShift = 16

	// wordRange is 2^32, used to reduce out-of-domain magnitudes.
	wordRange = 1 << 32
)

// Normalizer constants
const (
	unormMask    = 1<<mantissaBits - 1
	unormDivisor = float32(unormMask)
)
