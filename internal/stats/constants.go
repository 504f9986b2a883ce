package stats

// Default harness parameters
const (
	// DefaultCount is the short sweep length.
	DefaultCount = 1_000_000

	// DefaultRange is the coordinate divisor and the long sweep length.
	DefaultRange = 8_000_000
)

// DefaultRounds lists the round counts the suite compares.
var DefaultRounds = []int{2, 4, 6, 8}

const (
	// center is the assumed mean used for the variance accumulation.
	center = 0.5

	// cancelCheckInterval is how many samples run between context checks.
	cancelCheckInterval = 1 << 16

	// axes is the number of output components per sample.
	axes = 2
)

// Report layout
const (
	labelWidth  = 32
	columnWidth = 12
)

// Analysis parameters
const (
	// DefaultBins is the histogram size for the chi-square test.
	DefaultBins = 64

	// DefaultSpectrumSize is the number of samples fed to the FFT.
	DefaultSpectrumSize = 4096

	// DefaultAvalancheSamples is the number of base coordinates flipped.
	DefaultAvalancheSamples = 2000

	// fieldBits is the width of the extracted magnitude field and of each
	// normalized output word.
	fieldBits = 23
	fieldMask = 1<<fieldBits - 1

	// Multipliers spreading avalanche base points across the field.
	avalancheMulX = 2654435761
	avalancheMulY = 40503
	avalancheAddY = 12345
)
