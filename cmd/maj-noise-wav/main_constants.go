package main

// CLI defaults
const (
	defaultSeconds    = 1.0
	defaultSampleRate = 48000
	defaultBitDepth   = 16
	defaultRounds     = 2
	defaultAmplitude  = 0.5
	minRequiredArgs   = 1
)

const (
	// Frames hashed and written per chunk
	chunkFrames = 65536

	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Full-scale values
	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0

	// wavFormatPCM is the WAVE_FORMAT_PCM format tag.
	wavFormatPCM = 1

	progressInterval = 10 // Log progress every N%
	percentScale     = 100

	// Hash output is centered by subtracting 0.5 before scaling.
	unitCenter = 0.5
)
