package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	majhash "github.com/tphakala/go-maj-hash"
)

func testConfig(t *testing.T, name string) noiseConfig {
	t.Helper()
	return noiseConfig{
		path:       filepath.Join(t.TempDir(), name),
		frames:     4800,
		sampleRate: 48000,
		bitDepth:   16,
		rounds:     2,
		amplitude:  0.5,
		parallel:   true,
	}
}

func decodeWAV(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile(), "output should be a valid WAV file")
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	return dec, buf.Data
}

func TestGetMaxValue(t *testing.T) {
	tests := []struct {
		bits int
		want float64
	}{
		{16, maxInt16},
		{24, maxInt24},
		{32, maxInt32},
	}
	for _, tt := range tests {
		got, err := getMaxValue(tt.bits)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 0)
	}

	_, err := getMaxValue(8)
	require.ErrorIs(t, err, errInvalidNoiseConfig)
}

func TestNoiseConfig_Validate(t *testing.T) {
	base := testConfig(t, "x.wav")
	require.NoError(t, base.validate())

	tests := []struct {
		name   string
		modify func(c *noiseConfig)
	}{
		{"zero frames", func(c *noiseConfig) { c.frames = 0 }},
		{"zero rate", func(c *noiseConfig) { c.sampleRate = 0 }},
		{"bad depth", func(c *noiseConfig) { c.bitDepth = 12 }},
		{"zero amplitude", func(c *noiseConfig) { c.amplitude = 0 }},
		{"amplitude above one", func(c *noiseConfig) { c.amplitude = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.validate(), errInvalidNoiseConfig)
		})
	}
}

func TestRenderWAV_InvalidOutputDir(t *testing.T) {
	cfg := testConfig(t, "x.wav")
	cfg.path = filepath.Join(t.TempDir(), "missing", "noise.wav")

	_, err := renderWAV(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRenderWAV_InvalidRounds(t *testing.T) {
	cfg := testConfig(t, "x.wav")
	cfg.rounds = 9

	_, err := renderWAV(&cfg)
	require.ErrorIs(t, err, majhash.ErrInvalidRounds)
	assert.NoFileExists(t, cfg.path)
}

func TestRenderWAV_RoundTrip(t *testing.T) {
	for _, bits := range []int{16, 24, 32} {
		cfg := testConfig(t, "noise.wav")
		cfg.bitDepth = bits

		written, err := renderWAV(&cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.frames, written)

		dec, data := decodeWAV(t, cfg.path)
		assert.Equal(t, uint32(cfg.sampleRate), dec.SampleRate)
		assert.Equal(t, uint16(stereoChannels), dec.NumChans)
		assert.Equal(t, uint16(bits), dec.BitDepth)
		assert.Len(t, data, cfg.frames*stereoChannels)
	}
}

func TestRenderWAV_AmplitudeBound(t *testing.T) {
	cfg := testConfig(t, "noise.wav")
	cfg.amplitude = 0.25

	_, err := renderWAV(&cfg)
	require.NoError(t, err)

	_, data := decodeWAV(t, cfg.path)
	limit := int(maxInt16*0.25) + 1
	nonZero := 0
	for _, s := range data {
		require.LessOrEqual(t, s, limit)
		require.GreaterOrEqual(t, s, -limit)
		if s != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, len(data)/2, "noise should not be silent")
}

func TestRenderWAV_ChunkedMatchesFrameHash(t *testing.T) {
	cfg := testConfig(t, "noise.wav")
	cfg.frames = chunkFrames + 1000
	cfg.parallel = false

	_, err := renderWAV(&cfg)
	require.NoError(t, err)
	_, data := decodeWAV(t, cfg.path)
	require.Len(t, data, cfg.frames*stereoChannels)

	// Spot-check frames on both sides of the chunk boundary.
	for _, i := range []int{0, 1, chunkFrames - 1, chunkFrames, cfg.frames - 1} {
		f := float32(i) / float32(cfg.frames)
		x, y := majhash.MustHash(f, f, cfg.rounds)
		wantL := quantize(make([]int, 1), []float32{(x - unitCenter) * 2 * cfg.amplitude}, maxInt16)[0]
		wantR := quantize(make([]int, 1), []float32{(y - unitCenter) * 2 * cfg.amplitude}, maxInt16)[0]
		assert.InDelta(t, wantL, data[2*i], 1, "left frame %d", i)
		assert.InDelta(t, wantR, data[2*i+1], 1, "right frame %d", i)
	}
}

func TestRenderWAV_ParallelMatchesSerial(t *testing.T) {
	serial := testConfig(t, "serial.wav")
	serial.parallel = false
	parallel := testConfig(t, "parallel.wav")
	parallel.parallel = true

	_, err := renderWAV(&serial)
	require.NoError(t, err)
	_, err = renderWAV(&parallel)
	require.NoError(t, err)

	a, err := os.ReadFile(serial.path)
	require.NoError(t, err)
	b, err := os.ReadFile(parallel.path)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestQuantize_Clamps(t *testing.T) {
	got := quantize(make([]int, 3), []float32{2, -2, 0.5}, maxInt16)
	assert.Equal(t, []int{32767, -32767, 16383}, got)
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "Duration: 2.00s, Speed: 48.0 Kframes/s (1.0x realtime)",
		formatSpeed(96000, 48000, 2*time.Second))
	assert.Equal(t, "Duration: 0.50s, Speed: 1.9 Mframes/s (40.0x realtime)",
		formatSpeed(960000, 48000, 500*time.Millisecond))
	assert.Equal(t, "Duration: 0.00s", formatSpeed(100, 48000, 0))
}

func TestRun_InsufficientArgs(t *testing.T) {
	err := run([]string{"-seconds", "0.1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient arguments")
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, run([]string{"-seconds", "0.05", "-rate", "8000", path}))

	dec, data := decodeWAV(t, path)
	assert.Equal(t, uint32(8000), dec.SampleRate)
	assert.Len(t, data, 400*stereoChannels)
}
