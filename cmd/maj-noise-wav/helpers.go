package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	majhash "github.com/tphakala/go-maj-hash"
	"github.com/tphakala/go-maj-hash/internal/format"
	"github.com/tphakala/go-maj-hash/internal/simdops"
)

var errInvalidNoiseConfig = errors.New("invalid noise configuration")

// noiseConfig holds validated render settings.
type noiseConfig struct {
	path       string
	frames     int
	sampleRate int
	bitDepth   int
	rounds     int
	amplitude  float32
	parallel   bool
	verbose    bool
}

func (c *noiseConfig) validate() error {
	if c.frames <= 0 {
		return fmt.Errorf("%w: duration must be positive", errInvalidNoiseConfig)
	}
	if c.sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", errInvalidNoiseConfig)
	}
	if _, err := getMaxValue(c.bitDepth); err != nil {
		return err
	}
	if c.amplitude <= 0 || c.amplitude > 1 {
		return fmt.Errorf("%w: amplitude must be in (0, 1]", errInvalidNoiseConfig)
	}
	return nil
}

// getMaxValue returns the full-scale integer value for a PCM bit depth.
func getMaxValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16, nil
	case bitsPerSample24:
		return maxInt24, nil
	case bitsPerSample32:
		return maxInt32, nil
	default:
		return 0, fmt.Errorf("%w: unsupported bit depth %d", errInvalidNoiseConfig, bitDepth)
	}
}

// wavOutputWriter wraps the output file and its encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	format  *audio.Format
	bits    int
}

// createWAVOutput creates the output file and a PCM encoder for it.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		format:  &audio.Format{NumChannels: channels, SampleRate: sampleRate},
		bits:    bitDepth,
	}, nil
}

// WriteSamples writes interleaved integer samples.
func (w *wavOutputWriter) WriteSamples(samples []int) error {
	return w.encoder.Write(&audio.IntBuffer{
		Format:         w.format,
		Data:           samples,
		SourceBitDepth: w.bits,
	})
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return w.file.Close()
}

// noiseBuffers holds preallocated per-chunk buffers.
type noiseBuffers struct {
	coords []majhash.Vec2
	left   []float32
	right  []float32
	frames []float32
	pcm    []int
}

func newNoiseBuffers(chunk int) *noiseBuffers {
	return &noiseBuffers{
		coords: make([]majhash.Vec2, chunk),
		left:   make([]float32, chunk),
		right:  make([]float32, chunk),
		frames: make([]float32, chunk*stereoChannels),
		pcm:    make([]int, chunk*stereoChannels),
	}
}

// renderChunk hashes frames [start, start+n) of total and leaves the
// interleaved stereo samples in b.frames[:2n].
func renderChunk(h *majhash.Hasher, b *noiseBuffers, start, n, total int, amplitude float32, parallel bool) error {
	step := float32(total)
	for i := range n {
		f := float32(start+i) / step
		b.coords[i] = majhash.Vec2{X: f, Y: f}
	}

	left, right := b.left[:n], b.right[:n]
	var err error
	if parallel {
		err = h.FillParallel(left, right, b.coords[:n], 0)
	} else {
		err = h.Fill(left, right, b.coords[:n])
	}
	if err != nil {
		return err
	}

	// [0, 1] -> [-amplitude, amplitude]
	ops := simdops.For[float32]()
	for i := range n {
		left[i] -= unitCenter
		right[i] -= unitCenter
	}
	ops.Scale(left, left, 2*amplitude)
	ops.Scale(right, right, 2*amplitude)
	ops.Interleave2(b.frames[:n*stereoChannels], left, right)

	return nil
}

// quantize converts float samples in [-1, 1] to integers at maxVal full scale.
func quantize(dst []int, src []float32, maxVal float64) []int {
	dst = dst[:len(src)]
	for i, v := range src {
		s := float64(v) * maxVal
		s = max(-maxVal, min(maxVal, s))
		dst[i] = int(s)
	}
	return dst
}

// formatSpeed renders the elapsed time, frame rate and realtime factor of a
// finished render.
func formatSpeed(frames, sampleRate int, elapsed time.Duration) string {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return fmt.Sprintf("Duration: %.2fs", secs)
	}
	return fmt.Sprintf("Duration: %.2fs, Speed: %sframes/s (%.1fx realtime)",
		secs,
		format.Rate(float64(frames)/secs),
		float64(frames)/float64(sampleRate)/secs)
}

// progressTracker handles progress reporting.
type progressTracker struct {
	total        int
	lastProgress int
	verbose      bool
}

func newProgressTracker(total int, verbose bool) *progressTracker {
	return &progressTracker{total: total, verbose: verbose}
}

// reportIfNeeded logs progress if a threshold was crossed.
func (p *progressTracker) reportIfNeeded(done int) {
	if !p.verbose || p.total == 0 {
		return
	}

	progress := int(float64(done) / float64(p.total) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// renderWAV writes cfg.frames stereo frames of hash noise to cfg.path and
// returns the number of frames written.
func renderWAV(cfg *noiseConfig) (written int, err error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	h, err := majhash.New(cfg.rounds)
	if err != nil {
		return 0, err
	}
	maxVal, err := getMaxValue(cfg.bitDepth)
	if err != nil {
		return 0, err
	}

	output, err := createWAVOutput(cfg.path, cfg.sampleRate, cfg.bitDepth, stereoChannels)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newNoiseBuffers(min(chunkFrames, cfg.frames))
	progress := newProgressTracker(cfg.frames, cfg.verbose)

	for written < cfg.frames {
		n := min(len(buffers.left), cfg.frames-written)
		if err := renderChunk(h, buffers, written, n, cfg.frames, cfg.amplitude, cfg.parallel); err != nil {
			return written, err
		}

		pcm := quantize(buffers.pcm, buffers.frames[:n*stereoChannels], maxVal)
		if err := output.WriteSamples(pcm); err != nil {
			return written, fmt.Errorf("failed to write audio data: %w", err)
		}

		written += n
		progress.reportIfNeeded(written)
	}

	return written, nil
}
