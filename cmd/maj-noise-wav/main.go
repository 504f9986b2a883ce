// Command maj-noise-wav renders coordinate hash output as stereo white noise.
//
// Usage:
//
//	maj-noise-wav noise.wav
//	maj-noise-wav -seconds 10 -rate 44100 -bits 24 -rounds 8 noise.wav
//
// Frame i of n hashes the coordinate (i/n, i/n). The X output drives the
// left channel and the Y output the right channel, both mapped from
// [0, 1] to [-amplitude, amplitude].
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-maj-hash/internal/format"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("maj-noise-wav", flag.ContinueOnError)
	seconds := fs.Float64("seconds", defaultSeconds, "Duration in seconds")
	rate := fs.Int("rate", defaultSampleRate, "Sample rate in Hz")
	bits := fs.Int("bits", defaultBitDepth, "PCM bit depth: 16, 24 or 32")
	rounds := fs.Int("rounds", defaultRounds, "Hash round count (1-8)")
	amplitude := fs.Float64("amplitude", defaultAmplitude, "Peak amplitude in (0, 1]")
	parallel := fs.Bool("parallel", true, "Hash each chunk on multiple goroutines")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: maj-noise-wav [options] output.wav\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < minRequiredArgs {
		fs.Usage()
		return fmt.Errorf("insufficient arguments")
	}

	cfg := noiseConfig{
		path:       fs.Arg(0),
		frames:     int(*seconds * float64(*rate)),
		sampleRate: *rate,
		bitDepth:   *bits,
		rounds:     *rounds,
		amplitude:  float32(*amplitude),
		parallel:   *parallel,
		verbose:    *verbose,
	}

	if *verbose {
		log.Printf("Output: %s", cfg.path)
		log.Printf("Format: %d Hz, %d channels, %d-bit", cfg.sampleRate, stereoChannels, cfg.bitDepth)
		log.Printf("Rounds: %d, Amplitude: %.3f", cfg.rounds, cfg.amplitude)
		log.Printf("Chunk: %s frames", format.Binary(chunkFrames))
	}

	start := time.Now()
	written, err := renderWAV(&cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("Rendered %s\n", filepath.Base(cfg.path))
	fmt.Printf("  %d frames at %d Hz (%d channels, %d-bit)\n",
		written, cfg.sampleRate, stereoChannels, cfg.bitDepth)
	fmt.Printf("  %s\n", formatSpeed(written, cfg.sampleRate, elapsed))

	return nil
}
