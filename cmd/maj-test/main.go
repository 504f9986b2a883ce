// Command maj-test prints distribution statistics of the coordinate hash.
//
// Usage:
//
//	maj-test                     # 1M and 8M samples divided by 8M
//	maj-test 100000 800000       # custom sample count and divisor
//	maj-test -workers 8          # shard each sweep across 8 goroutines
//	maj-test -analyze -rounds 2,8
//
// For each round count a table reports count, mean, variance (about 0.5)
// and standard deviation of both output axes for sweeps along y, along x,
// and along the diagonal. A uniform output has mean 0.5 and variance
// 1/12 (about 0.0833).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/tphakala/go-maj-hash/internal/stats"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("maj-test", flag.ContinueOnError)
	rounds := fs.String("rounds", defaultRoundsFlag, "Comma-separated round counts (1-8)")
	workers := fs.Int("workers", defaultWorkers, "Goroutines per sweep (1 = sequential)")
	analyze := fs.Bool("analyze", false, "Append chi-square, spectral flatness and avalanche results")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: maj-test [options] [count [range]]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	roundList, err := parseRounds(*rounds)
	if err != nil {
		return err
	}

	cfg := stats.Config{
		Rounds:  roundList,
		Count:   positional(fs.Args(), argCount, defaultCount),
		Range:   positional(fs.Args(), argRange, defaultRange),
		Workers: *workers,
	}

	if *verbose {
		log.Printf("Rounds: %v", cfg.Rounds)
		log.Printf("Count: %d, Range: %d", cfg.Count, cfg.Range)
		log.Printf("Workers: %d", cfg.Workers)
	}

	start := time.Now()
	tables, err := stats.RunSuite(ctx, cfg)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Suite completed in %.2fs", time.Since(start).Seconds())
	}

	header := color.New(color.FgCyan, color.Bold)
	if err := stats.WriteTables(out, tables, func(s string) string { return header.Sprint(s) }); err != nil {
		return err
	}

	if *analyze {
		return writeAnalysis(ctx, out, cfg, header)
	}
	return nil
}

// positional returns args[i] as a sample count, or def when the argument
// is missing, unparsable or zero.
func positional(args []string, i int, def uint64) uint64 {
	if i >= len(args) {
		return def
	}
	v, err := strconv.ParseUint(args[i], 10, 64)
	if err != nil || v == 0 {
		log.Printf("Ignoring argument %q, using default %d", args[i], def)
		return def
	}
	return v
}

// parseRounds parses a comma-separated list of round counts.
func parseRounds(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	rounds := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid round count %q: %w", p, err)
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}

// writeAnalysis appends the extended distribution checks for the diagonal
// sweep of each round count.
func writeAnalysis(ctx context.Context, out io.Writer, cfg stats.Config, header *color.Color) error {
	if _, err := fmt.Fprintf(out, "\n%s\n", header.Sprintf("%-12s%12s%12s%12s%12s%12s%12s%12s",
		"analysis", "rounds", "chi2(x)", "chi2(y)", "p(x)", "p(y)", "flat(x)", "flat(y)")); err != nil {
		return err
	}

	for _, r := range cfg.Rounds {
		a, err := stats.Analyze(ctx, r, cfg.Count, cfg.Range, stats.SweepXY)
		if err != nil {
			return fmt.Errorf("analysis for rounds=%d: %w", r, err)
		}
		if _, err := fmt.Fprintf(out, "%-12s%12d%12.2f%12.2f%12.4f%12.4f%12.4f%12.4f   avalanche=%.4f\n",
			stats.SweepXY.Name, r,
			a.ChiSquare[0], a.ChiSquare[1],
			a.PValue[0], a.PValue[1],
			a.Flatness[0], a.Flatness[1],
			a.Avalanche); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out)
	return err
}
