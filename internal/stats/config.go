package stats

import (
	"errors"
	"fmt"

	majhash "github.com/tphakala/go-maj-hash"
)

// ErrInvalidConfig indicates invalid harness configuration.
var ErrInvalidConfig = errors.New("invalid stats configuration")

// Config holds statistical suite configuration.
type Config struct {
	// Rounds lists the round counts to compare, in report order.
	Rounds []int

	// Count is the length of the short sweeps.
	Count uint64

	// Range divides sweep indices down to [0, 1) and is also the length
	// of the long sweeps.
	Range uint64

	// Workers shards each sweep across goroutines. Values <= 1 run
	// sequentially.
	Workers int
}

// DefaultConfig returns the stock maj-test configuration.
func DefaultConfig() Config {
	return Config{
		Rounds:  append([]int(nil), DefaultRounds...),
		Count:   DefaultCount,
		Range:   DefaultRange,
		Workers: 1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Rounds) == 0 {
		return fmt.Errorf("%w: no round counts", ErrInvalidConfig)
	}

	for _, r := range c.Rounds {
		if r < majhash.MinRounds || r > majhash.MaxRounds {
			return fmt.Errorf("%w: round count %d out of range %d-%d",
				ErrInvalidConfig, r, majhash.MinRounds, majhash.MaxRounds)
		}
	}

	if c.Range == 0 {
		return fmt.Errorf("%w: range must be positive", ErrInvalidConfig)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}
