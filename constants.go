package majhash

import "github.com/tphakala/go-maj-hash/internal/engine"

// Round count presets
const (
	// Rounds2 is the round count used by Hash2.
	Rounds2 = 2

	// Rounds8 is the round count used by Hash8.
	Rounds8 = 8

	// MinRounds is the smallest accepted round count.
	MinRounds = engine.MinRounds

	// MaxRounds is the largest accepted round count, bounded by the
	// round-constant table.
	MaxRounds = engine.MaxRounds
)

// Batch processing constants
const (
	// minShardSize is the smallest slice FillParallel hands to one goroutine.
	minShardSize = 4096
)
