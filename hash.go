package majhash

import (
	"errors"

	"github.com/tphakala/go-maj-hash/internal/engine"
)

// Common errors returned by the hash.
var (
	// ErrInvalidRounds indicates a round count outside [MinRounds, MaxRounds].
	ErrInvalidRounds = engine.ErrInvalidRounds

	// ErrLengthMismatch indicates destination slices shorter than the input.
	ErrLengthMismatch = errors.New("destination length mismatch")
)

// Vec2 is a 2-D coordinate or hash result.
type Vec2 struct {
	X, Y float32
}

// Hash maps (x, y) to two values in [0, 1] using the given number of
// compression rounds. It returns ErrInvalidRounds when rounds is outside
// [MinRounds, MaxRounds].
func Hash(x, y float32, rounds int) (float32, float32, error) {
	if err := engine.ValidateRounds(rounds); err != nil {
		return 0, 0, err
	}
	u, v := engine.Hash(x, y, rounds)
	return u, v, nil
}

// MustHash is like Hash but panics on an invalid round count.
func MustHash(x, y float32, rounds int) (float32, float32) {
	u, v, err := Hash(x, y, rounds)
	if err != nil {
		panic("majhash: " + err.Error())
	}
	return u, v
}

// Hash2 is the two-round preset.
func Hash2(x, y float32) (float32, float32) {
	return engine.Hash(x, y, Rounds2)
}

// Hash8 is the eight-round preset.
func Hash8(x, y float32) (float32, float32) {
	return engine.Hash(x, y, Rounds8)
}

// HashVec is Hash for a Vec2 coordinate.
func HashVec(p Vec2, rounds int) (Vec2, error) {
	u, v, err := Hash(p.X, p.Y, rounds)
	return Vec2{u, v}, err
}

// Hasher hashes coordinates with a fixed, validated round count.
// Create one with New. The zero value has no round count: its Sum and
// SumVec panic with ErrInvalidRounds and its Fill methods return it.
type Hasher struct {
	rounds int
}

// New returns a Hasher for the given round count.
func New(rounds int) (*Hasher, error) {
	if err := engine.ValidateRounds(rounds); err != nil {
		return nil, err
	}
	return &Hasher{rounds: rounds}, nil
}

// Rounds returns the configured round count.
func (h *Hasher) Rounds() int {
	return h.rounds
}

// Sum hashes (x, y).
func (h *Hasher) Sum(x, y float32) (float32, float32) {
	h.mustValidate()
	return engine.Hash(x, y, h.rounds)
}

// SumVec hashes p.
func (h *Hasher) SumVec(p Vec2) Vec2 {
	h.mustValidate()
	u, v := engine.Hash(p.X, p.Y, h.rounds)
	return Vec2{u, v}
}

func (h *Hasher) mustValidate() {
	if err := engine.ValidateRounds(h.rounds); err != nil {
		panic(err)
	}
}
