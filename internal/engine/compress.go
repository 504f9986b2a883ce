package engine

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidRounds indicates a round count outside [MinRounds, MaxRounds].
var ErrInvalidRounds = errors.New("invalid round count")

// Digest is the eight-word compression state.
type Digest [digestWords]uint32

// roundK holds the first eight SHA-256 round constants.
var roundK = [MaxRounds]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
}

// ValidateRounds reports whether rounds can index the round-constant table.
func ValidateRounds(rounds int) error {
	if rounds < MinRounds || rounds > MaxRounds {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidRounds, rounds, MinRounds, MaxRounds)
	}
	return nil
}

// Compress runs rounds SHA-256 compression steps over seed, starting from
// an all-zero state instead of the SHA-256 initialization vector.
//
// The message schedule is a two-slot ring seeded with the seed words. The
// standard expansion offsets (2, 7, 15, 16) are reduced modulo 2, so the
// (i-2) and (i-16) terms read the slot being overwritten and the (i-7)
// and (i-15) terms read the other slot.
//
// Compress does not validate rounds; it panics with an index error when
// rounds exceeds MaxRounds. Use ValidateRounds first.
func Compress(seed Seed, rounds int) Digest {
	var h Digest
	w := seed

	for i := 0; i < rounds; i++ {
		w[i&1] = gamma1(w[(i-2)&1]) + w[(i-7)&1] + gamma0(w[(i-15)&1]) + w[(i-16)&1]
	}

	for i := 0; i < rounds; i++ {
		t0 := w[i&1] + h[7] + sigma1(h[4]) + ch(h[4], h[5], h[6]) + roundK[i]
		t1 := maj(h[0], h[1], h[2]) + sigma0(h[0])
		h[7] = h[6]
		h[6] = h[5]
		h[5] = h[4]
		h[4] = h[3] + t0
		h[3] = h[2]
		h[2] = h[1]
		h[1] = h[0]
		h[0] = t0 + t1
	}

	return h
}

// SHA-256 round functions.

func sigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func sigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func gamma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func gamma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}

func ch(x, y, z uint32) uint32 {
	return z ^ (x & (y ^ z))
}

func maj(x, y, z uint32) uint32 {
	return (x & y) ^ ((x ^ y) & z)
}
