// Package majhash provides a deterministic, seedless 2-D coordinate hash
// built from a round-reduced SHA-256 compression function.
//
// The hash maps a float32 coordinate (typically a UV or texture coordinate)
// to a pair of float32 values in [0, 1]. There is no seed, counter, or
// stored state: the only entropy is the coordinate itself, which makes the
// hash a cheap source of coherent procedural noise. Truncating the input
// (for example rounding UVs to a grid) increases the grain.
//
// # Quick Start
//
//	u, v := majhash.Hash2(0.25, 0.75)
//
// For a round count chosen at runtime:
//
//	u, v, err := majhash.Hash(x, y, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// For repeated use with a validated round count:
//
//	h, err := majhash.New(6)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	u, v := h.Sum(x, y)
//
// # Algorithm
//
// Each call runs three fixed steps:
//
//	(x, y) -> [extract] -> 2-word seed -> [N SHA-256 rounds] -> 8-word digest -> [fold] -> (u, v)
//
// The extractor keeps 23 bits of magnitude and the sign of each axis and
// interleaves them into two 32-bit words. The exponent is ignored, so
// inputs are expected to satisfy |v| < 1. Values outside that domain still
// hash deterministically, but distinct inputs collide more often.
//
// The compression core starts from an all-zero state rather than the
// SHA-256 initialization vector and uses only the first N round constants,
// where 1 <= N <= [MaxRounds]. The digest halves are XOR-folded into two
// words whose low 23 bits are scaled onto [0, 1]. The upper bound is
// closed: exactly 1.0 is a possible output.
//
// # Presets
//
//   - [Hash2]: 2 rounds, the fastest preset. Suitable for texture noise.
//   - [Hash8]: 8 rounds, the full constant table. Better bit avalanche.
//
// # Thread Safety
//
// All functions and [Hasher] methods are pure and safe for concurrent use.
//
// # Security
//
// The hash is not a cryptographic primitive. Eight rounds over a 48-bit
// input offer no collision or preimage resistance.
package majhash
