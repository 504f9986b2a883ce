package engine

// Fold XORs the two halves of the digest into two words.
func Fold(d Digest) (uint32, uint32) {
	var a, b uint32
	for i := range foldWidth {
		a ^= d[i]
		b ^= d[i+foldWidth]
	}
	return a, b
}

// Unorm maps the low 23 bits of w onto [0, 1]. The upper bound is closed:
// a masked value of 2^23-1 yields exactly 1.0.
func Unorm(w uint32) float32 {
	return float32(w&unormMask) / unormDivisor
}
