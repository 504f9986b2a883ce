package engine

// Hash composes Extract, Compress and Fold/Unorm. rounds is not validated.
func Hash(x, y float32, rounds int) (float32, float32) {
	a, b := Fold(Compress(Extract(x, y), rounds))
	return Unorm(a), Unorm(b)
}
