package main

// Default positional argument values
const (
	defaultCount = 1_000_000 // Short sweep length
	defaultRange = 8_000_000 // Coordinate divisor and long sweep length
)

// Default flag values
const (
	defaultRoundsFlag = "2,4,6,8"
	defaultWorkers    = 1
)

// Positional argument indices
const (
	argCount = 0
	argRange = 1
)
