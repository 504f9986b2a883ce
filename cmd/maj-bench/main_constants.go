package main

// benchmarkName labels the result row.
const benchmarkName = "hash2"
