// Package parallel runs batches of predicate evaluations on a fixed set of
// worker goroutines.
//
// Every task is told which worker runs it. Callers use the worker index to
// give each worker state it owns exclusively, such as a rounding-mode
// register, which must never be shared between concurrent evaluations.
package parallel
