// Package pacing realizes frame waits on top of an imprecise OS sleep.
//
// Two modes are supported:
//   - Blocking: a single blocking sleep for the whole wait
//   - Hybrid: repeated minimal sleeps while the remaining wait exceeds a
//     self-calibrating spin threshold, then a busy-wait for the tail
//
// The spin threshold is mean + k*stddev of observed unit-sleep durations,
// tracked online by Estimator. Switching modes discards the estimate.
package pacing
