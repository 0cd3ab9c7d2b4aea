// Package retry runs a fallible operation until it succeeds, sleeping a linearly
// growing interval between attempts.
//
// The n-th failure (counting from zero) is followed by a sleep of n time factors,
// so with the default one second factor the delays are 0s, 1s, 2s and so on. There
// is no jitter and, unless the caller opts in, no cap on the number of attempts or
// on the delay. Every tenth failure is reported through the configured [Logger].
package retry
