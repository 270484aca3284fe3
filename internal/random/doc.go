// Package random implements unbiased sampling from a character pool using
// an explicitly seeded pseudo-random source. Draws are uniform conditioned
// on the quality of the source; unpredictability against an adversary is
// not a goal, so generated strings are not suitable as cryptographic keys.
package random
