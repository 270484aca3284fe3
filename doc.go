// Package main provides the entry point for pwgen, a generator of random
// strings drawn from a customizable pool of characters. The pool is built
// from predefined symbol sets and literal command-line tokens; strings are
// sampled without modulo bias from an explicitly seeded pseudo-random
// source. The output is statistically unbiased but not cryptographically
// secure.
package main
