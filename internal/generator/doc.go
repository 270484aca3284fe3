// Package generator wires the symbol catalog, the active pool and the
// seeded random source into one run of string generation.
package generator
