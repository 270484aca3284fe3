package random

import (
	"math/rand"
)

// maxDraw is the largest value the underlying source can produce (2^63 - 1).
const maxDraw = 1<<63 - 1

// Generator produces uniformly distributed draws from a pseudo-random
// source. The source is seeded exactly once, at construction, and cannot
// be reseeded; a Generator is not safe for concurrent use.
type Generator struct {
	src *rand.Rand
}

// New returns a Generator seeded with seed. Two Generators constructed
// from the same seed produce identical draw sequences.
func New(seed int64) *Generator {
	return &Generator{src: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniformly distributed value in [0, bound).
// It panics when bound is not positive.
//
// Raw draws land uniformly on [0, maxDraw]; a bare modulus would favor
// small remainders whenever bound does not divide maxDraw+1. Rejection
// sampling removes that bias exactly: any draw at or above the largest
// multiple of bound is discarded and redrawn. Expected redraws stay
// below two for every bound.
func (g *Generator) IntN(bound int) int {
	if bound <= 0 {
		panic("random: IntN bound must be positive")
	}

	reject := int64(maxDraw) - int64(maxDraw)%int64(bound)

	r := g.src.Int63()
	for r >= reject {
		r = g.src.Int63()
	}

	return int(r % int64(bound))
}

// Fill overwrites every byte of dst with a character drawn uniformly from
// chars. A character repeated in chars is proportionally more likely to
// appear; chars must be non-empty.
func (g *Generator) Fill(dst, chars []byte) {
	for i := range dst {
		dst[i] = chars[g.IntN(len(chars))]
	}
}

// Password returns a fresh string of length characters drawn from chars.
func (g *Generator) Password(length int, chars []byte) string {
	buf := make([]byte, length)
	g.Fill(buf, chars)

	return string(buf)
}
