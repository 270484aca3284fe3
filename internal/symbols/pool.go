package symbols

// Pool is the multiset of characters eligible for generation, assembled
// from catalog selections and literal tokens. Duplicate characters are
// kept on purpose: multiplicity is how a pool biases character frequency,
// so nothing in the pipeline may deduplicate it.
//
// A Pool grows monotonically during configuration and must be treated as
// immutable once generation begins.
type Pool struct {
	chars []byte
}

// Activate appends chars to the pool and returns the number of characters
// added. Existing characters are never reordered or lost; if the backing
// storage cannot grow the runtime panics, so a half-built pool is never
// returned to the caller.
func (p *Pool) Activate(chars []byte) int {
	p.chars = append(p.chars, chars...)

	return len(chars)
}

// ActivateString appends the bytes of a literal token.
func (p *Pool) ActivateString(s string) int {
	return p.Activate([]byte(s))
}

// Chars exposes the pool contents. The returned slice is the pool's
// backing storage, not a copy; callers must not modify it.
func (p *Pool) Chars() []byte {
	return p.chars
}

// Len returns the number of characters in the pool, counting multiplicity.
func (p *Pool) Len() int {
	return len(p.chars)
}
