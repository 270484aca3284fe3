package symbols

// DefaultSet names the catalog entry activated when no symbols were
// selected at all: printable ASCII without the space character.
const DefaultSet = "asciipns"

// Set is a named, immutable collection of candidate characters.
// Chars is opaque bytes; user literals may splice in arbitrary values,
// so nothing here assumes printable ASCII.
type Set struct {
	Name  string
	Chars []byte
}

// Len returns the number of characters in the set, counting multiplicity.
func (s *Set) Len() int {
	return len(s.Chars)
}

// Catalog is an insertion-ordered sequence of predefined symbol sets.
// It is built once, read-only afterwards, and only needed while the
// active pool is being assembled.
type Catalog struct {
	sets []Set
}

// AsciiRange returns the run of ASCII values from first to last, inclusive.
// It panics when first > last; the catalog only ever calls it with fixed
// compile-time bounds, so a violation is a programming error.
func AsciiRange(first, last byte) []byte {
	if first > last {
		panic("symbols: invalid ascii range")
	}

	out := make([]byte, 0, int(last)-int(first)+1)
	for c := first; ; c++ {
		out = append(out, c)
		if c == last { // checked before increment so last == 0xFF cannot wrap
			break
		}
	}

	return out
}

// NewCatalog builds the predefined symbol sets in a fixed order.
// Composite entries (Alpha, ALNUM, ...) are concatenated from earlier
// entries looked up by name and hold their own copy of the bytes, so a
// later change to a primitive entry can never retroactively alter them.
func NewCatalog() *Catalog {
	c := &Catalog{}

	// printable ASCII characters, including space (32--126)
	c.add("asciip", AsciiRange(' ', '~'))

	// printable ASCII characters, without space (33--126)
	c.add("asciipns", AsciiRange('!', '~'))

	// numbers 0-9 (48--57)
	c.add("num", AsciiRange('0', '9'))

	// uppercase letters (65--90)
	c.add("ALPHA", AsciiRange('A', 'Z'))

	// lowercase letters (97--122)
	c.add("alpha", AsciiRange('a', 'z'))

	// composites reuse the primitive sets above
	c.add("Alpha", c.concat("ALPHA", "alpha"))
	c.add("ALNUM", c.concat("ALPHA", "num"))
	c.add("alnum", c.concat("alpha", "num"))
	c.add("Alnum", c.concat("Alpha", "num"))

	// punctuation characters (33--47, 58--64, 91--96, 123--126)
	punct := AsciiRange('!', '/')
	punct = append(punct, AsciiRange(':', '@')...)
	punct = append(punct, AsciiRange('[', '`')...)
	punct = append(punct, AsciiRange('{', '~')...)
	c.add("punct", punct)

	return c
}

func (c *Catalog) add(name string, chars []byte) {
	c.sets = append(c.sets, Set{Name: name, Chars: chars})
}

// concat returns a fresh concatenated copy of the named sets' characters.
// Every name must already be present in the catalog.
func (c *Catalog) concat(names ...string) []byte {
	var out []byte

	for _, name := range names {
		s, ok := c.Find(name)
		if !ok {
			panic("symbols: unknown set in catalog composition: " + name)
		}

		out = append(out, s.Chars...)
	}

	return out
}

// Find returns the first set whose name matches key exactly.
// A missing name is not an error at this layer; the caller decides
// whether that is fatal.
func (c *Catalog) Find(key string) (*Set, bool) {
	for i := range c.sets {
		if c.sets[i].Name == key {
			return &c.sets[i], true
		}
	}

	return nil, false
}

// Sets returns the catalog entries in insertion order.
func (c *Catalog) Sets() []Set {
	return c.sets
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.sets)
}
