package generator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/juhorosq/pwgen/internal/config"
	"github.com/juhorosq/pwgen/internal/random"
	"github.com/juhorosq/pwgen/internal/symbols"
)

// Generator holds the assembled character pool and the seeded source for
// one run. The symbol catalog only exists while the pool is assembled;
// once New returns, the pool owns every byte it needs.
type Generator struct {
	count  int
	length int

	pool *symbols.Pool
	rnd  *random.Generator
}

// New assembles the active pool from the configured symbol sets and
// literal tokens, then seeds the pseudo-random source. An unknown set
// name is a configuration error; an unreadable seed source is only a
// warning and falls back to the system clock.
func New(cfg *config.Config) (*Generator, error) {
	pool, err := buildPool(cfg)
	if err != nil {
		return nil, err
	}

	seed, err := random.ReadSeed(cfg.SeedFile)
	if err != nil {
		log.Warn().Err(err).Str("source", cfg.SeedFile).
			Msg("falling back to system time as random seed")
		log.Warn().Msg("system time is predictable")

		seed = random.TimeSeed()
	}

	return &Generator{
		count:  cfg.Count,
		length: cfg.Length,
		pool:   pool,
		rnd:    random.New(seed),
	}, nil
}

// buildPool resolves set selections against a fresh catalog and splices
// literal tokens in after them. When nothing at all was selected, the
// default set keeps the pool from ever being empty.
func buildPool(cfg *config.Config) (*symbols.Pool, error) {
	catalog := symbols.NewCatalog()
	pool := &symbols.Pool{}

	for _, name := range cfg.Sets {
		set, ok := catalog.Find(name)
		if !ok {
			return nil, errors.Wrap(ErrUnknownSet, name)
		}

		pool.Activate(set.Chars)
	}

	for _, lit := range cfg.Literals {
		pool.ActivateString(lit)
	}

	if pool.Len() == 0 {
		set, ok := catalog.Find(symbols.DefaultSet)
		if !ok || set.Len() == 0 {
			// the built-in catalog is broken, not the user input
			return nil, ErrEmptyPool
		}

		pool.Activate(set.Chars)
	}

	return pool, nil
}

// Run writes the configured number of newline-terminated random strings
// to w, in generation order.
func (g *Generator) Run(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, g.length)

	for i := 0; i < g.count; i++ {
		g.rnd.Fill(buf, g.pool.Chars())

		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "write generated string")
		}

		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "write generated string")
		}
	}

	return errors.Wrap(bw.Flush(), "flush generated strings")
}

// ListSets writes every predefined symbol set to w, one `name  chars`
// line per entry, in catalog order.
func ListSets(w io.Writer) {
	for _, s := range symbols.NewCatalog().Sets() {
		fmt.Fprintf(w, "  %-10s%s\n", s.Name, s.Chars)
	}
}
