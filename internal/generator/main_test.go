package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juhorosq/pwgen/internal/config"
	"github.com/juhorosq/pwgen/internal/symbols"
)

// seedFile writes a fixed 8-byte seed so generation is deterministic.
func seedFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0o600))

	return path
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	c := config.Default()
	c.SeedFile = seedFile(t)

	return c
}

func TestNew_UnknownSet(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sets = []string{"num", "bogus"}

	_, err := New(&cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSet))
	assert.Contains(t, err.Error(), "bogus")
}

func TestBuildPool_DefaultFallback(t *testing.T) {
	cfg := testConfig(t)

	pool, err := buildPool(&cfg)
	require.NoError(t, err)

	// with nothing selected the pool is exactly the default set
	def, ok := symbols.NewCatalog().Find(symbols.DefaultSet)
	require.True(t, ok)
	assert.Equal(t, def.Chars, pool.Chars())
}

func TestBuildPool_SetsThenLiterals(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sets = []string{"num"}
	cfg.Literals = []string{"xy", "z"}

	pool, err := buildPool(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("0123456789xyz"), pool.Chars())
}

func TestBuildPool_RepeatedSetsKeepDuplicates(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sets = []string{"num", "num"}

	pool, err := buildPool(&cfg)
	require.NoError(t, err)
	assert.Equal(t, []byte("01234567890123456789"), pool.Chars())
}

func TestRun_NumbersOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sets = []string{"num"}
	cfg.Count = 100
	cfg.Length = 5

	g, err := New(&cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, g.Run(&out))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 100)

	for _, line := range lines {
		assert.Len(t, line, 5)

		for _, c := range line {
			assert.True(t, c >= '0' && c <= '9', "unexpected character %q in %q", c, line)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	path := seedFile(t)

	run := func() string {
		cfg := config.Default()
		cfg.SeedFile = path
		cfg.Count = 10
		cfg.Length = 16

		g, err := New(&cfg)
		require.NoError(t, err)

		var out bytes.Buffer
		require.NoError(t, g.Run(&out))

		return out.String()
	}

	assert.Equal(t, run(), run())
}

func TestNew_SeedSourceFallback(t *testing.T) {
	cfg := testConfig(t)
	cfg.SeedFile = filepath.Join(t.TempDir(), "does-not-exist")
	cfg.Length = 4

	// an unreadable seed source degrades to a time seed, never an error
	g, err := New(&cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, g.Run(&out))
	assert.Len(t, out.String(), 5) // 4 characters and a newline
}

func TestListSets(t *testing.T) {
	var out bytes.Buffer
	ListSets(&out)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 10)

	for _, name := range []string{
		"asciip", "asciipns", "num", "ALPHA", "alpha",
		"Alpha", "ALNUM", "alnum", "Alnum", "punct",
	} {
		assert.Contains(t, out.String(), name)
	}

	assert.Contains(t, out.String(), "0123456789")
}
