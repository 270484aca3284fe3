package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 1, c.Count)
	assert.Equal(t, 8, c.Length)
	assert.Equal(t, "/dev/urandom", c.SeedFile)
	assert.Empty(t, c.Sets)
	assert.Empty(t, c.Literals)
	assert.True(t, c.Log.Console.Enabled)
}

func TestReadConfig_MissingFileUsesDefaults(t *testing.T) {
	c, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), c)
}

func TestReadConfig_File(t *testing.T) {
	dir := t.TempDir()

	content := `
count = 5
length = 12
seedFile = "/dev/random"
sets = ["num", "ALPHA"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o600))

	c, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Count)
	assert.Equal(t, 12, c.Length)
	assert.Equal(t, "/dev/random", c.SeedFile)
	assert.Equal(t, []string{"num", "ALPHA"}, c.Sets)
}

func TestReadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte("count = ["), 0o600))

	_, err := ReadConfig(dir)
	assert.Error(t, err)
}

func TestReadConfig_EnvOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Count": 3, "Length": 20}`)

	c, err := ReadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, c.Count)
	assert.Equal(t, 20, c.Length)
	assert.Equal(t, DefaultSeedFile, c.SeedFile)
}

func TestReadConfig_MalformedEnv(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Count": `)

	_, err := ReadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}

	testCases := []testCase{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "zero count", mutate: func(c *Config) { c.Count = 0 }, wantErr: true},
		{name: "negative length", mutate: func(c *Config) { c.Length = -1 }, wantErr: true},
		{name: "empty seed file", mutate: func(c *Config) { c.SeedFile = "" }, wantErr: true},
		{name: "large count and length", mutate: func(c *Config) { c.Count = 10000; c.Length = 4096 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)

			err := Validate(c)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_EmptySeedFileSentinel(t *testing.T) {
	c := Default()
	c.SeedFile = ""

	assert.True(t, errors.Is(Validate(c), ErrEmptySeedFile))
}

func TestDumpConfig(t *testing.T) {
	out, err := DumpConfig(Default())
	require.NoError(t, err)

	assert.Contains(t, out, "count = 1")
	assert.Contains(t, out, "length = 8")
}

func TestDumpConfigJSON(t *testing.T) {
	out, err := DumpConfigJSON(Default())
	require.NoError(t, err)

	assert.Contains(t, out, `"Count": 1`)
}
