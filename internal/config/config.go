// Package config handles program defaults, the optional etc/pwgen.toml
// file, and overrides from the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"
)

// ConfigFile is the file name looked up inside the configuration directory.
const ConfigFile = "pwgen.toml"

// EnvConfigJSON names the environment variable whose JSON contents
// override values read from the configuration file.
const EnvConfigJSON = "PWGEN_CONFIG_JSON"

var valid = validator.New(validator.WithRequiredStructEnabled())

// ReadConfig loads configuration from the given directory, falling back
// to built-in defaults when no file is present. A missing file is normal
// operation; a malformed one is an error.
func ReadConfig(path string) (Config, error) {
	var err error

	c := Default()

	if path == "" {
		path = "./etc/"
	}

	if _, err = toml.DecodeFile(filepath.Join(path, ConfigFile), &c); err != nil && !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if jsonConfigEnv := os.Getenv(EnvConfigJSON); jsonConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, jsonConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, Validate(c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read config from environment")
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Validate checks the generation parameters. It runs both on file/env
// input and again after command-line flags were merged in, since a flag
// can spoil a previously valid configuration.
func Validate(c Config) error {
	invalidErrMessage := "invalid config"

	if c.SeedFile == "" {
		return errors.Wrap(ErrEmptySeedFile, invalidErrMessage)
	}

	if err := valid.Struct(c); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	return nil
}
