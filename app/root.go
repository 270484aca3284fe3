// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/juhorosq/pwgen/internal/config"
	"github.com/juhorosq/pwgen/internal/generator"
	"github.com/juhorosq/pwgen/internal/logger"
)

// Version is the program version reported by --version.
const Version = "0.6.0"

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Directory holding pwgen.toml (default ./etc/)",
	)

	rootCmd.Flags().StringArrayVarP(
		&symbolSets,
		"symbols", "S",
		nil,
		"Append a predefined set of symbols to the randomization pool; can be "+
			"used multiple times. With 'help' as the argument, display all "+
			"predefined symbol sets and exit",
	)

	rootCmd.Flags().IntVarP(&count, "count", "c", config.DefaultCount, "Generate this many strings")
	rootCmd.Flags().IntVarP(&length, "length", "l", config.DefaultLength, "Each string will have this many characters")
	rootCmd.Flags().StringVarP(&seedFile, "random-seed", "r", config.DefaultSeedFile, "Read the random seed from this file")
}

var (
	cfg config.Config
	err error

	configPath string
	symbolSets []string
	count      int
	length     int
	seedFile   string

	rootCmd = &cobra.Command{
		Use:   "pwgen [flags] [literal ...]",
		Short: "pwgen generates random strings from a customizable pool of characters",
		Long: `pwgen generates random strings from a customizable pool of characters.

All characters from non-flag arguments are combined into a pool of symbols
from which the random strings are formed. Each symbol has an equal
probability of being picked, counting multiplicity. Predefined symbol sets
can be included with the -S flag. If no symbols are specified at all, the
program runs as if "-S asciipns" was given.

The strings are statistically unbiased draws from the pool, but they are
not cryptographically secure.`,
		Args:          cobra.ArbitraryArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err
			}

			return logger.Init(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range symbolSets {
				if name == "help" {
					generator.ListSets(cmd.OutOrStdout())
					return nil
				}
			}

			// flags only override the file configuration when given
			if cmd.Flags().Changed("count") {
				cfg.Count = count
			}

			if cmd.Flags().Changed("length") {
				cfg.Length = length
			}

			if cmd.Flags().Changed("random-seed") {
				cfg.SeedFile = seedFile
			}

			cfg.Sets = append(cfg.Sets, symbolSets...)
			cfg.Literals = args

			if err := config.Validate(cfg); err != nil {
				return err
			}

			g, err := generator.New(&cfg)
			if err != nil {
				return err
			}

			return g.Run(cmd.OutOrStdout())
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
