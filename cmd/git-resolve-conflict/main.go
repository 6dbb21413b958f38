package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/3dyuval/git-resolve-conflict/cmd/git-resolve-conflict/commands"
	"github.com/3dyuval/git-resolve-conflict/internal/config"
	"github.com/3dyuval/git-resolve-conflict/internal/errors"
	"github.com/3dyuval/git-resolve-conflict/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:     "git-resolve-conflict",
	Short:   "Resolve a single-file merge conflict with a fixed strategy",
	Version: "v0.1.0",
	Long: `git-resolve-conflict resolves a three-way merge conflict in one file using
a fixed strategy (ours, theirs or union) instead of an interactive mergetool.

It performs a real three-way merge: non-conflicting changes from both sides
are preserved, and only conflicting regions are decided by the strategy.
The resolved file is written to the working tree and staged.`,
}

func init() {
	// Disable automatic error printing to avoid duplicate error messages
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().Bool("plain", false, "Disable colors and symbols")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	// Configure config and logger before running any commands
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(commands.NewResolveCmd())
	rootCmd.AddCommand(commands.NewPickCmd())
	rootCmd.AddCommand(commands.NewConflictsCmd())
}

// initConfig reads the config file and environment, then wires flags into
// the global state and logger.
func initConfig() {
	if err := config.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}

	if err := viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind log-level flag: %v\n", err)
	}
	if err := viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to bind log-format flag: %v\n", err)
	}

	if plain, _ := rootCmd.PersistentFlags().GetBool("plain"); plain {
		config.Global.Plain = true
	}
	if debug, _ := rootCmd.PersistentFlags().GetBool("debug"); debug {
		config.Global.Debug = true
		viper.Set("logging.level", "debug")
	}

	logger.Configure(logger.Config{
		Level:  config.GetString("logging.level"),
		Format: config.GetString("logging.format"),
		Output: os.Stderr,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.IsResolveError(err, errors.ErrCodeNoFile) || errors.IsResolveError(err, errors.ErrCodeStrategyInvalid) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
