package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/cmdchain"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cmdchain",
	Short: "cmdchain records type-checked GPU command chains",
	Long: `cmdchain builds a compute command chain from a scenario file, records it
into a named target and prints the recorded primitives.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		return setupLogger(level)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
}

// setupLogger installs a text logger on stderr at the given level.
func setupLogger(level string) error {
	if level == "" {
		cmdchain.SetLogger(nil)
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cmdchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}
