package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/spinweighted/internal/platform"
)

var (
	verbose bool
	format  string
	output  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spinw",
	Short: "Inspect and combine spin-weighted field files",
	Long: `spinw reads spin-weighted fields stored as JSON or YAML and applies the
spin algebra to them: sums need equal spins, products add spins and
quotients subtract them.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// workspace builds the platform workspace from the global flags.
func workspace() *platform.Workspace {
	return platform.New(
		platform.WithLogger(slog.Default()),
		platform.WithFormat(format),
	)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Output format when writing to stdout (json, yaml)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Write the result to this file; the extension selects the format")
}
