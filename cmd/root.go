package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mudler/xlog"
	"github.com/spf13/cobra"

	"transcript/config"
	"transcript/output"
	"transcript/pipeline"
	"transcript/source"
)

// NewRootCmd builds the transcript command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "transcript",
		Short: "Format timestamped transcripts into readable blocks",
		Long: `Transcript merges timestamped speech segments into groups of at least
a minimum duration, each labelled with its HH:MM:SS start time.

Segments are read from JSON, WebVTT or SRT files and written as a JSON
document, Markdown or plain text. Settings come from flags, TRANSCRIPT_*
environment variables (a .env file is loaded when present), a YAML config
file, and built-in defaults, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel("info"), "text"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Formatting cancelled")
			stop()
			os.Exit(130) // Standard exit code for SIGINT
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig resolves the configuration for cmd and applies its logging
// settings.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := config.LoadConfig(cmd.Flags(), args)
	if err != nil {
		return nil, err
	}

	xlog.SetLogger(xlog.NewLogger(xlog.LogLevel(cfg.EffectiveLogLevel()), cfg.Log.Format))
	xlog.Debug("Configuration loaded", "summary", cfg.Summary())

	return cfg, nil
}

// pipelineOptions converts the configuration into pipeline options
func pipelineOptions(cfg *config.Config, cmd *cobra.Command) pipeline.Options {
	return pipeline.Options{
		MinDuration:  cfg.MinDuration,
		InputFormat:  source.Format(cfg.InputFormat),
		OutputFormat: output.Format(cfg.OutputFormat),
		Stdout:       cmd.OutOrStdout(),
	}
}

// printDryRun shows the configuration instead of formatting
func printDryRun(cfg *config.Config, cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "                      DRY RUN MODE")
	cfg.PrintConfig(out)
	fmt.Fprintln(out, "\nConfiguration is valid. No transcripts will be formatted.")
}
