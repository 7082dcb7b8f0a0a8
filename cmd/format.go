package cmd

import (
	"github.com/spf13/cobra"

	"transcript/pipeline"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <file>",
		Short: "Format a single transcript",
		Long: `Format a single transcript file. The result goes to stdout unless
--output names a file.`,
		Example: `  transcript format talk.json
  transcript format talk.vtt -d 30 -f markdown -o talk.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if cfg.DryRun {
				printDryRun(cfg, cmd)
				return nil
			}

			job := pipeline.Job{InputPath: cfg.Inputs[0], OutputPath: cfg.Output}
			result := pipeline.Process(cmd.Context(), job, pipelineOptions(cfg, cmd))
			if !result.Success {
				return result.Error
			}
			return nil
		},
	}
}
