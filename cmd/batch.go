package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/mudler/xlog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"transcript/config"
	"transcript/models"
	"transcript/orchestrator"
	"transcript/output"
	"transcript/pipeline"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file>...",
		Short: "Format many transcripts in parallel",
		Long: `Format several transcript files concurrently into an output directory.
Each result keeps its input's base name with the extension of the output
format. In strict mode any failed file makes the command fail.`,
		Example: `  transcript batch talks/*.vtt -o formatted
  transcript batch a.json b.srt -o out -w 4 --strict=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, args)
			if err != nil {
				return err
			}
			if cfg.Output == pipeline.StdoutPath {
				return fmt.Errorf("batch needs an output directory (--output)")
			}
			if cfg.DryRun {
				printDryRun(cfg, cmd)
				return nil
			}
			return runBatch(cmd, cfg)
		},
	}
}

// planJobs maps every input to its output file, rejecting inputs that
// would overwrite each other.
func planJobs(cfg *config.Config) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(cfg.Inputs))
	seen := make(map[string]string, len(cfg.Inputs))

	for _, input := range cfg.Inputs {
		out := pipeline.OutputPathFor(input, cfg.Output, output.Format(cfg.OutputFormat))
		if prev, exists := seen[out]; exists {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, input, out)
		}
		seen[out] = input
		jobs = append(jobs, pipeline.Job{InputPath: input, OutputPath: out})
	}

	return jobs, nil
}

// runBatch formats every configured input through the orchestrator
func runBatch(cmd *cobra.Command, cfg *config.Config) error {
	jobs, err := planJobs(cfg)
	if err != nil {
		return err
	}

	opts := pipelineOptions(cfg, cmd)
	orch := orchestrator.NewOrchestrator(cfg.ResolveWorkers(len(jobs)))

	for _, job := range jobs {
		task := &orchestrator.Task{
			ID: job.InputPath,
			Run: func(ctx context.Context) *models.FileResult {
				return pipeline.Process(ctx, job, opts)
			},
		}
		if err := orch.AddTask(task); err != nil {
			return err
		}
	}

	stderr := cmd.ErrOrStderr()
	bar := progressbar.NewOptions(
		len(jobs),
		progressbar.OptionSetWriter(stderr),
		progressbar.OptionSetDescription("formatting transcripts"),
		progressbar.OptionShowBytes(false),
		progressbar.OptionClearOnFinish(),
	)

	progress := models.NewBatchProgress(len(jobs))
	orch.SetProgressCallback(func(completed, total int, task *orchestrator.Task) {
		progress.Record(task.Result)
		_ = bar.Add(1)
		xlog.Debug("Batch progress", "summary", progress.FormatSummary(), "task", task.ID, "status", task.Status.String())
	})

	xlog.Info("Starting batch", "files", len(jobs), "workers", orch.MaxWorkers(), "output", cfg.Output)
	results := orch.Execute(cmd.Context())
	_ = bar.Finish()

	printBatchSummary(stderr, progress, results)

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if progress.Failed > 0 {
		if cfg.StrictMode {
			return fmt.Errorf("%d of %d transcripts failed", progress.Failed, progress.Total)
		}
		xlog.Warn("Some transcripts failed", "failed", progress.Failed, "total", progress.Total)
	}
	return nil
}

func printBatchSummary(w io.Writer, progress *models.BatchProgress, results []*models.FileResult) {
	fmt.Fprintf(w, "Formatted %d/%d transcripts (%d groups, %d failed)\n",
		progress.Completed-progress.Failed, progress.Total, progress.Groups, progress.Failed)
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "  ok    %s -> %s (%d segments, %d groups)\n", r.InputPath, r.OutputPath, r.Segments, r.Groups)
		} else {
			fmt.Fprintf(w, "  FAIL  %s: %v\n", r.InputPath, r.Error)
		}
	}
}
