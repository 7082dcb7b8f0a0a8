// Package pipeline runs one transcript file through load, aggregation and
// rendering.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mudler/xlog"

	"transcript/aggregator"
	"transcript/models"
	"transcript/output"
	"transcript/source"
)

// StdoutPath is the output path that sends the rendered transcript to
// Options.Stdout instead of a file.
const StdoutPath = "-"

// Job is one transcript file to format.
type Job struct {
	InputPath  string
	OutputPath string // "-" or empty writes to Options.Stdout
}

// Options controls how jobs are processed.
type Options struct {
	MinDuration  float64
	InputFormat  source.Format
	OutputFormat output.Format
	Stdout       io.Writer // defaults to os.Stdout
}

// DefaultOptions returns options matching the formatter's defaults.
func DefaultOptions() Options {
	return Options{
		MinDuration:  aggregator.DefaultMinDuration,
		InputFormat:  source.FormatAuto,
		OutputFormat: output.FormatJSON,
	}
}

// OutputPathFor derives the output file for input inside dir, swapping the
// extension for the one matching format.
//
// Example:
//
//	OutputPathFor("talks/intro.vtt", "out", output.FormatMarkdown) // "out/intro.md"
func OutputPathFor(inputPath, dir string, format output.Format) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, base+output.Extension(format))
}

// Format loads, aggregates and assembles the transcript document for a
// single input without writing it anywhere.
func Format(ctx context.Context, inputPath string, opts Options) (models.Transcript, []models.Segment, error) {
	if err := ctx.Err(); err != nil {
		return models.Transcript{}, nil, err
	}

	segments, err := source.Load(inputPath, opts.InputFormat)
	if err != nil {
		return models.Transcript{}, nil, err
	}
	xlog.Debug("Loaded transcript", "input", inputPath, "segments", len(segments))

	if err := ctx.Err(); err != nil {
		return models.Transcript{}, nil, err
	}

	groups := aggregator.AggregateSegments(segments, opts.MinDuration)
	xlog.Debug("Aggregated segments", "input", inputPath, "groups", len(groups), "min_duration", opts.MinDuration)

	return output.NewTranscript(segments, groups), segments, nil
}

// Process formats a single job and writes the result.
//
// Failures never escape as errors; they are reported through a failed
// FileResult so batch callers can keep going.
func Process(ctx context.Context, job Job, opts Options) *models.FileResult {
	result, err := process(ctx, job, opts)
	if err != nil {
		xlog.Error("Failed to format transcript", "input", job.InputPath, "error", err)
		failed, _ := models.NewFileResultFailure(job.InputPath, err)
		return failed
	}
	return result
}

func process(ctx context.Context, job Job, opts Options) (*models.FileResult, error) {
	transcript, segments, err := Format(ctx, job.InputPath, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := output.Render(&buf, transcript, opts.OutputFormat); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputPath := job.OutputPath
	if outputPath == "" || outputPath == StdoutPath {
		outputPath = StdoutPath
		stdout := opts.Stdout
		if stdout == nil {
			stdout = os.Stdout
		}
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return nil, fmt.Errorf("failed to write transcript: %w", err)
		}
	} else {
		if err := writeFile(outputPath, buf.Bytes()); err != nil {
			return nil, err
		}
	}

	xlog.Info("Formatted transcript",
		"input", job.InputPath,
		"output", outputPath,
		"segments", len(segments),
		"groups", len(transcript.Groups),
		"duration", transcript.TotalDuration)

	return models.NewFileResultSuccess(job.InputPath, outputPath, len(segments), len(transcript.Groups))
}

// writeFile writes data to path, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
