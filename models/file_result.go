package models

import (
	"fmt"
	"strings"
)

// FileResult represents the outcome of formatting a single transcript file.
//
// It enforces logical consistency: successful results must have an output
// path and no error, while failed results must have an error. A failed
// result never carries an output path.
//
// Use NewFileResultSuccess or NewFileResultFailure to create validated instances.
type FileResult struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
	Groups     int    `json:"groups"`
	Segments   int    `json:"segments"`
	Success    bool   `json:"success"`
	Error      error  `json:"-"`
}

// NewFileResultSuccess creates a successful FileResult with validation.
//
// Returns an error if outputPath is empty or whitespace-only.
func NewFileResultSuccess(inputPath, outputPath string, segments, groups int) (*FileResult, error) {
	fr := &FileResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Segments:   segments,
		Groups:     groups,
		Success:    true,
	}
	if err := fr.Validate(); err != nil {
		return nil, fmt.Errorf("invalid file result: %w", err)
	}
	return fr, nil
}

// NewFileResultFailure creates a failed FileResult.
//
// The error parameter must not be nil.
func NewFileResultFailure(inputPath string, fileErr error) (*FileResult, error) {
	if fileErr == nil {
		return nil, fmt.Errorf("invalid file result: error cannot be nil for failed result")
	}
	return &FileResult{
		InputPath: inputPath,
		Success:   false,
		Error:     fileErr,
	}, nil
}

// Validate checks if the FileResult has consistent state.
//
// Returns an error if:
//   - Success is true but Error is not nil
//   - Success is false but Error is nil
//   - Success is true but OutputPath is empty
//   - Success is false but OutputPath is set
func (fr *FileResult) Validate() error {
	if fr.Success && fr.Error != nil {
		return fmt.Errorf("inconsistent state: Success is true but Error is not nil")
	}

	if !fr.Success && fr.Error == nil {
		return fmt.Errorf("failed result must have an error")
	}

	if fr.Success && strings.TrimSpace(fr.OutputPath) == "" {
		return fmt.Errorf("output_path cannot be empty for successful result")
	}

	if !fr.Success && strings.TrimSpace(fr.OutputPath) != "" {
		return fmt.Errorf("failed result should not have output_path")
	}

	return nil
}
