package driving

import (
	"context"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// BatchResult summarises a batch cleaning run.
type BatchResult struct {
	// Files is the number of input files cleaned.
	Files int

	// Lines is the total number of lines written, empty lines included.
	Lines int

	// Outputs lists the written files in input order.
	Outputs []string
}

// WatchEvent reports one file re-cleaned by Watch.
type WatchEvent struct {
	Input  string
	Output string
	Lines  int
	Err    error
}

// PreprocessService cleans raw text files into a processed directory.
type PreprocessService interface {
	// CleanFile cleans one file and returns the number of lines written.
	CleanFile(ctx context.Context, inPath, outPath string, cfg domain.CleaningConfig) (int, error)

	// BatchClean cleans every file matching inputGlob into outDir/<stem>.txt.
	BatchClean(ctx context.Context, inputGlob, outDir string, cfg domain.CleaningConfig) (*BatchResult, error)

	// CleanText cleans an in-memory string.
	CleanText(text string, cfg domain.CleaningConfig) (string, error)

	// Watch re-cleans matching files as they change until ctx is cancelled.
	Watch(ctx context.Context, inputGlob, outDir string, cfg domain.CleaningConfig, notify func(WatchEvent)) error
}
