package driven

import "github.com/custodia-labs/cleanhub/internal/core/domain"

// CorpusStore reads and writes the text files the pipeline operates on.
type CorpusStore interface {
	// Glob returns the regular files matching pattern, sorted by path.
	Glob(pattern string) ([]string, error)

	// ReadLines returns the lines of a UTF-8 file with terminators stripped.
	ReadLines(path string) ([]string, error)

	// WriteLines joins lines with "\n" and writes them as UTF-8.
	// No newline is appended after the last line.
	WriteLines(path string, lines []string) error

	// LoadDir assembles a labelled dataset from class-named subdirectories.
	// Returns domain.ErrNoSamples if nothing was found.
	LoadDir(root string) (*domain.Dataset, error)
}
