// Package corpus provides the filesystem implementation of driven.CorpusStore.
//
// Raw and processed corpora are plain UTF-8 text files. A processed
// directory holds one subdirectory per class label:
//
//	data/processed/pos/*.txt
//	data/processed/neg/*.txt
//
// Every non-empty line of those files is one labelled sample.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store reads and writes corpus files on the local filesystem.
type Store struct{}

// New creates a filesystem corpus store.
func New() *Store {
	return &Store{}
}

// Glob returns the regular files matching pattern, sorted by path.
// Patterns support "**" for recursive matches.
func (s *Store) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)
	return files, nil
}

// ReadLines returns the file's lines with "\n" and "\r\n" terminators stripped.
// A trailing newline does not produce an empty final line.
func (s *Store) ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", domain.ErrInvalidInput, path)
	}
	return splitLines(string(data)), nil
}

// WriteLines joins lines with "\n" and writes them to path,
// creating parent directories as needed.
func (s *Store) WriteLines(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// LoadDir assembles a dataset from the class subdirectories of root.
// Labels and files are visited in sorted order so datasets are reproducible.
func (s *Store) LoadDir(root string) (*domain.Dataset, error) {
	entries, err := os.ReadDir(root)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	ds := &domain.Dataset{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		label := entry.Name()
		files, err := filepath.Glob(filepath.Join(root, label, "*.txt"))
		if err != nil {
			return nil, err
		}
		sort.Strings(files)

		for _, file := range files {
			lines, err := s.ReadLines(file)
			if err != nil {
				return nil, err
			}
			for _, line := range lines {
				line = strings.TrimSpace(line)
				if line != "" {
					ds.Samples = append(ds.Samples, domain.Sample{Text: line, Label: label})
				}
			}
		}
	}

	if ds.IsEmpty() {
		return nil, fmt.Errorf(
			"%w under %s: place cleaned text under class folders (e.g. processed/pos, processed/neg)",
			domain.ErrNoSamples, root)
	}
	return ds, nil
}

// newlines folds "\r\n" and a lone "\r" into "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines splits on any of "\n", "\r\n" or "\r". A trailing terminator
// does not produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = newlines.Replace(text)
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
