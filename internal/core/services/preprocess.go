package services

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driving"
	"github.com/custodia-labs/cleanhub/internal/logger"
)

// Ensure PreprocessService implements the interface.
var _ driving.PreprocessService = (*PreprocessService)(nil)

// PreprocessService cleans raw corpus files.
type PreprocessService struct {
	corpus   driven.CorpusStore
	cleaners driven.CleanerRegistry
	workers  int
}

// NewPreprocessService creates a preprocess service.
func NewPreprocessService(corpus driven.CorpusStore, cleaners driven.CleanerRegistry) *PreprocessService {
	return &PreprocessService{
		corpus:   corpus,
		cleaners: cleaners,
		workers:  runtime.NumCPU(),
	}
}

// SetWorkers bounds the number of files cleaned concurrently by BatchClean.
func (s *PreprocessService) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	s.workers = n
}

// CleanText cleans an in-memory string as a single document.
func (s *PreprocessService) CleanText(text string, cfg domain.CleaningConfig) (string, error) {
	cleaner, err := s.cleaners.Build(cfg.StrategyName(), cfg)
	if err != nil {
		return "", err
	}
	return cleaner.CleanText(text), nil
}

// CleanFile cleans inPath line by line into outPath.
// Empty lines are kept so line numbers stay aligned with the input.
func (s *PreprocessService) CleanFile(ctx context.Context, inPath, outPath string, cfg domain.CleaningConfig) (int, error) {
	cleaner, err := s.cleaners.Build(cfg.StrategyName(), cfg)
	if err != nil {
		return 0, err
	}
	return s.cleanFile(ctx, cleaner, inPath, outPath)
}

func (s *PreprocessService) cleanFile(ctx context.Context, cleaner driven.TextCleaner, inPath, outPath string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	lines, err := s.corpus.ReadLines(inPath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", inPath, err)
	}

	cleaned := cleaner.CleanCorpus(lines)
	if err := s.corpus.WriteLines(outPath, cleaned); err != nil {
		return 0, fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Debug("cleaned %s -> %s (%d lines, strategy %s)", inPath, outPath, len(cleaned), cleaner.Name())
	return len(cleaned), nil
}

// BatchClean cleans every file matching inputGlob into outDir/<stem>.txt.
// Files are processed concurrently; the result lists outputs in sorted input order.
func (s *PreprocessService) BatchClean(
	ctx context.Context,
	inputGlob, outDir string,
	cfg domain.CleaningConfig,
) (*driving.BatchResult, error) {
	cleaner, err := s.cleaners.Build(cfg.StrategyName(), cfg)
	if err != nil {
		return nil, err
	}

	inputs, err := s.corpus.Glob(inputGlob)
	if err != nil {
		return nil, err
	}

	outputs, err := outputPaths(inputs, outDir)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range inputs {
		g.Go(func() error {
			n, err := s.cleanFile(gctx, cleaner, inputs[i], outputs[i])
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &driving.BatchResult{
		Files:   len(inputs),
		Outputs: outputs,
	}
	for _, n := range counts {
		result.Lines += n
	}
	return result, nil
}

// outputPaths maps each input to outDir/<stem>.txt.
// Two inputs with the same stem would overwrite each other and are rejected.
func outputPaths(inputs []string, outDir string) ([]string, error) {
	outputs := make([]string, len(inputs))
	seen := make(map[string]string, len(inputs))
	for i, in := range inputs {
		stem := fileStem(in)
		if prev, ok := seen[stem]; ok {
			return nil, fmt.Errorf("%w: %s and %s both map to %s.txt", domain.ErrInvalidInput, prev, in, stem)
		}
		seen[stem] = in
		outputs[i] = filepath.Join(outDir, stem+".txt")
	}
	return outputs, nil
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Watch re-cleans files matching inputGlob whenever they are created or
// written, until ctx is cancelled. notify is called after every attempt.
func (s *PreprocessService) Watch(
	ctx context.Context,
	inputGlob, outDir string,
	cfg domain.CleaningConfig,
	notify func(driving.WatchEvent),
) error {
	cleaner, err := s.cleaners.Build(cfg.StrategyName(), cfg)
	if err != nil {
		return err
	}
	if !doublestar.ValidatePathPattern(inputGlob) {
		return fmt.Errorf("%w: glob pattern %q", domain.ErrInvalidInput, inputGlob)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(inputGlob)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching %s", dir)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if match, _ := doublestar.PathMatch(inputGlob, event.Name); !match {
				continue
			}
			info, err := os.Stat(event.Name)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}

			out := filepath.Join(outDir, fileStem(event.Name)+".txt")
			n, err := s.cleanFile(ctx, cleaner, event.Name, out)
			if notify != nil {
				notify(driving.WatchEvent{Input: event.Name, Output: out, Lines: n, Err: err})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// watchDirs returns the directories to watch for a glob: its static base
// and, for recursive patterns, every directory below it.
func watchDirs(inputGlob string) ([]string, error) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(inputGlob))
	base = filepath.FromSlash(base)

	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", domain.ErrInvalidInput, base)
	}
	if !strings.Contains(inputGlob, "**") {
		return []string{base}, nil
	}

	var dirs []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}
