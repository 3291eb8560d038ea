package classifier

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// formatVersion is bumped whenever the snapshot layout changes.
const formatVersion = 1

// snapshot is the gob-encoded form of a fitted pipeline.
type snapshot struct {
	Version    int
	Options    Options
	NGramMax   int
	MinDF      int
	Vocabulary map[string]int
	IDF        []float64
	Classes    []string
	Weights    [][]float64
	Intercepts []float64
}

// Ensure Backend implements the interface.
var _ driven.ClassifierBackend = (*Backend)(nil)

// Backend creates pipelines and persists them as gob files.
type Backend struct {
	opts Options
}

// NewBackend creates a backend whose new pipelines use opts.
func NewBackend(opts Options) *Backend {
	return &Backend{opts: opts}
}

// New returns an untrained pipeline.
func (b *Backend) New() driven.Classifier {
	return New(b.opts)
}

// Save writes a fitted pipeline to path, creating parent directories.
func (b *Backend) Save(c driven.Classifier, path string) error {
	p, ok := c.(*Pipeline)
	if !ok {
		return fmt.Errorf("%w: cannot persist %T", domain.ErrUnsupportedType, c)
	}
	if !p.IsFitted() {
		return fmt.Errorf("%w: pipeline is not fitted", domain.ErrInvalidInput)
	}

	snap := snapshot{
		Version:    formatVersion,
		Options:    p.opts,
		NGramMax:   p.vectorizer.NGramMax,
		MinDF:      p.vectorizer.MinDF,
		Vocabulary: p.vectorizer.Vocabulary,
		IDF:        p.vectorizer.IDF,
		Classes:    p.classes,
		Weights:    make([][]float64, len(p.models)),
		Intercepts: make([]float64, len(p.models)),
	}
	for i, m := range p.models {
		snap.Weights[i] = m.Weights
		snap.Intercepts[i] = m.Intercept
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(&snap); err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	return f.Close()
}

// Load reads a pipeline written by Save.
// Decoding failures wrap domain.ErrModelFormat.
func (b *Backend) Load(path string) (driven.Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	var snap snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrModelFormat, path, err)
	}
	if err := snap.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrModelFormat, path, err)
	}

	p := &Pipeline{
		opts: snap.Options,
		vectorizer: &Vectorizer{
			NGramMax:   snap.NGramMax,
			MinDF:      snap.MinDF,
			Vocabulary: snap.Vocabulary,
			IDF:        snap.IDF,
		},
		classes: snap.Classes,
		models:  make([]*binaryModel, len(snap.Weights)),
	}
	for i := range snap.Weights {
		p.models[i] = &binaryModel{Weights: snap.Weights[i], Intercept: snap.Intercepts[i]}
	}
	return p, nil
}

func (s *snapshot) validate() error {
	if s.Version != formatVersion {
		return fmt.Errorf("unsupported format version %d", s.Version)
	}
	if len(s.Classes) < 2 {
		return errors.New("fewer than two classes")
	}
	wantModels := len(s.Classes)
	if wantModels == 2 {
		wantModels = 1
	}
	if len(s.Weights) != wantModels || len(s.Intercepts) != wantModels {
		return fmt.Errorf("expected %d weight vectors, got %d", wantModels, len(s.Weights))
	}
	if len(s.Vocabulary) != len(s.IDF) {
		return fmt.Errorf("vocabulary has %d terms but %d idf weights", len(s.Vocabulary), len(s.IDF))
	}
	for term, idx := range s.Vocabulary {
		if idx < 0 || idx >= len(s.IDF) {
			return fmt.Errorf("term %q has out-of-range index %d", term, idx)
		}
	}
	for _, w := range s.Weights {
		if len(w) != len(s.IDF) {
			return errors.New("weight dimension does not match vocabulary")
		}
	}
	return nil
}
