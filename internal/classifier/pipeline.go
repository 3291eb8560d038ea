package classifier

import (
	"fmt"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Options tune the pipeline. Zero fields take the defaults.
type Options struct {
	NGramMax int
	MinDF    int
	MaxIter  int
	Alpha    float64
	Tol      float64
	Seed     int64
}

// DefaultOptions returns the standard pipeline configuration.
func DefaultOptions() Options {
	return Options{
		NGramMax: 2,
		MinDF:    2,
		MaxIter:  DefaultMaxIter,
		Alpha:    DefaultAlpha,
		Tol:      DefaultTol,
		Seed:     DefaultSeed,
	}
}

// OptionsFromSettings overlays non-zero settings on the defaults.
func OptionsFromSettings(s domain.ModelSettings) Options {
	opts := DefaultOptions()
	if s.NGramMax > 0 {
		opts.NGramMax = s.NGramMax
	}
	if s.MinDF > 0 {
		opts.MinDF = s.MinDF
	}
	if s.MaxIter > 0 {
		opts.MaxIter = s.MaxIter
	}
	if s.Alpha > 0 {
		opts.Alpha = s.Alpha
	}
	if s.Seed != 0 {
		opts.Seed = s.Seed
	}
	return opts
}

// Ensure Pipeline implements the interface.
var _ driven.Classifier = (*Pipeline)(nil)

// Pipeline chains the vectoriser and the linear model.
// A fitted pipeline is read-only and safe for concurrent prediction.
type Pipeline struct {
	opts       Options
	vectorizer *Vectorizer
	classes    []string
	// models has one entry for two classes (positive = classes[1]),
	// otherwise one one-vs-rest model per class.
	models []*binaryModel
}

// New creates an untrained pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// Options returns the pipeline's configuration.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Fit trains the pipeline.
func (p *Pipeline) Fit(texts, labels []string) error {
	if len(texts) != len(labels) {
		return fmt.Errorf("%w: %d texts but %d labels", domain.ErrInvalidInput, len(texts), len(labels))
	}
	ds := domain.Dataset{Samples: make([]domain.Sample, len(texts))}
	for i := range texts {
		ds.Samples[i] = domain.Sample{Text: texts[i], Label: labels[i]}
	}
	classes := ds.Classes()
	if len(classes) < 2 {
		return fmt.Errorf("%w: need at least two classes, got %d", domain.ErrInvalidInput, len(classes))
	}

	vec := NewVectorizer(p.opts.NGramMax, p.opts.MinDF)
	if err := vec.Fit(texts); err != nil {
		return err
	}
	xs := vec.Transform(texts)

	params := sgdParams{alpha: p.opts.Alpha, maxIter: p.opts.MaxIter, tol: p.opts.Tol, seed: p.opts.Seed}
	var models []*binaryModel
	if len(classes) == 2 {
		models = []*binaryModel{fitBinary(xs, targets(labels, classes[1]), vec.Dim(), params)}
	} else {
		models = make([]*binaryModel, len(classes))
		for k, class := range classes {
			params.seed = p.opts.Seed + int64(k)
			models[k] = fitBinary(xs, targets(labels, class), vec.Dim(), params)
		}
	}

	p.vectorizer = vec
	p.classes = classes
	p.models = models
	return nil
}

func targets(labels []string, positive string) []float64 {
	ys := make([]float64, len(labels))
	for i, l := range labels {
		if l == positive {
			ys[i] = 1
		} else {
			ys[i] = -1
		}
	}
	return ys
}

// Classes returns the labels in probability column order.
func (p *Pipeline) Classes() []string {
	return append([]string(nil), p.classes...)
}

// IsFitted returns true once Fit has succeeded or the pipeline was loaded.
func (p *Pipeline) IsFitted() bool {
	return p.vectorizer != nil && len(p.models) > 0
}

// Predict returns the most probable label for each text.
func (p *Pipeline) Predict(texts []string) []string {
	out := make([]string, len(texts))
	for i, probs := range p.PredictProba(texts) {
		out[i] = p.classes[argmax(probs)]
	}
	return out
}

// PredictProba returns class probabilities for each text.
// Binary models give [1-σ(d), σ(d)]; one-vs-rest scores are normalised
// to sum to one.
func (p *Pipeline) PredictProba(texts []string) [][]float64 {
	out := make([][]float64, len(texts))
	for i, x := range p.vectorizer.Transform(texts) {
		if len(p.models) == 1 {
			pos := sigmoid(p.models[0].decision(x))
			out[i] = []float64{1 - pos, pos}
			continue
		}
		probs := make([]float64, len(p.models))
		var sum float64
		for k, m := range p.models {
			probs[k] = sigmoid(m.decision(x))
			sum += probs[k]
		}
		for k := range probs {
			if sum > 0 {
				probs[k] /= sum
			} else {
				probs[k] = 1 / float64(len(probs))
			}
		}
		out[i] = probs
	}
	return out
}

// argmax returns the first index of the largest value.
func argmax(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
