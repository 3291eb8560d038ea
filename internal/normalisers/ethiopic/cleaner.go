package ethiopic

import (
	"strings"
	"unicode"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// Name is the registry name of the default cleaner.
const Name = "ethiopic"

// Stage names, in execution order.
const (
	StageWhitespace  = "whitespace"
	StagePunctuation = "punctuation"
	StageLowercase   = "lowercase"
	StageNumerals    = "numerals"
)

// Stage is one step of the cleaning pipeline.
type Stage struct {
	Name  string
	Apply func(string) string
}

// Stages returns the enabled stages for cfg in execution order.
func Stages(cfg domain.CleaningConfig) []Stage {
	stages := []Stage{{Name: StageWhitespace, Apply: CollapseWhitespace}}
	if cfg.StripPunctuation {
		stages = append(stages, Stage{Name: StagePunctuation, Apply: StripPunctuation})
	}
	if cfg.Lowercase {
		stages = append(stages, Stage{Name: StageLowercase, Apply: strings.ToLower})
	}
	if cfg.NormalizeNumerals {
		stages = append(stages, Stage{Name: StageNumerals, Apply: NormalizeNumerals})
	}
	return stages
}

// NormalizeLine cleans a single string according to cfg.
func NormalizeLine(text string, cfg domain.CleaningConfig) string {
	for _, stage := range Stages(cfg) {
		text = stage.Apply(text)
	}
	return text
}

// NormalizeCorpus cleans each line independently.
// Empty results are kept; dropping them is the caller's decision.
func NormalizeCorpus(lines []string, cfg domain.CleaningConfig) []string {
	stages := Stages(cfg)
	out := make([]string, len(lines))
	for i, line := range lines {
		for _, stage := range stages {
			line = stage.Apply(line)
		}
		out[i] = line
	}
	return out
}

// CollapseWhitespace replaces every run of whitespace with one ASCII space
// and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

// StripPunctuation deletes every punctuation mark. Nothing is inserted
// in its place.
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if IsPunctuation(r) {
			return -1
		}
		return r
	}, s)
}

// NormalizeNumerals rewrites Ge'ez numerals as Arabic digits.
func NormalizeNumerals(s string) string {
	return numeralReplacer.Replace(s)
}

// isSpace also treats the ASCII information separators as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Ensure Cleaner implements the interface.
var _ driven.TextCleaner = (*Cleaner)(nil)

// Cleaner is the default TextCleaner.
type Cleaner struct {
	cfg    domain.CleaningConfig
	stages []Stage
}

// New creates a cleaner for cfg.
func New(cfg domain.CleaningConfig) *Cleaner {
	return &Cleaner{cfg: cfg, stages: Stages(cfg)}
}

// Name returns the strategy name.
func (c *Cleaner) Name() string {
	return Name
}

// Config returns the configuration the cleaner was built with.
func (c *Cleaner) Config() domain.CleaningConfig {
	return c.cfg
}

// CleanText cleans a single string. Newlines inside text collapse to spaces.
func (c *Cleaner) CleanText(text string) string {
	for _, stage := range c.stages {
		text = stage.Apply(text)
	}
	return text
}

// CleanCorpus cleans each line independently.
func (c *Cleaner) CleanCorpus(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.CleanText(line)
	}
	return out
}
