package domain

// CleaningConfig selects the optional stages of the text normaliser.
// Whitespace collapse always runs; the remaining stages are toggled here.
// It is a plain value and never mutated after construction.
type CleaningConfig struct {
	// Lowercase lower-cases cased letters. Ethiopic script has no case.
	Lowercase bool `yaml:"lowercase" toml:"lowercase"`

	// StripPunctuation deletes ASCII and Ethiopic punctuation marks.
	StripPunctuation bool `yaml:"strip_punctuation" toml:"strip_punctuation"`

	// NormalizeNumerals rewrites Ge'ez numerals ፩..፲ as Arabic digits.
	NormalizeNumerals bool `yaml:"normalize_numerals" toml:"normalize_numerals"`

	// Strategy names the cleaner implementation. Empty selects DefaultStrategy.
	Strategy string `yaml:"strategy" toml:"strategy"`
}

// StrategyName returns the configured strategy or DefaultStrategy.
func (c CleaningConfig) StrategyName() string {
	if c.Strategy == "" {
		return DefaultStrategy
	}
	return c.Strategy
}

// DefaultCleaningConfig returns a configuration with every stage enabled.
func DefaultCleaningConfig() CleaningConfig {
	return CleaningConfig{
		Lowercase:         true,
		StripPunctuation:  true,
		NormalizeNumerals: true,
	}
}
