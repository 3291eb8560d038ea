package domain

// DefaultStrategy is the cleaner strategy used when none is configured.
const DefaultStrategy = "ethiopic"

// Settings is the full pipeline configuration loaded from --config.
// A zero Settings is valid: cloud sync is off and defaults apply elsewhere.
type Settings struct {
	Cloud    CloudConfig      `yaml:"cloud" toml:"cloud"`
	Cleaning CleaningSettings `yaml:"cleaning" toml:"cleaning"`
	Model    ModelSettings    `yaml:"model" toml:"model"`
	Runs     RunSettings      `yaml:"runs" toml:"runs"`
}

// CleaningSettings overrides stages of the cleaner. Nil fields keep the
// caller's value so that flags and file settings can be layered.
type CleaningSettings struct {
	Lowercase         *bool  `yaml:"lowercase" toml:"lowercase"`
	StripPunctuation  *bool  `yaml:"strip_punctuation" toml:"strip_punctuation"`
	NormalizeNumerals *bool  `yaml:"normalize_numerals" toml:"normalize_numerals"`
	Strategy          string `yaml:"strategy" toml:"strategy"`

	// Workers bounds how many files preprocess cleans at once. Zero uses
	// one worker per CPU.
	Workers int `yaml:"workers" toml:"workers"`
}

// Apply returns base with every non-nil override applied.
func (s CleaningSettings) Apply(base CleaningConfig) CleaningConfig {
	if s.Lowercase != nil {
		base.Lowercase = *s.Lowercase
	}
	if s.StripPunctuation != nil {
		base.StripPunctuation = *s.StripPunctuation
	}
	if s.NormalizeNumerals != nil {
		base.NormalizeNumerals = *s.NormalizeNumerals
	}
	if s.Strategy != "" {
		base.Strategy = s.Strategy
	}
	return base
}

// ModelSettings tunes the classifier. Zero fields use the classifier defaults.
type ModelSettings struct {
	MinDF    int     `yaml:"min_df" toml:"min_df"`
	NGramMax int     `yaml:"ngram_max" toml:"ngram_max"`
	MaxIter  int     `yaml:"max_iter" toml:"max_iter"`
	Alpha    float64 `yaml:"alpha" toml:"alpha"`
	Seed     int64   `yaml:"seed" toml:"seed"`
}

// RunSettings configures the run history store.
type RunSettings struct {
	// DBDir is the directory holding runs.db. Empty uses ~/.cleanhub/data.
	DBDir string `yaml:"db_dir" toml:"db_dir"`
}
