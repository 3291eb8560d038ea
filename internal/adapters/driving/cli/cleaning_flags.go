package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// cleaningFlags are the normaliser toggles shared by preprocess and clean.
type cleaningFlags struct {
	normalizeNumerals bool
	keepCase          bool
	keepPunctuation   bool
	strategy          string
}

func (f *cleaningFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.normalizeNumerals, "normalize-numerals", false, "rewrite Ge'ez numerals as Arabic digits")
	cmd.Flags().BoolVar(&f.keepCase, "keep-case", false, "do not lower-case text")
	cmd.Flags().BoolVar(&f.keepPunctuation, "keep-punctuation", false, "do not strip punctuation")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "cleaner strategy (default \""+domain.DefaultStrategy+"\")")
}

// resolve layers flag defaults, then the config file, then flags the user
// set explicitly.
func (f *cleaningFlags) resolve(cmd *cobra.Command) domain.CleaningConfig {
	cfg := domain.CleaningConfig{
		Lowercase:         !f.keepCase,
		StripPunctuation:  !f.keepPunctuation,
		NormalizeNumerals: f.normalizeNumerals,
		Strategy:          f.strategy,
	}
	cfg = currentSettings().Cleaning.Apply(cfg)

	flags := cmd.Flags()
	if flags.Changed("keep-case") {
		cfg.Lowercase = !f.keepCase
	}
	if flags.Changed("keep-punctuation") {
		cfg.StripPunctuation = !f.keepPunctuation
	}
	if flags.Changed("normalize-numerals") {
		cfg.NormalizeNumerals = f.normalizeNumerals
	}
	if flags.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	return cfg
}
