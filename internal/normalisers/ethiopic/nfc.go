package ethiopic

import (
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
	"github.com/custodia-labs/cleanhub/internal/core/ports/driven"
)

// NFCName is the registry name of the composing cleaner.
const NFCName = "ethiopic-nfc"

var _ driven.TextCleaner = (*NFCCleaner)(nil)

// NFCCleaner composes input to NFC, then applies the default rules.
// Use it for corpora mixing precomposed and decomposed Latin text.
type NFCCleaner struct {
	inner *Cleaner
}

// NewNFC creates a composing cleaner for cfg.
func NewNFC(cfg domain.CleaningConfig) *NFCCleaner {
	return &NFCCleaner{inner: New(cfg)}
}

// Name returns the strategy name.
func (c *NFCCleaner) Name() string {
	return NFCName
}

// CleanText composes then cleans text.
func (c *NFCCleaner) CleanText(text string) string {
	return c.inner.CleanText(norm.NFC.String(text))
}

// CleanCorpus composes then cleans each line.
func (c *NFCCleaner) CleanCorpus(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.CleanText(line)
	}
	return out
}
