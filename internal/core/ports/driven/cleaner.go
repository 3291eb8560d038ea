package driven

// TextCleaner normalises raw text lines.
// Implementations must be pure: the output depends only on the input and
// the configuration the cleaner was built with, so a cleaner is safe for
// concurrent use.
type TextCleaner interface {
	// Name returns the strategy name for logging and configuration.
	Name() string

	// CleanText normalises a single string. A multi-line string is treated
	// as one document: newlines collapse into single spaces.
	CleanText(text string) string

	// CleanCorpus normalises each line independently.
	// The result has the same length and order as the input.
	CleanCorpus(lines []string) []string
}
