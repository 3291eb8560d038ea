// Package ethiopic implements the script-aware text cleaner for Ethiopic
// (Ge'ez script) corpora.
//
// Cleaning is a fixed sequence of stages applied to each line:
//
//  1. whitespace: every run of whitespace becomes one ASCII space, ends trimmed
//  2. punctuation: ASCII and Ethiopic punctuation marks are deleted
//  3. lowercase: cased letters are lower-cased (Ethiopic has no case)
//  4. numerals: Ge'ez numerals ፩..፲ become "1".."10"
//
// Stages 2-4 are toggled by domain.CleaningConfig. Whitespace collapse always
// runs first so the later substitutions see canonical spacing.
//
// Unicode normalisation (NFC/NFD) is not performed by the default cleaner;
// input is assumed to be in a consistent normal form. The "ethiopic-nfc"
// strategy composes input to NFC before cleaning.
//
// Every function in this package is pure and safe for concurrent use.
package ethiopic
