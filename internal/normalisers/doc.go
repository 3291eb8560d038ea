// Package normalisers provides the registry of TextCleaner strategies.
// Each strategy is built from a domain.CleaningConfig and must honour the
// same contract: pure, order-preserving, one output line per input line.
//
// Strategies are registered with the Registry at startup.
package normalisers
