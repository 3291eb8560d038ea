// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextCleaner: Script-aware text normalisation
//   - CorpusStore: Reading, writing and walking text files
//   - ClassifierBackend: Training, persisting and loading classifiers
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ObjectStore: Cloud artifact storage. Without it, sync is a no-op.
//   - RunStore: Run history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
