// Package domain defines the core entities for cleanhub.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CleaningConfig: Options controlling the text normaliser
//   - Sample / Dataset: Labelled text assembled from a processed directory
//   - Prediction / Metrics: Classifier outputs
//   - CloudConfig: Object-store synchronisation settings
//   - RunRecord: History entry for a pipeline command
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
