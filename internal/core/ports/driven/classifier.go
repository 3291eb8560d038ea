package driven

// Classifier is a trainable text classification pipeline.
type Classifier interface {
	// Fit trains on texts with their labels.
	Fit(texts, labels []string) error

	// Classes returns the known labels in the model's column order.
	Classes() []string

	// Predict returns the most probable label for each text.
	Predict(texts []string) []string

	// PredictProba returns per-class probabilities for each text,
	// in Classes() order.
	PredictProba(texts []string) [][]float64
}

// ClassifierBackend creates and persists classifiers.
type ClassifierBackend interface {
	// New returns an untrained classifier.
	New() Classifier

	// Save writes a trained classifier to path.
	Save(c Classifier, path string) error

	// Load reads a classifier previously written by Save.
	Load(path string) (Classifier, error)
}
