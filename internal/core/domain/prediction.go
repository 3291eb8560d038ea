package domain

// Prediction is the classifier's answer for one input line.
type Prediction struct {
	// Text is the input line as scored.
	Text string `json:"text"`

	// Label is the most probable class.
	Label string `json:"label"`

	// Probability is the probability of Label, in [0,1].
	Probability float64 `json:"probability"`
}

// ClassMetrics holds per-class scores of an evaluation.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Metrics is the result of evaluating a model on a labelled dataset.
type Metrics struct {
	// Accuracy is the fraction of correctly predicted samples, in [0,1].
	Accuracy float64 `json:"accuracy"`

	// Report holds per-class scores keyed by label.
	Report map[string]ClassMetrics `json:"report"`

	// MacroAvg is the unweighted mean over classes.
	MacroAvg ClassMetrics `json:"macro_avg"`

	// WeightedAvg is the support-weighted mean over classes.
	WeightedAvg ClassMetrics `json:"weighted_avg"`
}
