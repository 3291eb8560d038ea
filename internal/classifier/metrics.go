package classifier

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// Score computes accuracy and a per-class report for predictions against
// the true labels. Classes are the union of both label sets.
func Score(yTrue, yPred []string) (*domain.Metrics, error) {
	if len(yTrue) != len(yPred) {
		return nil, fmt.Errorf("%w: %d labels but %d predictions", domain.ErrInvalidInput, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return nil, fmt.Errorf("%w: nothing to score", domain.ErrInvalidInput)
	}

	tp := make(map[string]int)
	predicted := make(map[string]int)
	support := make(map[string]int)
	correct := 0
	for i := range yTrue {
		support[yTrue[i]]++
		predicted[yPred[i]]++
		if yTrue[i] == yPred[i] {
			tp[yTrue[i]]++
			correct++
		}
	}

	labels := make(map[string]struct{})
	for l := range support {
		labels[l] = struct{}{}
	}
	for l := range predicted {
		labels[l] = struct{}{}
	}
	classes := make([]string, 0, len(labels))
	for l := range labels {
		classes = append(classes, l)
	}
	sort.Strings(classes)

	m := &domain.Metrics{
		Accuracy: float64(correct) / float64(len(yTrue)),
		Report:   make(map[string]domain.ClassMetrics, len(classes)),
	}

	total := float64(len(yTrue))
	for _, c := range classes {
		cm := domain.ClassMetrics{
			Precision: safeDiv(float64(tp[c]), float64(predicted[c])),
			Recall:    safeDiv(float64(tp[c]), float64(support[c])),
			Support:   support[c],
		}
		cm.F1 = safeDiv(2*cm.Precision*cm.Recall, cm.Precision+cm.Recall)
		m.Report[c] = cm

		k := float64(len(classes))
		m.MacroAvg.Precision += cm.Precision / k
		m.MacroAvg.Recall += cm.Recall / k
		m.MacroAvg.F1 += cm.F1 / k

		w := float64(cm.Support) / total
		m.WeightedAvg.Precision += cm.Precision * w
		m.WeightedAvg.Recall += cm.Recall * w
		m.WeightedAvg.F1 += cm.F1 * w
	}
	m.MacroAvg.Support = len(yTrue)
	m.WeightedAvg.Support = len(yTrue)
	return m, nil
}

// safeDiv returns 0 when the denominator is zero.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
