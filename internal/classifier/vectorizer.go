package classifier

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyVocabulary is returned when document-frequency pruning removes
// every term.
var ErrEmptyVocabulary = errors.New("classifier: no terms remain after pruning; lower min_df or add data")

// SparseVector is a row of the TF-IDF matrix. Indices are ascending.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Dot returns the dot product with a dense weight vector.
func (v SparseVector) Dot(w []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * w[idx]
	}
	return sum
}

// Vectorizer maps texts to L2-normalised TF-IDF vectors.
type Vectorizer struct {
	NGramMax   int
	MinDF      int
	Vocabulary map[string]int
	IDF        []float64
}

// NewVectorizer creates an unfitted vectoriser.
func NewVectorizer(ngramMax, minDF int) *Vectorizer {
	return &Vectorizer{NGramMax: ngramMax, MinDF: minDF}
}

// Fit learns the vocabulary and inverse document frequencies.
// Terms appearing in fewer than MinDF documents are dropped. Vocabulary
// indices follow the sorted term order.
func (v *Vectorizer) Fit(texts []string) error {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, g := range NGrams(Tokenize(text), v.NGramMax) {
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			df[g]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= v.MinDF {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return ErrEmptyVocabulary
	}
	sort.Strings(terms)

	n := float64(len(texts))
	v.Vocabulary = make(map[string]int, len(terms))
	v.IDF = make([]float64, len(terms))
	for i, term := range terms {
		v.Vocabulary[term] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return nil
}

// Dim returns the vocabulary size.
func (v *Vectorizer) Dim() int {
	return len(v.IDF)
}

// Transform maps each text to a TF-IDF row. Unknown terms are ignored;
// a text with no known terms maps to the zero vector.
func (v *Vectorizer) Transform(texts []string) []SparseVector {
	rows := make([]SparseVector, len(texts))
	for i, text := range texts {
		rows[i] = v.transformOne(text)
	}
	return rows
}

func (v *Vectorizer) transformOne(text string) SparseVector {
	counts := make(map[int]float64)
	for _, g := range NGrams(Tokenize(text), v.NGramMax) {
		if idx, ok := v.Vocabulary[g]; ok {
			counts[idx]++
		}
	}

	row := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		row.Indices = append(row.Indices, idx)
	}
	sort.Ints(row.Indices)

	var norm float64
	for _, idx := range row.Indices {
		val := counts[idx] * v.IDF[idx]
		row.Values = append(row.Values, val)
		norm += val * val
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range row.Values {
			row.Values[i] /= norm
		}
	}
	return row
}
