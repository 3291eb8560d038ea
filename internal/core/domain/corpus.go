package domain

import "sort"

// Sample is one labelled line of cleaned text.
type Sample struct {
	Text  string
	Label string
}

// Dataset is an ordered collection of samples.
type Dataset struct {
	Samples []Sample
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Samples)
}

// IsEmpty returns true if the dataset holds no samples.
func (d *Dataset) IsEmpty() bool {
	return len(d.Samples) == 0
}

// Texts returns the sample texts in dataset order.
func (d *Dataset) Texts() []string {
	out := make([]string, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Text
	}
	return out
}

// Labels returns the sample labels in dataset order.
func (d *Dataset) Labels() []string {
	out := make([]string, len(d.Samples))
	for i, s := range d.Samples {
		out[i] = s.Label
	}
	return out
}

// Classes returns the distinct labels, sorted.
func (d *Dataset) Classes() []string {
	seen := make(map[string]struct{})
	for _, s := range d.Samples {
		seen[s.Label] = struct{}{}
	}
	classes := make([]string, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	return classes
}
