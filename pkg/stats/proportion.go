package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptyInput is returned when proportions are requested for zero samples.
	ErrEmptyInput = errors.New("stats: no samples to compute proportions from")
	// ErrUnknownLabel is returned in strict mode for a label outside the alphabet.
	ErrUnknownLabel = errors.New("stats: label outside the allowed alphabet")
)

// SumTolerance bounds how far ProportionTable.Sum may drift from 1.
const SumTolerance = 1e-9

// Entry is one row of a ProportionTable.
type Entry struct {
	Label    string
	Count    int
	Fraction float64
}

// ProportionTable maps each observed label to its relative frequency.
// It is immutable once built by Proportions.
type ProportionTable struct {
	order  []string
	counts map[string]int
	total  int
}

// ProportionOption configures Proportions.
type ProportionOption func(*proportionConfig)

type proportionConfig struct {
	alphabet map[string]struct{}
}

// WithAlphabet restricts the accepted labels. Any other label fails with ErrUnknownLabel.
func WithAlphabet(labels ...string) ProportionOption {
	return func(c *proportionConfig) {
		c.alphabet = make(map[string]struct{}, len(labels))
		for _, l := range labels {
			c.alphabet[l] = struct{}{}
		}
	}
}

// Proportions counts each distinct label and divides by the number of samples.
// Labels with no occurrences are not part of the table.
func Proportions(labels []string, opts ...ProportionOption) (*ProportionTable, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyInput
	}
	cfg := proportionConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	counts := make(map[string]int)
	for i, l := range labels {
		if cfg.alphabet != nil {
			if _, ok := cfg.alphabet[l]; !ok {
				return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownLabel, l, i)
			}
		}
		counts[l]++
	}

	order := make([]string, 0, len(counts))
	for l := range counts {
		order = append(order, l)
	}
	// Most frequent first, ties alphabetical.
	sort.Slice(order, func(i, j int) bool {
		ci, cj := counts[order[i]], counts[order[j]]
		if ci != cj {
			return ci > cj
		}
		return order[i] < order[j]
	})

	return &ProportionTable{order: order, counts: counts, total: len(labels)}, nil
}

// Get returns the fraction for label and whether the label was observed.
func (t *ProportionTable) Get(label string) (float64, bool) {
	c, ok := t.counts[label]
	if !ok {
		return 0, false
	}
	return float64(c) / float64(t.total), true
}

// Percent returns the fraction for label scaled to 0..100, unrounded.
func (t *ProportionTable) Percent(label string) float64 {
	f, _ := t.Get(label)
	return f * 100
}

// Count returns how many samples carried label.
func (t *ProportionTable) Count(label string) int { return t.counts[label] }

// Total returns the number of samples the table was built from.
func (t *ProportionTable) Total() int { return t.total }

// Len returns the number of distinct labels.
func (t *ProportionTable) Len() int { return len(t.order) }

// Labels returns the labels by descending count, ties broken alphabetically.
func (t *ProportionTable) Labels() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns the table rows in Labels order.
func (t *ProportionTable) Entries() []Entry {
	out := make([]Entry, len(t.order))
	for i, l := range t.order {
		f, _ := t.Get(l)
		out[i] = Entry{Label: l, Count: t.counts[l], Fraction: f}
	}
	return out
}

// Map returns a copy of the label to fraction mapping.
func (t *ProportionTable) Map() map[string]float64 {
	out := make(map[string]float64, len(t.order))
	for _, l := range t.order {
		out[l], _ = t.Get(l)
	}
	return out
}

// Sum adds up all fractions. It is within SumTolerance of 1 for any table.
func (t *ProportionTable) Sum() float64 {
	fractions := make([]float64, 0, len(t.order))
	for _, e := range t.Entries() {
		fractions = append(fractions, e.Fraction)
	}
	return Sum(fractions)
}

// Balanced reports whether Sum is within SumTolerance of 1.
func (t *ProportionTable) Balanced() bool {
	return math.Abs(t.Sum()-1) <= SumTolerance
}
