// Package tfidf scores terms against documents using log-dampened term
// frequency and inverse document frequency over the inverted index.
package tfidf

import (
	"math"

	"github.com/bastiangx/wordseek/pkg/document"
)

// Stats is the view of the corpus the calculator needs.
type Stats interface {
	DocumentFrequency(term string) int
	TotalDocuments() int
}

// Calculator computes TF-IDF weights. It holds no state of its own and always
// reads the current corpus statistics.
type Calculator struct {
	stats Stats
}

// New returns a calculator reading from stats.
func New(stats Stats) *Calculator {
	return &Calculator{stats: stats}
}

// TF returns 1 + ln(count) for a term present in doc and 0 otherwise.
func (c *Calculator) TF(term string, doc *document.Document) float64 {
	count, ok := doc.Frequencies[term]
	if !ok || count <= 0 {
		return 0.0
	}
	return 1.0 + math.Log(float64(count))
}

// IDF returns ln(N/df), or 0 for a term no document contains.
func (c *Calculator) IDF(term string) float64 {
	df := c.stats.DocumentFrequency(term)
	if df == 0 {
		return 0.0
	}
	return math.Log(float64(c.stats.TotalDocuments()) / float64(df))
}

// TFIDF is TF * IDF.
func (c *Calculator) TFIDF(term string, doc *document.Document) float64 {
	tf := c.TF(term, doc)
	if tf == 0 {
		return 0.0
	}
	return tf * c.IDF(term)
}

// Score sums TFIDF over terms. Repeated terms count once per occurrence.
func (c *Calculator) Score(terms []string, doc *document.Document) float64 {
	var score float64
	for _, term := range terms {
		score += c.TFIDF(term, doc)
	}
	return score
}
