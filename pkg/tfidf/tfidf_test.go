package tfidf

import (
	"math"
	"testing"

	"github.com/bastiangx/wordseek/pkg/document"
	"github.com/bastiangx/wordseek/pkg/index"
)

const epsilon = 1e-9

type fixedStats struct {
	df    map[string]int
	total int
}

func (s fixedStats) DocumentFrequency(term string) int {
	return s.df[term]
}

func (s fixedStats) TotalDocuments() int {
	return s.total
}

func TestTF(t *testing.T) {
	calc := New(fixedStats{})
	doc := document.FromText("d", "a b b c c c c")

	testCases := []struct {
		term     string
		expected float64
	}{
		{"a", 1.0},
		{"b", 1.0 + math.Log(2)},
		{"c", 1.0 + math.Log(4)},
		{"z", 0.0},
	}
	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			if got := calc.TF(tc.term, doc); math.Abs(got-tc.expected) > epsilon {
				t.Errorf("TF(%q): expected %v, got %v", tc.term, tc.expected, got)
			}
		})
	}
}

func TestIDF(t *testing.T) {
	calc := New(fixedStats{
		df:    map[string]int{"rare": 1, "common": 4, "half": 2},
		total: 4,
	})

	testCases := []struct {
		term     string
		expected float64
	}{
		{"rare", math.Log(4)},
		{"half", math.Log(2)},
		{"common", 0.0},
		{"absent", 0.0},
	}
	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			got := calc.IDF(tc.term)
			if math.Abs(got-tc.expected) > epsilon {
				t.Errorf("IDF(%q): expected %v, got %v", tc.term, tc.expected, got)
			}
			if got < 0 {
				t.Errorf("IDF(%q) is negative: %v", tc.term, got)
			}
		})
	}
}

func TestTFIDFAbsentTermIsZero(t *testing.T) {
	ix := index.New()
	d1 := document.FromText("d1", "machine learning is fun")
	d2 := document.FromText("d2", "deep learning networks")
	ix.AddDocument(d1)
	ix.AddDocument(d2)
	calc := New(ix)

	for _, term := range []string{"deep", "networks", "unknown"} {
		if got := calc.TFIDF(term, d1); got != 0.0 {
			t.Errorf("TFIDF(%q, d1): expected 0, got %v", term, got)
		}
	}
	if got := calc.TFIDF("machine", d1); math.Abs(got-math.Log(2)) > epsilon {
		t.Errorf("TFIDF(machine, d1): expected ln 2, got %v", got)
	}
}

func TestScoreSumsTerms(t *testing.T) {
	ix := index.New()
	d1 := document.FromText("d1", "alpha beta")
	d2 := document.FromText("d2", "gamma")
	d3 := document.FromText("d3", "gamma delta")
	ix.AddDocument(d1)
	ix.AddDocument(d2)
	ix.AddDocument(d3)
	calc := New(ix)

	expected := calc.TFIDF("alpha", d1) + calc.TFIDF("beta", d1)
	if got := calc.Score([]string{"alpha", "beta", "gamma"}, d1); math.Abs(got-expected) > epsilon {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got := calc.Score(nil, d1); got != 0 {
		t.Errorf("empty query should score 0, got %v", got)
	}
}
