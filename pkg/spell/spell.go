// Package spell suggests dictionary words within a bounded Levenshtein
// distance of a possibly misspelled word.
//
// The dictionary is a patricia trie of every known word. Lookups scan the
// whole dictionary, which is fine for the vocabularies an in-process corpus
// produces but grows linearly with it.
package spell

import (
	"sort"

	"github.com/bastiangx/wordseek/pkg/document"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// DefaultMaxDistance is the edit distance used when none is configured.
const DefaultMaxDistance = 2

// Candidate is a dictionary word and its distance from the input.
type Candidate struct {
	Word     string
	Distance int
}

// Corrector holds the known-word dictionary.
type Corrector struct {
	dict        *patricia.Trie
	words       int
	maxDistance int
}

// NewCorrector returns an empty corrector. A negative maxDistance falls back
// to DefaultMaxDistance.
func NewCorrector(maxDistance int) *Corrector {
	if maxDistance < 0 {
		maxDistance = DefaultMaxDistance
	}
	return &Corrector{
		dict:        patricia.NewTrie(),
		maxDistance: maxDistance,
	}
}

// AddWord adds word to the dictionary. Adding a known word is a no-op.
func (c *Corrector) AddWord(word string) {
	word = document.Normalize(word)
	if word == "" {
		return
	}
	if c.dict.Insert(patricia.Prefix(word), struct{}{}) {
		c.words++
	}
}

// Contains reports whether word is in the dictionary.
func (c *Corrector) Contains(word string) bool {
	word = document.Normalize(word)
	return word != "" && c.dict.Match(patricia.Prefix(word))
}

// Suggestions returns dictionary words within the maximum edit distance of
// word, closest first. Known words get no suggestions.
func (c *Corrector) Suggestions(word string) []string {
	candidates := c.Candidates(word)
	words := make([]string, len(candidates))
	for i, cand := range candidates {
		words[i] = cand.Word
	}
	return words
}

// Candidates is Suggestions with distances attached. Ties are ordered
// alphabetically.
func (c *Corrector) Candidates(word string) []Candidate {
	word = document.Normalize(word)
	if word == "" || c.dict.Match(patricia.Prefix(word)) {
		return []Candidate{}
	}

	candidates := make([]Candidate, 0)
	err := c.dict.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		entry := string(p)
		// length difference is a lower bound of the distance
		if abs(len(entry)-len(word)) > c.maxDistance {
			return nil
		}
		if d := levenshteinDistance(word, entry); d <= c.maxDistance {
			candidates = append(candidates, Candidate{Word: entry, Distance: d})
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting spell dictionary: %v", err)
		return []Candidate{}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Word < candidates[j].Word
	})
	return candidates
}

// Len returns the number of known words.
func (c *Corrector) Len() int {
	return c.words
}

// MaxDistance returns the configured edit distance bound.
func (c *Corrector) MaxDistance() int {
	return c.maxDistance
}

// Clear empties the dictionary.
func (c *Corrector) Clear() {
	c.dict = patricia.NewTrie()
	c.words = 0
}

// levenshteinDistance is the classic dynamic-programming edit distance with
// unit cost insertions, deletions and substitutions, keeping two rows.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
