// Package suggest provides prefix autocomplete over an arena-backed trie,
// ranked by how often each word was indexed or searched for.
package suggest

// Suggestion is a completion candidate and its ranking weight.
type Suggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// ICompleter is the autocomplete surface the engine depends on.
type ICompleter interface {
	// Insert adds a word or bumps it when already present
	Insert(word string)

	// IncrementFrequency biases ranking toward an existing word
	IncrementFrequency(word string)

	// Suggestions returns ranked completions for prefix
	Suggestions(prefix string) []string

	// SuggestionsWithFrequency returns ranked completions with their weights
	SuggestionsWithFrequency(prefix string, limit int) []Suggestion

	// Clear drops all words
	Clear()

	Len() int
}

var _ ICompleter = (*Trie)(nil)
