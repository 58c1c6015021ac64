package suggest

import "sort"

// DefaultMaxSuggestions caps Suggestions when no other limit is configured.
const DefaultMaxSuggestions = 5

// node is one trie position. Children are indexes into Trie.nodes.
type node struct {
	children  map[byte]int32
	frequency int
	terminal  bool
}

// Trie is a prefix tree stored as an arena of nodes; index 0 is the root.
// Only terminal nodes carry a usable frequency.
type Trie struct {
	nodes          []node
	words          int
	maxSuggestions int
}

// NewTrie creates an empty trie returning at most maxSuggestions words per
// lookup. Values below 1 fall back to DefaultMaxSuggestions.
func NewTrie(maxSuggestions int) *Trie {
	if maxSuggestions < 1 {
		maxSuggestions = DefaultMaxSuggestions
	}
	t := &Trie{maxSuggestions: maxSuggestions}
	t.Clear()
	return t
}

// Insert adds word, creating missing nodes, and bumps its frequency.
// Empty words are ignored.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	current := int32(0)
	for i := 0; i < len(word); i++ {
		c := word[i]
		child, ok := t.nodes[current].children[c]
		if !ok {
			child = t.newNode()
			if t.nodes[current].children == nil {
				t.nodes[current].children = make(map[byte]int32, 1)
			}
			t.nodes[current].children[c] = child
		}
		current = child
	}
	n := &t.nodes[current]
	if !n.terminal {
		n.terminal = true
		t.words++
	}
	n.frequency++
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	idx, ok := t.find(word)
	return ok && t.nodes[idx].terminal
}

// IncrementFrequency raises the ranking weight of an existing word. Unknown
// words and bare prefixes are left alone and no nodes are created.
func (t *Trie) IncrementFrequency(word string) {
	idx, ok := t.find(word)
	if !ok || !t.nodes[idx].terminal {
		return
	}
	t.nodes[idx].frequency++
}

// Frequency returns the ranking weight of word, 0 when absent.
func (t *Trie) Frequency(word string) int {
	idx, ok := t.find(word)
	if !ok || !t.nodes[idx].terminal {
		return 0
	}
	return t.nodes[idx].frequency
}

// Suggestions returns up to the configured maximum of words starting with
// prefix, most frequent first.
func (t *Trie) Suggestions(prefix string) []string {
	ranked := t.SuggestionsWithFrequency(prefix, t.maxSuggestions)
	words := make([]string, len(ranked))
	for i, s := range ranked {
		words[i] = s.Word
	}
	return words
}

// SuggestionsWithFrequency is Suggestions with frequencies attached and an
// explicit limit. A limit below 1 uses the configured maximum.
func (t *Trie) SuggestionsWithFrequency(prefix string, limit int) []Suggestion {
	if limit < 1 || limit > t.maxSuggestions {
		limit = t.maxSuggestions
	}
	start, ok := t.find(prefix)
	if !ok {
		return []Suggestion{}
	}

	collected := t.collect(start, prefix)
	sort.Slice(collected, func(i, j int) bool {
		if collected[i].Frequency != collected[j].Frequency {
			return collected[i].Frequency > collected[j].Frequency
		}
		return collected[i].Word < collected[j].Word
	})

	if len(collected) > limit {
		collected = collected[:limit]
	}
	return collected
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

// Clear drops every word.
func (t *Trie) Clear() {
	t.nodes = make([]node, 1, 64)
	t.words = 0
}

// MaxSuggestions returns the configured result cap.
func (t *Trie) MaxSuggestions() int {
	return t.maxSuggestions
}

func (t *Trie) newNode() int32 {
	t.nodes = append(t.nodes, node{})
	return int32(len(t.nodes) - 1)
}

func (t *Trie) find(word string) (int32, bool) {
	current := int32(0)
	for i := 0; i < len(word); i++ {
		child, ok := t.nodes[current].children[word[i]]
		if !ok {
			return 0, false
		}
		current = child
	}
	return current, true
}

// collect walks the subtree under start with an explicit stack so long words
// cannot exhaust the goroutine stack.
func (t *Trie) collect(start int32, prefix string) []Suggestion {
	type frame struct {
		idx   int32
		depth int
		c     byte
	}

	// path[:depth-1] always holds the parent's word when a frame is popped,
	// since only deeper positions are rewritten between the two.
	path := []byte(prefix)
	var result []Suggestion
	stack := []frame{{idx: start, depth: len(prefix)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > len(prefix) {
			path = append(path[:top.depth-1], top.c)
		}
		n := &t.nodes[top.idx]
		if n.terminal {
			result = append(result, Suggestion{Word: string(path[:top.depth]), Frequency: n.frequency})
		}
		for c, child := range n.children {
			stack = append(stack, frame{idx: child, depth: top.depth + 1, c: c})
		}
	}
	return result
}
