package suggest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestTrieInsertContains(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("neural")
	trie.Insert("network")

	testCases := []struct {
		word     string
		expected bool
	}{
		{"neural", true},
		{"network", true},
		{"ne", false}, // prefix only
		{"neurals", false},
		{"", false},
		{"x", false},
	}
	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			if got := trie.Contains(tc.word); got != tc.expected {
				t.Errorf("Contains(%q): expected %v, got %v", tc.word, tc.expected, got)
			}
		})
	}
	if trie.Len() != 2 {
		t.Errorf("expected 2 words, got %d", trie.Len())
	}
}

func TestTrieSuggestionsRankedByFrequency(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("learn")
	trie.Insert("learning")
	trie.Insert("learning")
	trie.Insert("learned")
	trie.Insert("leaf")

	got := trie.Suggestions("lea")
	expected := []string{"learning", "leaf", "learn", "learned"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestTrieSuggestionsIncludePrefixWord(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("deep")
	trie.Insert("deeper")

	got := trie.Suggestions("deep")
	if !reflect.DeepEqual(got, []string{"deep", "deeper"}) {
		t.Errorf("unexpected suggestions %v", got)
	}
}

func TestTrieSuggestionsBounded(t *testing.T) {
	trie := NewTrie(3)
	for i := 0; i < 20; i++ {
		trie.Insert(fmt.Sprintf("word%02d", i))
	}

	for _, prefix := range []string{"", "w", "word", "word1", "word19"} {
		t.Run(prefix, func(t *testing.T) {
			got := trie.Suggestions(prefix)
			if len(got) > 3 {
				t.Errorf("got %d suggestions, max is 3", len(got))
			}
			for _, s := range got {
				if !strings.HasPrefix(s, prefix) {
					t.Errorf("suggestion %q lacks prefix %q", s, prefix)
				}
			}
		})
	}
}

func TestTrieUnknownPrefix(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("alpha")
	if got := trie.Suggestions("beta"); len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
}

func TestTrieIncrementFrequency(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("cat")
	trie.Insert("car")

	trie.IncrementFrequency("car")
	if got := trie.Suggestions("ca"); got[0] != "car" {
		t.Errorf("expected car first after increment, got %v", got)
	}

	// unknown words and bare prefixes are ignored
	trie.IncrementFrequency("ca")
	trie.IncrementFrequency("dog")
	if trie.Contains("ca") || trie.Contains("dog") {
		t.Error("IncrementFrequency must not create words")
	}
	if trie.Frequency("car") != 2 || trie.Frequency("ca") != 0 {
		t.Errorf("unexpected frequencies car=%d ca=%d", trie.Frequency("car"), trie.Frequency("ca"))
	}
}

func TestTrieClear(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("alpha")
	trie.Clear()

	if trie.Contains("alpha") || trie.Len() != 0 {
		t.Error("Clear left words behind")
	}
	if got := trie.Suggestions(""); len(got) != 0 {
		t.Errorf("expected empty suggestions after Clear, got %v", got)
	}
}

func TestTrieLongWord(t *testing.T) {
	trie := NewTrie(5)
	long := strings.Repeat("a", 100000)
	trie.Insert(long)
	got := trie.Suggestions("aaaa")
	if len(got) != 1 || got[0] != long {
		t.Errorf("long word not returned")
	}
}

func TestTrieSuggestionsWithFrequency(t *testing.T) {
	trie := NewTrie(5)
	trie.Insert("go")
	trie.Insert("gopher")
	trie.Insert("gopher")

	got := trie.SuggestionsWithFrequency("go", 1)
	expected := []Suggestion{{Word: "gopher", Frequency: 2}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func BenchmarkTrieSuggestions(b *testing.B) {
	trie := NewTrie(5)
	for i := 0; i < 10000; i++ {
		trie.Insert(fmt.Sprintf("word%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Suggestions("word12")
	}
}
