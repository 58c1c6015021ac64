package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bastiangx/wordseek/internal/utils"
	"github.com/charmbracelet/log"
)

func (h *InputHandler) handleAdd(path string) {
	if !utils.FileExists(path) {
		h.out.Errorf("File does not exist: %s", path)
		return
	}
	id := filepath.Base(path)
	if err := h.engine.AddDocument(id, path); err != nil {
		h.out.Errorf("Error adding document: %v", err)
		return
	}
	h.out.Printf("Document %s added", id)
}

func (h *InputHandler) handleSearch(query string) {
	start := time.Now()
	results := h.engine.Search(query, h.limit)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), query)

	if len(results) == 0 {
		h.out.Print("No results found.")
		h.suggestSpellings(query)
		return
	}

	h.out.Printf("Found %d results for '%s':", len(results), query)
	for i, r := range results {
		if h.showScores {
			h.out.Printf("%2d. %-40s (score: %.4f)", i+1, r.ID, r.Score)
		} else {
			h.out.Printf("%2d. %s", i+1, r.ID)
		}
	}
}

// suggestSpellings prints corrections for each query word that has any.
func (h *InputHandler) suggestSpellings(query string) {
	for _, word := range strings.Fields(query) {
		if utils.IsRepetitive(word) || !utils.HasSearchableChars(word) {
			continue
		}
		suggestions := h.engine.SpellingSuggestions(word)
		if len(suggestions) == 0 {
			continue
		}
		h.out.Printf("Did you mean '%s'? Suggestions:", word)
		for _, s := range suggestions {
			h.out.Printf("  - %s", s)
		}
	}
}

func (h *InputHandler) handleComplete(prefix string) {
	suggestions := h.engine.AutocompleteWithFrequency(strings.ToLower(prefix), 0)
	if len(suggestions) == 0 {
		h.out.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}

	h.out.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		h.out.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, formatWithCommas(s.Frequency))
	}
}

func (h *InputHandler) handleSpell(word string) {
	suggestions := h.engine.SpellingSuggestions(word)
	if len(suggestions) == 0 {
		h.out.Print("No spelling suggestions found.")
		return
	}
	h.out.Print("Spelling suggestions:")
	for _, s := range suggestions {
		h.out.Printf("  - %s", s)
	}
}

func (h *InputHandler) handleSave(path string) {
	if err := h.engine.SaveIndex(path); err != nil {
		h.out.Errorf("Error saving index: %v", err)
		return
	}
	h.out.Printf("Index saved to %s", utils.GetAbsolutePath(path))
}

func (h *InputHandler) handleLoad(path string) {
	start := time.Now()
	if err := h.engine.LoadIndex(path); err != nil {
		h.out.Errorf("Error loading index: %v", err)
		return
	}
	h.out.Printf("Index loaded: %d documents in %v", h.engine.Stats().Documents, time.Since(start).Round(time.Millisecond))
}

func (h *InputHandler) handleStats() {
	s := h.engine.Stats()
	h.out.Printf("documents: %8s", formatWithCommas(s.Documents))
	h.out.Printf("terms:     %8s", formatWithCommas(s.Terms))
	h.out.Printf("words:     %8s", formatWithCommas(s.Words))
	h.out.Printf("dict:      %8s", formatWithCommas(s.Dictionary))
}

// formatWithCommas formats an integer with comma separators
func formatWithCommas(n int) string {
	str := fmt.Sprintf("%d", n)
	if n < 1000 {
		return str
	}
	var b strings.Builder
	for i, char := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(char)
	}
	return b.String()
}
