// Package document turns plain-text sources into per-document word counts.
package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrUnreadable is returned when a document source cannot be opened or read.
var ErrUnreadable = errors.New("document source unreadable")

// Document holds the word statistics of one source text.
type Document struct {
	ID          string
	Path        string
	Frequencies map[string]int
	TotalWords  int
}

// New returns an empty document for id and path.
func New(id, path string) *Document {
	return &Document{
		ID:          id,
		Path:        path,
		Frequencies: make(map[string]int),
	}
}

// Parse reads the file at path and counts its normalized words.
func Parse(id, path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	defer file.Close()

	doc := New(id, path)
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			doc.addLine(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
		}
	}

	log.Debugf("Parsed document %s (%s): %d words, %d distinct", id, path, doc.TotalWords, len(doc.Frequencies))
	return doc, nil
}

// FromText builds a document directly from text without touching the filesystem.
func FromText(id, text string) *Document {
	doc := New(id, "")
	for _, line := range strings.Split(text, "\n") {
		doc.addLine(line)
	}
	return doc
}

func (d *Document) addLine(line string) {
	for _, word := range Tokenize(line) {
		d.Frequencies[word]++
		d.TotalWords++
	}
}

// Count returns how often word occurs in the document.
func (d *Document) Count(word string) int {
	return d.Frequencies[word]
}

// Words returns the distinct words of the document.
func (d *Document) Words() []string {
	words := make([]string, 0, len(d.Frequencies))
	for w := range d.Frequencies {
		words = append(words, w)
	}
	return words
}
