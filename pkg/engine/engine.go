// Package engine ties the index, scorer, autocomplete trie, spelling
// corrector and codec together into a SearchEngine.
//
// Documents are added from plain-text files and queried in-process:
//
//	e := engine.New()
//	if err := e.AddDocument("d1", "notes/ml.txt"); err != nil { ... }
//	results := e.Search("learning", 10)
//
// The saved index holds document identities only. LoadIndex re-parses every
// source, so saved indexes stay valid only while the sources do.
package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/bastiangx/wordseek/pkg/document"
	"github.com/bastiangx/wordseek/pkg/huffman"
	"github.com/bastiangx/wordseek/pkg/index"
	"github.com/bastiangx/wordseek/pkg/spell"
	"github.com/bastiangx/wordseek/pkg/suggest"
	"github.com/bastiangx/wordseek/pkg/tfidf"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Result is one ranked search hit.
type Result struct {
	ID    string  `msgpack:"id"`
	Score float64 `msgpack:"s"`
}

// Stats summarizes the corpus.
type Stats struct {
	Documents  int `msgpack:"docs"`
	Terms      int `msgpack:"terms"`
	Words      int `msgpack:"words"`
	Dictionary int `msgpack:"dict"`
}

// corpus is everything derived from the document list. LoadIndex builds a
// new one and swaps it in whole.
type corpus struct {
	docs    []*document.Document
	ids     map[string]struct{}
	index   *index.InvertedIndex
	scorer  *tfidf.Calculator
	trie    suggest.ICompleter
	speller *spell.Corrector
	words   int
}

func newCorpus(o options) *corpus {
	ix := index.New()
	return &corpus{
		ids:     make(map[string]struct{}),
		index:   ix,
		scorer:  tfidf.New(ix),
		trie:    suggest.NewTrie(o.maxSuggestions),
		speller: spell.NewCorrector(o.maxEditDistance),
	}
}

func (c *corpus) add(doc *document.Document) {
	c.docs = append(c.docs, doc)
	c.ids[doc.ID] = struct{}{}
	c.index.AddDocument(doc)
	c.words += doc.TotalWords

	words := doc.Words()
	sort.Strings(words)
	for _, w := range words {
		c.trie.Insert(w)
		c.speller.AddWord(w)
	}
}

// SearchEngine is safe for concurrent use. Search takes the write lock since
// it updates autocomplete frequencies.
type SearchEngine struct {
	mu     sync.RWMutex
	corpus *corpus
	codec  *huffman.Codec
	opts   options
	logger *log.Logger
}

// New returns an empty engine.
func New(opts ...Option) *SearchEngine {
	o := defaultOptions()
	o.apply(opts)
	return &SearchEngine{
		corpus: newCorpus(o),
		codec:  huffman.NewCodec(),
		opts:   o,
		logger: o.logger,
	}
}

// AddDocument parses the file at path and indexes it under id. On error the
// engine is left exactly as it was. Unreadable sources yield a *ParseError.
func (e *SearchEngine) AddDocument(id, path string) error {
	if id == "" {
		return ErrEmptyID
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.corpus.ids[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	doc, err := document.Parse(id, path)
	if err != nil {
		return &ParseError{ID: id, Path: path, Err: err}
	}
	e.corpus.add(doc)
	e.logger.Debugf("Added document %s: %d words, %d distinct", id, doc.TotalWords, len(doc.Frequencies))
	return nil
}

// Search ranks documents by summed TF-IDF of the query terms and returns at
// most k of them with a positive score. Equal scores keep the order in which
// documents were added. k <= 0 uses the default limit.
func (e *SearchEngine) Search(query string, k int) []Result {
	if k <= 0 {
		k = e.opts.defaultLimit
	}
	terms := document.Tokenize(query)
	if len(terms) == 0 {
		return []Result{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c := e.corpus
	results := make([]Result, 0)
	it := c.index.Candidates(terms).Iterator()
	for it.HasNext() {
		doc := c.docs[it.Next()]
		if score := c.scorer.Score(terms, doc); score > 0 {
			results = append(results, Result{ID: doc.ID, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}

	for _, term := range terms {
		c.trie.IncrementFrequency(term)
	}
	return results
}

// AutocompleteSuggestions returns the most frequent known words starting with
// prefix.
func (e *SearchEngine) AutocompleteSuggestions(prefix string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus.trie.Suggestions(prefix)
}

// AutocompleteWithFrequency is AutocompleteSuggestions with ranking weights
// and an explicit limit.
func (e *SearchEngine) AutocompleteWithFrequency(prefix string, limit int) []suggest.Suggestion {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus.trie.SuggestionsWithFrequency(prefix, limit)
}

// SpellingSuggestions returns known words close to word, closest first.
func (e *SearchEngine) SpellingSuggestions(word string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus.speller.Suggestions(word)
}

// SaveIndex writes the compressed document list to path.
func (e *SearchEngine) SaveIndex(path string) error {
	e.mu.RLock()
	refs := make([]docRef, len(e.corpus.docs))
	for i, doc := range e.corpus.docs {
		refs[i] = docRef{ID: doc.ID, Path: doc.Path}
	}
	e.mu.RUnlock()

	payload := encodeDocuments(refs)
	compressed, stats := e.codec.CompressWithStats(payload)
	if err := e.codec.SaveToFile(path, compressed); err != nil {
		return err
	}
	e.logger.Debugf("Saved %d documents to %s: %d -> %d bytes (ratio %.3f, %d symbols, max code %d bits)",
		len(refs), path, len(payload), len(compressed),
		huffman.CompressionRatio(payload, compressed), stats.Symbols, stats.MaxCodeLength)
	return nil
}

// LoadIndex replaces the engine contents with the documents listed in the
// index at path, re-parsing every source. Failures return a *LoadError and
// leave the current contents untouched.
func (e *SearchEngine) LoadIndex(path string) error {
	start := time.Now()

	data, err := e.codec.LoadFromFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrIndexNotFound, err)
		}
		return &LoadError{Path: path, Err: err}
	}
	if len(data) < 8 {
		return &LoadError{Path: path, Err: fmt.Errorf("%w: %d bytes", ErrIndexTruncated, len(data))}
	}
	payload, err := e.codec.Decompress(data)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	refs, err := decodeDocuments(payload)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	docs, err := e.parseAll(refs)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	next := newCorpus(e.opts)
	for _, doc := range docs {
		if _, ok := next.ids[doc.ID]; ok {
			return &LoadError{Path: path, Err: fmt.Errorf("%w: %q", ErrDuplicateID, doc.ID)}
		}
		next.add(doc)
	}

	e.mu.Lock()
	e.corpus = next
	e.mu.Unlock()

	e.logger.Debugf("Loaded %d documents from %s in %v", len(docs), path, time.Since(start))
	return nil
}

// parseAll parses refs concurrently and returns the documents in ref order.
func (e *SearchEngine) parseAll(refs []docRef) ([]*document.Document, error) {
	docs := make([]*document.Document, len(refs))
	var g errgroup.Group
	g.SetLimit(e.opts.loadWorkers)
	for i, ref := range refs {
		g.Go(func() error {
			doc, err := document.Parse(ref.ID, ref.Path)
			if err != nil {
				return &ParseError{ID: ref.ID, Path: ref.Path, Err: err}
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// DocumentCount returns the number of indexed documents.
func (e *SearchEngine) DocumentCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.corpus.docs)
}

// Documents returns the document ids in the order they were added.
func (e *SearchEngine) Documents() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, len(e.corpus.docs))
	for i, doc := range e.corpus.docs {
		ids[i] = doc.ID
	}
	return ids
}

// Stats reports corpus counts for the current contents.
func (e *SearchEngine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Stats{
		Documents:  len(e.corpus.docs),
		Terms:      e.corpus.index.Terms(),
		Words:      e.corpus.words,
		Dictionary: e.corpus.speller.Len(),
	}
}
