// Package index maintains the term to posting-list mapping of the corpus.
package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bastiangx/wordseek/pkg/document"
)

// Posting records how often a term occurs in one document.
type Posting struct {
	DocID     string
	Frequency int
}

// PostingList is ordered by document add order.
type PostingList []Posting

// InvertedIndex maps terms to the documents containing them.
// It is not safe for concurrent mutation; the engine serializes writers.
type InvertedIndex struct {
	postings map[string]PostingList
	// ordinals holds the add-order positions of the documents containing a term
	ordinals  map[string]*roaring.Bitmap
	totalDocs int
}

// New returns an empty index.
func New() *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[string]PostingList),
		ordinals: make(map[string]*roaring.Bitmap),
	}
}

// AddDocument appends one posting per distinct term of doc and returns the
// ordinal the document was assigned.
func (ix *InvertedIndex) AddDocument(doc *document.Document) uint32 {
	ordinal := uint32(ix.totalDocs)

	terms := doc.Words()
	sort.Strings(terms)
	for _, term := range terms {
		ix.postings[term] = append(ix.postings[term], Posting{
			DocID:     doc.ID,
			Frequency: doc.Frequencies[term],
		})
		bitmap, ok := ix.ordinals[term]
		if !ok {
			bitmap = roaring.New()
			ix.ordinals[term] = bitmap
		}
		bitmap.Add(ordinal)
	}

	ix.totalDocs++
	return ordinal
}

// Postings returns the posting list for term, empty when the term is unknown.
func (ix *InvertedIndex) Postings(term string) PostingList {
	if list, ok := ix.postings[term]; ok {
		return list
	}
	return PostingList{}
}

// DocumentFrequency is the number of documents containing term.
func (ix *InvertedIndex) DocumentFrequency(term string) int {
	return len(ix.postings[term])
}

// TotalDocuments is the number of documents added since the last reset.
func (ix *InvertedIndex) TotalDocuments() int {
	return ix.totalDocs
}

// Terms returns the vocabulary size.
func (ix *InvertedIndex) Terms() int {
	return len(ix.postings)
}

// Candidates returns the ordinals of all documents containing at least one of
// terms. Unknown terms contribute nothing.
func (ix *InvertedIndex) Candidates(terms []string) *roaring.Bitmap {
	result := roaring.New()
	for _, term := range terms {
		if bitmap, ok := ix.ordinals[term]; ok {
			result.Or(bitmap)
		}
	}
	return result
}

// Reset empties the index.
func (ix *InvertedIndex) Reset() {
	ix.postings = make(map[string]PostingList)
	ix.ordinals = make(map[string]*roaring.Bitmap)
	ix.totalDocs = 0
}
