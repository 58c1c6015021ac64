package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyID is returned when a document is added without an id.
	ErrEmptyID = errors.New("empty document id")
	// ErrDuplicateID is returned when a document id is already in the corpus.
	ErrDuplicateID = errors.New("duplicate document id")
	// ErrIndexNotFound is returned when the index file does not exist.
	ErrIndexNotFound = errors.New("index file not found")
	// ErrIndexTruncated is returned when the index file is too short to hold
	// a length prefix.
	ErrIndexTruncated = errors.New("index file truncated")
	// ErrIndexCorrupt is returned when the decompressed document list is malformed.
	ErrIndexCorrupt = errors.New("index document list corrupt")
)

// ParseError reports a document source that could not be read.
type ParseError struct {
	ID   string
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing document %q from %s: %v", e.ID, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadError reports a failed LoadIndex. Err wraps one of ErrIndexNotFound,
// ErrIndexTruncated, ErrIndexCorrupt, huffman.ErrCorrupt or a *ParseError.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading index %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
