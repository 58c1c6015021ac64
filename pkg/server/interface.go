/*
Package server implements msgpack IPC for the search engine.

Clients write msgpack-encoded requests to the process stdin and read one
msgpack response per request from stdout. Requests are handled one at a time,
in order, and every response echoes the request ID and carries the handling
time in microseconds.

# IPC

Each request names an operation in "op" and the fields that operation needs:

	{"id": "r1", "op": "add", "doc": "d1", "path": "notes/ml.txt"}
	{"id": "r2", "op": "search", "q": "deep learning", "l": 5}
	{"id": "r3", "op": "complete", "q": "lea"}
	{"id": "r4", "op": "spell", "q": "neurall"}
	{"id": "r5", "op": "save", "path": "index.huf"}
	{"id": "r6", "op": "load", "path": "index.huf"}
	{"id": "r7", "op": "stats"}

A search responds with ranked hits:

	{"id": "r2", "status": "ok", "r": [{"id": "d1", "s": 0.69}], "c": 1, "t": 52}

Failures keep the stream alive and respond with status "error":

	{"id": "r6", "status": "error", "error": "loading index index.huf: index file not found: ...", "t": 12}

When "doc" is omitted from an add request the file's base name is used as the
document ID. Limits above the configured server.max_limit are clamped, and
queries longer than server.max_query are rejected.
*/
package server

import (
	"github.com/bastiangx/wordseek/pkg/engine"
	"github.com/bastiangx/wordseek/pkg/suggest"
)

// Operations understood by the server.
const (
	OpAdd      = "add"
	OpSearch   = "search"
	OpComplete = "complete"
	OpSpell    = "spell"
	OpSave     = "save"
	OpLoad     = "load"
	OpStats    = "stats"
)

const (
	StatusReady = "ready"
	StatusOK    = "ok"
	StatusError = "error"
)

// Request is one client message.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Doc   string `msgpack:"doc,omitempty"`
	Path  string `msgpack:"path,omitempty"`
	Query string `msgpack:"q,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// Response answers one Request. Only the fields of the requested operation
// are filled in.
type Response struct {
	ID          string               `msgpack:"id"`
	Status      string               `msgpack:"status"`
	Error       string               `msgpack:"error,omitempty"`
	Results     []engine.Result      `msgpack:"r,omitempty"`
	Suggestions []suggest.Suggestion `msgpack:"s,omitempty"`
	Words       []string             `msgpack:"w,omitempty"`
	Stats       *engine.Stats        `msgpack:"stats,omitempty"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}

// Engine is the part of engine.SearchEngine the server drives.
type Engine interface {
	AddDocument(id, path string) error
	Search(query string, k int) []engine.Result
	AutocompleteWithFrequency(prefix string, limit int) []suggest.Suggestion
	SpellingSuggestions(word string) []string
	SaveIndex(path string) error
	LoadIndex(path string) error
	Stats() engine.Stats
}

var _ Engine = (*engine.SearchEngine)(nil)
