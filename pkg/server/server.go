package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bastiangx/wordseek/internal/utils"
	"github.com/bastiangx/wordseek/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for one engine.
type Server struct {
	engine   Engine
	config   *config.Config
	decoder  *msgpack.Decoder
	encoder  *msgpack.Encoder
	requests int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(e Engine, cfg *config.Config) *Server {
	return NewServerWithIO(e, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w.
func NewServerWithIO(e Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		engine:  e,
		config:  cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start announces readiness and serves requests until the input is closed.
// A malformed request gets an error response; a broken stream ends the loop.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	if err := s.send(Response{Status: StatusReady}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requests++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			if err := s.send(Response{Status: StatusError, Error: "invalid msgpack request"}); err != nil {
				return err
			}
			continue
		}
		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle executes a single request.
func (s *Server) Handle(req Request) Response {
	start := time.Now()
	var resp Response
	var err error

	switch req.Op {
	case OpAdd:
		resp, err = s.handleAdd(req)
	case OpSearch:
		resp, err = s.handleSearch(req)
	case OpComplete:
		resp, err = s.handleComplete(req)
	case OpSpell:
		resp, err = s.handleSpell(req)
	case OpSave:
		resp, err = s.handleSave(req)
	case OpLoad:
		resp, err = s.handleLoad(req)
	case OpStats:
		stats := s.engine.Stats()
		resp = Response{Stats: &stats, Count: stats.Documents}
	default:
		err = fmt.Errorf("unknown op: %q", req.Op)
	}

	resp.ID = req.ID
	if err != nil {
		log.Debugf("Request %s (%s) failed: %v", req.ID, req.Op, err)
		resp = Response{ID: req.ID, Status: StatusError, Error: err.Error()}
	} else {
		resp.Status = StatusOK
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	return resp
}

func (s *Server) send(resp Response) error {
	if err := s.encoder.Encode(resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

func (s *Server) handleAdd(req Request) (Response, error) {
	if req.Path == "" {
		return Response{}, errors.New("missing 'path' parameter")
	}
	id := req.Doc
	if id == "" {
		id = filepath.Base(req.Path)
	}
	if err := s.engine.AddDocument(id, req.Path); err != nil {
		return Response{}, err
	}
	return Response{Words: []string{id}, Count: 1}, nil
}

func (s *Server) handleSearch(req Request) (Response, error) {
	if err := s.checkQuery(req.Query); err != nil {
		return Response{}, err
	}
	results := s.engine.Search(req.Query, s.clampLimit(req.Limit))
	return Response{Results: results, Count: len(results)}, nil
}

func (s *Server) handleComplete(req Request) (Response, error) {
	if err := s.checkQuery(req.Query); err != nil {
		return Response{}, err
	}
	prefix := strings.ToLower(strings.TrimSpace(req.Query))
	suggestions := s.engine.AutocompleteWithFrequency(prefix, s.clampLimit(req.Limit))
	return Response{Suggestions: suggestions, Count: len(suggestions)}, nil
}

func (s *Server) handleSpell(req Request) (Response, error) {
	if err := s.checkQuery(req.Query); err != nil {
		return Response{}, err
	}
	words := s.engine.SpellingSuggestions(req.Query)
	if limit := s.clampLimit(req.Limit); limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return Response{Words: words, Count: len(words)}, nil
}

func (s *Server) handleSave(req Request) (Response, error) {
	if req.Path == "" {
		return Response{}, errors.New("missing 'path' parameter")
	}
	if err := s.engine.SaveIndex(req.Path); err != nil {
		return Response{}, err
	}
	return Response{}, nil
}

func (s *Server) handleLoad(req Request) (Response, error) {
	if req.Path == "" {
		return Response{}, errors.New("missing 'path' parameter")
	}
	if err := s.engine.LoadIndex(req.Path); err != nil {
		return Response{}, err
	}
	stats := s.engine.Stats()
	return Response{Stats: &stats, Count: stats.Documents}, nil
}

func (s *Server) checkQuery(q string) error {
	if err := utils.CheckInput(q, s.config.Server.MaxQuery); err != nil {
		return fmt.Errorf("invalid 'q' parameter: %w", err)
	}
	return nil
}

// clampLimit caps l at server.max_limit. Zero and negative limits are passed
// through so the engine applies its own default.
func (s *Server) clampLimit(l int) int {
	if maxLimit := s.config.Server.MaxLimit; maxLimit > 0 && l > maxLimit {
		return maxLimit
	}
	return l
}
