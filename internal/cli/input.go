// Package cli runs the interactive command loop used for trying the engine
// out by hand: adding documents, searching and poking at suggestions.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordseek/internal/logger"
	"github.com/bastiangx/wordseek/pkg/config"
	"github.com/bastiangx/wordseek/pkg/engine"
	"github.com/bastiangx/wordseek/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Engine is the part of engine.SearchEngine the CLI drives.
type Engine interface {
	AddDocument(id, path string) error
	Search(query string, k int) []engine.Result
	AutocompleteWithFrequency(prefix string, limit int) []suggest.Suggestion
	SpellingSuggestions(word string) []string
	SaveIndex(path string) error
	LoadIndex(path string) error
	Stats() engine.Stats
}

// InputHandler reads commands line by line and prints their results.
type InputHandler struct {
	engine       Engine
	limit        int
	showScores   bool
	reader       *bufio.Reader
	out          *log.Logger
	requestCount int
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(e Engine, cfg config.CliConfig) *InputHandler {
	return NewInputHandlerWithIO(e, cfg, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler reading commands from r and
// printing to w.
func NewInputHandlerWithIO(e Engine, cfg config.CliConfig, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		engine:     e,
		limit:      cfg.DefaultLimit,
		showScores: cfg.ShowScores,
		reader:     bufio.NewReader(r),
		out:        logger.NewWithWriter(w, ""),
	}
}

// Start runs the command loop until "quit" or end of input.
func (h *InputHandler) Start() error {
	h.out.Print("wordseek CLI")
	h.printUsage()

	for {
		h.out.Print("> ")
		line, err := h.reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" && !h.handleLine(line) {
			return nil
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// handleLine dispatches one command. It returns false when the loop should stop.
func (h *InputHandler) handleLine(line string) bool {
	h.requestCount++
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	log.Debug("Processing command", "cmd", cmd, "arg", arg, "n", h.requestCount)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return false
	case "help":
		h.printUsage()
	case "stats":
		h.handleStats()
	case "add", "search", "complete", "spell", "save", "load":
		if arg == "" {
			h.out.Errorf("%s needs an argument", cmd)
			h.printUsage()
			return true
		}
		h.dispatch(strings.ToLower(cmd), arg)
	default:
		h.out.Errorf("Unknown command: %s", cmd)
		h.printUsage()
	}
	return true
}

func (h *InputHandler) dispatch(cmd, arg string) {
	switch cmd {
	case "add":
		h.handleAdd(arg)
	case "search":
		h.handleSearch(arg)
	case "complete":
		h.handleComplete(arg)
	case "spell":
		h.handleSpell(arg)
	case "save":
		h.handleSave(arg)
	case "load":
		h.handleLoad(arg)
	}
}

func (h *InputHandler) printUsage() {
	h.out.Print("Available commands:")
	h.out.Print("  add <path>         add a document (id is the file name)")
	h.out.Print("  search <query>     rank documents for a query")
	h.out.Print("  complete <prefix>  autocomplete suggestions")
	h.out.Print("  spell <word>       spelling suggestions")
	h.out.Print("  save <file>        save the index")
	h.out.Print("  load <file>        load an index")
	h.out.Print("  stats              corpus statistics")
	h.out.Print("  quit               exit")
}
