package engine

import (
	"github.com/bastiangx/wordseek/internal/logger"
	"github.com/bastiangx/wordseek/pkg/config"
	"github.com/bastiangx/wordseek/pkg/spell"
	"github.com/bastiangx/wordseek/pkg/suggest"
	"github.com/charmbracelet/log"
)

// DefaultLimit is the number of search results returned when none is asked for.
const DefaultLimit = 10

// DefaultLoadWorkers bounds concurrent source parsing in LoadIndex.
const DefaultLoadWorkers = 4

type options struct {
	maxSuggestions  int
	maxEditDistance int
	defaultLimit    int
	loadWorkers     int
	logger          *log.Logger
}

func defaultOptions() options {
	return options{
		maxSuggestions:  suggest.DefaultMaxSuggestions,
		maxEditDistance: spell.DefaultMaxDistance,
		defaultLimit:    DefaultLimit,
		loadWorkers:     DefaultLoadWorkers,
	}
}

// Option configures a SearchEngine.
type Option func(*options)

// WithMaxSuggestions caps autocomplete results.
func WithMaxSuggestions(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSuggestions = n
		}
	}
}

// WithMaxEditDistance sets the spelling suggestion distance bound.
func WithMaxEditDistance(d int) Option {
	return func(o *options) {
		if d >= 0 {
			o.maxEditDistance = d
		}
	}
}

// WithDefaultLimit sets the result count used by Search when k <= 0.
func WithDefaultLimit(k int) Option {
	return func(o *options) {
		if k > 0 {
			o.defaultLimit = k
		}
	}
}

// WithLoadWorkers bounds how many sources LoadIndex parses at once.
func WithLoadWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.loadWorkers = n
		}
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// OptionsFromConfig maps the [engine] config section to options.
func OptionsFromConfig(c config.EngineConfig) []Option {
	return []Option{
		WithMaxSuggestions(c.MaxSuggestions),
		WithMaxEditDistance(c.MaxEditDistance),
		WithDefaultLimit(c.DefaultLimit),
		WithLoadWorkers(c.LoadWorkers),
	}
}

func (o *options) apply(opts []Option) {
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.New("engine")
	}
}
