package search

import (
	"log/slog"
	"strings"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

// Engine runs search passes over caller-supplied dataset snapshots. It
// holds no state between calls: the same query against the same datasets
// always produces the same EngineState, so callers may memoize on that
// pair but never need to.
type Engine struct {
	limit  int
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithSectionLimit sets how many results each section may show.
// Default is DefaultSectionLimit.
func WithSectionLimit(limit int) Option {
	return func(e *Engine) error {
		if limit < 1 {
			return ErrInvalidSectionLimit
		}
		e.limit = limit
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new search engine.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		limit:  DefaultSectionLimit,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Search runs one pass over the datasets and returns the complete result
// state. Queries below the search threshold produce empty sections, with
// HasSearchText reporting whether any text was typed at all, so callers
// can tell "keep typing" apart from "no results found".
func (e *Engine) Search(query string, datasets []core.Dataset) core.EngineState {
	return e.SearchWithMonitor(query, datasets, nil)
}

// SearchWithMonitor runs a search pass with observation hooks. The
// monitor receives a callback as each section is built.
func (e *Engine) SearchWithMonitor(query string, datasets []core.Dataset, monitor Monitor) core.EngineState {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = noopMonitor{}
	}

	tokens := Tokenize(query)
	numericQuery := NumericQuery(query)
	monitor.Start(query, tokens, numericQuery)

	state := core.EngineState{
		Query:         query,
		Sections:      make(map[string]core.SectionResult, len(datasets)),
		HasSearchText: strings.TrimSpace(query) != "",
	}

	if !ShouldSearch(tokens, numericQuery) {
		for _, ds := range datasets {
			state.Sections[ds.Key] = core.SectionResult{Title: ds.Title, RouteBase: ds.RouteBase}
		}
		monitor.Finish(state)
		return state
	}

	for _, ds := range datasets {
		section := buildSection(ds, tokens, numericQuery, e.limit)
		state.Sections[ds.Key] = section
		state.TotalResults += section.Total
		monitor.SectionBuilt(ds.Key, section)
	}
	state.HasResults = state.TotalResults > 0

	e.logger.Debug("search pass completed",
		"query", query, "datasets", len(datasets), "results", state.TotalResults)
	monitor.Finish(state)
	return state
}
