// Package search defines the options, result types and sentinel errors
// shared by the astar, bfs and dfs strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrObserver wraps any error returned by an Observer.
	ErrObserver = errors.New("search: observer failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUndiscoveredParent is returned by Tree.Link when the parent cell
	// has no entry yet.
	ErrUndiscoveredParent = errors.New("search: parent linked before discovery")
)

// Observer receives a snapshot after every expansion: the explored cells so
// far (in expansion order) and the best-known path from the start to the cell
// just expanded. Returning nil acknowledges the snapshot; returning an error
// aborts the search.
//
// Both slices are owned by the caller from then on. The engine never writes
// to a slice it has reported.
type Observer func(explored, path []grid.Cell) error

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the per-call configuration of a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Observer is called after every expansion. Never nil after Build.
	Observer Observer

	// Delay is the pause inserted after each report. Zero disables pacing.
	Delay time.Duration

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op observer
//   - no pacing delay
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Observer: func(_, _ []grid.Cell) error { return nil },
		Delay:    0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithObserver registers the progress callback. A nil fn keeps the no-op.
func WithObserver(fn Observer) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithDelay sets the pause inserted after each observer report.
//
//	d > 0:  sleep d (interrupted by cancellation)
//	d == 0: no pause
//	d < 0:  invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// Build applies opts over DefaultOptions and reports any recorded violation.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Result is the outcome of one search call.
//   - Path: cells from start to goal inclusive; empty when the goal was not reached.
//   - Explored: cells in the order they were expanded, without duplicates.
type Result struct {
	Path     []grid.Cell `json:"path"`
	Explored []grid.Cell `json:"exploredNodes"`
}

// Found reports whether the search reached the goal.
func (r *Result) Found() bool {
	return r != nil && len(r.Path) > 0
}

// Snapshot is one intermediate state of a search, as delivered by a lazy
// step sequence. Done marks the terminal snapshot, which carries the final
// Result.
type Snapshot struct {
	Step     int         `json:"step"`
	Current  grid.Cell   `json:"current"`
	Explored []grid.Cell `json:"exploredNodes"`
	Path     []grid.Cell `json:"path"`
	Done     bool        `json:"done"`
	Found    bool        `json:"found"`
}
