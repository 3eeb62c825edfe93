package search

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/mazepath/grid"
)

// Stepper carries the per-expansion bookkeeping of a single search run:
// the explored list, reporting, pacing and cancellation checkpoints.
// Strategies own the frontier and the Tree; the Stepper owns everything else.
type Stepper struct {
	opts     Options
	tree     *Tree
	explored []grid.Cell
}

// NewStepper binds opts to the tree the strategy will fill in.
func NewStepper(opts Options, tree *Tree, capacity int) *Stepper {
	return &Stepper{
		opts:     opts,
		tree:     tree,
		explored: make([]grid.Cell, 0, capacity),
	}
}

// Checkpoint returns ctx.Err() once the run has been cancelled.
func (s *Stepper) Checkpoint() error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
		return nil
	}
}

// Expand records c as the next explored cell, reports the snapshot to the
// observer, and applies the pacing delay. A non-nil error means the strategy
// must stop and hand it to Finish.
func (s *Stepper) Expand(c grid.Cell) error {
	s.explored = append(s.explored, c)

	if err := s.opts.Observer(slices.Clip(s.explored), s.tree.PathTo(c)); err != nil {
		return &observerError{cell: c, err: err}
	}
	if err := s.Checkpoint(); err != nil {
		return err
	}
	if err := s.pace(); err != nil {
		return err
	}

	return s.Checkpoint()
}

// pace sleeps for the configured delay, returning early on cancellation.
func (s *Stepper) pace() error {
	if s.opts.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.opts.Delay)
	defer timer.Stop()
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Explored returns the cells expanded so far.
func (s *Stepper) Explored() []grid.Cell {
	return slices.Clip(s.explored)
}

// Found builds the success result for goal.
func (s *Stepper) Found(goal grid.Cell) *Result {
	return &Result{Path: s.tree.PathTo(goal), Explored: s.Explored()}
}

// NotFound builds the exhausted-frontier result.
func (s *Stepper) NotFound() *Result {
	return &Result{Path: []grid.Cell{}, Explored: s.Explored()}
}

// Finish converts a stop error from Expand or Checkpoint into the strategy's
// return values. Cancellation keeps the partial result (explored so far and
// the path to the last expanded cell); observer failures discard it.
func (s *Stepper) Finish(err error) (*Result, error) {
	var oe *observerError
	if errors.As(err, &oe) {
		return nil, fmt.Errorf("%w at %s: %w", ErrObserver, oe.cell, oe.err)
	}
	partial := s.NotFound()
	if n := len(s.explored); n > 0 {
		partial.Path = s.tree.PathTo(s.explored[n-1])
	}

	return partial, err
}

// Empty is the result for a search whose start is not traversable:
// nothing is explored and no path exists.
func Empty() *Result {
	return &Result{Path: []grid.Cell{}, Explored: []grid.Cell{}}
}

// observerError tags an observer failure so Finish can tell it apart from
// cancellation.
type observerError struct {
	cell grid.Cell
	err  error
}

func (e *observerError) Error() string { return e.err.Error() }

func (e *observerError) Unwrap() error { return e.err }
