// Package solver implements a breadth-first solver for the crossing puzzle.
//
// A roster of agents has to be moved from the near to the far side by a
// vehicle of limited capacity. A child without an adult of its own species
// must never share a side with an adult of another species, and the first
// crossing has to carry the priority species. The solver returns a shortest
// sequence of crossings.
package solver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-ricrob/crossingsolver/internal/frontier"
)

// Result is the outcome of a search.
type Result struct {
	Moves       Trail // nil if not solved
	Solved      bool
	NumExpanded int // states whose successors were generated
	NumStates   int // distinct states discovered
	Depth       int // last level reached
}

// Trail returns the moves of a solution and whether one was found.
func (r *Result) Trail() (Trail, bool) { return r.Moves, r.Solved }

// Option configures a Solver.
type Option func(s *Solver)

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option { return func(s *Solver) { s.logger = logger } }

// WithOnLevel sets a hook called before each level is expanded with the
// level number and the number of states on it.
func WithOnLevel(fn func(level, size int)) Option { return func(s *Solver) { s.onLevel = fn } }

// WithMaxStates aborts the search with ErrStateLimit once more than n states
// were discovered. n == 0 means no limit.
func WithMaxStates(n int) Option { return func(s *Solver) { s.maxStates = n } }

// Solver runs breadth-first searches. A Solver holds no search state and
// every Run uses its own frontier.
type Solver struct {
	logger    *slog.Logger
	onLevel   func(level, size int)
	maxStates int
}

// New returns a solver.
func New(opts ...Option) *Solver {
	s := &Solver{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		onLevel: func(int, int) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run searches a shortest path from initial to a goal state. Exhausting the
// state space is not an error: the result is returned with Solved false.
func (s *Solver) Run(initial State) (*Result, error) {
	if initial.roster == nil {
		return nil, newConfigurationError(ErrInvalidInitialState, "state without roster")
	}
	if !initial.IsValid() {
		return nil, newConfigurationError(ErrInvalidInitialState, "%s", initial)
	}

	fm := frontier.New[Key, State](initial.Key(), initial)
	result := &Result{}

	for level := 0; !fm.Empty(); level++ {
		result.Depth = level
		s.onLevel(level, len(fm.Source()))
		s.logger.Debug("expand level",
			slog.Int("level", level),
			slog.Int("frontier", len(fm.Source())),
			slog.Int("states", fm.Size()))

		for _, state := range fm.Source() {
			if state.IsGoal() {
				result.Moves, result.Solved = state.Trail(), true
				result.NumStates = fm.Size()
				s.logger.Info("solution found",
					slog.Int("moves", len(result.Moves)),
					slog.Int("expanded", result.NumExpanded),
					slog.Int("states", result.NumStates))
				return result, nil
			}
			result.NumExpanded++
			for _, next := range state.NextStates() {
				fm.StoreTarget(next.Key(), next)
			}
			if s.maxStates > 0 && fm.Size() > s.maxStates {
				return nil, fmt.Errorf("%w: %d states discovered, limit %d", ErrStateLimit, fm.Size(), s.maxStates)
			}
		}
		fm.Swap()
	}

	result.NumStates = fm.Size()
	s.logger.Info("no solution",
		slog.Int("expanded", result.NumExpanded),
		slog.Int("states", result.NumStates))
	return result, nil
}

// Solve returns a shortest trail from initial to a goal state. ok is false if
// no goal state is reachable. err is a *ConfigurationError for an invalid
// initial state and is never set for an exhausted search.
func Solve(initial State) (trail Trail, ok bool, err error) {
	result, err := New().Run(initial)
	if err != nil {
		return nil, false, err
	}
	trail, ok = result.Trail()
	return trail, ok, nil
}
