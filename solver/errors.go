package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrPriorityMissing is the cause of a configuration error when no agent
	// of the priority species is in the roster.
	ErrPriorityMissing = errors.New("priority species not in roster")
	// ErrInvalidInitialState is the cause of a configuration error when the
	// initial state breaks the pairing rule.
	ErrInvalidInitialState = errors.New("initial state is invalid")
	// ErrDuplicateAgent is the cause of a configuration error when an agent
	// occurs more than once in the roster.
	ErrDuplicateAgent = errors.New("duplicate agent")
	// ErrInvalidAgent is the cause of a configuration error for an agent
	// whose symbol does not parse back to it, e.g. a lower case species code.
	ErrInvalidAgent = errors.New("invalid agent")
	// ErrRosterTooLarge is the cause of a configuration error when the roster
	// exceeds the packed set size.
	ErrRosterTooLarge = errors.New("roster too large")
	// ErrCapacity is the cause of a configuration error for a vehicle
	// capacity below one.
	ErrCapacity = errors.New("invalid vehicle capacity")
)

var (
	// ErrInconsistentMove is returned when a move cannot be applied to a state.
	ErrInconsistentMove = errors.New("inconsistent move")
	// ErrStateLimit is returned when a search exceeds its state limit.
	ErrStateLimit = errors.New("state limit exceeded")
	// ErrNoSolution marks the exhausted search outcome for callers that
	// need it as an error. The solver itself never returns it.
	ErrNoSolution = errors.New("no solution found")
)

// ConfigurationError reports a roster or rule set that cannot be solved
// because it is contradictory.
type ConfigurationError struct {
	Reason string
	Err    error
}

func newConfigurationError(err error, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...), Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("configuration error: %v", e.Err)
	}
	return fmt.Sprintf("configuration error: %v: %s", e.Err, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
