package solver

import (
	"fmt"

	"github.com/go-ricrob/crossingsolver/internal/packed"
)

// Side is one bank of the crossing.
type Side int

// Sides.
const (
	Near Side = iota
	Far
)

// Other returns the opposite side.
func (s Side) Other() Side { return 1 - s }

func (s Side) String() string {
	if s == Far {
		return "far"
	}
	return "near"
}

// Key is the identity of a state. It excludes the trail so that states
// reached along different paths compare equal.
type Key struct {
	near, far     packed.Set
	vehicle       Side
	firstTripDone bool
}

// State is an immutable snapshot of the puzzle.
type State struct {
	roster *Roster
	key    Key
	trail  Trail
}

// BuildInitialState returns the state with all agents of r on the near side.
func BuildInitialState(r *Roster) (State, error) {
	if r.bySpecies[r.priority].Empty() {
		return State{}, newConfigurationError(ErrPriorityMissing, "species %q", r.priority)
	}
	s := State{
		roster: r,
		key:    Key{near: r.all, vehicle: Near},
		trail:  Trail{},
	}
	if !s.IsValid() {
		return State{}, newConfigurationError(ErrInvalidInitialState, "near side %v", s.Near())
	}
	return s, nil
}

// Key returns the identity of s.
func (s State) Key() Key { return s.key }

// Equal reports whether s and o denote the same configuration.
func (s State) Equal(o State) bool { return s.key == o.key }

// Roster returns the roster of s.
func (s State) Roster() *Roster { return s.roster }

// Near returns the agents on the near side in roster order.
func (s State) Near() []Agent { return s.roster.members(s.key.near) }

// Far returns the agents on the far side in roster order.
func (s State) Far() []Agent { return s.roster.members(s.key.far) }

// Agents returns the agents on side in roster order.
func (s State) Agents(side Side) []Agent { return s.roster.members(s.side(side)) }

// Vehicle returns the side the vehicle is on.
func (s State) Vehicle() Side { return s.key.vehicle }

// FirstTripDone reports whether the vehicle crossed from near to far.
func (s State) FirstTripDone() bool { return s.key.firstTripDone }

// Trail returns a copy of the moves leading to s.
func (s State) Trail() Trail { return append(Trail{}, s.trail...) }

// IsGoal reports whether all agents reached the far side.
func (s State) IsGoal() bool { return s.key.near.Empty() }

// IsValid reports whether both sides obey the pairing rule.
func (s State) IsValid() bool {
	return s.roster.safe(s.key.near) && s.roster.safe(s.key.far)
}

func (s State) side(side Side) packed.Set {
	if side == Far {
		return s.key.far
	}
	return s.key.near
}

// cross returns the state after the vehicle carried load to the other side.
// load must be a subset of the vehicle side.
func (s State) cross(load packed.Set, m Move) State {
	key := s.key
	if key.vehicle == Near {
		key.near, key.far = key.near.Minus(load), key.far.Union(load)
		key.firstTripDone = true
	} else {
		key.far, key.near = key.far.Minus(load), key.near.Union(load)
	}
	key.vehicle = key.vehicle.Other()

	trail := make(Trail, len(s.trail), len(s.trail)+1)
	copy(trail, s.trail)
	return State{roster: s.roster, key: key, trail: append(trail, m)}
}

// Apply returns the state after m. Apply checks that m is consistent with s
// but does not check the crossing rules; see IsValid.
func (s State) Apply(m Move) (State, error) {
	if m.Direction.From() != s.key.vehicle {
		return State{}, fmt.Errorf("%w: move %s but vehicle is on %s side", ErrInconsistentMove, m, s.key.vehicle)
	}
	if len(m.Agents) == 0 || len(m.Agents) > s.roster.capacity {
		return State{}, fmt.Errorf("%w: load of %d agents, capacity %d", ErrInconsistentMove, len(m.Agents), s.roster.capacity)
	}
	load, err := s.roster.set(m.Agents)
	if err != nil {
		return State{}, err
	}
	if load.Len() != len(m.Agents) {
		return State{}, fmt.Errorf("%w: move %s repeats an agent", ErrInconsistentMove, m)
	}
	if from := s.side(s.key.vehicle); load.Minus(from) != 0 {
		return State{}, fmt.Errorf("%w: agents %v not on %s side", ErrInconsistentMove, s.roster.members(load.Minus(from)), s.key.vehicle)
	}
	return s.cross(load, newMove(m.Direction, s.roster.members(load))), nil
}

func (s State) String() string {
	return fmt.Sprintf("near %v far %v vehicle %s", s.Near(), s.Far(), s.key.vehicle)
}
