package solver

import (
	"strings"

	"github.com/go-ricrob/crossingsolver/internal/packed"
)

// Direction is the direction of a crossing.
type Direction int

// Directions.
const (
	NearToFar Direction = iota
	FarToNear
)

// From returns the side the vehicle leaves.
func (d Direction) From() Side {
	if d == FarToNear {
		return Far
	}
	return Near
}

// To returns the side the vehicle arrives at.
func (d Direction) To() Side { return d.From().Other() }

func (d Direction) String() string {
	if d == FarToNear {
		return "←"
	}
	return "→"
}

// Move describes one crossing of the vehicle.
type Move struct {
	Direction Direction
	Agents    []Agent // roster order
}

func newMove(d Direction, agents []Agent) Move { return Move{Direction: d, Agents: agents} }

func (m Move) String() string {
	symbols := make([]string, len(m.Agents))
	for i, a := range m.Agents {
		symbols[i] = a.String()
	}
	return strings.Join(symbols, "+") + " " + m.Direction.String()
}

// Has reports whether m carries an agent of species sp.
func (m Move) Has(sp Species) bool {
	for _, a := range m.Agents {
		if a.Species == sp {
			return true
		}
	}
	return false
}

// Trail is the sequence of moves leading to a state.
type Trail []Move

func (t Trail) String() string {
	moves := make([]string, len(t))
	for i, m := range t {
		moves[i] = m.String()
	}
	return strings.Join(moves, ", ")
}

// NextStates returns all legal successors of s: every load of one up to
// capacity agents from the vehicle side that keeps both sides valid and, on
// the first crossing, carries an adult of the priority species. Loads are
// ordered by size, then by roster index.
func (s State) NextStates() []State {
	r := s.roster
	from := s.side(s.key.vehicle)
	dir := NearToFar
	if s.key.vehicle == Far {
		dir = FarToNear
	}
	firstCrossing := !s.key.firstTripDone && dir == NearToFar
	priority := r.adultsOf[r.priority]

	var next []State
	for k := 1; k <= r.capacity; k++ {
		packed.Combinations(from, k, func(load packed.Set) {
			if firstCrossing && load.Intersect(priority).Empty() {
				return
			}
			ns := s.cross(load, newMove(dir, r.members(load)))
			if !ns.IsValid() {
				return
			}
			next = append(next, ns)
		})
	}
	return next
}
