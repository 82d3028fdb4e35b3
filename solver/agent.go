package solver

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ricrob/crossingsolver/internal/packed"
)

// Species identifies a species by its code, e.g. "S".
type Species string

// Age is the age class of an agent.
type Age int

// Age classes.
const (
	Adult Age = iota
	Child
)

func (a Age) String() string {
	switch a {
	case Adult:
		return "adult"
	case Child:
		return "child"
	default:
		return fmt.Sprintf("Age(%d)", int(a))
	}
}

// Agent is one individual of the roster.
type Agent struct {
	Species Species
	Age     Age
}

// String returns the agent symbol: the upper case species code for adults and
// the lower case code for children.
func (a Agent) String() string {
	if a.Age == Child {
		return strings.ToLower(string(a.Species))
	}
	return strings.ToUpper(string(a.Species))
}

// ParseAgent parses an agent symbol as returned by Agent.String.
func ParseAgent(symbol string) (Agent, error) {
	r, _ := utf8.DecodeRuneInString(symbol)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return Agent{}, fmt.Errorf("invalid agent symbol %q", symbol)
	}
	upper, lower := strings.ToUpper(symbol), strings.ToLower(symbol)
	switch {
	case upper == lower:
		return Agent{}, fmt.Errorf("agent symbol %q has no case", symbol)
	case symbol == upper:
		return Agent{Species: Species(upper), Age: Adult}, nil
	case symbol == lower:
		return Agent{Species: Species(upper), Age: Child}, nil
	default:
		return Agent{}, fmt.Errorf("agent symbol %q has mixed case", symbol)
	}
}

// Species of the original puzzle.
const (
	Penguin   Species = "P"
	SeaLion   Species = "S"
	PolarBear Species = "B"
)

// DefaultCapacity is the number of agents the vehicle carries.
const DefaultCapacity = 2

// Roster is the fixed set of agents of a puzzle together with its rule
// parameters. A Roster is immutable and may be shared between solvers.
type Roster struct {
	agents   []Agent
	index    map[Agent]int
	priority Species
	capacity int

	all        packed.Set
	adults     packed.Set
	bySpecies  map[Species]packed.Set // all agents of a species
	adultsOf   map[Species]packed.Set
	childrenOf map[Species]packed.Set
	species    []Species // in order of first appearance
}

// RosterOption configures a Roster.
type RosterOption func(r *Roster)

// WithCapacity sets the vehicle capacity.
func WithCapacity(n int) RosterOption { return func(r *Roster) { r.capacity = n } }

// NewRoster returns a roster of agents whose first crossing has to carry an
// adult of the priority species. Species codes must be upper case.
func NewRoster(agents []Agent, priority Species, opts ...RosterOption) (*Roster, error) {
	if len(agents) > packed.MaxLen {
		return nil, newConfigurationError(ErrRosterTooLarge, "%d agents, max %d", len(agents), packed.MaxLen)
	}

	r := &Roster{
		agents:     make([]Agent, len(agents)),
		index:      make(map[Agent]int, len(agents)),
		priority:   priority,
		capacity:   DefaultCapacity,
		all:        packed.Full(len(agents)),
		bySpecies:  map[Species]packed.Set{},
		adultsOf:   map[Species]packed.Set{},
		childrenOf: map[Species]packed.Set{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.capacity < 1 {
		return nil, newConfigurationError(ErrCapacity, "capacity %d", r.capacity)
	}

	copy(r.agents, agents)
	for i, a := range r.agents {
		if p, err := ParseAgent(a.String()); err != nil || p != a {
			return nil, newConfigurationError(ErrInvalidAgent, "species %q age %s", a.Species, a.Age)
		}
		if _, ok := r.index[a]; ok {
			return nil, newConfigurationError(ErrDuplicateAgent, "agent %s", a)
		}
		r.index[a] = i
		if _, ok := r.bySpecies[a.Species]; !ok {
			r.species = append(r.species, a.Species)
		}
		r.bySpecies[a.Species] = r.bySpecies[a.Species].Add(i)
		if a.Age == Child {
			r.childrenOf[a.Species] = r.childrenOf[a.Species].Add(i)
		} else {
			r.adults = r.adults.Add(i)
			r.adultsOf[a.Species] = r.adultsOf[a.Species].Add(i)
		}
	}
	return r, nil
}

// DefaultRoster returns the roster of the original puzzle: an adult and a
// child each of sea lion, penguin and polar bear. The first crossing has to
// carry the sea lion adult.
func DefaultRoster() *Roster {
	r, err := NewRoster([]Agent{
		{SeaLion, Adult}, {SeaLion, Child},
		{Penguin, Adult}, {Penguin, Child},
		{PolarBear, Adult}, {PolarBear, Child},
	}, SeaLion)
	if err != nil {
		panic(err) // static roster
	}
	return r
}

// Agents returns the agents in roster order.
func (r *Roster) Agents() []Agent { return append([]Agent(nil), r.agents...) }

// Len returns the number of agents.
func (r *Roster) Len() int { return len(r.agents) }

// Priority returns the species whose adult the first crossing has to carry.
func (r *Roster) Priority() Species { return r.priority }

// Capacity returns the vehicle capacity.
func (r *Roster) Capacity() int { return r.capacity }

// Species returns the species of the roster in order of first appearance.
func (r *Roster) Species() []Species { return append([]Species(nil), r.species...) }

func (r *Roster) set(agents []Agent) (packed.Set, error) {
	var s packed.Set
	for _, a := range agents {
		idx, ok := r.index[a]
		if !ok {
			return 0, fmt.Errorf("%w: agent %s not in roster", ErrInconsistentMove, a)
		}
		s = s.Add(idx)
	}
	return s, nil
}

func (r *Roster) members(s packed.Set) []Agent {
	idxs := s.Indices()
	agents := make([]Agent, len(idxs))
	for i, idx := range idxs {
		agents[i] = r.agents[idx]
	}
	return agents
}

// safe reports whether the agents of side s obey the pairing rule: a child
// without an adult of its species must not meet an adult of another species.
func (r *Roster) safe(s packed.Set) bool {
	adults := s.Intersect(r.adults)
	if adults.Empty() {
		return true
	}
	for _, sp := range r.species {
		if s.Intersect(r.childrenOf[sp]).Empty() {
			continue
		}
		if s.Intersect(r.adultsOf[sp]).Empty() {
			return false // every adult present is of another species
		}
	}
	return true
}
