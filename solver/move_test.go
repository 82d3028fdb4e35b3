package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	assert.Equal(t, "S+s →", Move{NearToFar, agents(t, "Ss")}.String())
	assert.Equal(t, "p ←", Move{FarToNear, agents(t, "p")}.String())
	assert.Equal(t, "S+s →, S ←", Trail{
		{NearToFar, agents(t, "Ss")},
		{FarToNear, agents(t, "S")},
	}.String())
	assert.Equal(t, Far, NearToFar.To())
	assert.Equal(t, Far, FarToNear.From())
}

func TestNextStatesInitial(t *testing.T) {
	s, err := BuildInitialState(DefaultRoster())
	require.NoError(t, err)

	var moves []string
	for _, next := range s.NextStates() {
		trail := next.Trail()
		require.Len(t, trail, 1)
		moves = append(moves, trail[0].String())
		assert.True(t, next.FirstTripDone())
		assert.Equal(t, Far, next.Vehicle())
	}
	// the sea lion adult has to cross first; any partner but its child
	// strands a child with a foreign adult
	assert.Equal(t, []string{"S+s →"}, moves)
}

func TestNextStatesOrderingRuleOnlyOnFirstCrossing(t *testing.T) {
	s0, err := BuildInitialState(DefaultRoster())
	require.NoError(t, err)
	s1, err := s0.Apply(Move{NearToFar, agents(t, "Ss")})
	require.NoError(t, err)
	s2, err := s1.Apply(Move{FarToNear, agents(t, "S")})
	require.NoError(t, err)

	// after the first crossing loads without a sea lion are legal
	found := false
	for _, next := range s2.NextStates() {
		trail := next.Trail()
		if !trail[len(trail)-1].Has(SeaLion) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestNextStatesCapacity(t *testing.T) {
	s, err := BuildInitialState(roster(t, "SsPp", SeaLion, WithCapacity(1)))
	require.NoError(t, err)

	// alone, the sea lion adult leaves its child with the penguin adult
	assert.Empty(t, s.NextStates())

	s, err = BuildInitialState(roster(t, "SsPp", SeaLion, WithCapacity(3)))
	require.NoError(t, err)
	require.Len(t, s.NextStates(), 4)
	for _, next := range s.NextStates() {
		trail := next.Trail()
		assert.LessOrEqual(t, len(trail[0].Agents), 3)
	}
}

func TestNextStatesInvariants(t *testing.T) {
	for _, r := range []*Roster{
		DefaultRoster(),
		roster(t, "SsPpBbWw", SeaLion),
		roster(t, "SsPp", SeaLion, WithCapacity(3)),
	} {
		initial, err := BuildInitialState(r)
		require.NoError(t, err)

		// walk the whole reachable state space
		seen := map[Key]bool{initial.Key(): true}
		queue := []State{initial}
		for len(queue) > 0 {
			s := queue[0]
			queue = queue[1:]

			k := s.Key()
			assert.True(t, k.near.Intersect(k.far).Empty(), "sides overlap: %s", s)
			assert.Equal(t, r.all, k.near.Union(k.far), "agents lost: %s", s)
			assert.True(t, s.IsValid(), "invalid state: %s", s)

			for _, next := range s.NextStates() {
				assert.Len(t, next.Trail(), len(s.Trail())+1)
				if !seen[next.Key()] {
					seen[next.Key()] = true
					queue = append(queue, next)
				}
			}
		}
	}
}
