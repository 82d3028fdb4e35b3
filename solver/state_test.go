package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitialState(t *testing.T) {
	s, err := BuildInitialState(DefaultRoster())
	require.NoError(t, err)

	assert.Equal(t, agents(t, "SsPpBb"), s.Near())
	assert.Empty(t, s.Far())
	assert.Equal(t, Near, s.Vehicle())
	assert.False(t, s.FirstTripDone())
	assert.NotNil(t, s.Trail())
	assert.Empty(t, s.Trail())
	assert.True(t, s.IsValid())
	assert.False(t, s.IsGoal())
}

func TestBuildInitialStatePriorityMissing(t *testing.T) {
	for _, symbols := range []string{"PpBb", ""} {
		_, err := BuildInitialState(roster(t, symbols, SeaLion))
		var cerr *ConfigurationError
		require.True(t, errors.As(err, &cerr), "roster %q: got %v", symbols, err)
		assert.ErrorIs(t, err, ErrPriorityMissing)
	}
}

func TestBuildInitialStateChildPriority(t *testing.T) {
	// a child of the priority species builds but can never make the first crossing
	s, err := BuildInitialState(roster(t, "sPp", SeaLion))
	require.NoError(t, err)
	assert.Empty(t, s.NextStates())

	_, ok, err := Solve(s)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApply(t *testing.T) {
	r := DefaultRoster()
	s0, err := BuildInitialState(r)
	require.NoError(t, err)

	s1, err := s0.Apply(Move{NearToFar, agents(t, "sS")})
	require.NoError(t, err)
	assert.Equal(t, agents(t, "PpBb"), s1.Near())
	assert.Equal(t, agents(t, "Ss"), s1.Far())
	assert.Equal(t, Far, s1.Vehicle())
	assert.True(t, s1.FirstTripDone())
	// agents are stored in roster order
	assert.Equal(t, Trail{{NearToFar, agents(t, "Ss")}}, s1.Trail())

	s2, err := s1.Apply(Move{FarToNear, agents(t, "S")})
	require.NoError(t, err)
	assert.Equal(t, agents(t, "SPpBb"), s2.Near())
	assert.Equal(t, Near, s2.Vehicle())
	assert.True(t, s2.FirstTripDone())
	assert.Len(t, s2.Trail(), 2)

	// the parent is unchanged
	assert.Equal(t, agents(t, "SsPpBb"), s0.Near())
	assert.Empty(t, s0.Trail())
	assert.Len(t, s1.Trail(), 1)
}

func TestApplyErrors(t *testing.T) {
	r := DefaultRoster()
	s0, err := BuildInitialState(r)
	require.NoError(t, err)

	tests := []struct {
		name string
		move Move
	}{
		{"wrong side", Move{FarToNear, agents(t, "S")}},
		{"empty", Move{NearToFar, nil}},
		{"over capacity", Move{NearToFar, agents(t, "SsP")}},
		{"unknown agent", Move{NearToFar, agents(t, "W")}},
		{"repeated agent", Move{NearToFar, agents(t, "SS")}},
	}
	for _, test := range tests {
		_, err := s0.Apply(test.move)
		assert.ErrorIs(t, err, ErrInconsistentMove, test.name)
	}

	s1, err := s0.Apply(Move{NearToFar, agents(t, "S")})
	require.NoError(t, err)
	_, err = s1.Apply(Move{FarToNear, agents(t, "s")})
	assert.ErrorIs(t, err, ErrInconsistentMove, "agent not on vehicle side")
}

func TestEqualIgnoresTrail(t *testing.T) {
	s0, err := BuildInitialState(DefaultRoster())
	require.NoError(t, err)

	apply := func(moves ...Move) State {
		s := s0
		for _, m := range moves {
			s, err = s.Apply(m)
			require.NoError(t, err)
		}
		return s
	}

	a := apply(
		Move{NearToFar, agents(t, "Ss")},
		Move{FarToNear, agents(t, "S")},
	)
	b := apply(
		Move{NearToFar, agents(t, "s")},
		Move{FarToNear, agents(t, "s")},
		Move{NearToFar, agents(t, "Ss")},
		Move{FarToNear, agents(t, "S")},
	)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, len(a.Trail()), len(b.Trail()))

	// the first trip flag is part of the identity
	c := apply(
		Move{NearToFar, agents(t, "s")},
		Move{FarToNear, agents(t, "s")},
	)
	assert.False(t, c.Equal(s0))
	assert.Equal(t, s0.Near(), c.Near())
}
