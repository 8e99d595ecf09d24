package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBuildsAllFourSets(t *testing.T) {
	for _, id := range []ID{P434, P503, P610, P751} {
		s, err := Get(id)
		require.NoError(t, err)
		require.NotNil(t, s.Mod)
		require.NotEmpty(t, s.Strategy2)
		require.NotEmpty(t, s.Strategy3)
		require.False(t, s.A.XP.IsZero())
		require.False(t, s.B.XPQ.IsZero())
	}
}

func TestGetIsMemoized(t *testing.T) {
	s1, err := Get(P434)
	require.NoError(t, err)
	s2, err := Get(P434)
	require.NoError(t, err)
	require.Same(t, s1, s2)
}

func TestGetRejectsUnknownID(t *testing.T) {
	_, err := Get(ID(99))
	require.Error(t, err)
}
