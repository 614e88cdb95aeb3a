package taxicab_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/infinity/taxicab"
)

var allHeadings = []taxicab.Heading{
	{Axis: 0, Sign: +1},
	{Axis: 0, Sign: -1},
	{Axis: 1, Sign: +1},
	{Axis: 1, Sign: -1},
}

// TestHeading_TransitionTable checks all eight (state, turn) pairs.
func TestHeading_TransitionTable(t *testing.T) {
	cases := []struct {
		from taxicab.Heading
		turn taxicab.Turn
		want taxicab.Heading
	}{
		{taxicab.Heading{Axis: 0, Sign: +1}, taxicab.Right, taxicab.Heading{Axis: 1, Sign: -1}},
		{taxicab.Heading{Axis: 0, Sign: -1}, taxicab.Right, taxicab.Heading{Axis: 1, Sign: +1}},
		{taxicab.Heading{Axis: 0, Sign: +1}, taxicab.Left, taxicab.Heading{Axis: 1, Sign: +1}},
		{taxicab.Heading{Axis: 0, Sign: -1}, taxicab.Left, taxicab.Heading{Axis: 1, Sign: -1}},
		{taxicab.Heading{Axis: 1, Sign: +1}, taxicab.Right, taxicab.Heading{Axis: 0, Sign: +1}},
		{taxicab.Heading{Axis: 1, Sign: -1}, taxicab.Right, taxicab.Heading{Axis: 0, Sign: -1}},
		{taxicab.Heading{Axis: 1, Sign: +1}, taxicab.Left, taxicab.Heading{Axis: 0, Sign: -1}},
		{taxicab.Heading{Axis: 1, Sign: -1}, taxicab.Left, taxicab.Heading{Axis: 0, Sign: +1}},
	}
	for _, tc := range cases {
		t.Run(tc.from.String()+tc.turn.String(), func(t *testing.T) {
			got, err := tc.from.Next(tc.turn)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestHeading_OppositeTurnsRoundTrip verifies R then L (and L then R) is the identity.
func TestHeading_OppositeTurnsRoundTrip(t *testing.T) {
	pairs := [][2]taxicab.Turn{{taxicab.Right, taxicab.Left}, {taxicab.Left, taxicab.Right}}
	for _, h := range allHeadings {
		for _, p := range pairs {
			mid, err := h.Next(p[0])
			require.NoError(t, err)
			back, err := mid.Next(p[1])
			require.NoError(t, err)
			require.Equal(t, h, back, "%v %v%v", h, p[0], p[1])
		}
	}
}

// TestHeading_AxisAlwaysFlips checks no turn keeps the current axis.
func TestHeading_AxisAlwaysFlips(t *testing.T) {
	for _, h := range allHeadings {
		for _, turn := range []taxicab.Turn{taxicab.Right, taxicab.Left} {
			next, err := h.Next(turn)
			require.NoError(t, err)
			require.NotEqual(t, h.Axis, next.Axis)
		}
	}
}

// TestHeading_FourRightsCycle verifies four identical turns return to the start.
func TestHeading_FourRightsCycle(t *testing.T) {
	for _, turn := range []taxicab.Turn{taxicab.Right, taxicab.Left} {
		h := taxicab.North
		seen := map[taxicab.Heading]bool{}
		for i := 0; i < 4; i++ {
			var err error
			h, err = h.Next(turn)
			require.NoError(t, err)
			seen[h] = true
		}
		require.Equal(t, taxicab.North, h)
		require.Len(t, seen, 4, "four turns must visit all four headings")
	}
}

func TestHeading_InvalidTurn(t *testing.T) {
	h, err := taxicab.North.Next(taxicab.Turn(0))
	require.True(t, errors.Is(err, taxicab.ErrInvalidTurn))
	require.Equal(t, taxicab.North, h)
}
