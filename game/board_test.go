package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pos converts column/row (0-based) into a board position
func pos(x, y int) int {
	return y*SizeX + x
}

func TestBoardPlace(t *testing.T) {
	t.Run("alternating turns starting with black", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, Black, b.Turn())

		require.Equal(t, Legal, b.Place(pos(4, 4)))
		require.Equal(t, White, b.Turn(), "Turn should pass to white")
		require.Equal(t, Black, b.At(pos(4, 4)))

		require.Equal(t, Legal, b.Place(pos(3, 3)))
		require.Equal(t, Black, b.Turn(), "Turn should pass back to black")
		require.Equal(t, 2, b.Stones())
	})

	t.Run("rejecting occupied and out of range points", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, Legal, b.Place(0))
		require.Equal(t, IllegalNotEmpty, b.Place(0))
		require.Equal(t, IllegalOutOfRange, b.Place(Cells))
		require.Equal(t, IllegalOutOfRange, b.Place(-1))
		require.Equal(t, White, b.Turn(), "Illegal placements should not pass the turn")
	})

	t.Run("rejecting a move out of turn", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, IllegalTurn, b.PlaceAs(0, White))
		require.Equal(t, IllegalPass, b.PlaceAs(0, Empty))
		require.Equal(t, Empty, b.At(0))
	})

	t.Run("rejecting suicide", func(t *testing.T) {
		b := NewBoard()
		// White surrounds the corner while black plays elsewhere
		require.Equal(t, Legal, b.Place(pos(8, 8)))
		require.Equal(t, Legal, b.Place(pos(1, 0)))
		require.Equal(t, Legal, b.Place(pos(7, 8)))
		require.Equal(t, Legal, b.Place(pos(0, 1)))

		before := b
		require.Equal(t, IllegalSuicide, b.Place(pos(0, 0)))
		require.Equal(t, before, b, "Board should not change after an illegal placement")
	})

	t.Run("rejecting capture", func(t *testing.T) {
		b := NewBoard()
		// Black stone in the corner, white takes one liberty
		require.Equal(t, Legal, b.Place(pos(0, 0)))
		require.Equal(t, Legal, b.Place(pos(1, 0)))
		require.Equal(t, Legal, b.Place(pos(8, 8)))

		// White filling the last liberty would capture
		require.Equal(t, IllegalTake, b.Place(pos(0, 1)))
		require.Equal(t, White, b.Turn())
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("empty board accepts every point", func(t *testing.T) {
		b := NewBoard()
		moves := LegalMoves(&b)
		require.Len(t, moves, Cells)
		require.Equal(t, 0, moves[0])
		require.Equal(t, Cells-1, moves[Cells-1])
		require.Equal(t, 0, b.Stones(), "Scanning should not touch the board")
		require.True(t, HasLegalMove(&b))
	})

	t.Run("clone is independent", func(t *testing.T) {
		b := NewBoard()
		c := b.Clone()
		require.Equal(t, Legal, c.Place(10))
		require.Equal(t, Empty, b.At(10))
	})
}

func TestMove(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		require.True(t, None.IsNone())
		require.Equal(t, "pass", None.String())
		b := NewBoard()
		require.Equal(t, IllegalPass, None.Apply(&b))
	})

	t.Run("apply", func(t *testing.T) {
		b := NewBoard()
		m := Place(pos(2, 0), Black)
		require.Equal(t, "B@C1", m.String())
		require.Equal(t, Legal, m.Apply(&b))
		require.Equal(t, IllegalTurn, Place(pos(3, 0), Black).Apply(&b))
	})

	t.Run("parse side", func(t *testing.T) {
		side, ok := ParseSide("white")
		require.True(t, ok)
		require.Equal(t, White, side)
		require.Equal(t, Black, side.Opponent())

		_, ok = ParseSide("unknown")
		require.False(t, ok)
	})
}
