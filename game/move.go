package game

import "fmt"

// Move places a stone of Who at Position.
type Move struct {
	Position int
	Who      Piece
}

// None is the explicit no-move result.
var None = Move{Position: -1, Who: Empty}

func Place(position int, who Piece) Move {
	return Move{Position: position, Who: who}
}

func (m Move) IsNone() bool {
	return m.Position < 0 || m.Who == Empty
}

// Apply plays the move on b and reports the placement result.
func (m Move) Apply(b *Board) Result {
	if m.IsNone() {
		return IllegalPass
	}
	return b.PlaceAs(m.Position, m.Who)
}

func (m Move) String() string {
	if m.IsNone() {
		return "pass"
	}
	side := "B"
	if m.Who == White {
		side = "W"
	}
	return fmt.Sprintf("%s@%s", side, Coordinate(m.Position))
}
