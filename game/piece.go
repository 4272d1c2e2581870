package game

type Piece uint8

const (
	Empty Piece = iota
	Black
	White
)

// Opponent returns the other side, Empty stays Empty
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

// ParseSide resolves an agent role string into the side it plays.
func ParseSide(role string) (Piece, bool) {
	switch role {
	case "black":
		return Black, true
	case "white":
		return White, true
	}
	return Empty, false
}
