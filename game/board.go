package game

import "strings"

// Board is a NoGo position. It is a plain value: assigning a Board copies it.
type Board struct {
	cells  [Cells]Piece
	turn   Piece
	stones int
}

// NewBoard returns an empty board with black to move.
func NewBoard() Board {
	return Board{turn: Black}
}

func (b *Board) Cells() int {
	return Cells
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	if b.turn == Empty {
		return Black
	}
	return b.turn
}

func (b *Board) At(position int) Piece {
	return b.cells[position]
}

// Stones returns the number of stones on the board, i.e. the plies played.
func (b *Board) Stones() int {
	return b.stones
}

func (b *Board) Clone() State {
	c := *b
	return &c
}

// Place puts a stone of the side to move at position.
func (b *Board) Place(position int) Result {
	return b.PlaceAs(position, b.Turn())
}

// PlaceAs puts a stone of who at position. Under NoGo rules a placement must
// neither capture an opponent group nor leave the placed group without
// liberties. Illegal placements leave the board untouched.
func (b *Board) PlaceAs(position int, who Piece) Result {
	if who != Black && who != White {
		return IllegalPass
	}
	if who != b.Turn() {
		return IllegalTurn
	}
	if position < 0 || position >= Cells {
		return IllegalOutOfRange
	}
	if b.cells[position] != Empty {
		return IllegalNotEmpty
	}

	b.cells[position] = who
	if result := b.check(position, who); !result.Legal() {
		b.cells[position] = Empty
		return result
	}
	b.stones++
	b.turn = who.Opponent()
	return Legal
}

// check validates a stone of who freshly put at position.
func (b *Board) check(position int, who Piece) Result {
	opponent := who.Opponent()
	for _, adj := range Neighbors(position) {
		if b.cells[adj] == opponent && !b.hasLiberty(adj) {
			return IllegalTake
		}
	}
	if !b.hasLiberty(position) {
		return IllegalSuicide
	}
	return Legal
}

// hasLiberty flood-fills the group at position looking for an empty neighbor.
func (b *Board) hasLiberty(position int) bool {
	color := b.cells[position]
	var visited [Cells]bool
	stack := make([]int, 0, Cells)
	stack = append(stack, position)
	visited[position] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, adj := range Neighbors(p) {
			switch {
			case b.cells[adj] == Empty:
				return true
			case b.cells[adj] == color && !visited[adj]:
				visited[adj] = true
				stack = append(stack, adj)
			}
		}
	}
	return false
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  A B C D E F G H J\n")
	for y := SizeY - 1; y >= 0; y-- {
		sb.WriteByte(byte('1' + y))
		for x := 0; x < SizeX; x++ {
			sb.WriteByte(' ')
			switch b.cells[y*SizeX+x] {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
