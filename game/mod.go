package game

// State is a position that a searcher can branch from. Place mutates the
// receiver only when the placement is legal, so callers Clone before probing.
type State interface {
	Cells() int
	Place(position int) Result
	Clone() State
}

// LegalMoves scans every candidate position in order and returns the ones
// the state accepts as placements for the side to move.
func LegalMoves(s State) []int {
	var moves []int
	for position := 0; position < s.Cells(); position++ {
		probe := s.Clone()
		if probe.Place(position).Legal() {
			moves = append(moves, position)
		}
	}
	return moves
}

// HasLegalMove reports whether any placement is legal, stopping at the first one.
func HasLegalMove(s State) bool {
	for position := 0; position < s.Cells(); position++ {
		probe := s.Clone()
		if probe.Place(position).Legal() {
			return true
		}
	}
	return false
}
