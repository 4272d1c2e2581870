package game

import "fmt"

const (
	SizeX = 9
	SizeY = 9
	Cells = SizeX * SizeY
)

// Point is one intersection of the board.
type Point struct {
	ID          int   // Index in row-major order
	X, Y        int   // Column and row
	AdjacentIDs []int // IDs of orthogonally adjacent points
}

// Map represents the board grid, containing all the points.
type Map struct {
	Points [Cells]Point
}

// AddBorder adds a bidirectional border between two points.
func (m *Map) AddBorder(id1, id2 int) {
	if !contains(m.Points[id1].AdjacentIDs, id2) {
		m.Points[id1].AdjacentIDs = append(m.Points[id1].AdjacentIDs, id2)
	}
	if !contains(m.Points[id2].AdjacentIDs, id1) {
		m.Points[id2].AdjacentIDs = append(m.Points[id2].AdjacentIDs, id1)
	}
}

// contains checks if a slice contains a specific item (avoid duplicate borders)
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

// CreateMap initializes the grid with points and their neighbors
func CreateMap() *Map {
	m := &Map{}
	for id := 0; id < Cells; id++ {
		m.Points[id] = Point{ID: id, X: id % SizeX, Y: id / SizeX, AdjacentIDs: []int{}}
	}
	for id := 0; id < Cells; id++ {
		x, y := id%SizeX, id/SizeX
		if x+1 < SizeX {
			m.AddBorder(id, id+1)
		}
		if y+1 < SizeY {
			m.AddBorder(id, id+SizeX)
		}
	}
	return m
}

// The grid never changes, so every board shares one adjacency table.
var grid = CreateMap()

// Neighbors returns the orthogonal neighbors of a position.
func Neighbors(position int) []int {
	return grid.Points[position].AdjacentIDs
}

// Coordinate renders a position as a column letter (skipping I) and a row number.
func Coordinate(position int) string {
	if position < 0 || position >= Cells {
		return "??"
	}
	const columns = "ABCDEFGHJ"
	return fmt.Sprintf("%c%d", columns[position%SizeX], position/SizeX+1)
}
