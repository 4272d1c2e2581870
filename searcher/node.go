package searcher

import (
	"golang.org/x/exp/rand"

	"nogo/experiments/metrics"
	"nogo/game"
)

// node is one position in the arena. Nodes refer to each other by index and a
// child's index is always greater than its parent's.
type node struct {
	depth    int
	parent   int
	children []int
	move     int
	state    game.State
	visits   int
	wins     int // Rollouts won by the side to move at the root
	score    float64
}

// span is an inclusive range of arena indices, empty when first > last.
type span struct {
	first, last int
}

func (s span) empty() bool {
	return s.first > s.last
}

func (s span) size() int {
	if s.empty() {
		return 0
	}
	return s.last - s.first + 1
}

// arena holds every node built by one search, the root at index 0.
type arena struct {
	nodes    []node
	layer1   span // The root's children
	frontier span // The last non-empty layer
}

func newArena(root game.State) *arena {
	return &arena{
		nodes:    []node{{parent: -1, move: -1, state: root.Clone()}},
		layer1:   span{first: 1, last: 0},
		frontier: span{first: 0, last: 0},
	}
}

func (a *arena) size() int {
	return len(a.nodes)
}

// expand grows the arena breadth first, one whole layer per round, until it
// holds at least budget nodes or a layer has no continuation.
func (a *arena) expand(budget int) {
	current := span{first: 0, last: 0}
	for len(a.nodes) < budget {
		next := span{first: len(a.nodes)}
		for p := current.first; p <= current.last; p++ {
			a.expandNode(p)
		}
		next.last = len(a.nodes) - 1
		if next.empty() { // Every frontier node is terminal
			break
		}
		if current.first == 0 {
			a.layer1 = next
		}
		a.frontier = next
		current = next
	}
}

// expandNode appends a child for every legal placement from node p.
func (a *arena) expandNode(p int) {
	parent := a.nodes[p].state
	for move := 0; move < parent.Cells(); move++ {
		state := parent.Clone()
		if !state.Place(move).Legal() {
			continue
		}
		child := len(a.nodes)
		a.nodes = append(a.nodes, node{
			depth:  a.nodes[p].depth + 1,
			parent: p,
			move:   move,
			state:  state,
		})
		a.nodes[p].children = append(a.nodes[p].children, child)
	}
}

// rollout plays times random games from every non-root node. A game ending
// after an odd total number of plies leaves the root's opponent without a
// move, so it counts as a win for the side to move at the root.
func (a *arena) rollout(rng *rand.Rand, times int, collector metrics.Collector) {
	for z := 0; z < times; z++ {
		for i := 1; i < len(a.nodes); i++ {
			n := &a.nodes[i]
			plies := playout(n.state.Clone(), rng)
			n.visits++
			if (n.depth+plies)%2 != 0 {
				n.wins++
			}
			collector.AddRollout(plies)
		}
	}
}

// playout plays uniformly random legal moves on state until none is left and
// returns the number of plies played.
func playout(state game.State, rng *rand.Rand) int {
	plies := 0
	for {
		moves := game.LegalMoves(state)
		if len(moves) == 0 {
			return plies
		}
		state.Place(moves[rng.Intn(len(moves))])
		plies++
	}
}

// aggregate folds every node's tallies into its parent, deepest index first,
// so each node ends up summarizing its whole subtree.
func (a *arena) aggregate() {
	for i := len(a.nodes) - 1; i > 0; i-- {
		n := &a.nodes[i]
		parent := &a.nodes[n.parent]
		parent.visits += n.visits
		parent.wins += n.wins
	}
}

// score rates every non-root node from the perspective of the side that moved into it.
func (a *arena) score(exploration float64) {
	for i := 1; i < len(a.nodes); i++ {
		n := &a.nodes[i]
		policy := newUCT(exploration, float64(a.nodes[n.parent].visits))
		q := perspectiveAt(n.depth).rewards(n.wins, n.visits)
		n.score = policy.evaluate(q, float64(n.visits))
	}
}

// best returns the index of the highest scoring root child, the lowest index
// on ties, or -1 when the root has no children.
func (a *arena) best() int {
	best := -1
	for i := a.layer1.first; i <= a.layer1.last; i++ {
		if best < 0 || a.nodes[i].score > a.nodes[best].score {
			best = i
		}
	}
	return best
}
