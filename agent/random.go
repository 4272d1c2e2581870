package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"nogo/game"
)

// RandomPlayer places a legal stone uniformly at random.
type RandomPlayer struct {
	Meta
	who   game.Piece
	space []game.Move
	rng   *rand.Rand
}

func NewRandomPlayer(args string) (*RandomPlayer, error) {
	meta := ParseMeta("name=random " + args)
	who, err := resolve(meta)
	if err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	if meta.Has("seed") {
		s, err := meta.Int("seed")
		if err != nil {
			return nil, err
		}
		seed = uint64(s)
	}

	space := make([]game.Move, game.Cells)
	for i := range space {
		space[i] = game.Place(i, who)
	}
	return &RandomPlayer{Meta: meta, who: who, space: space, rng: rand.New(rand.NewSource(seed))}, nil
}

func (p *RandomPlayer) OpenEpisode(flag string)  {}
func (p *RandomPlayer) CloseEpisode(flag string) {}

func (p *RandomPlayer) CheckForWin(b game.Board) bool {
	return false
}

func (p *RandomPlayer) TakeAction(b game.Board) game.Move {
	p.rng.Shuffle(len(p.space), func(i, j int) {
		p.space[i], p.space[j] = p.space[j], p.space[i]
	})
	for _, move := range p.space {
		after := b
		if move.Apply(&after).Legal() {
			return move
		}
	}
	return game.None
}
