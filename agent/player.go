package agent

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
)

// Characters that would break the episode record format
const reservedNameChars = "[]():; "

// Player is the searching agent for either side.
type Player struct {
	Meta
	who    game.Piece
	mcts   *searcher.Searcher
	metric metrics.SearchMetric
}

// NewPlayer builds a player from "key=value" arguments. It requires
// role=black or role=white, and seeds its searcher from seed= when present.
func NewPlayer(args string, options ...searcher.Option) (*Player, error) {
	meta := ParseMeta("name=random " + args)
	who, err := resolve(meta)
	if err != nil {
		return nil, err
	}

	if meta.Has("seed") {
		seed, err := meta.Int("seed")
		if err != nil {
			return nil, err
		}
		options = append([]searcher.Option{searcher.WithSeed(uint64(seed))}, options...)
	}
	if path, err := meta.Property("policy"); err == nil {
		policy, err := searcher.LoadPolicy(path)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArgument, "policy: %v", err)
		}
		options = append(options, searcher.WithPolicy(policy))
	}

	return &Player{
		Meta: meta,
		who:  who,
		mcts: searcher.New(who, options...),
	}, nil
}

// resolve validates the name and maps the role onto a side.
func resolve(meta Meta) (game.Piece, error) {
	if strings.ContainsAny(meta.Name(), reservedNameChars) {
		return game.Empty, errors.Wrapf(ErrInvalidArgument, "invalid name: %s", meta.Name())
	}
	who, ok := game.ParseSide(meta.Role())
	if !ok {
		return game.Empty, errors.Wrapf(ErrInvalidArgument, "invalid role: %s", meta.Role())
	}
	return who, nil
}

func (p *Player) Side() game.Piece {
	return p.who
}

func (p *Player) OpenEpisode(flag string)  {}
func (p *Player) CloseEpisode(flag string) {}

func (p *Player) CheckForWin(b game.Board) bool {
	return false
}

// TakeAction searches b for the player's move. Rollout wins are credited to
// the side to move, so the board must have this player to move.
func (p *Player) TakeAction(b game.Board) game.Move {
	if b.Turn() != p.who {
		log.Warn().Msgf("%s asked to move as %s but the board has %s to move", p.Name(), p.who, b.Turn())
	}
	move, metric := p.mcts.FindNextMove(&b)
	p.metric = metric
	return move
}

// LastMetric returns the metrics of the most recent TakeAction.
func (p *Player) LastMetric() metrics.SearchMetric {
	return p.metric
}
