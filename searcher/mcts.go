package searcher

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"nogo/experiments/metrics"
	"nogo/game"
)

type Option func(s *Searcher)

// Searcher picks one move per call. It keeps no tree between calls.
type Searcher struct {
	who     game.Piece
	policy  Policy
	rng     *rand.Rand
	metrics metrics.Collector
	graph   io.Writer
}

func WithPolicy(policy Policy) Option {
	return func(s *Searcher) {
		s.policy = policy
	}
}

// WithSeed makes the searcher deterministic for a given sequence of positions.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

// WithGraphWriter dumps every searched arena to w in Graphviz DOT format.
func WithGraphWriter(w io.Writer) Option {
	return func(s *Searcher) {
		s.graph = w
	}
}

func New(who game.Piece, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		who:     who,
		policy:  DefaultPolicy(),
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.policy.Validate(); err != nil {
		panic(fmt.Sprintf("invalid search policy: %v", err))
	}
	return s
}

func (s *Searcher) Side() game.Piece {
	return s.who
}

func (s *Searcher) Policy() Policy {
	return s.policy
}

// FindNextMove returns the move to play on state for the searcher's side,
// or game.None when no placement is legal.
func (s *Searcher) FindNextMove(state game.State) (game.Move, metrics.SearchMetric) {
	legal := game.LegalMoves(state)
	s.metrics.Start(len(legal))

	if len(legal) == 0 {
		log.Debug().Msgf("%s has no legal move", s.who)
		return game.None, s.metrics.Complete()
	}

	params, fast := s.policy.Decide(len(legal))
	if fast {
		s.metrics.SetFastPath()
		move := game.Place(legal[s.rng.Intn(len(legal))], s.who)
		log.Debug().Msgf("%d legal moves, drew %s at random", len(legal), move)
		return move, s.metrics.Complete()
	}

	a := s.search(state, params)
	best := a.best()
	if best < 0 { // Unreachable while the root has a legal move
		return game.None, s.metrics.Complete()
	}
	move := game.Place(a.nodes[best].move, s.who)
	log.Debug().Msgf("%d legal moves, searched %d nodes (depth-1 %d, last layer %d-%d), chose %s with score %.4f",
		len(legal), a.size(), a.layer1.size(), a.frontier.first, a.frontier.last, move, a.nodes[best].score)
	return move, s.metrics.Complete()
}

// search builds, evaluates and scores one arena rooted at state.
func (s *Searcher) search(state game.State, params Params) *arena {
	s.metrics.SetBudget(params.Budget)

	a := newArena(state)
	a.expand(params.Budget)
	s.metrics.SetNodes(a.size())

	a.rollout(s.rng, params.Repetitions, s.metrics)
	a.aggregate()
	a.score(params.Exploration)

	if s.graph != nil {
		if err := a.writeGraph(s.graph); err != nil {
			log.Warn().Err(err).Msg("failed to write search graph")
		}
	}
	return a
}
