package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nogo/agent"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/gamemaster"
)

// metricReporter is implemented by agents that measure their searches.
type metricReporter interface {
	LastMetric() metrics.SearchMetric
}

// notifier is implemented by agents that accept "key=value" messages.
type notifier interface {
	Notify(msg string)
}

type LocalEngine struct {
	agents  map[game.Piece]agent.Agent
	referee *gamemaster.Referee
	start   game.Board
}

func NewLocalEngine(black, white agent.Agent) *LocalEngine {
	return &LocalEngine{
		agents:  map[game.Piece]agent.Agent{game.Black: black, game.White: white},
		referee: gamemaster.NewReferee(),
		start:   game.NewBoard(),
	}
}

// WithStart makes the next games start from board instead of an empty one.
func (e *LocalEngine) WithStart(board game.Board) *LocalEngine {
	e.start = board
	return e
}

// Board returns the current position of the game being played.
func (e *LocalEngine) Board() game.Board {
	return e.referee.Board()
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run() (game.Piece, metrics.GameMetric, []metrics.MoveMetric) {
	board, updates := e.referee.InitFrom(e.start)
	gameMetric := metrics.GameMetric{
		StartingPlayer: board.Turn(),
		StartTime:      time.Now(),
	}

	black, white := e.agents[game.Black], e.agents[game.White]
	flag := fmt.Sprintf("%s:%s", black.Name(), white.Name())
	black.OpenEpisode(flag)
	white.OpenEpisode(flag)

	log.Info().Msgf("%s is starting", board.Turn())

	var moveMetrics []metrics.MoveMetric
	winner := game.Empty
	for step := 1; !e.referee.GameOver() && step <= MaxMoves; step++ {
		board := e.referee.Board()
		who := board.Turn()
		current := e.agents[who]

		move := current.TakeAction(board)
		moveMetric := metrics.MoveMetric{Step: step, Player: who}
		if reporter, ok := current.(metricReporter); ok {
			moveMetric.SearchMetric = reporter.LastMetric()
		}
		moveMetrics = append(moveMetrics, moveMetric)

		if err := e.referee.Play(move); err != nil {
			log.Warn().Err(err).Msgf("%s (%s) forfeits at step %d", current.Name(), who, step)
			winner = who.Opponent()
			break
		}
		e.forward(updates, step)
	}
	if winner == game.Empty {
		winner = e.referee.Winner()
	}

	black.CloseEpisode(winner.String())
	white.CloseEpisode(winner.String())

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.referee.Moves()

	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	return winner, gameMetric, moveMetrics
}

// forward drains the referee's pending updates and tells the side to move
// what was just played, as last=<move>.
func (e *LocalEngine) forward(updates gamemaster.UpdateGetter, step int) {
	for move, board := updates(); board != nil; move, board = updates() {
		log.Debug().Msgf("step %d: %s played %s", step, move.Who, move)
		if n, ok := e.agents[board.Turn()].(notifier); ok {
			n.Notify("last=" + move.String())
		}
	}
}
