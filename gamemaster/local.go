package gamemaster

import (
	"sync"

	"github.com/pkg/errors"

	"nogo/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// UpdateGetter returns the next played move and the board after it, or
// (game.None, nil) when no update is pending.
type UpdateGetter func() (game.Move, *game.Board)

type update struct {
	move  game.Move
	board game.Board
}

// Referee owns the authoritative board of one game.
type Referee struct {
	mu       sync.Mutex
	board    game.Board
	updateCh chan update
	gameOver bool
	moves    int
}

func NewReferee() *Referee {
	return &Referee{}
}

// Init starts a new game on an empty board.
func (r *Referee) Init() (game.Board, UpdateGetter) {
	return r.InitFrom(game.NewBoard())
}

// InitFrom starts a game from an arbitrary position.
func (r *Referee) InitFrom(board game.Board) (game.Board, UpdateGetter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.board = board
	r.moves = 0
	r.gameOver = !game.HasLegalMove(&r.board)
	updateCh := make(chan update, game.Cells)
	r.updateCh = updateCh
	if r.gameOver {
		close(updateCh)
	}

	return r.board, func() (game.Move, *game.Board) {
		select {
		case u, ok := <-updateCh:
			if !ok { // Game over
				return game.None, nil
			}
			return u.move, &u.board
		default:
			return game.None, nil
		}
	}
}

// Play validates and applies move to the board.
func (r *Referee) Play(move game.Move) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.gameOver {
		return ErrGameOver
	}

	after := r.board
	if result := move.Apply(&after); !result.Legal() {
		return errors.Wrapf(ErrIllegalMove, "%s: %s", move, result)
	}
	r.board = after
	r.moves++

	r.updateCh <- update{move: move, board: r.board}
	if !game.HasLegalMove(&r.board) {
		r.gameOver = true
		close(r.updateCh)
	}
	return nil
}

func (r *Referee) Board() game.Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board
}

func (r *Referee) GameOver() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gameOver
}

// Winner returns the side that moved last once the game is over: its
// opponent is left without a legal move.
func (r *Referee) Winner() game.Piece {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.gameOver {
		return game.Empty
	}
	return r.board.Turn().Opponent()
}

func (r *Referee) Moves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.moves
}
