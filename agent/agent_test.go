package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"nogo/game"
	"nogo/searcher"
)

func TestParseMeta(t *testing.T) {
	t.Run("defaults and overrides", func(t *testing.T) {
		m := ParseMeta("name=mcts role=black seed=12")

		require.Equal(t, "mcts", m.Name())
		require.Equal(t, "black", m.Role())
		seed, err := m.Int("seed")
		require.NoError(t, err)
		require.Equal(t, int64(12), seed)
	})

	t.Run("unknown defaults", func(t *testing.T) {
		m := ParseMeta("")
		require.Equal(t, "unknown", m.Name())
		require.Equal(t, "unknown", m.Role())
	})

	t.Run("missing and malformed properties", func(t *testing.T) {
		m := ParseMeta("seed=abc flag")

		_, err := m.Property("search")
		require.True(t, errors.Is(err, ErrInvalidArgument))

		_, err = m.Int("seed")
		require.True(t, errors.Is(err, ErrInvalidArgument))

		value, err := m.Property("flag")
		require.NoError(t, err)
		require.Equal(t, "flag", value, "Bare tokens should map to themselves")
	})

	t.Run("notify sets a property", func(t *testing.T) {
		m := ParseMeta("")
		m.Notify("comment=a=b")

		value, err := m.Property("comment")
		require.NoError(t, err)
		require.Equal(t, "a=b", value, "Only the first = should split")
	})
}

func TestNewPlayer(t *testing.T) {
	t.Run("resolving the role", func(t *testing.T) {
		p, err := NewPlayer("role=white")

		require.NoError(t, err)
		require.Equal(t, game.White, p.Side())
		require.Equal(t, "random", p.Name(), "Name should default to random")
	})

	t.Run("rejecting an unknown role", func(t *testing.T) {
		_, err := NewPlayer("role=red")

		require.True(t, errors.Is(err, ErrInvalidArgument))
		require.ErrorContains(t, err, "invalid role: red")
	})

	t.Run("rejecting a missing role", func(t *testing.T) {
		_, err := NewPlayer("name=x")
		require.ErrorContains(t, err, "invalid role: unknown")
	})

	t.Run("rejecting a reserved name", func(t *testing.T) {
		_, err := NewPlayer("name=a(b) role=black")

		require.True(t, errors.Is(err, ErrInvalidArgument))
		require.ErrorContains(t, err, "invalid name")
	})

	t.Run("rejecting a malformed seed", func(t *testing.T) {
		_, err := NewPlayer("role=black seed=x")
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("loading a policy file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		require.NoError(t, os.WriteFile(path, []byte("narrow:\n  budget: 30\n"), 0644))

		_, err := NewPlayer("role=black policy=" + path)
		require.NoError(t, err)

		_, err = NewPlayer("role=black policy=" + filepath.Join(t.TempDir(), "missing.yaml"))
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestPlayerTakeAction(t *testing.T) {
	t.Run("drawing a legal move on an open board", func(t *testing.T) {
		p, err := NewPlayer("role=black seed=1", searcher.WithMetrics())
		require.NoError(t, err)
		b := game.NewBoard()

		move := p.TakeAction(b)

		require.Equal(t, game.Black, move.Who)
		require.Equal(t, game.Legal, move.Apply(&b))
		require.True(t, p.LastMetric().FastPath)
	})

	t.Run("same seed plays the same move", func(t *testing.T) {
		b := game.NewBoard()
		p1, err := NewPlayer("role=black seed=5")
		require.NoError(t, err)
		p2, err := NewPlayer("role=black seed=5")
		require.NoError(t, err)

		require.Equal(t, p1.TakeAction(b), p2.TakeAction(b))
	})
}

func TestRandomPlayer(t *testing.T) {
	p, err := NewRandomPlayer("role=white seed=3")
	require.NoError(t, err)

	b := game.NewBoard()
	require.Equal(t, game.Legal, b.Place(40))

	move := p.TakeAction(b)

	require.Equal(t, game.White, move.Who)
	require.Equal(t, game.Legal, move.Apply(&b))

	_, err = NewRandomPlayer("role=none")
	require.True(t, errors.Is(err, ErrInvalidArgument))
}
