package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"nogo/game"
)

func TestCollector(t *testing.T) {
	t.Run("collecting a search", func(t *testing.T) {
		c := NewCollector()
		c.Start(12)
		c.SetBudget(250)
		c.SetNodes(300)
		c.AddRollout(10)
		c.AddRollout(4)

		got := c.Complete()

		require.Equal(t, 12, got.Legal)
		require.False(t, got.FastPath)
		require.Equal(t, 250, got.Budget)
		require.Equal(t, 300, got.Nodes)
		require.Equal(t, 2, got.Rollouts)
		require.Equal(t, 14, got.Plies)
	})

	t.Run("restarting resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(60)
		c.SetFastPath()
		c.AddRollout(3)
		c.Start(5)

		got := c.Complete()

		require.Equal(t, 5, got.Legal)
		require.False(t, got.FastPath)
		require.Zero(t, got.Rollouts)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddRollout(3)
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Args: "name=a seed=1"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{ID: 1, Black: 1, White: 2, GameMetric: GameMetric{Winner: game.White}}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{Game: 1, Agent: 1, MoveMetric: MoveMetric{Step: 1, Player: game.Black}}}))

	f, err := os.Open(filepath.Join(w.Dir(), "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "Should write a header and one row")
	require.Equal(t, "white", rows[1][4])
}

func TestSummarize(t *testing.T) {
	games := []GameRecord{
		{ID: 1, Black: 1, White: 2, GameMetric: GameMetric{Winner: game.Black}},
		{ID: 2, Black: 2, White: 1, GameMetric: GameMetric{Winner: game.Black}},
	}
	moves := []MoveRecord{
		{Game: 1, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Duration: time.Second}}},
		{Game: 1, Agent: 1, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Duration: 3 * time.Second, FastPath: true}}},
		{Game: 1, Agent: 2, MoveMetric: MoveMetric{SearchMetric: SearchMetric{Duration: 2 * time.Second}}},
	}

	got := Summarize(games, moves)

	require.Len(t, got, 2)
	require.Equal(t, 1, got[0].Agent)
	require.Equal(t, 2, got[0].Games)
	require.Equal(t, 1, got[0].Wins)
	require.InDelta(t, 0.5, got[0].WinRate, 1e-9)
	require.Equal(t, 1, got[0].FastPath)
	require.InDelta(t, 2.0, got[0].MeanMove, 1e-9)
	require.Greater(t, got[0].StdMove, 0.0)
	require.InDelta(t, 2.0, got[1].MeanMove, 1e-9, "Single move should report its own duration")
	require.Zero(t, got[1].StdMove)
}
