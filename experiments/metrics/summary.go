package metrics

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"nogo/game"
)

type AgentSummary struct {
	Agent    int
	Games    int
	Wins     int
	WinRate  float64
	Moves    int
	FastPath int
	MeanMove float64 // Seconds per move
	StdMove  float64
}

// Summarize aggregates game and move records per agent, ordered by agent ID.
func Summarize(games []GameRecord, moves []MoveRecord) []AgentSummary {
	byAgent := map[int]*AgentSummary{}
	get := func(id int) *AgentSummary {
		s, ok := byAgent[id]
		if !ok {
			s = &AgentSummary{Agent: id}
			byAgent[id] = s
		}
		return s
	}

	for _, g := range games {
		black, white := get(g.Black), get(g.White)
		black.Games++
		white.Games++
		switch g.Winner {
		case game.Black:
			black.Wins++
		case game.White:
			white.Wins++
		}
	}

	durations := map[int][]float64{}
	for _, m := range moves {
		s := get(m.Agent)
		s.Moves++
		if m.FastPath {
			s.FastPath++
		}
		durations[m.Agent] = append(durations[m.Agent], m.Duration.Seconds())
	}

	summaries := make([]AgentSummary, 0, len(byAgent))
	for id, s := range byAgent {
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games)
		}
		switch xs := durations[id]; {
		case len(xs) > 1:
			s.MeanMove, s.StdMove = stat.MeanStdDev(xs, nil)
		case len(xs) == 1:
			s.MeanMove = xs[0]
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Agent < summaries[j].Agent })
	return summaries
}
