package experiments

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"nogo/agent"
	"nogo/engine"
	"nogo/experiments/metrics"
	"nogo/game"
	"nogo/searcher"
)

// Setup describes an experiment: every matchup plays Games games, the two
// agents swapping colors after each game.
type Setup struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][2]int              `yaml:"matchups"` // Pairs of AgentConfig.ID
}

func ParseSetup(data []byte) (Setup, error) {
	setup := Setup{Name: "experiment", Games: 1}
	if err := yaml.Unmarshal(data, &setup); err != nil {
		return Setup{}, errors.Wrap(err, "failed to parse setup")
	}
	if err := setup.Validate(); err != nil {
		return Setup{}, err
	}
	return setup, nil
}

func LoadSetup(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, errors.Wrapf(err, "failed to read setup %s", path)
	}
	return ParseSetup(data)
}

// Validate reports every problem of the setup at once.
func (s Setup) Validate() error {
	var result error
	if s.Name == "" {
		result = multierror.Append(result, errors.New("name must not be empty"))
	}
	if s.Games < 1 {
		result = multierror.Append(result, errors.Errorf("games must be positive, got %d", s.Games))
	}
	ids := map[int]bool{}
	for _, config := range s.Agents {
		if ids[config.ID] {
			result = multierror.Append(result, errors.Errorf("duplicate agent id %d", config.ID))
		}
		ids[config.ID] = true
	}
	if len(s.Matchups) == 0 {
		result = multierror.Append(result, errors.New("no matchups"))
	}
	for i, matchup := range s.Matchups {
		for _, id := range matchup {
			if !ids[id] {
				result = multierror.Append(result, errors.Errorf("matchup %d references unknown agent %d", i, id))
			}
		}
	}
	return result
}

func (s Setup) agent(id int) metrics.AgentConfig {
	for _, config := range s.Agents {
		if config.ID == id {
			return config
		}
	}
	panic(fmt.Sprintf("unknown agent %d", id))
}

// Run plays every matchup of setup, stores the records through writer and
// returns the per-agent summaries.
func Run(setup Setup, writer *metrics.Writer) ([]metrics.AgentSummary, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", setup.Name)

	for mi, matchup := range setup.Matchups {
		config1 := setup.agent(matchup[0])
		config2 := setup.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(setup.Matchups), config1, config2)

		for i := 0; i < setup.Games; i++ {
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(setup.Matchups), i+1, setup.Games)

			winner, gameMetric, moveMetrics, err := runGame(black, white)
			if err != nil {
				return nil, errors.Wrapf(err, "matchup %d game %d", mi+1, i+1)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				id := black.ID
				if mm.Player == game.White {
					id = white.ID
				}
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					Agent:      id,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(setup.Matchups), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(setup.Matchups))
	}

	log.Info().Msgf("completed %s experiment", setup.Name)

	if err := writer.WriteAgentConfigs(setup.Agents); err != nil {
		return nil, err
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, err
	}
	log.Info().Msg("stored move records")

	summaries := metrics.Summarize(gameRecords, moveRecords)
	for _, s := range summaries {
		log.Info().Msgf("agent %d: won %d of %d (%.2f), %d moves (%d fast), %.4fs ± %.4fs per move",
			s.Agent, s.Wins, s.Games, s.WinRate, s.Moves, s.FastPath, s.MeanMove, s.StdMove)
	}
	return summaries, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(black, white metrics.AgentConfig) (game.Piece, metrics.GameMetric, []metrics.MoveMetric, error) {
	b, err := NewAgent(black, game.Black)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	w, err := NewAgent(white, game.White)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}

	winner, gameMetric, moveMetrics := engine.NewLocalEngine(b, w).Run()
	return winner, gameMetric, moveMetrics, nil
}

// NewAgent builds the agent described by config for side. Arguments with
// agent=random select the random baseline, anything else a searching player
// built with options.
func NewAgent(config metrics.AgentConfig, side game.Piece, options ...searcher.Option) (agent.Agent, error) {
	args := fmt.Sprintf("%s role=%s", config.Args, side)
	if config.Policy != "" {
		args += " policy=" + config.Policy
	}
	if kind, err := agent.ParseMeta(config.Args).Property("agent"); err == nil && kind == "random" {
		return agent.NewRandomPlayer(args)
	}
	return agent.NewPlayer(args, append([]searcher.Option{searcher.WithMetrics()}, options...)...)
}
