package experiments

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"nogo/experiments/metrics"
	"nogo/searcher"
)

// BudgetSweep builds a setup pairing a default-policy baseline against one
// agent per expansion budget. The policies are written as YAML files to dir.
func BudgetSweep(games int, budgets []int, dir string) (Setup, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Setup{}, errors.Wrap(err, "failed to create policy directory")
	}

	baseline := metrics.AgentConfig{ID: 0, Args: "name=baseline"}
	setup := Setup{
		Name:   "budget_sweep",
		Games:  games,
		Agents: []metrics.AgentConfig{baseline},
	}
	for i, budget := range budgets {
		policy := searcher.DefaultPolicy()
		policy.Wide.Budget = budget
		policy.Narrow.Budget = budget
		if err := policy.Validate(); err != nil {
			return Setup{}, errors.Wrapf(err, "budget %d", budget)
		}

		data, err := yaml.Marshal(policy)
		if err != nil {
			return Setup{}, errors.Wrap(err, "failed to encode policy")
		}
		path := filepath.Join(dir, fmt.Sprintf("policy_%d.yaml", budget))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Setup{}, errors.Wrapf(err, "failed to write %s", path)
		}

		config := metrics.AgentConfig{ID: i + 1, Args: fmt.Sprintf("name=budget%d", budget), Policy: path}
		setup.Agents = append(setup.Agents, config)
		setup.Matchups = append(setup.Matchups, [2]int{baseline.ID, config.ID})
	}
	return setup, setup.Validate()
}
