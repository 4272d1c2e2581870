package searcher

import (
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Hyperparameters for the search, chosen empirically

const (
	FastPathThreshold  = 50    // Legal moves at or above which the move is drawn at random
	WideThreshold      = 10    // Legal moves at or above which the wide budget applies
	WideBudget         = 250   // Arena size for 10 to 49 legal moves
	NarrowBudget       = 100   // Arena size below 10 legal moves
	ExplorationParam   = 1.414 // UCB exploration constant
	RolloutRepetitions = 1     // Rollouts per arena node
)

// Params tunes one search.
type Params struct {
	Budget      int     `yaml:"budget"`
	Exploration float64 `yaml:"exploration"`
	Repetitions int     `yaml:"repetitions"`
}

// Policy decides from the root's legal move count whether to search and how.
type Policy struct {
	FastPathThreshold int    `yaml:"fast_path_threshold"`
	WideThreshold     int    `yaml:"wide_threshold"`
	Wide              Params `yaml:"wide"`
	Narrow            Params `yaml:"narrow"`
}

func DefaultPolicy() Policy {
	return Policy{
		FastPathThreshold: FastPathThreshold,
		WideThreshold:     WideThreshold,
		Wide:              Params{Budget: WideBudget, Exploration: ExplorationParam, Repetitions: RolloutRepetitions},
		Narrow:            Params{Budget: NarrowBudget, Exploration: ExplorationParam, Repetitions: RolloutRepetitions},
	}
}

// Decide returns the search parameters for a root with legal moves, or
// fast = true when the move should be drawn uniformly instead.
func (p Policy) Decide(legal int) (params Params, fast bool) {
	switch {
	case legal >= p.FastPathThreshold:
		return Params{}, true
	case legal >= p.WideThreshold:
		return p.Wide, false
	default:
		return p.Narrow, false
	}
}

func (p Policy) Validate() error {
	var result error
	if p.WideThreshold < 0 {
		result = multierror.Append(result, errors.Errorf("wide threshold %d must not be negative", p.WideThreshold))
	}
	if p.FastPathThreshold <= p.WideThreshold {
		result = multierror.Append(result, errors.Errorf("fast path threshold %d must exceed wide threshold %d", p.FastPathThreshold, p.WideThreshold))
	}
	if err := p.Wide.validate(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "wide params"))
	}
	if err := p.Narrow.validate(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "narrow params"))
	}
	return result
}

func (p Params) validate() error {
	var result error
	if p.Budget < 1 {
		result = multierror.Append(result, errors.Errorf("budget %d must be positive", p.Budget))
	}
	if p.Exploration < 0 || math.IsNaN(p.Exploration) || math.IsInf(p.Exploration, 0) {
		result = multierror.Append(result, errors.Errorf("exploration %v must be a non-negative number", p.Exploration))
	}
	if p.Repetitions < 1 {
		result = multierror.Append(result, errors.Errorf("repetitions %d must be positive", p.Repetitions))
	}
	return result
}

// ParsePolicy reads a YAML policy. Omitted fields keep their defaults.
func ParsePolicy(data []byte) (Policy, error) {
	policy := DefaultPolicy()
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return Policy{}, errors.Wrap(err, "failed to parse policy")
	}
	if err := policy.Validate(); err != nil {
		return Policy{}, errors.Wrap(err, "invalid policy")
	}
	return policy, nil
}

func LoadPolicy(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, errors.Wrapf(err, "failed to read policy %s", path)
	}
	return ParsePolicy(data)
}

type uct struct {
	numerator float64
}

func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + c*sqrt(ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// perspective names the side whose outcome a node's score measures.
type perspective int

const (
	// The side to move at the root, credited with rollout wins
	rootSide perspective = iota
	// The other side
	otherSide
)

// perspectiveAt returns who made the move leading to a node at depth.
// Odd depths are reached by a move of the root side.
func perspectiveAt(depth int) perspective {
	if depth%2 == 1 {
		return rootSide
	}
	return otherSide
}

// rewards converts root-side wins into the rewards of this perspective.
func (p perspective) rewards(wins, visits int) float64 {
	if p == rootSide {
		return float64(wins)
	}
	return float64(visits - wins)
}
