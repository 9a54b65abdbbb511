package mdp

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// SolveState tracks where the solver is in its lifecycle.
type SolveState string

const (
	// SolveRunning means a solve is in progress (or none has completed yet).
	SolveRunning SolveState = "running"
	// SolveConverged means the last solve reached delta < epsilon.
	SolveConverged SolveState = "converged"
	// SolveMaxIterationsReached means the last solve hit the sweep cutoff
	// without converging. The tables still hold the best policy found.
	SolveMaxIterationsReached SolveState = "max-iterations-reached"
)

// SweepStats records per-sweep convergence diagnostics.
type SweepStats struct {
	Iteration int     `json:"iteration"`
	Delta     float64 `json:"delta"`
	MaxValue  float64 `json:"max_value"`
	MinValue  float64 `json:"min_value"`
}

// ConvergenceRecord summarizes a completed Solve call.
type ConvergenceRecord struct {
	Converged  bool         `json:"converged"`
	Iterations int          `json:"iterations"`
	FinalDelta float64      `json:"final_delta"`
	History    []SweepStats `json:"history"`
}

// Solver runs value iteration over the inventory MDP. It exclusively owns
// its value, policy, and Q-value buffers; nothing else mutates them.
// Not safe for concurrent use.
type Solver struct {
	cfg    Config
	demand DemandModel
	reward RewardModel

	state  SolveState
	value  []float64 // state -> expected discounted profit-to-go
	policy []int     // state -> best order quantity
	q      [][]float64
}

// NewSolver validates the configuration and allocates zeroed value, policy,
// and Q tables.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solver config: %w", err)
	}
	s := &Solver{
		cfg:    cfg,
		demand: NewDemandModel(cfg),
		reward: NewRewardModel(cfg),
		state:  SolveRunning,
	}
	s.allocate()
	return s, nil
}

func (s *Solver) allocate() {
	n := s.cfg.NumStates()
	s.value = make([]float64, n)
	s.policy = make([]int, n)
	s.q = make([][]float64, n)
	for i := range s.q {
		s.q[i] = make([]float64, n)
	}
}

// Reset re-zeros the value, policy, and Q tables so the solver can be run
// again from scratch.
func (s *Solver) Reset() {
	s.allocate()
	s.state = SolveRunning
}

// Solve runs in-place value iteration until the max absolute per-state
// value change in a sweep drops below epsilon, or maxIterations sweeps
// complete. Non-convergence is reported through the record, not as an
// error: the tables hold the best policy found so far either way.
//
// Sweeps update states in increasing order and later states see earlier
// updates from the same sweep immediately (Gauss-Seidel). The per-state
// delta is measured against that state's value from before its update.
func (s *Solver) Solve(epsilon float64, maxIterations int) (ConvergenceRecord, error) {
	if epsilon <= 0 {
		return ConvergenceRecord{}, fmt.Errorf("epsilon must be > 0, got %v", epsilon)
	}
	if maxIterations < 1 {
		return ConvergenceRecord{}, fmt.Errorf("max iterations must be >= 1, got %d", maxIterations)
	}

	s.state = SolveRunning
	record := ConvergenceRecord{History: make([]SweepStats, 0, 16)}

	var delta float64
	for iter := 0; iter < maxIterations; iter++ {
		delta = 0
		for state := 0; state <= s.cfg.MaxInventory; state++ {
			newValue, bestAction := s.bellmanUpdate(state)
			if d := math.Abs(s.value[state] - newValue); d > delta {
				delta = d
			}
			s.value[state] = newValue
			s.policy[state] = bestAction
		}

		maxV, minV := s.value[0], s.value[0]
		for _, v := range s.value[1:] {
			maxV = math.Max(maxV, v)
			minV = math.Min(minV, v)
		}
		record.History = append(record.History, SweepStats{
			Iteration: iter + 1,
			Delta:     delta,
			MaxValue:  maxV,
			MinValue:  minV,
		})
		record.Iterations = iter + 1
		logrus.Debugf("sweep %d: delta=%.6f value range [%.2f, %.2f]", iter+1, delta, minV, maxV)

		if delta < epsilon {
			break
		}
	}

	record.FinalDelta = delta
	record.Converged = delta < epsilon
	if record.Converged {
		s.state = SolveConverged
		logrus.Infof("value iteration converged after %d sweeps (delta=%.6f)", record.Iterations, delta)
	} else {
		s.state = SolveMaxIterationsReached
		logrus.Warnf("value iteration stopped at sweep cutoff %d (delta=%.6f)", maxIterations, delta)
	}
	return record, nil
}

// bellmanUpdate computes the best action and its expected value for one
// state against the current value table. Actions are scanned in increasing
// order with a strict > comparison, so ties resolve to the smallest order
// quantity. Q-values for every feasible action are recorded as a side
// effect.
func (s *Solver) bellmanUpdate(state int) (float64, int) {
	maxDemand := s.demand.MaxDemand()
	best := math.Inf(-1)
	bestAction := 0

	for action := 0; action <= s.cfg.MaxInventory-state; action++ {
		expected := 0.0
		for d := 0; d <= maxDemand; d++ {
			prob := s.demand.Probability(d)
			reward := s.reward.Reward(state, action, d)
			next := clampState(state+action-d, s.cfg.MaxInventory)
			expected += prob * (reward + s.cfg.Discount*s.value[next])
		}
		s.q[state][action] = expected

		if expected > best {
			best = expected
			bestAction = action
		}
	}
	return best, bestAction
}

// Config returns the immutable configuration the solver was built with.
func (s *Solver) Config() Config {
	return s.cfg
}

// State reports the solver lifecycle state after the last Solve call.
func (s *Solver) State() SolveState {
	return s.state
}

// NumStates returns the number of inventory levels in the state space.
func (s *Solver) NumStates() int {
	return s.cfg.NumStates()
}

// Value returns the estimated discounted profit-to-go for a state.
func (s *Solver) Value(state int) float64 {
	return s.value[state]
}

// Action returns the solved order quantity for a state.
func (s *Solver) Action(state int) int {
	return s.policy[state]
}

// QValue returns the expected value of taking a given action in a state,
// as recorded during the most recent sweep.
func (s *Solver) QValue(state, action int) float64 {
	return s.q[state][action]
}
