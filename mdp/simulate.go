package mdp

import (
	"fmt"
	"math/rand"
)

// TransportMode names a shipping option attached to simulated orders.
// Transport is informational: it annotates trajectories and exports but
// does not enter the optimization.
type TransportMode string

const (
	TransportTruck TransportMode = "truck"
	TransportShip  TransportMode = "ship"
	TransportRail  TransportMode = "rail"
	TransportAir   TransportMode = "air"
)

// TransportSpec holds the fixed cost and lead time of a transport mode.
type TransportSpec struct {
	Cost float64 `json:"cost"`
	Time int     `json:"time"` // lead time in periods
}

// transportModes is the fixed catalog of shipping options.
var transportModes = map[TransportMode]TransportSpec{
	TransportTruck: {Cost: 100, Time: 1},
	TransportShip:  {Cost: 50, Time: 3},
	TransportRail:  {Cost: 75, Time: 2},
	TransportAir:   {Cost: 200, Time: 0},
}

// TransportSpecFor looks up a transport mode's spec.
func TransportSpecFor(mode TransportMode) (TransportSpec, bool) {
	spec, ok := transportModes[mode]
	return spec, ok
}

// TransportModes returns the full transport catalog for export.
func TransportModes() map[TransportMode]TransportSpec {
	out := make(map[TransportMode]TransportSpec, len(transportModes))
	for k, v := range transportModes {
		out[k] = v
	}
	return out
}

// TrajectoryStep records one period of a simulated rollout.
type TrajectoryStep struct {
	Step          int           `json:"step"`
	State         int           `json:"state"`
	Action        int           `json:"action"`
	Demand        int           `json:"demand"`
	Reward        float64       `json:"reward"`
	NextState     int           `json:"next_state"`
	TransportMode TransportMode `json:"transport_mode"`
	TransportCost float64       `json:"transport_cost"`
}

// EpisodeResult aggregates a simulated rollout.
type EpisodeResult struct {
	Trajectory    []TrajectoryStep `json:"trajectory"`
	TotalReward   float64          `json:"total_reward"`
	AverageReward float64          `json:"average_reward"`
}

// SimulateEpisode rolls out the solved policy for a number of periods
// starting from initialState, drawing demand from the configured Gaussian
// (truncated toward zero to an integer, floored at 0). It reads the policy
// table but never mutates solver state. Demand draws come from rng, so a
// fixed seed reproduces the trajectory exactly.
func (s *Solver) SimulateEpisode(initialState, steps int, mode TransportMode, rng *rand.Rand) (EpisodeResult, error) {
	if initialState < 0 || initialState > s.cfg.MaxInventory {
		return EpisodeResult{}, fmt.Errorf("initial state %d outside [0, %d]", initialState, s.cfg.MaxInventory)
	}
	if steps < 1 {
		return EpisodeResult{}, fmt.Errorf("steps must be >= 1, got %d", steps)
	}
	spec, ok := TransportSpecFor(mode)
	if !ok {
		return EpisodeResult{}, fmt.Errorf("unknown transport mode %q", mode)
	}

	result := EpisodeResult{Trajectory: make([]TrajectoryStep, 0, steps)}
	state := initialState

	for step := 0; step < steps; step++ {
		action := s.policy[state]
		demand := int(rng.NormFloat64()*s.cfg.DemandStd + s.cfg.DemandMean)
		if demand < 0 {
			demand = 0
		}

		reward := s.reward.Reward(state, action, demand)
		next := clampState(state+action-demand, s.cfg.MaxInventory)

		result.Trajectory = append(result.Trajectory, TrajectoryStep{
			Step:          step,
			State:         state,
			Action:        action,
			Demand:        demand,
			Reward:        reward,
			NextState:     next,
			TransportMode: mode,
			TransportCost: spec.Cost,
		})
		result.TotalReward += reward
		state = next
	}

	result.AverageReward = result.TotalReward / float64(steps)
	return result, nil
}
