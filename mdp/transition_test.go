package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func transitionTestConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxInventory = 15
	cfg.DemandMean = 5
	cfg.DemandStd = 2
	return cfg
}

func TestTransitionModel_RowsSumToTruncatedMass(t *testing.T) {
	// GIVEN a transition model over a small state space
	cfg := transitionTestConfig()
	demand := NewDemandModel(cfg)
	m := NewTransitionModel(cfg, demand)

	totalMass := 0.0
	for d := 0; d <= demand.MaxDemand(); d++ {
		totalMass += demand.Probability(d)
	}

	// THEN for every state and feasible action the next-state probabilities
	// sum to the total truncated demand mass (about 1)
	for state := 0; state <= cfg.MaxInventory; state++ {
		for action := 0; action <= cfg.MaxInventory-state; action++ {
			rowSum := 0.0
			for next := 0; next <= cfg.MaxInventory; next++ {
				rowSum += m.Probability(state, action, next)
			}
			assert.InDelta(t, totalMass, rowSum, 1e-9, "state=%d action=%d", state, action)
			assert.InDelta(t, 1.0, rowSum, 0.02, "state=%d action=%d", state, action)
		}
	}
}

func TestTransitionModel_ClampAccumulatesBoundaryMass(t *testing.T) {
	cfg := transitionTestConfig()
	demand := NewDemandModel(cfg)
	m := NewTransitionModel(cfg, demand)

	// From state 2 with no order, every demand >= 2 lands at 0.
	want := 0.0
	for d := 2; d <= demand.MaxDemand(); d++ {
		want += demand.Probability(d)
	}
	assert.InDelta(t, want, m.Probability(2, 0, 0), 1e-12)

	// Unreachable next states carry zero probability.
	assert.Zero(t, m.Probability(2, 0, 3))
	assert.Zero(t, m.Probability(2, 0, cfg.MaxInventory))
}

func TestTransitionModel_SingleDemandLevel(t *testing.T) {
	cfg := transitionTestConfig()
	demand := NewDemandModel(cfg)
	m := NewTransitionModel(cfg, demand)

	// Interior transition reachable by exactly one demand value:
	// state 10 + action 2 - demand 4 = next 8.
	assert.InDelta(t, demand.Probability(4), m.Probability(10, 2, 8), 1e-12)
}

func TestClampState(t *testing.T) {
	assert.Equal(t, 0, clampState(-3, 10))
	assert.Equal(t, 0, clampState(0, 10))
	assert.Equal(t, 7, clampState(7, 10))
	assert.Equal(t, 10, clampState(10, 10))
	assert.Equal(t, 10, clampState(25, 10))
}
