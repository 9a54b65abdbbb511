package mdp

// clampState bounds an inventory transition result to the valid state
// range [0, maxInventory]. Excess demand is absorbed at 0 and excess
// stock at capacity, so the result is always a valid table index.
func clampState(v, maxInventory int) int {
	if v < 0 {
		return 0
	}
	if v > maxInventory {
		return maxInventory
	}
	return v
}

// TransitionModel answers next-state probability queries by summing the
// demand masses of every demand level that maps (state, action) onto the
// queried next state. Each query is O(MaxDemand). The solver does not go
// through this type during sweeps; it folds the same summation into the
// Bellman update inline. The two must agree exactly (see the solver tests).
type TransitionModel struct {
	cfg    Config
	demand DemandModel
}

// NewTransitionModel builds a transition model sharing the demand model's
// truncated support.
func NewTransitionModel(cfg Config, demand DemandModel) TransitionModel {
	return TransitionModel{cfg: cfg, demand: demand}
}

// Probability returns P(next | state, action) under the truncated demand
// distribution. For feasible actions the probabilities over all next
// states sum to the total truncated demand mass (about 1).
func (m TransitionModel) Probability(state, action, next int) float64 {
	total := 0.0
	for d := 0; d <= m.demand.MaxDemand(); d++ {
		if clampState(state+action-d, m.cfg.MaxInventory) == next {
			total += m.demand.Probability(d)
		}
	}
	return total
}
