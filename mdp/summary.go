package mdp

// SSPolicy is the two-parameter reorder rule derived from a solved policy
// table: reorder when inventory falls to or below S_small, order up to
// S_large.
type SSPolicy struct {
	ReorderPoint int `json:"s"` // highest state at which the policy still orders
	OrderUpTo    int `json:"S"` // mean post-order level over ordering states, floored
}

// SummarizePolicy reduces the per-state policy table to an (s, S) rule.
// Over all states with a positive order, s is the largest such state and
// S is the floor of the mean of state+order. If the solved policy never
// orders, the fallback is s = capacity/3 and S = 2*capacity/3 (integer
// division) -- a safeguard for degenerate configurations where ordering
// is never profitable, not a modeled business rule.
func (s *Solver) SummarizePolicy() SSPolicy {
	reorderPoint := -1
	sumUpTo := 0
	count := 0

	for state := 0; state <= s.cfg.MaxInventory; state++ {
		if s.policy[state] > 0 {
			if state > reorderPoint {
				reorderPoint = state
			}
			sumUpTo += state + s.policy[state]
			count++
		}
	}

	if count == 0 {
		return SSPolicy{
			ReorderPoint: s.cfg.MaxInventory / 3,
			OrderUpTo:    2 * s.cfg.MaxInventory / 3,
		}
	}
	return SSPolicy{
		ReorderPoint: reorderPoint,
		OrderUpTo:    sumUpTo / count,
	}
}
