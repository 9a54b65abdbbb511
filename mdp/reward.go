package mdp

// RewardModel computes the single-period profit for a (state, action,
// realized demand) triple. Stateless; safe to copy.
type RewardModel struct {
	cfg Config
}

// NewRewardModel builds a reward model over the given configuration.
func NewRewardModel(cfg Config) RewardModel {
	return RewardModel{cfg: cfg}
}

// Reward returns revenue minus holding, ordering, and stockout costs for
// one period. Holding cost is charged on the pre-sale on-hand inventory
// (the state), not on the post-sale remainder.
func (m RewardModel) Reward(state, action, demand int) float64 {
	sales := min(state, demand)
	revenue := float64(sales) * m.cfg.SellingPrice
	holding := float64(state) * m.cfg.HoldingCost

	var ordering float64
	if action > 0 {
		ordering = m.cfg.OrderCost + float64(action)*m.cfg.UnitSurcharge
	}

	shortfall := max(0, demand-state)
	stockout := float64(shortfall) * m.cfg.StockoutCost

	return revenue - holding - ordering - stockout
}
