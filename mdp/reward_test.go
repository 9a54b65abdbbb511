package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rewardTestConfig() Config {
	cfg := DefaultConfig()
	cfg.OrderCost = 50
	cfg.UnitSurcharge = 5
	cfg.HoldingCost = 2
	cfg.StockoutCost = 20
	cfg.SellingPrice = 15
	return cfg
}

func TestRewardModel_Reward(t *testing.T) {
	m := NewRewardModel(rewardTestConfig())

	tests := []struct {
		name                  string
		state, action, demand int
		want                  float64
	}{
		{
			// sales=5, revenue=75, holding=20, no order, no stockout
			name:  "demand below stock without ordering",
			state: 10, action: 0, demand: 5,
			want: 75 - 20,
		},
		{
			// zero action must not incur the fixed order cost
			name:  "zero order is free",
			state: 0, action: 0, demand: 0,
			want: 0,
		},
		{
			// ordering 4 units: fixed 50 plus 4*5 surcharge
			name:  "order cost is fixed plus per-unit surcharge",
			state: 0, action: 4, demand: 0,
			want: -(50 + 4*5),
		},
		{
			// demand 12 against stock 10: sales capped at 10, 2 short
			name:  "stockout penalty on unmet demand",
			state: 10, action: 0, demand: 12,
			want: 10*15 - 10*2 - 2*20,
		},
		{
			// holding is charged on pre-sale stock even when all of it sells
			name:  "holding charged on pre-sale inventory",
			state: 8, action: 0, demand: 8,
			want: 8*15 - 8*2,
		},
		{
			// everything at once
			name:  "combined",
			state: 3, action: 7, demand: 5,
			want: 3*15 - 3*2 - (50 + 7*5) - 2*20,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, m.Reward(tc.state, tc.action, tc.demand), 1e-12)
		})
	}
}

func TestRewardModel_PureFunction(t *testing.T) {
	m := NewRewardModel(rewardTestConfig())
	first := m.Reward(7, 3, 9)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, m.Reward(7, 3, 9))
	}
}
