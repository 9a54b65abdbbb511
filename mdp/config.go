package mdp

import "fmt"

// Config groups the economic and demand parameters of the inventory MDP.
// It is set once at solver construction and never mutated afterwards.
type Config struct {
	MaxInventory  int     `json:"max_inventory" yaml:"max_inventory"`   // capacity bound; states run 0..MaxInventory (must be >= 1)
	OrderCost     float64 `json:"order_cost" yaml:"order_cost"`         // fixed cost charged whenever a positive order is placed
	UnitSurcharge float64 `json:"unit_surcharge" yaml:"unit_surcharge"` // per-unit ordering surcharge on top of OrderCost
	HoldingCost   float64 `json:"holding_cost" yaml:"holding_cost"`     // cost per unit on hand per period (charged on pre-sale inventory)
	StockoutCost  float64 `json:"stockout_cost" yaml:"stockout_cost"`   // penalty per unit of unmet demand
	SellingPrice  float64 `json:"selling_price" yaml:"selling_price"`   // revenue per unit sold
	DemandMean    float64 `json:"demand_mean" yaml:"demand_mean"`       // mean of the Gaussian demand per period (must be >= 0)
	DemandStd     float64 `json:"demand_std" yaml:"demand_std"`         // std dev of the Gaussian demand (must be > 0)
	Discount      float64 `json:"gamma" yaml:"discount"`                // discount factor gamma in (0, 1]
}

// DefaultConfig returns the baseline parameterization.
func DefaultConfig() Config {
	return Config{
		MaxInventory:  100,
		OrderCost:     50,
		UnitSurcharge: 5,
		HoldingCost:   2,
		StockoutCost:  20,
		SellingPrice:  15,
		DemandMean:    10,
		DemandStd:     3,
		Discount:      0.95,
	}
}

// Validate checks the preconditions the solver depends on. The fixed point
// of the Bellman operator is only well-defined for Discount in (0, 1], and
// the demand distribution degenerates for non-positive DemandStd.
func (c Config) Validate() error {
	if c.MaxInventory < 1 {
		return fmt.Errorf("max inventory must be >= 1, got %d", c.MaxInventory)
	}
	if c.Discount <= 0 || c.Discount > 1 {
		return fmt.Errorf("discount factor must be in (0, 1], got %v", c.Discount)
	}
	if c.DemandMean < 0 {
		return fmt.Errorf("demand mean must be >= 0, got %v", c.DemandMean)
	}
	if c.DemandStd <= 0 {
		return fmt.Errorf("demand std dev must be > 0, got %v", c.DemandStd)
	}
	return nil
}

// NumStates returns the size of the state space (inventory levels 0..MaxInventory).
func (c Config) NumStates() int {
	return c.MaxInventory + 1
}
