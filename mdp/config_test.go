package mdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Values(t *testing.T) {
	got := DefaultConfig()
	want := Config{
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
	assert.Equal(t, want, got)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"undiscounted gamma=1 is valid", func(c *Config) { c.Discount = 1 }, false},
		{"zero capacity", func(c *Config) { c.MaxInventory = 0 }, true},
		{"negative capacity", func(c *Config) { c.MaxInventory = -5 }, true},
		{"zero discount", func(c *Config) { c.Discount = 0 }, true},
		{"discount above one", func(c *Config) { c.Discount = 1.2 }, true},
		{"negative demand mean", func(c *Config) { c.DemandMean = -1 }, true},
		{"zero demand std", func(c *Config) { c.DemandStd = 0 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_NumStates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInventory = 10
	assert.Equal(t, 11, cfg.NumStates())
}

func TestNewSolver_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Discount = 0
	_, err := NewSolver(cfg)
	assert.Error(t, err)
}
