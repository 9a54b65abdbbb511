package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restock-sim/restock-sim/mdp"
)

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_FillsDefaultsForUnsetFields(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  lean:
    holding_cost: 8
    demand_std: 1.5
`)

	cfg, err := LoadScenario(path, "lean")
	require.NoError(t, err)

	want := mdp.DefaultConfig()
	want.HoldingCost = 8
	want.DemandStd = 1.5
	assert.Equal(t, want, cfg)
}

func TestLoadScenario_FullOverride(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  tiny:
    max_inventory: 20
    order_cost: 10
    unit_surcharge: 1
    holding_cost: 1
    stockout_cost: 50
    selling_price: 9
    demand_mean: 4
    demand_std: 1
    discount: 0.9
`)

	cfg, err := LoadScenario(path, "tiny")
	require.NoError(t, err)
	assert.Equal(t, mdp.Config{
		MaxInventory:  20,
		OrderCost:     10,
		UnitSurcharge: 1,
		HoldingCost:   1,
		StockoutCost:  50,
		SellingPrice:  9,
		DemandMean:    4,
		DemandStd:     1,
		Discount:      0.9,
	}, cfg)
}

func TestLoadScenario_UnknownFieldIsAnError(t *testing.T) {
	// Strict decoding: preset typos must fail rather than silently default.
	path := writeScenarios(t, `
version: "1"
scenarios:
  typo:
    holdng_cost: 8
`)

	_, err := LoadScenario(path, "typo")
	assert.Error(t, err)
}

func TestLoadScenario_MissingScenario(t *testing.T) {
	path := writeScenarios(t, `
version: "1"
scenarios:
  baseline:
    holding_cost: 2
`)

	_, err := LoadScenario(path, "nope")
	assert.Error(t, err)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"), "any")
	assert.Error(t, err)
}

func TestLoadScenario_RepositoryPresetsParse(t *testing.T) {
	// The checked-in presets must stay loadable and valid.
	for _, name := range []string{"baseline", "high-stockout", "costly-storage", "small-shop"} {
		cfg, err := LoadScenario("../scenarios.yaml", name)
		require.NoError(t, err, "scenario %s", name)
		assert.NoError(t, cfg.Validate(), "scenario %s", name)
	}
}
