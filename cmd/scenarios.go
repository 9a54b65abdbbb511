package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/restock-sim/restock-sim/mdp"
)

// Scenario is one named preset in the scenarios file. Zero-valued fields
// fall back to the package defaults, so presets only need to list what
// they change.
type Scenario struct {
	MaxInventory  int     `yaml:"max_inventory"`
	OrderCost     float64 `yaml:"order_cost"`
	UnitSurcharge float64 `yaml:"unit_surcharge"`
	HoldingCost   float64 `yaml:"holding_cost"`
	StockoutCost  float64 `yaml:"stockout_cost"`
	SellingPrice  float64 `yaml:"selling_price"`
	DemandMean    float64 `yaml:"demand_mean"`
	DemandStd     float64 `yaml:"demand_std"`
	Discount      float64 `yaml:"discount"`
}

// ScenarioFile is the full scenarios.yaml structure. All top-level
// sections must be listed to satisfy KnownFields(true) strict parsing.
type ScenarioFile struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// loadScenarioFile parses a scenarios YAML file with strict field
// checking, so preset typos cause errors instead of silent defaults.
func loadScenarioFile(path string) (ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ScenarioFile{}, fmt.Errorf("read scenarios file: %w", err)
	}
	var file ScenarioFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return ScenarioFile{}, fmt.Errorf("parse scenarios YAML: %w", err)
	}
	return file, nil
}

// LoadScenario resolves a named preset into a full configuration,
// filling unset fields from the package defaults.
func LoadScenario(path, name string) (mdp.Config, error) {
	file, err := loadScenarioFile(path)
	if err != nil {
		return mdp.Config{}, err
	}
	sc, ok := file.Scenarios[name]
	if !ok {
		return mdp.Config{}, fmt.Errorf("scenario %q not found in %s", name, path)
	}
	return sc.apply(mdp.DefaultConfig()), nil
}

// apply overlays the scenario's non-zero fields onto base.
func (sc Scenario) apply(base mdp.Config) mdp.Config {
	if sc.MaxInventory != 0 {
		base.MaxInventory = sc.MaxInventory
	}
	if sc.OrderCost != 0 {
		base.OrderCost = sc.OrderCost
	}
	if sc.UnitSurcharge != 0 {
		base.UnitSurcharge = sc.UnitSurcharge
	}
	if sc.HoldingCost != 0 {
		base.HoldingCost = sc.HoldingCost
	}
	if sc.StockoutCost != 0 {
		base.StockoutCost = sc.StockoutCost
	}
	if sc.SellingPrice != 0 {
		base.SellingPrice = sc.SellingPrice
	}
	if sc.DemandMean != 0 {
		base.DemandMean = sc.DemandMean
	}
	if sc.DemandStd != 0 {
		base.DemandStd = sc.DemandStd
	}
	if sc.Discount != 0 {
		base.Discount = sc.Discount
	}
	return base
}
