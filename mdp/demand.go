package mdp

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// DemandModel evaluates the per-period demand distribution at integer
// demand levels. Demand is conceptually continuous Gaussian; the model
// samples its density at integer points and uses those values directly
// as probability masses. The masses are deliberately NOT normalized over
// the truncated support, so the per-state expectations carry the same
// magnitudes as the reference model. Callers bound their demand sums by
// MaxDemand().
type DemandModel struct {
	dist      distuv.Normal
	maxDemand int
}

// NewDemandModel builds a demand model from the configured mean and std dev.
// The support is truncated at mean + 4 std devs, where the omitted Gaussian
// tail mass is about 3e-5.
func NewDemandModel(cfg Config) DemandModel {
	return DemandModel{
		dist:      distuv.Normal{Mu: cfg.DemandMean, Sigma: cfg.DemandStd},
		maxDemand: int(cfg.DemandMean + 4*cfg.DemandStd),
	}
}

// Probability returns the demand mass at integer demand d. Negative demand
// has probability 0. Pure function of the configuration and d.
func (m DemandModel) Probability(d int) float64 {
	if d < 0 {
		return 0
	}
	return m.dist.Prob(float64(d))
}

// MaxDemand returns the inclusive upper bound of the truncated support.
func (m DemandModel) MaxDemand() int {
	return m.maxDemand
}
