package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/restock-sim/restock-sim/mdp"
)

var (
	// CLI flags for the inventory model
	capacity      int     // Max inventory level (state space upper bound)
	orderCost     float64 // Fixed cost per order placed
	unitSurcharge float64 // Per-unit ordering surcharge
	holdingCost   float64 // Holding cost per unit on hand
	stockoutCost  float64 // Penalty per unit of unmet demand
	sellingPrice  float64 // Revenue per unit sold
	demandMean    float64 // Mean of Gaussian demand per period
	demandStd     float64 // Std dev of Gaussian demand
	discount      float64 // Discount factor gamma

	// CLI flags for the solver and collaborators
	epsilon       float64 // Convergence threshold on the sweep delta
	maxIterations int     // Sweep cutoff
	logLevel      string  // Log verbosity level
	outputPath    string  // JSON results file ("" = no export)
	simulateSteps int     // Rollout length (0 = no simulation)
	initialState  int     // Rollout starting inventory
	transportMode string  // Rollout transport mode annotation
	seed          int64   // Seed for rollout demand draws
	scenario      string  // Named preset from the scenarios file
	scenariosFile string  // Path to the scenario presets YAML
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "restock-sim",
	Short: "Inventory ordering-policy optimizer over a finite MDP",
}

// solveCmd runs value iteration using parameters from CLI flags and
// optional scenario presets.
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the inventory MDP and report the optimal policy",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := mdp.DefaultConfig()
		if scenario != "" {
			cfg, err = LoadScenario(scenariosFile, scenario)
			if err != nil {
				logrus.Fatalf("Failed to load scenario %q: %v", scenario, err)
			}
		}
		applyFlagOverrides(cmd, &cfg)

		logrus.Infof("Starting value iteration with capacity=%d, demand=N(%.1f, %.1f), gamma=%.2f",
			cfg.MaxInventory, cfg.DemandMean, cfg.DemandStd, cfg.Discount)

		startTime := time.Now()

		solver, err := mdp.NewSolver(cfg)
		if err != nil {
			logrus.Fatalf("Configuration error: %v", err)
		}
		record, err := solver.Solve(epsilon, maxIterations)
		if err != nil {
			logrus.Fatalf("Solve failed: %v", err)
		}

		printReport(solver, record, time.Since(startTime))

		if simulateSteps > 0 {
			runSimulation(solver)
		}
		if outputPath != "" {
			if _, err := solver.ExportResults(outputPath); err != nil {
				logrus.Fatalf("Export failed: %v", err)
			}
			logrus.Infof("Results exported to %s", outputPath)
		}
	},
}

// applyFlagOverrides lets explicit flags win over scenario presets.
// Only flags the user actually set are applied.
func applyFlagOverrides(cmd *cobra.Command, cfg *mdp.Config) {
	flags := cmd.Flags()
	if flags.Changed("capacity") {
		cfg.MaxInventory = capacity
	}
	if flags.Changed("order-cost") {
		cfg.OrderCost = orderCost
	}
	if flags.Changed("unit-surcharge") {
		cfg.UnitSurcharge = unitSurcharge
	}
	if flags.Changed("holding-cost") {
		cfg.HoldingCost = holdingCost
	}
	if flags.Changed("stockout-cost") {
		cfg.StockoutCost = stockoutCost
	}
	if flags.Changed("selling-price") {
		cfg.SellingPrice = sellingPrice
	}
	if flags.Changed("demand-mean") {
		cfg.DemandMean = demandMean
	}
	if flags.Changed("demand-std") {
		cfg.DemandStd = demandStd
	}
	if flags.Changed("discount") {
		cfg.Discount = discount
	}
}

// printReport writes the human-readable run summary: convergence info,
// the (s, S) rule, and the head of the policy table.
func printReport(solver *mdp.Solver, record mdp.ConvergenceRecord, elapsed time.Duration) {
	fmt.Println("=== Convergence ===")
	fmt.Printf("Converged   : %v\n", record.Converged)
	fmt.Printf("Iterations  : %d\n", record.Iterations)
	fmt.Printf("Final Delta : %.6f\n", record.FinalDelta)
	fmt.Printf("Elapsed     : %s\n", elapsed.Round(time.Millisecond))

	ss := solver.SummarizePolicy()
	fmt.Printf("\nOptimal (s, S) policy: s=%d, S=%d\n", ss.ReorderPoint, ss.OrderUpTo)

	fmt.Println("\nSample policy (first 20 states):")
	for state := 0; state < min(20, solver.NumStates()); state++ {
		fmt.Printf("State %3d: Order %3d units (Value: %8.2f)\n",
			state, solver.Action(state), solver.Value(state))
	}
}

// runSimulation rolls out the solved policy and prints the totals.
func runSimulation(solver *mdp.Solver) {
	rng := mdp.NewPartitionedRNG(mdp.NewSimulationKey(seed))
	result, err := solver.SimulateEpisode(initialState, simulateSteps,
		mdp.TransportMode(transportMode), rng.ForSubsystem(mdp.SubsystemDemand))
	if err != nil {
		logrus.Fatalf("Simulation failed: %v", err)
	}
	fmt.Println("\n=== Simulation ===")
	fmt.Printf("Steps          : %d\n", simulateSteps)
	fmt.Printf("Total Reward   : %.2f\n", result.TotalReward)
	fmt.Printf("Average Reward : %.2f\n", result.AverageReward)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := mdp.DefaultConfig()

	// Inventory model configs
	solveCmd.Flags().IntVar(&capacity, "capacity", defaults.MaxInventory, "Max inventory level")
	solveCmd.Flags().Float64Var(&orderCost, "order-cost", defaults.OrderCost, "Fixed cost per order placed")
	solveCmd.Flags().Float64Var(&unitSurcharge, "unit-surcharge", defaults.UnitSurcharge, "Per-unit ordering surcharge")
	solveCmd.Flags().Float64Var(&holdingCost, "holding-cost", defaults.HoldingCost, "Holding cost per unit on hand")
	solveCmd.Flags().Float64Var(&stockoutCost, "stockout-cost", defaults.StockoutCost, "Penalty per unit of unmet demand")
	solveCmd.Flags().Float64Var(&sellingPrice, "selling-price", defaults.SellingPrice, "Revenue per unit sold")
	solveCmd.Flags().Float64Var(&demandMean, "demand-mean", defaults.DemandMean, "Mean demand per period")
	solveCmd.Flags().Float64Var(&demandStd, "demand-std", defaults.DemandStd, "Std dev of demand per period")
	solveCmd.Flags().Float64Var(&discount, "discount", defaults.Discount, "Discount factor gamma in (0, 1]")

	// Solver configs
	solveCmd.Flags().Float64Var(&epsilon, "epsilon", 0.01, "Convergence threshold on the max per-state value change")
	solveCmd.Flags().IntVar(&maxIterations, "max-iterations", 1000, "Max value-iteration sweeps")
	solveCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Collaborator configs
	solveCmd.Flags().StringVar(&outputPath, "output", "", "Write results JSON to this path")
	solveCmd.Flags().IntVar(&simulateSteps, "simulate-steps", 0, "Roll out the solved policy for this many periods (0 = skip)")
	solveCmd.Flags().IntVar(&initialState, "initial-state", 50, "Starting inventory for the rollout")
	solveCmd.Flags().StringVar(&transportMode, "transport", "truck", "Transport mode annotation (truck, ship, rail, air)")
	solveCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for rollout demand draws")

	// Scenario presets
	solveCmd.Flags().StringVar(&scenario, "scenario", "", "Named preset from the scenarios file")
	solveCmd.Flags().StringVar(&scenariosFile, "scenarios-file", "scenarios.yaml", "Path to the scenario presets YAML")

	// Attach `solve` as a subcommand to `root`
	rootCmd.AddCommand(solveCmd)
}
