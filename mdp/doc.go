// Package mdp solves a single-product inventory-ordering problem as a
// finite Markov Decision Process.
//
// # Reading Guide
//
// Start with these three files to understand the solver core:
//   - demand.go: truncated Gaussian demand masses at integer levels
//   - reward.go: single-period profit for a (state, action, demand) triple
//   - solver.go: the value-iteration loop, Bellman update, and convergence record
//
// States are inventory levels 0..MaxInventory; the feasible actions at
// state s are order quantities 0..MaxInventory-s, so post-order inventory
// never exceeds capacity. Solve runs in-place (Gauss-Seidel) value
// iteration to a fixed point and leaves the value, policy, and Q tables
// queryable through read accessors.
//
// Around the core:
//   - transition.go: query-style next-state probabilities (the solver
//     folds the equivalent sum into its inner loop)
//   - summary.go: (s, S) reorder-rule derivation from the policy table
//   - simulate.go: seeded trajectory rollouts under the solved policy
//   - export.go: JSON serialization of configuration, tables, and summary
package mdp
