// Package race provides the core primitives for Monte Carlo regatta
// simulations.
//
// Two propulsion strategies race independently toward a fixed finish
// distance under randomly generated daily weather:
//
//   - [Boat]: a simulated entity carrying its full distance history
//   - [Fleet]: a fixed-size collection of same-rig boats
//   - [Driver]: advances both fleets day by day until everyone arrives
//   - [Weather]: one day's conditions (windy, sunny)
//
// # Simulation Modes
//
// [Driver.Simulate] gives every boat its own independent weather draw each
// day, modelling localized conditions. [Driver.SimulatePaired] draws one
// weather value per boat index per day and applies it to the same-indexed
// boat in both fleets, so the two rigs can be compared as matched pairs.
//
// # Thread Safety
//
// Boats, fleets, and drivers are NOT thread-safe. Parallel ensemble runs
// must use separate Driver instances with independent weather sources.
package race
