// Package sim provides the lane-packing simulation engine for ferry-sim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - selector.go: LaneSelector and its four greedy policies
//   - simulator.go: streaming and windowed-sort packing runs
//   - rng.go: deterministic, per-trial random streams
//
// # Architecture
//
// The sim package defines the placement core; everything around it lives in
// sub-packages:
//   - sim/workload/: item batch generation and problem-file loading
//   - sim/experiment/: trial sweeps, statistics and series output
//   - sim/trace/: per-item placement recording
//
// # Key Interfaces
//
//   - LaneSelector: pick a lane for one item given current lane fills, or
//     report that none fits (overflow)
//
// A run never shares lane state with another run. RandomFit owns its RNG,
// so concurrent trials each build their own selectors from their own
// PartitionedRNG.
package sim
