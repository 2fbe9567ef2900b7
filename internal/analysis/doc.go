// Package analysis measures the shape of generated mazes.
//
// The package characterizes a spanning tree over the grid:
//
//   - [Analyze]: cell degrees, depths from the start cell, the longest
//     path and corridor lengths for one maze
//   - [Stats.DepthHistogram]: depth distribution in equal-width bins
//   - [Aggregate]: mean and spread of several runs, used by bias sweeps
//
// # Reading the numbers
//
// A walk that mostly extends its newest branch gives long corridors and few
// dead ends; a walk that mostly picks old candidates branches everywhere:
//
//	st, err := analysis.Analyze(g, start, events)
//	if st.DeadEndRatio() > 0.3 {
//	    // bushy maze
//	}
package analysis
