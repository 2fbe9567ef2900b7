package analysis

import "gonum.org/v1/gonum/stat"

// Summary is the mean and standard deviation of per-run measures.
type Summary struct {
	Runs int

	DeadEndRatio    float64
	DeadEndRatioStd float64
	LongestPath     float64
	LongestPathStd  float64
	MaxDepth        float64
	MaxDepthStd     float64
	MeanCorridor    float64
	MeanCorridorStd float64
}

// Aggregate summarizes runs; an empty input gives a zero Summary.
func Aggregate(runs []Stats) Summary {
	s := Summary{Runs: len(runs)}
	if len(runs) == 0 {
		return s
	}
	dead := make([]float64, len(runs))
	longest := make([]float64, len(runs))
	depth := make([]float64, len(runs))
	corridor := make([]float64, len(runs))
	for i, r := range runs {
		dead[i] = r.DeadEndRatio()
		longest[i] = float64(r.LongestPath)
		depth[i] = float64(r.MaxDepth)
		corridor[i] = r.MeanCorridor
	}
	s.DeadEndRatio, s.DeadEndRatioStd = meanStd(dead)
	s.LongestPath, s.LongestPathStd = meanStd(longest)
	s.MaxDepth, s.MaxDepthStd = meanStd(depth)
	s.MeanCorridor, s.MeanCorridorStd = meanStd(corridor)
	return s
}

// Correlation returns the Pearson correlation of xs and ys, 0 when either
// has no spread.
func Correlation(xs, ys []float64) float64 {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return 0
	}
	return stat.Correlation(xs, ys, nil)
}
