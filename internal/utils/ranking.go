package utils

import (
	"math"
	"time"
)

type RankConfig struct {
	Gravity        float64 // time decay exponent
	WeightComment  float64
	WeightUpvote   float64
	WeightDownvote float64
	ScaleFactor    float64 // spreads scores over a 0-100 range
}

var DefaultConfig = RankConfig{
	Gravity:        1.5,
	WeightComment:  2.0,
	WeightUpvote:   1.0,
	WeightDownvote: 1.5,
	ScaleFactor:    100.0,
}

// CalculateScore computes the popularity score used to order the
// popular feed: log-smoothed weighted engagement over time decay.
func CalculateScore(t time.Time, up, down, comment int) float64 {
	hours := time.Since(t).Hours()

	weightedSum := (float64(up) * DefaultConfig.WeightUpvote) +
		(float64(comment) * DefaultConfig.WeightComment) -
		(float64(down) * DefaultConfig.WeightDownvote)

	if weightedSum < 0 {
		weightedSum = 0 // keep the log argument positive
	}

	// log10(sum + 1) so zero engagement scores exactly 0
	logScore := math.Log10(weightedSum + 1)

	numerator := logScore * DefaultConfig.ScaleFactor

	decay := math.Pow(hours+2, DefaultConfig.Gravity)

	return numerator / decay
}
