package incidentrate

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// analyzeTrend summarizes a monthly recordable-count series. It returns nil
// when fewer than three months are supplied, since a slope over one or two
// points carries no signal.
func analyzeTrend(monthly []float64) *Trend {
	if len(monthly) < 3 {
		return nil
	}

	mean, _ := stats.Mean(monthly)
	sd, _ := stats.StandardDeviation(monthly)
	min, _ := stats.Min(monthly)
	max, _ := stats.Max(monthly)

	months := make([]float64, len(monthly))
	for i := range months {
		months[i] = float64(i)
	}
	_, slope := stat.LinearRegression(months, monthly, nil, false)

	direction := "Stable"
	switch {
	case slope > trendSlopeEpsilon:
		direction = "Worsening"
	case slope < -trendSlopeEpsilon:
		direction = "Improving"
	}

	return &Trend{
		Mean:      mean,
		StdDev:    sd,
		Min:       min,
		Max:       max,
		Slope:     slope,
		Direction: direction,
	}
}
