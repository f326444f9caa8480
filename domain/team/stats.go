package team

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"teamdash/models"
)

// CostStats describes the spread of monthly compensation across a roster
type CostStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// CompensationStats summarizes compensation values. An empty roster yields
// zero stats rather than an error.
func CompensationStats(persons []models.Person) (CostStats, error) {
	if len(persons) == 0 {
		return CostStats{}, nil
	}

	data := make([]float64, len(persons))
	for i, p := range persons {
		data[i] = float64(p.Compensation)
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return CostStats{}, err
	}

	median, err := stats.Median(data)
	if err != nil {
		return CostStats{}, err
	}

	min, err := stats.Min(data)
	if err != nil {
		return CostStats{}, err
	}

	max, err := stats.Max(data)
	if err != nil {
		return CostStats{}, err
	}

	// Sample standard deviation is undefined for a single value
	var stdDev float64
	if len(data) > 1 {
		stdDev = stat.StdDev(data, nil)
	}

	return CostStats{
		Mean:   mean,
		Median: median,
		Min:    min,
		Max:    max,
		StdDev: stdDev,
	}, nil
}
