package service

import (
	"time"

	"hudspal/tracker/internal/domain"
)

const (
	workoutSeriesDays  = 7
	weightSeriesMaxLen = 30
)

// WorkoutPoint is one day in the weekly workout chart.
type WorkoutPoint struct {
	Date     string  `json:"date"`
	Workouts int     `json:"workouts"`
	Calories float64 `json:"calories"`
}

// WeightPoint is one logged weight paired with the constant target.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
	Target float64 `json:"target"`
}

// WorkoutSeries derives the weekly workout chart: exactly seven points
// covering today and the six preceding calendar days in ascending order. Days
// with no workouts yield a zero-valued point, so the time axis is always
// dense. Pure; recomputed from scratch on each call.
func WorkoutSeries(entries []domain.WorkoutEntry, today string) []WorkoutPoint {
	end, err := time.Parse(domain.DateLayout, today)
	if err != nil {
		end = time.Now()
	}

	points := make([]WorkoutPoint, 0, workoutSeriesDays)
	for offset := workoutSeriesDays - 1; offset >= 0; offset-- {
		date := end.AddDate(0, 0, -offset).Format(domain.DateLayout)
		point := WorkoutPoint{Date: date}
		for _, entry := range entries {
			if entry.Date == date {
				point.Workouts++
				point.Calories += entry.CaloriesBurned
			}
		}
		points = append(points, point)
	}
	return points
}

// WeightSeries derives the weight trend chart from the most-recently-appended
// 30 weight entries in their stored order, pairing each with the current
// target. Stored order is insertion order, which may not be chronological
// when entries are back-dated; that literal behavior is kept.
func WeightSeries(entries []domain.WeightEntry, target float64) []WeightPoint {
	if len(entries) > weightSeriesMaxLen {
		entries = entries[len(entries)-weightSeriesMaxLen:]
	}

	points := make([]WeightPoint, 0, len(entries))
	for _, entry := range entries {
		points = append(points, WeightPoint{
			Date:   entry.Date,
			Weight: entry.Weight,
			Target: target,
		})
	}
	return points
}
