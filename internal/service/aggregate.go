package service

import "hudspal/tracker/internal/domain"

// The aggregation functions below are pure and total: they never fail, an
// empty or non-matching collection yields zero values, and they run O(n) over
// the relevant entry collection. Negative user input is summed as supplied.

// DailyTotals are the nutrient sums for one calendar date.
type DailyTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// ComputeDailyTotals sums catalog nutrient values scaled by entry quantity
// over every food entry matching date.
func ComputeDailyTotals(entries []domain.FoodEntry, date string) DailyTotals {
	var totals DailyTotals
	for _, entry := range entries {
		if entry.Date != date || entry.Food == nil {
			continue
		}
		totals.Calories += entry.Food.Calories * entry.Quantity
		totals.Protein += entry.Food.ProteinG * entry.Quantity
		totals.Carbs += entry.Food.CarbsG * entry.Quantity
		totals.Fat += entry.Food.FatG * entry.Quantity
	}
	return totals
}

// TotalWater sums water amounts logged for date.
func TotalWater(entries []domain.WaterEntry, date string) float64 {
	var total float64
	for _, entry := range entries {
		if entry.Date == date {
			total += entry.Amount
		}
	}
	return total
}

// SleepForDate returns the hours of the single sleep entry for date, or 0
// when none exists. At most one entry per date by store invariant.
func SleepForDate(entries []domain.SleepEntry, date string) float64 {
	for _, entry := range entries {
		if entry.Date == date {
			return entry.Hours
		}
	}
	return 0
}

// LatestWeight returns the most-recently-appended weight entry, or nil when
// none exists. Latest means last logged, not last by calendar date: a
// back-dated entry logged today still wins.
func LatestWeight(entries []domain.WeightEntry) *domain.WeightEntry {
	if len(entries) == 0 {
		return nil
	}
	last := entries[len(entries)-1]
	return &last
}

// CaloriesBurned sums workout calories logged for date.
func CaloriesBurned(entries []domain.WorkoutEntry, date string) float64 {
	var total float64
	for _, entry := range entries {
		if entry.Date == date {
			total += entry.CaloriesBurned
		}
	}
	return total
}
