package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/service"
)

var (
	foodA = domain.FoodCatalogItem{ID: "food-0", Name: "A", Calories: 200, ProteinG: 10, CarbsG: 30, FatG: 5}
	foodB = domain.FoodCatalogItem{ID: "food-1", Name: "B", Calories: 150, ProteinG: 8, CarbsG: 20, FatG: 3}
)

func TestDailyTotalsEmptyDateIsAllZero(t *testing.T) {
	t.Parallel()

	entries := []domain.FoodEntry{
		{ID: "1", Food: &foodA, Quantity: 2, Date: "2024-01-01"},
	}

	totals := service.ComputeDailyTotals(entries, "2024-02-15")
	assert.Zero(t, totals.Calories)
	assert.Zero(t, totals.Protein)
	assert.Zero(t, totals.Carbs)
	assert.Zero(t, totals.Fat)
}

func TestDailyTotalsScenario(t *testing.T) {
	t.Parallel()

	// (A qty=2) + (A qty=1) + (B qty=1) on the same date.
	entries := []domain.FoodEntry{
		{ID: "1", Food: &foodA, Quantity: 2, Date: "2024-01-01"},
		{ID: "2", Food: &foodA, Quantity: 1, Date: "2024-01-01"},
		{ID: "3", Food: &foodB, Quantity: 1, Date: "2024-01-01"},
	}

	totals := service.ComputeDailyTotals(entries, "2024-01-01")
	assert.Equal(t, 750.0, totals.Calories) // 200*2 + 200*1 + 150*1
	assert.Equal(t, 38.0, totals.Protein)   // 10*2 + 10*1 + 8*1
	assert.Equal(t, 110.0, totals.Carbs)    // 30*2 + 30*1 + 20*1
	assert.Equal(t, 18.0, totals.Fat)       // 5*2 + 5*1 + 3*1
}

func TestDailyTotalsIsLinearInQuantity(t *testing.T) {
	t.Parallel()

	entries := []domain.FoodEntry{
		{ID: "1", Food: &foodA, Quantity: 2, Date: "2024-01-01"},
		{ID: "2", Food: &foodB, Quantity: 3, Date: "2024-01-01"},
	}
	doubled := make([]domain.FoodEntry, len(entries))
	for i, e := range entries {
		e.Quantity *= 2
		doubled[i] = e
	}

	base := service.ComputeDailyTotals(entries, "2024-01-01")
	twice := service.ComputeDailyTotals(doubled, "2024-01-01")
	assert.Equal(t, base.Calories*2, twice.Calories)
	assert.Equal(t, base.Protein*2, twice.Protein)
	assert.Equal(t, base.Carbs*2, twice.Carbs)
	assert.Equal(t, base.Fat*2, twice.Fat)
}

func TestDailyTotalsAcceptsNegativeQuantities(t *testing.T) {
	t.Parallel()

	entries := []domain.FoodEntry{
		{ID: "1", Food: &foodA, Quantity: -1, Date: "2024-01-01"},
	}

	totals := service.ComputeDailyTotals(entries, "2024-01-01")
	assert.Equal(t, -200.0, totals.Calories, "negative input sums as supplied")
}

func TestTotalWaterScopedToDate(t *testing.T) {
	t.Parallel()

	entries := []domain.WaterEntry{
		{ID: "1", Amount: 8, Date: "2024-01-01"},
		{ID: "2", Amount: 16, Date: "2024-01-01"},
		{ID: "3", Amount: 8, Date: "2024-01-02"},
	}

	assert.Equal(t, 24.0, service.TotalWater(entries, "2024-01-01"))
	assert.Equal(t, 8.0, service.TotalWater(entries, "2024-01-02"))
	assert.Zero(t, service.TotalWater(entries, "2024-01-03"))
}

func TestSleepForDate(t *testing.T) {
	t.Parallel()

	entries := []domain.SleepEntry{
		{ID: "1", Hours: 7.5, Quality: 8, Date: "2024-01-01"},
	}

	assert.Equal(t, 7.5, service.SleepForDate(entries, "2024-01-01"))
	assert.Zero(t, service.SleepForDate(entries, "2024-01-02"))
	assert.Zero(t, service.SleepForDate(nil, "2024-01-01"))
}

func TestLatestWeightIsLastAppendedNotLastByDate(t *testing.T) {
	t.Parallel()

	entries := []domain.WeightEntry{
		{ID: "1", Weight: 152, Unit: "lbs", Date: "2024-01-05"},
		// Back-dated entry logged afterwards still wins.
		{ID: "2", Weight: 154, Unit: "lbs", Date: "2024-01-01"},
	}

	latest := service.LatestWeight(entries)
	require.NotNil(t, latest)
	assert.Equal(t, "2", latest.ID)
	assert.Equal(t, 154.0, latest.Weight)
}

func TestLatestWeightEmptyIsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, service.LatestWeight(nil))
	assert.Nil(t, service.LatestWeight([]domain.WeightEntry{}))
}

func TestCaloriesBurnedScopedToDate(t *testing.T) {
	t.Parallel()

	entries := []domain.WorkoutEntry{
		{ID: "1", CaloriesBurned: 200, Date: "2024-01-01"},
		{ID: "2", CaloriesBurned: 150, Date: "2024-01-01"},
		{ID: "3", CaloriesBurned: 300, Date: "2024-01-02"},
	}

	assert.Equal(t, 350.0, service.CaloriesBurned(entries, "2024-01-01"))
	assert.Zero(t, service.CaloriesBurned(entries, "2024-01-03"))
}
