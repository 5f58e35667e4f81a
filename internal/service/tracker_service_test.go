package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hudspal/tracker/internal/catalog"
	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/repository/memory"
	"hudspal/tracker/internal/service"
)

// fixedCatalogs serves catalog items without any network fetch.
type fixedCatalogs struct {
	foods     map[string]*domain.FoodCatalogItem
	exercises map[string]*domain.ExerciseCatalogItem
}

func (f *fixedCatalogs) FoodByID(id string) (*domain.FoodCatalogItem, error) {
	if item, ok := f.foods[id]; ok {
		return item, nil
	}
	return nil, catalog.ErrFoodNotFound
}

func (f *fixedCatalogs) ExerciseByID(id string) (*domain.ExerciseCatalogItem, error) {
	if item, ok := f.exercises[id]; ok {
		return item, nil
	}
	return nil, catalog.ErrExerciseNotFound
}

func newTracker(t *testing.T, date string) service.TrackerService {
	t.Helper()

	store := memory.NewStore()
	require.NoError(t, store.SetSelectedDate(context.Background(), date))

	catalogs := &fixedCatalogs{
		foods: map[string]*domain.FoodCatalogItem{
			foodA.ID: &foodA,
			foodB.ID: &foodB,
		},
		exercises: map[string]*domain.ExerciseCatalogItem{
			"exercise-0": {ID: "exercise-0", Category: "Cardio", Exercise: "Running"},
		},
	}
	return service.NewTrackerService(store, catalogs)
}

func TestLogFoodAppliesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	entry, err := tracker.LogFood(ctx, foodA.ID, 0, "")
	require.NoError(t, err)

	assert.Equal(t, 1.0, entry.Quantity)
	assert.Equal(t, "meal", entry.MealType)
	assert.Equal(t, "2024-01-01", entry.Date)
}

func TestLogFoodUnknownCatalogItem(t *testing.T) {
	t.Parallel()

	tracker := newTracker(t, "2024-01-01")
	_, err := tracker.LogFood(context.Background(), "food-99", 1, "meal")
	assert.ErrorIs(t, err, catalog.ErrFoodNotFound)
}

func TestDecrementToZeroRemovesFromDailyTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	entry, err := tracker.LogFood(ctx, foodA.ID, 1, "meal")
	require.NoError(t, err)

	summary := tracker.DailySummary(ctx, domain.Goals{Calories: 2000})
	assert.Equal(t, 200.0, summary.Totals.Calories)

	_, removed, err := tracker.AdjustFood(ctx, entry.ID, -1)
	require.NoError(t, err)
	require.True(t, removed)

	summary = tracker.DailySummary(ctx, domain.Goals{Calories: 2000})
	assert.Zero(t, summary.Totals.Calories, "removed entry must vanish from aggregation")
	assert.Equal(t, 2000.0, summary.CaloriesRemaining)
}

func TestAdjustFoodUnknownEntry(t *testing.T) {
	t.Parallel()

	tracker := newTracker(t, "2024-01-01")
	_, _, err := tracker.AdjustFood(context.Background(), "missing", 1)
	assert.ErrorIs(t, err, service.ErrEntryNotFound)
}

func TestDailySummaryReflectsMutationsImmediately(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	_, err := tracker.LogFood(ctx, foodA.ID, 2, "breakfast")
	require.NoError(t, err)
	tracker.LogWater(ctx, 16)
	tracker.LogSleep(ctx, 7, 8)
	tracker.LogWeight(ctx, 160, "lbs")
	_, err = tracker.LogWorkout(ctx, "exercise-0", 30, 250, nil, nil, nil)
	require.NoError(t, err)

	goals := domain.Goals{Calories: 2000, Water: 8, Sleep: 8, WeightTarget: 150}
	summary := tracker.DailySummary(ctx, goals)

	assert.Equal(t, "2024-01-01", summary.Date)
	assert.Equal(t, 400.0, summary.Totals.Calories)
	assert.Equal(t, 1600.0, summary.CaloriesRemaining)
	assert.Equal(t, 250.0, summary.CaloriesBurned)
	assert.Equal(t, 16.0, summary.Water)
	assert.Equal(t, 7.0, summary.Sleep)
	require.NotNil(t, summary.LatestWeight)
	assert.Equal(t, 160.0, summary.LatestWeight.Weight)
}

func TestDailySummaryOtherDateIsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	_, err := tracker.LogFood(ctx, foodA.ID, 2, "meal")
	require.NoError(t, err)

	require.NoError(t, tracker.SetSelectedDate(ctx, "2024-01-02"))
	summary := tracker.DailySummary(ctx, domain.Goals{Calories: 2000})
	assert.Zero(t, summary.Totals.Calories)
	assert.Zero(t, summary.Water)
	assert.Zero(t, summary.Sleep)
}

func TestCaloriesRemainingNeverNegative(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	_, err := tracker.LogFood(ctx, foodA.ID, 20, "meal") // 4000 kcal
	require.NoError(t, err)

	summary := tracker.DailySummary(ctx, domain.Goals{Calories: 2000})
	assert.Zero(t, summary.CaloriesRemaining)
}

func TestWeightStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")

	stats := tracker.WeightStats(ctx, 150)
	assert.Nil(t, stats.Current)
	assert.Zero(t, stats.TotalEntries)
	assert.Empty(t, stats.Direction)

	tracker.LogWeight(ctx, 160, "lbs")
	stats = tracker.WeightStats(ctx, 150)
	require.NotNil(t, stats.Current)
	assert.Equal(t, 10.0, stats.DeltaToTarget)
	assert.Equal(t, "to lose", stats.Direction)
	assert.Equal(t, 1, stats.TotalEntries)

	tracker.LogWeight(ctx, 145, "lbs")
	stats = tracker.WeightStats(ctx, 150)
	assert.Equal(t, 5.0, stats.DeltaToTarget)
	assert.Equal(t, "to gain", stats.Direction)
	assert.Equal(t, 2, stats.TotalEntries)
}

func TestWorkoutChartFollowsSelectedDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-07")
	_, err := tracker.LogWorkout(ctx, "exercise-0", 30, 250, nil, nil, nil)
	require.NoError(t, err)

	points := tracker.WorkoutChart(ctx)
	require.Len(t, points, 7)
	assert.Equal(t, "2024-01-07", points[6].Date)
	assert.Equal(t, 1, points[6].Workouts)
}

func TestResetClearsSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tracker := newTracker(t, "2024-01-01")
	_, err := tracker.LogFood(ctx, foodA.ID, 1, "meal")
	require.NoError(t, err)
	tracker.LogWater(ctx, 8)

	tracker.Reset(ctx)

	summary := tracker.DailySummary(ctx, domain.Goals{})
	assert.Zero(t, summary.Totals.Calories)
	assert.Zero(t, summary.Water)
	assert.Nil(t, summary.LatestWeight)
}
