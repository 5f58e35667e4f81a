package service

import (
	"context"
	"errors"
	"math"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrEntryNotFound = errors.New("entry not found")
)

// Catalogs resolves catalog items referenced by new entries. Implemented by
// the catalog manager.
type Catalogs interface {
	FoodByID(id string) (*domain.FoodCatalogItem, error)
	ExerciseByID(id string) (*domain.ExerciseCatalogItem, error)
}

// DailySummary bundles every aggregate the dashboard shows for one date.
type DailySummary struct {
	Date              string              `json:"date"`
	Totals            DailyTotals         `json:"totals"`
	CaloriesBurned    float64             `json:"calories_burned"`
	CaloriesRemaining float64             `json:"calories_remaining"`
	Water             float64             `json:"water"`
	Sleep             float64             `json:"sleep"`
	LatestWeight      *domain.WeightEntry `json:"latest_weight,omitempty"`
	Goals             domain.Goals        `json:"goals"`
}

// WeightStats summarizes weight progress against the target.
type WeightStats struct {
	Current       *domain.WeightEntry `json:"current,omitempty"`
	Target        float64             `json:"target"`
	DeltaToTarget float64             `json:"delta_to_target"`
	Direction     string              `json:"direction,omitempty"` // "to lose" or "to gain"
	TotalEntries  int                 `json:"total_entries"`
}

// --- Service Interface ---
type TrackerService interface {
	SelectedDate(ctx context.Context) string
	SetSelectedDate(ctx context.Context, date string) error

	LogFood(ctx context.Context, foodID string, quantity float64, mealType string) (domain.FoodEntry, error)
	AdjustFood(ctx context.Context, entryID string, delta float64) (entry *domain.FoodEntry, removed bool, err error)
	RemoveFood(ctx context.Context, entryID string) error
	FoodsForDate(ctx context.Context, date string) []domain.FoodEntry

	LogWater(ctx context.Context, amount float64) domain.WaterEntry
	LogWorkout(ctx context.Context, exerciseID string, duration, calories float64, sets, reps *int, weight *float64) (domain.WorkoutEntry, error)
	WorkoutsForDate(ctx context.Context, date string) []domain.WorkoutEntry
	LogSleep(ctx context.Context, hours float64, quality int) domain.SleepEntry
	LogWeight(ctx context.Context, weight float64, unit string) domain.WeightEntry

	DailySummary(ctx context.Context, goals domain.Goals) DailySummary
	WorkoutChart(ctx context.Context) []WorkoutPoint
	WeightChart(ctx context.Context, target float64) []WeightPoint
	WeightStats(ctx context.Context, target float64) WeightStats

	Reset(ctx context.Context)
}

// --- Service Implementation ---

// trackerService implements the TrackerService interface over the session
// entry store. Every aggregate is a pure function recomputed from a
// post-mutation snapshot, so reads are always consistent.
type trackerService struct {
	entries  repository.EntryRepository
	catalogs Catalogs
}

// NewTrackerService creates a new instance of trackerService.
func NewTrackerService(entries repository.EntryRepository, catalogs Catalogs) TrackerService {
	return &trackerService{
		entries:  entries,
		catalogs: catalogs,
	}
}

func (s *trackerService) SelectedDate(ctx context.Context) string {
	return s.entries.SelectedDate(ctx)
}

func (s *trackerService) SetSelectedDate(ctx context.Context, date string) error {
	return s.entries.SetSelectedDate(ctx, date)
}

// LogFood resolves the catalog item and appends a food entry for the selected
// date. Quantity defaults to 1 and the meal label to "meal" when unset.
func (s *trackerService) LogFood(ctx context.Context, foodID string, quantity float64, mealType string) (domain.FoodEntry, error) {
	item, err := s.catalogs.FoodByID(foodID)
	if err != nil {
		return domain.FoodEntry{}, err
	}
	if quantity == 0 {
		quantity = 1
	}
	if mealType == "" {
		mealType = "meal"
	}
	return s.entries.AddFood(ctx, item, quantity, mealType), nil
}

func (s *trackerService) AdjustFood(ctx context.Context, entryID string, delta float64) (*domain.FoodEntry, bool, error) {
	entry, removed, err := s.entries.AdjustFoodQuantity(ctx, entryID, delta)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, false, ErrEntryNotFound
	}
	return entry, removed, err
}

func (s *trackerService) RemoveFood(ctx context.Context, entryID string) error {
	err := s.entries.RemoveFood(ctx, entryID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrEntryNotFound
	}
	return err
}

func (s *trackerService) FoodsForDate(ctx context.Context, date string) []domain.FoodEntry {
	var matched []domain.FoodEntry
	for _, entry := range s.entries.FoodEntries(ctx) {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (s *trackerService) LogWater(ctx context.Context, amount float64) domain.WaterEntry {
	return s.entries.AddWater(ctx, amount)
}

// LogWorkout resolves the catalog exercise and appends a workout entry.
func (s *trackerService) LogWorkout(ctx context.Context, exerciseID string, duration, calories float64, sets, reps *int, weight *float64) (domain.WorkoutEntry, error) {
	exercise, err := s.catalogs.ExerciseByID(exerciseID)
	if err != nil {
		return domain.WorkoutEntry{}, err
	}
	return s.entries.AddWorkout(ctx, exercise, duration, calories, sets, reps, weight), nil
}

func (s *trackerService) WorkoutsForDate(ctx context.Context, date string) []domain.WorkoutEntry {
	var matched []domain.WorkoutEntry
	for _, entry := range s.entries.WorkoutEntries(ctx) {
		if entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched
}

func (s *trackerService) LogSleep(ctx context.Context, hours float64, quality int) domain.SleepEntry {
	return s.entries.AddSleep(ctx, hours, quality)
}

func (s *trackerService) LogWeight(ctx context.Context, weight float64, unit string) domain.WeightEntry {
	return s.entries.AddWeight(ctx, weight, unit)
}

// DailySummary computes every daily aggregate for the selected date.
func (s *trackerService) DailySummary(ctx context.Context, goals domain.Goals) DailySummary {
	date := s.entries.SelectedDate(ctx)
	totals := ComputeDailyTotals(s.entries.FoodEntries(ctx), date)
	return DailySummary{
		Date:              date,
		Totals:            totals,
		CaloriesBurned:    CaloriesBurned(s.entries.WorkoutEntries(ctx), date),
		CaloriesRemaining: math.Max(0, goals.Calories-totals.Calories),
		Water:             TotalWater(s.entries.WaterEntries(ctx), date),
		Sleep:             SleepForDate(s.entries.SleepEntries(ctx), date),
		LatestWeight:      LatestWeight(s.entries.WeightEntries(ctx)),
		Goals:             goals,
	}
}

func (s *trackerService) WorkoutChart(ctx context.Context) []WorkoutPoint {
	return WorkoutSeries(s.entries.WorkoutEntries(ctx), s.entries.SelectedDate(ctx))
}

func (s *trackerService) WeightChart(ctx context.Context, target float64) []WeightPoint {
	return WeightSeries(s.entries.WeightEntries(ctx), target)
}

// WeightStats mirrors the dashboard's weight statistics card.
func (s *trackerService) WeightStats(ctx context.Context, target float64) WeightStats {
	entries := s.entries.WeightEntries(ctx)
	stats := WeightStats{
		Target:       target,
		TotalEntries: len(entries),
	}
	current := LatestWeight(entries)
	if current == nil {
		return stats
	}
	stats.Current = current
	stats.DeltaToTarget = math.Abs(current.Weight - target)
	if current.Weight > target {
		stats.Direction = "to lose"
	} else {
		stats.Direction = "to gain"
	}
	return stats
}

// Reset drops every session entry (logout).
func (s *trackerService) Reset(ctx context.Context) {
	s.entries.Clear(ctx)
}
