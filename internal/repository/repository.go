package repository

import (
	"context"

	"hudspal/tracker/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// EntryRepository is the session entry store. It exclusively owns the five
// entry collections and the selected calendar date; every mutator stamps new
// entries with the selected date and a fresh unique identity. Accessors return
// snapshots in insertion order.
type EntryRepository interface {
	SelectedDate(ctx context.Context) string
	SetSelectedDate(ctx context.Context, date string) error

	AddFood(ctx context.Context, item *domain.FoodCatalogItem, quantity float64, mealType string) domain.FoodEntry
	// AdjustFoodQuantity changes an entry's quantity by delta. A resulting
	// quantity at or below zero removes the entry (removed=true, entry=nil).
	AdjustFoodQuantity(ctx context.Context, id string, delta float64) (entry *domain.FoodEntry, removed bool, err error)
	RemoveFood(ctx context.Context, id string) error
	FoodEntries(ctx context.Context) []domain.FoodEntry

	AddWater(ctx context.Context, amount float64) domain.WaterEntry
	WaterEntries(ctx context.Context) []domain.WaterEntry

	AddWorkout(ctx context.Context, exercise *domain.ExerciseCatalogItem, duration, calories float64, sets, reps *int, weight *float64) domain.WorkoutEntry
	WorkoutEntries(ctx context.Context) []domain.WorkoutEntry

	// AddSleep is idempotent per date: an existing entry for the selected date
	// is updated in place, preserving its identity.
	AddSleep(ctx context.Context, hours float64, quality int) domain.SleepEntry
	SleepEntries(ctx context.Context) []domain.SleepEntry

	AddWeight(ctx context.Context, weight float64, unit string) domain.WeightEntry
	WeightEntries(ctx context.Context) []domain.WeightEntry

	// Clear drops every entry collection (logout).
	Clear(ctx context.Context)
}

// UserRepository holds the session's fabricated local user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateGoals(ctx context.Context, id string, goals domain.Goals) (*domain.User, error)
}
