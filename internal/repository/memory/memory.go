package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/repository"
)

// Store is the in-memory session entry store. Entries live only for the
// process lifetime; there is no persistence by design.
type Store struct {
	mu           sync.RWMutex
	selectedDate string

	foods    []domain.FoodEntry
	water    []domain.WaterEntry
	workouts []domain.WorkoutEntry
	sleep    []domain.SleepEntry
	weights  []domain.WeightEntry

	now func() time.Time
}

// NewStore creates an empty store with the selected date set to today.
func NewStore() *Store {
	return newStoreAt(time.Now)
}

func newStoreAt(now func() time.Time) *Store {
	return &Store{
		selectedDate: now().Format(domain.DateLayout),
		now:          now,
	}
}

var _ repository.EntryRepository = (*Store)(nil)

// SelectedDate returns the calendar date new entries are stamped with.
func (s *Store) SelectedDate(_ context.Context) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SetSelectedDate switches the store to another calendar date. The date must
// be a valid "YYYY-MM-DD" string.
func (s *Store) SetSelectedDate(_ context.Context, date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
	return nil
}

// AddFood appends a food entry for the selected date. The catalog item is
// referenced, not copied.
func (s *Store) AddFood(_ context.Context, item *domain.FoodCatalogItem, quantity float64, mealType string) domain.FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.FoodEntry{
		ID:       uuid.NewString(),
		Food:     item,
		Quantity: quantity,
		MealType: mealType,
		Date:     s.selectedDate,
	}
	s.foods = append(s.foods, entry)
	return entry
}

// AdjustFoodQuantity changes the entry's quantity by delta. Dropping to zero
// or below deletes the entry; there is no upper bound.
func (s *Store) AdjustFoodQuantity(_ context.Context, id string, delta float64) (*domain.FoodEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.foods {
		if s.foods[i].ID != id {
			continue
		}
		s.foods[i].Quantity += delta
		if s.foods[i].Quantity <= 0 {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil, true, nil
		}
		entry := s.foods[i]
		return &entry, false, nil
	}
	return nil, false, repository.ErrNotFound
}

// RemoveFood deletes a food entry outright.
func (s *Store) RemoveFood(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.foods {
		if s.foods[i].ID == id {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// FoodEntries returns a snapshot of all food entries in insertion order.
func (s *Store) FoodEntries(_ context.Context) []domain.FoodEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.FoodEntry(nil), s.foods...)
}

// AddWater appends a water entry timestamped with the local clock.
func (s *Store) AddWater(_ context.Context, amount float64) domain.WaterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.WaterEntry{
		ID:     uuid.NewString(),
		Amount: amount,
		Date:   s.selectedDate,
		Time:   s.now().Format("3:04:05 PM"),
	}
	s.water = append(s.water, entry)
	return entry
}

// WaterEntries returns a snapshot of all water entries in insertion order.
func (s *Store) WaterEntries(_ context.Context) []domain.WaterEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WaterEntry(nil), s.water...)
}

// AddWorkout appends a workout entry for the selected date.
func (s *Store) AddWorkout(_ context.Context, exercise *domain.ExerciseCatalogItem, duration, calories float64, sets, reps *int, weight *float64) domain.WorkoutEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.WorkoutEntry{
		ID:             uuid.NewString(),
		Exercise:       exercise,
		Duration:       duration,
		CaloriesBurned: calories,
		Sets:           sets,
		Reps:           reps,
		Weight:         weight,
		Date:           s.selectedDate,
	}
	s.workouts = append(s.workouts, entry)
	return entry
}

// WorkoutEntries returns a snapshot of all workout entries in insertion order.
func (s *Store) WorkoutEntries(_ context.Context) []domain.WorkoutEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WorkoutEntry(nil), s.workouts...)
}

// AddSleep upserts the sleep entry for the selected date: at most one sleep
// entry exists per calendar date, and a second log overwrites hours and
// quality on the existing identity.
func (s *Store) AddSleep(_ context.Context, hours float64, quality int) domain.SleepEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sleep {
		if s.sleep[i].Date == s.selectedDate {
			s.sleep[i].Hours = hours
			s.sleep[i].Quality = quality
			return s.sleep[i]
		}
	}

	entry := domain.SleepEntry{
		ID:      uuid.NewString(),
		Hours:   hours,
		Quality: quality,
		Date:    s.selectedDate,
	}
	s.sleep = append(s.sleep, entry)
	return entry
}

// SleepEntries returns a snapshot of all sleep entries in insertion order.
func (s *Store) SleepEntries(_ context.Context) []domain.SleepEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.SleepEntry(nil), s.sleep...)
}

// AddWeight appends a weight entry. No dedup by date.
func (s *Store) AddWeight(_ context.Context, weight float64, unit string) domain.WeightEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.WeightEntry{
		ID:     uuid.NewString(),
		Weight: weight,
		Unit:   unit,
		Date:   s.selectedDate,
	}
	s.weights = append(s.weights, entry)
	return entry
}

// WeightEntries returns a snapshot of all weight entries in insertion order.
func (s *Store) WeightEntries(_ context.Context) []domain.WeightEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.WeightEntry(nil), s.weights...)
}

// Clear drops every entry collection. The selected date is untouched.
func (s *Store) Clear(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.foods = nil
	s.water = nil
	s.workouts = nil
	s.sleep = nil
	s.weights = nil
}
