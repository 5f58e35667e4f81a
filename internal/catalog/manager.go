package catalog

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"hudspal/tracker/internal/domain"
)

// --- Error Definitions ---
var (
	ErrFoodNotFound     = errors.New("food catalog item not found")
	ErrExerciseNotFound = errors.New("exercise catalog item not found")
)

// Manager owns the two read-mostly catalogs for the session. A failed load
// leaves the affected catalog empty; the caller surfaces the error and may
// retry via Reload. The food catalog additionally tracks a loading flag so the
// presentation layer can show its pending state.
type Manager struct {
	client       *http.Client
	foodsURL     string
	exercisesURL string

	mu           sync.RWMutex
	foods        []domain.FoodCatalogItem
	exercises    []domain.ExerciseCatalogItem
	foodsLoading bool
}

// NewManager creates a Manager for the two dataset URLs. client may be nil,
// in which case a default client with a timeout is used per load.
func NewManager(client *http.Client, foodsURL, exercisesURL string) *Manager {
	return &Manager{
		client:       client,
		foodsURL:     foodsURL,
		exercisesURL: exercisesURL,
	}
}

// LoadFoods fetches the nutrition dataset, replacing the in-memory catalog on
// success. On failure the catalog keeps its previous contents (empty on first
// load) and the error is returned for logging.
func (m *Manager) LoadFoods(ctx context.Context) error {
	m.mu.Lock()
	m.foodsLoading = true
	m.mu.Unlock()

	items, err := LoadFoods(ctx, m.client, m.foodsURL)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.foodsLoading = false
	if err != nil {
		return err
	}
	m.foods = items
	return nil
}

// LoadExercises fetches the exercise dataset, replacing the in-memory catalog
// on success.
func (m *Manager) LoadExercises(ctx context.Context) error {
	items, err := LoadExercises(ctx, m.client, m.exercisesURL)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exercises = items
	return nil
}

// FoodsLoading reports whether a food catalog fetch is in flight.
func (m *Manager) FoodsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.foodsLoading
}

// SearchFoods returns catalog foods matching query, capped at
// DefaultSearchLimit, in load order.
func (m *Manager) SearchFoods(query string) []domain.FoodCatalogItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Search(m.foods, func(f domain.FoodCatalogItem) string { return f.Name }, query, DefaultSearchLimit)
}

// SearchExercises returns catalog exercises matching query, capped at
// DefaultSearchLimit, in load order.
func (m *Manager) SearchExercises(query string) []domain.ExerciseCatalogItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Search(m.exercises, func(e domain.ExerciseCatalogItem) string { return e.Exercise }, query, DefaultSearchLimit)
}

// FoodByID resolves a catalog food by its synthetic identity. The returned
// pointer is shared with every entry that references the item.
func (m *Manager) FoodByID(id string) (*domain.FoodCatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.foods {
		if m.foods[i].ID == id {
			return &m.foods[i], nil
		}
	}
	return nil, ErrFoodNotFound
}

// ExerciseByID resolves a catalog exercise by its synthetic identity.
func (m *Manager) ExerciseByID(id string) (*domain.ExerciseCatalogItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.exercises {
		if m.exercises[i].ID == id {
			return &m.exercises[i], nil
		}
	}
	return nil, ErrExerciseNotFound
}

// FoodCount reports how many foods loaded.
func (m *Manager) FoodCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.foods)
}

// ExerciseCount reports how many exercises loaded.
func (m *Manager) ExerciseCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.exercises)
}
