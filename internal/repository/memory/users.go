package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"hudspal/tracker/internal/domain"
	"hudspal/tracker/internal/repository"
)

// UserStore holds the session's fabricated user records in memory.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*domain.User // keyed by ID
}

// NewUserStore creates an empty user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[string]*domain.User)}
}

var _ repository.UserRepository = (*UserStore)(nil)

// Create stores the user, assigning a fresh identity and creation time.
func (s *UserStore) Create(_ context.Context, user *domain.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	copied := *user
	s.users[user.ID] = &copied
	return user.ID, nil
}

// GetByID returns the user with the given identity.
func (s *UserStore) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByUsername returns the user with the given username.
func (s *UserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

// UpdateGoals replaces the user's goals and returns the updated record.
func (s *UserStore) UpdateGoals(_ context.Context, id string, goals domain.Goals) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user.Goals = goals
	copied := *user
	return &copied, nil
}
