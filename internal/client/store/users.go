package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
)

// UserSource is the part of the gateway the user store needs.
type UserSource interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserStore holds the last fetched user list.
type UserStore struct {
	src UserSource

	mu        sync.RWMutex
	users     []models.User
	err       error
	refreshes int
}

func NewUserStore(src UserSource) *UserStore {
	return &UserStore{src: src, users: []models.User{}}
}

// Refresh replaces the list with a fresh fetch. On failure the list is
// cleared rather than left stale, and the error is kept and returned.
func (s *UserStore) Refresh(ctx context.Context) error {
	users, err := s.src.ListUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshes++
	if err != nil {
		s.users = []models.User{}
		s.err = err
		return err
	}
	if users == nil {
		users = []models.User{}
	}
	s.users = users
	s.err = nil
	return nil
}

// Refreshes counts Refresh calls, successful or not.
func (s *UserStore) Refreshes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshes
}

func (s *UserStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *UserStore) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.users)
}

// FilteredView returns the users matching f in list order.
func (s *UserStore) FilteredView(f models.Filter) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FilterUsers(s.users, f)
}

// Find returns the user with the given id from the current list.
func (s *UserStore) Find(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if models.SameID(u.ID, id) {
			return u, true
		}
	}
	return models.User{}, false
}
