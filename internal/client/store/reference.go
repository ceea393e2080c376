package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// ReferenceSource is the part of the gateway the reference store needs.
type ReferenceSource interface {
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
}

// ReferenceStore holds the full department and position lists plus their
// memoized active subsets.
type ReferenceStore struct {
	src ReferenceSource

	mu                sync.RWMutex
	departments       []models.Department
	positions         []models.Position
	activeDepartments []models.Department
	activePositions   []models.Position
	err               error
}

func NewReferenceStore(src ReferenceSource) *ReferenceStore {
	return &ReferenceStore{
		src:               src,
		departments:       []models.Department{},
		positions:         []models.Position{},
		activeDepartments: []models.Department{},
		activePositions:   []models.Position{},
	}
}

// Refresh fetches departments and positions concurrently and waits for
// both. Each list that arrived replaces the stored one, even when the
// other failed; the returned error joins both failures.
func (s *ReferenceStore) Refresh(ctx context.Context) error {
	var (
		g               errgroup.Group
		depts           []models.Department
		positions       []models.Position
		deptErr, posErr error
	)

	g.Go(func() error {
		depts, deptErr = s.src.ListDepartments(ctx)
		return nil
	})
	g.Go(func() error {
		positions, posErr = s.src.ListPositions(ctx)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if deptErr == nil {
		s.setDepartments(depts)
	} else {
		deptErr = fmt.Errorf("departments: %w", deptErr)
	}
	if posErr == nil {
		s.setPositions(positions)
	} else {
		posErr = fmt.Errorf("positions: %w", posErr)
	}

	s.err = errors.Join(deptErr, posErr)
	return s.err
}

func (s *ReferenceStore) setDepartments(d []models.Department) {
	if d == nil {
		d = []models.Department{}
	}
	s.departments = d
	s.activeDepartments = models.ActiveDepartments(d)
}

func (s *ReferenceStore) setPositions(p []models.Position) {
	if p == nil {
		p = []models.Position{}
	}
	s.positions = p
	s.activePositions = models.ActivePositions(p)
}

// Err returns the error of the last Refresh, or nil.
func (s *ReferenceStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ReferenceStore) Departments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.departments)
}

func (s *ReferenceStore) Positions() []models.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.positions)
}

func (s *ReferenceStore) ActiveDepartments() []models.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.activeDepartments)
}

func (s *ReferenceStore) ActivePositions() []models.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.activePositions)
}

// Department looks id up in the full list, inactive entries included.
func (s *ReferenceStore) Department(id string) (models.Department, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.departments {
		if models.SameID(d.ID, id) {
			return d, true
		}
	}
	return models.Department{}, false
}

// Position looks id up in the full list, inactive entries included.
func (s *ReferenceStore) Position(id string) (models.Position, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.positions {
		if models.SameID(p.ID, id) {
			return p, true
		}
	}
	return models.Position{}, false
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
