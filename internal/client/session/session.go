// Package session implements the create/edit form lifecycle: a session is
// closed, open for creating, or open for editing one user, and owns the
// form draft only while open.
package session

import (
	"fmt"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"github.com/dmitrijs2005/usuarios/internal/common"
)

// State of the edit session.
type State int

const (
	Closed State = iota
	Creating
	Editing
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the edit session state machine. The zero value is closed.
type Session struct {
	state  State
	target models.User
	draft  *models.Draft
}

// OpenForCreate opens the form with an empty draft.
func (s *Session) OpenForCreate() error {
	if s.IsOpen() {
		return fmt.Errorf("open for create: %w", common.ErrSessionOpen)
	}
	s.state = Creating
	s.target = models.User{}
	s.draft = &models.Draft{}
	return nil
}

// OpenForEdit opens the form with a draft copied from u.
func (s *Session) OpenForEdit(u models.User) error {
	if s.IsOpen() {
		return fmt.Errorf("open for edit: %w", common.ErrSessionOpen)
	}
	d := models.DraftFromUser(u)
	s.state = Editing
	s.target = u
	s.draft = &d
	return nil
}

// Close discards the draft. Closing a closed session is a no-op.
func (s *Session) Close() {
	s.state = Closed
	s.target = models.User{}
	s.draft = nil
}

func (s *Session) State() State { return s.state }

func (s *Session) IsOpen() bool { return s.state != Closed }

// Target is the user being edited; ok is false unless Editing.
func (s *Session) Target() (u models.User, ok bool) {
	if s.state != Editing {
		return models.User{}, false
	}
	return s.target, true
}

// Draft returns the live draft for the form to edit in place, or nil when
// the session is closed.
func (s *Session) Draft() *models.Draft {
	return s.draft
}
