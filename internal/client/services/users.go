package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/usuarios/internal/client/client"
	"github.com/dmitrijs2005/usuarios/internal/client/models"
	"github.com/dmitrijs2005/usuarios/internal/client/session"
	"github.com/dmitrijs2005/usuarios/internal/client/store"
	"github.com/dmitrijs2005/usuarios/internal/common"
	"github.com/dmitrijs2005/usuarios/internal/logging"
	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

// UserService is the controller behind the users screen. It owns the
// filter and edit session, reads through the stores, and is the only
// place writes go to the gateway. Every successful write is followed by a
// full reload of the user list.
//
// Methods are meant to be called from one goroutine, the way a UI event
// loop would.
type UserService struct {
	client   client.Client
	refs     *store.ReferenceStore
	users    *store.UserStore
	session  session.Session
	filter   models.Filter
	validate *validator.Validate
	logger   logging.Logger
}

func NewUserService(c client.Client, logger logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &UserService{
		client:   c,
		refs:     store.NewReferenceStore(c),
		users:    store.NewUserStore(c),
		validate: newValidator(),
		logger:   logger,
	}
}

// Load performs the initial fetch: reference data and users in parallel,
// returning once both have finished.
func (s *UserService) Load(ctx context.Context) Result {
	var (
		g                 errgroup.Group
		refsErr, usersErr error
	)
	g.Go(func() error {
		refsErr = s.refs.Refresh(ctx)
		return nil
	})
	g.Go(func() error {
		usersErr = s.users.Refresh(ctx)
		return nil
	})
	_ = g.Wait()

	res := Result{Op: OpLoad, Err: errors.Join(usersErr, refsErr)}
	switch {
	case usersErr != nil && refsErr != nil:
		res.Message = msgLoadUsers + "; " + msgLoadReferences
	case usersErr != nil:
		res.Message = msgLoadUsers
	case refsErr != nil:
		res.Message = msgLoadReferences
	}
	if res.Err != nil {
		s.logger.Warn(ctx, "initial load failed", "error", res.Err)
	} else {
		s.logger.Info(ctx, "initial load done", "users", len(s.users.Users()),
			"departments", len(s.refs.Departments()), "positions", len(s.refs.Positions()))
	}
	return res
}

// ReloadUsers refetches the user list.
func (s *UserService) ReloadUsers(ctx context.Context) Result {
	return s.reloadUsers(ctx, OpReloadUser)
}

func (s *UserService) reloadUsers(ctx context.Context, op Op) Result {
	if err := s.users.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "users reload failed", "error", err)
		return Result{Op: op, Err: err, Message: msgLoadUsers}
	}
	return Result{Op: op}
}

// ReloadReferences refetches departments and positions.
func (s *UserService) ReloadReferences(ctx context.Context) Result {
	if err := s.refs.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "reference reload failed", "error", err)
		return Result{Op: OpReloadRefs, Err: err, Message: msgLoadReferences}
	}
	return Result{Op: OpReloadRefs}
}

// ---- filter ----

func (s *UserService) SetDepartmentFilter(id string) { s.filter.SetDepartment(id) }

func (s *UserService) SetPositionFilter(id string) { s.filter.SetPosition(id) }

func (s *UserService) ClearFilters() { s.filter.Clear() }

func (s *UserService) Filter() models.Filter { return s.filter }

// FilteredUsers is the table content for the current filter.
func (s *UserService) FilteredUsers() []models.User {
	return s.users.FilteredView(s.filter)
}

func (s *UserService) FindUser(id string) (models.User, bool) { return s.users.Find(id) }

// UsersErr is the error of the last user-list fetch, for the page banner.
func (s *UserService) UsersErr() error { return s.users.Err() }

func (s *UserService) ActiveDepartments() []models.Department { return s.refs.ActiveDepartments() }

func (s *UserService) ActivePositions() []models.Position { return s.refs.ActivePositions() }

// ---- edit session ----

func (s *UserService) OpenForCreate() error { return s.session.OpenForCreate() }

func (s *UserService) OpenForEdit(u models.User) error { return s.session.OpenForEdit(u) }

func (s *UserService) CloseForm() { s.session.Close() }

func (s *UserService) SessionState() session.State { return s.session.State() }

// Draft is the live form draft, nil while the form is closed.
func (s *UserService) Draft() *models.Draft { return s.session.Draft() }

// Submit saves the open draft. Validation and reference resolution happen
// locally first; any failure, local or remote, leaves the form open with
// the draft untouched. On success the form closes and the user list is
// reloaded once.
func (s *UserService) Submit(ctx context.Context) Result {
	op := OpCreate
	target, editing := s.session.Target()
	if editing {
		op = OpUpdate
	}

	draft := s.session.Draft()
	if draft == nil {
		return Result{Op: op, Err: common.ErrSessionClosed, Message: msgSessionClosed}
	}
	d := *draft

	if err := validateDraft(s.validate, d); err != nil {
		return Result{Op: op, Err: err, Message: err.Error()}
	}

	dept, okDept := s.refs.Department(d.DepartmentID)
	pos, okPos := s.refs.Position(d.PositionID)
	if !okDept || !okPos {
		err := fmt.Errorf("%w: %w", common.ErrValidation, common.ErrInvalidSelection)
		return Result{Op: op, Err: err, Message: common.ErrInvalidSelection.Error()}
	}

	var err error
	if editing {
		payload := models.NewUserPayload(target.ID, d, dept, pos)
		_, err = s.client.UpdateUser(ctx, target.ID, payload)
	} else {
		payload := models.NewUserPayload("", d, dept, pos)
		_, err = s.client.CreateUser(ctx, payload)
	}
	if err != nil {
		s.logger.Warn(ctx, "save user failed", "op", op, "error", err)
		return Result{Op: op, Err: err, Message: saveMessage(err)}
	}

	s.logger.Info(ctx, "user saved", "op", op, "usuario", d.Username)
	s.session.Close()
	followup := s.reloadUsers(ctx, OpReloadUser)
	return Result{Op: op, Followup: &followup}
}

// Delete removes a user after confirm agrees. A declined confirmation never
// reaches the gateway; a failed delete leaves the list as it was. A nil
// confirm counts as declined.
func (s *UserService) Delete(ctx context.Context, id string, confirm Confirmer) Result {
	if confirm == nil {
		return Result{Op: OpDelete, Cancelled: true}
	}
	ok, err := confirm.Confirm(ctx, "Are you sure you want to delete this user?")
	if err != nil {
		return Result{Op: OpDelete, Err: err, Message: msgDelete}
	}
	if !ok {
		return Result{Op: OpDelete, Cancelled: true}
	}

	if err := s.client.DeleteUser(ctx, id); err != nil {
		s.logger.Warn(ctx, "delete user failed", "id", id, "error", err)
		msg := msgDelete
		if errors.Is(err, common.ErrNotFound) {
			msg = msgNotFound
		}
		return Result{Op: OpDelete, Err: err, Message: msg}
	}

	s.logger.Info(ctx, "user deleted", "id", id)
	followup := s.reloadUsers(ctx, OpReloadUser)
	return Result{Op: OpDelete, Followup: &followup}
}

// saveMessage prefers what the server said, then the generic text.
func saveMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, common.ErrNotFound) {
		return msgNotFound
	}
	return msgSave
}
