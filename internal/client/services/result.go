package services

import "context"

// Op names the operation a Result belongs to.
type Op string

const (
	OpLoad       Op = "load"
	OpReloadUser Op = "reload users"
	OpReloadRefs Op = "reload references"
	OpCreate     Op = "create"
	OpUpdate     Op = "update"
	OpDelete     Op = "delete"
)

// User-facing messages.
const (
	msgLoadUsers      = "could not load users; make sure the backend is running and reachable"
	msgLoadReferences = "could not load departments or positions"
	msgSave           = "error saving user"
	msgDelete         = "error deleting user"
	msgNotFound       = "user not found; it may have been deleted already"
	msgSessionClosed  = "no form is open"
)

// Result is the outcome of one operation. Err is nil on success; Message is
// the single string to show the user when it is not. Cancelled marks an
// operation the user declined. Followup is the user-list reload triggered
// by a successful write, if any.
type Result struct {
	Op        Op
	Err       error
	Message   string
	Cancelled bool
	Followup  *Result
}

func (r Result) OK() bool { return r.Err == nil && !r.Cancelled }

// Confirmer asks the user a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}
