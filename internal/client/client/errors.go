package client

import (
	"fmt"
	"net/http"
)

// APIError describes a failed exchange with the backend. Kind is one of the
// common sentinels (ErrTransport, ErrServer, ErrValidation, ErrNotFound) and
// Err, when set, is the underlying transport failure; both match with
// errors.Is.
type APIError struct {
	Op      string
	Status  int
	Message string
	Kind    error
	Err     error
}

func (e *APIError) Error() string {
	s := e.Op + ": " + e.Kind.Error()
	if e.Status != 0 {
		s += fmt.Sprintf(" (%d %s)", e.Status, http.StatusText(e.Status))
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
