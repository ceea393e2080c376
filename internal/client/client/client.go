package client

import (
	"context"

	"github.com/dmitrijs2005/usuarios/internal/client/models"
)

// Client is the remote data gateway: one method per backend endpoint, no
// local state, no retries, no caching.
type Client interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListPositions(ctx context.Context) ([]models.Position, error)
	CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error)
	UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
