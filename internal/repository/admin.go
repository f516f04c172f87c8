package repository

import (
	"context"

	"newsapi/internal/model"
)

// AdminRepository defines persistence for admin accounts keyed by email.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, a *model.Admin) (*model.Admin, error)
	// UpdatePassword replaces the stored hash. A missing admin is ErrNotFound.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
