// Package users declares and implements storage of identities.
package users

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in ID and CreatedAt.
	// A taken email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Delete removes the user; owned rows go with it by cascade.
	Delete(ctx context.Context, id string) error
}
