// Package applications stores job applications. Every query is scoped to
// the owning user, so a foreign id behaves exactly like a missing one.
package applications

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

type Repository interface {
	// Create assigns ID (when empty) and CreatedAt.
	Create(ctx context.Context, app *models.Application) (*models.Application, error)
	// ListByUser returns the user's applications in creation order.
	ListByUser(ctx context.Context, userID string) ([]*models.Application, error)
	Get(ctx context.Context, userID, id string) (*models.Application, error)
	// Update overwrites the editable fields only; ID and CreatedAt stay.
	Update(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, userID, id string) error
}
