// Package refreshtokens stores the refresh grants behind token rotation.
// Tokens are opaque random strings; the table only holds their SHA-256 digest.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/server/models"
)

type Repository interface {
	// Create stores token for userID, valid for validity from now.
	Create(ctx context.Context, userID string, token string, validity time.Duration) error

	// Find returns common.ErrorNotFound for unknown tokens.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete is a no-op for unknown tokens.
	Delete(ctx context.Context, token string) error

	DeleteByUser(ctx context.Context, userID string) error
}
