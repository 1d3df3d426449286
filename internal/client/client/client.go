package client

import (
	"context"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// Client is the transport contract between the CLI services and the backend.
// Implementations hold the current token pair themselves.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password string) (*models.Identity, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	LoginAnonymously(ctx context.Context) (*models.Identity, error)
	// Resume exchanges a stored refresh token for a fresh token pair.
	Resume(ctx context.Context, refreshToken string) error
	Logout(ctx context.Context) error
	RefreshToken() string
	// OnTokens registers fn to be called with the refresh token whenever it
	// changes, including transparent rotation. An empty token means cleared.
	OnTokens(fn func(refreshToken string))

	ListApplications(ctx context.Context) ([]records.Application, error)
	CreateApplication(ctx context.Context, f records.Fields) (string, error)
	GetApplication(ctx context.Context, id string) (records.Application, error)
	UpdateApplication(ctx context.Context, id string, f records.Fields) error
	DeleteApplication(ctx context.Context, id string) error
	ExportApplications(ctx context.Context) (*models.Export, error)
}
