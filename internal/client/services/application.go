package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// IdentitySource reports the current identity; nil means signed out.
type IdentitySource interface {
	Identity() *models.Identity
}

// ApplicationService is the record store gateway used by the screens.
//
// Every method checks the session first and fails with
// client.ErrUnauthenticated without touching the network when nobody is
// signed in. A missing record is reported as common.ErrorNotFound, invalid
// fields as *records.ValidationError, and anything else as client.ErrStore
// wrapping the cause.
type ApplicationService interface {
	List(ctx context.Context) ([]records.Application, error)
	Create(ctx context.Context, f records.Fields) (string, error)
	Get(ctx context.Context, id string) (records.Application, error)
	Update(ctx context.Context, id string, f records.Fields) error
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context) (*models.Export, error)
}

type applicationService struct {
	client  client.Client
	session IdentitySource
	timeout time.Duration
}

func NewApplicationService(c client.Client, session IdentitySource, timeout time.Duration) ApplicationService {
	return &applicationService{client: c, session: session, timeout: timeout}
}

// begin gates the call on the session and applies the request timeout.
func (s *applicationService) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if s.session.Identity() == nil {
		return nil, nil, client.ErrUnauthenticated
	}
	if s.timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	return ctx, cancel, nil
}

func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, records.ErrValidation):
		return err
	default:
		return fmt.Errorf("%w: %w", client.ErrStore, err)
	}
}

func (s *applicationService) List(ctx context.Context) ([]records.Application, error) {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	apps, err := s.client.ListApplications(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return apps, nil
}

// Create re-checks the fields locally so an invalid record never reaches
// the server.
func (s *applicationService) Create(ctx context.Context, f records.Fields) (string, error) {
	if err := records.CheckFields(f); err != nil {
		return "", err
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	id, err := s.client.CreateApplication(ctx, records.Normalize(f))
	if err != nil {
		return "", storeError(err)
	}
	return id, nil
}

func (s *applicationService) Get(ctx context.Context, id string) (records.Application, error) {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return records.Application{}, err
	}
	defer cancel()

	app, err := s.client.GetApplication(ctx, id)
	if err != nil {
		return records.Application{}, storeError(err)
	}
	return app, nil
}

func (s *applicationService) Update(ctx context.Context, id string, f records.Fields) error {
	if err := records.CheckFields(f); err != nil {
		return err
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	return storeError(s.client.UpdateApplication(ctx, id, records.Normalize(f)))
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	return storeError(s.client.DeleteApplication(ctx, id))
}

// Export asks the server for a downloadable snapshot of every record.
func (s *applicationService) Export(ctx context.Context) (*models.Export, error) {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	e, err := s.client.ExportApplications(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return e, nil
}
