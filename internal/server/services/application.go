package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/records"
	sc "github.com/dmitrijs2005/jobtracker/internal/server/config"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/repomanager"
)

// ApplicationService is the per-user record store. userID always comes from
// the verified access token; missing and foreign records both surface as
// common.ErrorNotFound.
type ApplicationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewApplicationService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ApplicationService {
	return &ApplicationService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

func (s *ApplicationService) List(ctx context.Context, userID string) ([]records.Application, error) {
	rows, err := s.repomanager.Applications(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]records.Application, 0, len(rows))
	for _, r := range rows {
		result = append(result, r.ToRecord())
	}
	return result, nil
}

// Create validates f and stores it, returning the new id.
func (s *ApplicationService) Create(ctx context.Context, userID string, f records.Fields) (string, error) {
	f = records.Normalize(f)
	if err := records.CheckFields(f); err != nil {
		return "", err
	}

	app, err := s.repomanager.Applications(s.db).Create(ctx, &models.Application{
		UserID:      userID,
		CompanyName: f.CompanyName,
		URL:         f.URL,
		Status:      string(f.Status),
		DateApplied: f.DateApplied,
	})
	if err != nil {
		return "", fmt.Errorf("error creating application: %w", err)
	}
	return app.ID, nil
}

func (s *ApplicationService) Get(ctx context.Context, userID, id string) (records.Application, error) {
	app, err := s.repomanager.Applications(s.db).Get(ctx, userID, id)
	if err != nil {
		return records.Application{}, err
	}
	return app.ToRecord(), nil
}

// Update overwrites the four editable fields of an existing record.
func (s *ApplicationService) Update(ctx context.Context, userID, id string, f records.Fields) error {
	f = records.Normalize(f)
	if err := records.CheckFields(f); err != nil {
		return err
	}

	return s.repomanager.Applications(s.db).Update(ctx, &models.Application{
		ID:          id,
		UserID:      userID,
		CompanyName: f.CompanyName,
		URL:         f.URL,
		Status:      string(f.Status),
		DateApplied: f.DateApplied,
	})
}

func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Applications(s.db).Delete(ctx, userID, id)
}
