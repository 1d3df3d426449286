package applications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ids are UUID columns; anything else can never match a row.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (r *PostgresRepository) Create(ctx context.Context, app *models.Application) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, user_id, company_name, url, status, date_applied)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	if app.ID == "" {
		app.ID = uuid.NewString()
	}

	err := r.db.QueryRowContext(ctx, query,
		app.ID, app.UserID, app.CompanyName, app.URL, app.Status, app.DateApplied,
	).Scan(&app.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return app, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	query := `
		SELECT id, user_id, company_name, url, status, date_applied, created_at
		FROM applications
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Application
	for rows.Next() {
		a := &models.Application{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.CompanyName, &a.URL, &a.Status, &a.DateApplied, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.Application, error) {
	if !validID(id) {
		return nil, common.ErrorNotFound
	}

	query := `
		SELECT id, user_id, company_name, url, status, date_applied, created_at
		FROM applications
		WHERE id = $1 AND user_id = $2
	`

	a := &models.Application{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&a.ID, &a.UserID, &a.CompanyName, &a.URL, &a.Status, &a.DateApplied, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, app *models.Application) error {
	if !validID(app.ID) {
		return common.ErrorNotFound
	}

	query := `
		UPDATE applications
		SET company_name = $1, url = $2, status = $3, date_applied = $4
		WHERE id = $5 AND user_id = $6
	`

	res, err := r.db.ExecContext(ctx, query,
		app.CompanyName, app.URL, app.Status, app.DateApplied, app.ID, app.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return dbx.ExpectOneRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	if !validID(id) {
		return common.ErrorNotFound
	}

	query := `
		DELETE FROM applications
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return dbx.ExpectOneRow(res)
}
