package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/jobtracker/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}

// SaveSession writes every session key. Bind the repository to a
// transaction to make the write atomic.
func (r *SQLiteRepository) SaveSession(ctx context.Context, s SavedSession) error {
	values := []struct {
		key   string
		value string
	}{
		{KeyUserID, s.UserID},
		{KeyEmail, s.Email},
		{KeyIsAnonymous, strconv.FormatBool(s.IsAnonymous)},
		{KeyRefreshToken, s.RefreshToken},
	}
	for _, v := range values {
		if err := r.Set(ctx, v.key, []byte(v.value)); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRepository) LoadSession(ctx context.Context) (*SavedSession, error) {
	token, err := r.Get(ctx, KeyRefreshToken)
	if err != nil {
		return nil, err
	}
	userID, err := r.Get(ctx, KeyUserID)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 || len(userID) == 0 {
		return nil, nil
	}

	email, err := r.Get(ctx, KeyEmail)
	if err != nil {
		return nil, err
	}
	anon, err := r.Get(ctx, KeyIsAnonymous)
	if err != nil {
		return nil, err
	}
	isAnonymous, _ := strconv.ParseBool(string(anon))

	return &SavedSession{
		UserID:       string(userID),
		Email:        string(email),
		IsAnonymous:  isAnonymous,
		RefreshToken: string(token),
	}, nil
}
