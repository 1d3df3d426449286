package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/applications"
	refreshtokensrepo "github.com/dmitrijs2005/jobtracker/internal/server/repositories/refreshtokens"
	usersrepo "github.com/dmitrijs2005/jobtracker/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeUsersRepo struct {
	createErr error
	created   []*models.User

	getOut *models.User
	getErr error

	deleted   []string
	deleteErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if u.ID == "" {
		u.ID = "new-user"
	}
	u.CreatedAt = time.Now()
	f.created = append(f.created, u)
	return u, nil
}
func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}
func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.getOut == nil {
		return &models.User{ID: id}, nil
	}
	return f.getOut, nil
}
func (f *fakeUsersRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr  error
	deleted []string

	delByUserErr error
	delByUser    []string

	createErr error
	created   []string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, userID)
	return nil
}
func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}
func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, token)
	return nil
}
func (f *fakeRefreshRepo) DeleteByUser(ctx context.Context, userID string) error {
	if f.delByUserErr != nil {
		return f.delByUserErr
	}
	f.delByUser = append(f.delByUser, userID)
	return nil
}

// fakeAppsRepo keeps rows in memory, scoped by user like the real one.
type fakeAppsRepo struct {
	rows    []*models.Application
	nextID  int
	listErr error
	err     error
}

func (f *fakeAppsRepo) Create(ctx context.Context, a *models.Application) (*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	cp := *a
	cp.ID = fmt.Sprintf("app-%d", f.nextID)
	cp.CreatedAt = time.Date(2024, 1, 1, 0, 0, f.nextID, 0, time.UTC)
	f.rows = append(f.rows, &cp)
	return &cp, nil
}
func (f *fakeAppsRepo) ListByUser(ctx context.Context, userID string) ([]*models.Application, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Application
	for _, r := range f.rows {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}
func (f *fakeAppsRepo) find(userID, id string) (int, bool) {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			return i, true
		}
	}
	return 0, false
}
func (f *fakeAppsRepo) Get(ctx context.Context, userID, id string) (*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	i, ok := f.find(userID, id)
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *f.rows[i]
	return &cp, nil
}
func (f *fakeAppsRepo) Update(ctx context.Context, a *models.Application) error {
	if f.err != nil {
		return f.err
	}
	i, ok := f.find(a.UserID, a.ID)
	if !ok {
		return common.ErrorNotFound
	}
	r := f.rows[i]
	r.CompanyName, r.URL, r.Status, r.DateApplied = a.CompanyName, a.URL, a.Status, a.DateApplied
	return nil
}
func (f *fakeAppsRepo) Delete(ctx context.Context, userID, id string) error {
	if f.err != nil {
		return f.err
	}
	i, ok := f.find(userID, id)
	if !ok {
		return common.ErrorNotFound
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	r *fakeRefreshRepo
	a *fakeAppsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(db dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Applications(db dbx.DBTX) applications.Repository       { return m.a }
