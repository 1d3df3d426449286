package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	CloseErr error
	PingErr  error

	AuthIdentity *models.Identity
	AuthErr      error
	IssuedToken  string

	ResumeErr   error
	ResumeToken string

	LogoutErr error

	Apps      []records.Application
	ListErr   error
	CreateID  string
	AppErr    error
	ExportRet *models.Export
	ExportErr error

	refreshToken string
	onTokens     func(string)

	Calls          int
	LastEmail      string
	LastPassword   string
	LastResumed    string
	LastLogoutTok  string
	LastFields     records.Fields
	LastID         string
	LoggedOutCalls int
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) setToken(tok string) {
	f.refreshToken = tok
	if f.onTokens != nil {
		f.onTokens(tok)
	}
}

func (f *fakeClient) auth() (*models.Identity, error) {
	f.Calls++
	if f.AuthErr != nil {
		return nil, f.AuthErr
	}
	f.setToken(f.IssuedToken)
	id := *f.AuthIdentity
	return &id, nil
}

func (f *fakeClient) Close() error                   { return f.CloseErr }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.auth()
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.auth()
}

func (f *fakeClient) LoginAnonymously(ctx context.Context) (*models.Identity, error) {
	return f.auth()
}

func (f *fakeClient) Resume(ctx context.Context, refreshToken string) error {
	f.Calls++
	f.LastResumed = refreshToken
	if f.ResumeErr != nil {
		return f.ResumeErr
	}
	f.setToken(f.ResumeToken)
	return nil
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LoggedOutCalls++
	f.LastLogoutTok = f.refreshToken
	f.setToken("")
	return f.LogoutErr
}

func (f *fakeClient) RefreshToken() string { return f.refreshToken }

func (f *fakeClient) OnTokens(fn func(string)) { f.onTokens = fn }

func (f *fakeClient) ListApplications(ctx context.Context) ([]records.Application, error) {
	f.Calls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]records.Application(nil), f.Apps...), nil
}

func (f *fakeClient) CreateApplication(ctx context.Context, fl records.Fields) (string, error) {
	f.Calls++
	f.LastFields = fl
	return f.CreateID, f.AppErr
}

func (f *fakeClient) GetApplication(ctx context.Context, id string) (records.Application, error) {
	f.Calls++
	f.LastID = id
	if f.AppErr != nil {
		return records.Application{}, f.AppErr
	}
	for _, a := range f.Apps {
		if a.ID == id {
			return a, nil
		}
	}
	return records.Application{}, nil
}

func (f *fakeClient) UpdateApplication(ctx context.Context, id string, fl records.Fields) error {
	f.Calls++
	f.LastID, f.LastFields = id, fl
	return f.AppErr
}

func (f *fakeClient) DeleteApplication(ctx context.Context, id string) error {
	f.Calls++
	f.LastID = id
	return f.AppErr
}

func (f *fakeClient) ExportApplications(ctx context.Context) (*models.Export, error) {
	f.Calls++
	return f.ExportRet, f.ExportErr
}

// fixedSession is an IdentitySource with a settable identity.
type fixedSession struct{ id *models.Identity }

func (s fixedSession) Identity() *models.Identity { return s.id }
