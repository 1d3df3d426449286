package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/dmitrijs2005/jobtracker/internal/server/auth"
	"github.com/dmitrijs2005/jobtracker/internal/server/models"
	"github.com/dmitrijs2005/jobtracker/internal/server/services"
)

type fakeUser struct {
	session *services.Session
	err     error

	refreshResp *services.TokenPair
	refreshErr  error

	logoutErr error
	loggedOut []auth.Identity
	logoutRT  string
}

func (f *fakeUser) Register(ctx context.Context, email, password string) (*services.Session, error) {
	return f.session, f.err
}
func (f *fakeUser) Login(ctx context.Context, email, password string) (*services.Session, error) {
	return f.session, f.err
}
func (f *fakeUser) LoginAnonymously(ctx context.Context) (*services.Session, error) {
	return f.session, f.err
}
func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}
func (f *fakeUser) Logout(ctx context.Context, id auth.Identity, refreshToken string) error {
	f.loggedOut = append(f.loggedOut, id)
	f.logoutRT = refreshToken
	return f.logoutErr
}

type fakeApps struct {
	list    []records.Application
	app     records.Application
	newID   string
	export  *services.ExportResult
	err     error
	lastUID string
	lastID  string
	lastF   records.Fields
}

func (f *fakeApps) List(ctx context.Context, userID string) ([]records.Application, error) {
	f.lastUID = userID
	return f.list, f.err
}
func (f *fakeApps) Create(ctx context.Context, userID string, fl records.Fields) (string, error) {
	f.lastUID, f.lastF = userID, fl
	return f.newID, f.err
}
func (f *fakeApps) Get(ctx context.Context, userID, id string) (records.Application, error) {
	f.lastUID, f.lastID = userID, id
	return f.app, f.err
}
func (f *fakeApps) Update(ctx context.Context, userID, id string, fl records.Fields) error {
	f.lastUID, f.lastID, f.lastF = userID, id, fl
	return f.err
}
func (f *fakeApps) Delete(ctx context.Context, userID, id string) error {
	f.lastUID, f.lastID = userID, id
	return f.err
}
func (f *fakeApps) Export(ctx context.Context, userID string) (*services.ExportResult, error) {
	f.lastUID = userID
	return f.export, f.err
}

const testSecret = "k"

func newServer(u userSvc, a applicationSvc) *GRPCServer {
	limiter, _ := NewRateLimiter(0, 0)
	return &GRPCServer{
		address:      "127.0.0.1:0",
		users:        u,
		applications: a,
		logger:       logging.Nop(),
		jwtSecret:    []byte(testSecret),
		limiter:      limiter,
	}
}

func sampleSession(anonymous bool) *services.Session {
	u := &models.User{ID: "u1", Email: "a@b.co", IsAnonymous: anonymous}
	if anonymous {
		u.Email = ""
	}
	return &services.Session{User: u, Tokens: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
}

func sampleApp() records.Application {
	return records.Application{
		ID:          "app-1",
		CompanyName: "Acme",
		URL:         "https://acme.example",
		Status:      records.StatusInterviewScheduled,
		DateApplied: time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2024, 2, 3, 11, 0, 0, 0, time.UTC),
	}
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
