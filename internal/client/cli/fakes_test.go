package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/session"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/stretchr/testify/require"
)

// ---- fake auth ----

type fakeAuth struct {
	mu      sync.Mutex
	current *models.Identity
	subs    map[int]func(models.IdentityEvent)
	next    int

	SignInID   *models.Identity
	SignInErr  error
	SignOutErr error
	PingErr    error

	LastEmail    string
	LastPassword string
	SignOuts     int
}

var _ services.AuthService = (*fakeAuth)(nil)

func (f *fakeAuth) publish(ev models.IdentityEvent) {
	f.mu.Lock()
	fns := make([]func(models.IdentityEvent), 0, len(f.subs))
	for i := 0; i < f.next; i++ {
		if fn, ok := f.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (f *fakeAuth) set(id *models.Identity) {
	f.mu.Lock()
	f.current = id
	f.mu.Unlock()
	if id == nil {
		f.publish(models.IdentityEvent{State: models.SignedOut})
		return
	}
	cp := *id
	f.publish(models.IdentityEvent{State: models.SignedIn, Identity: &cp})
}

func (f *fakeAuth) CurrentIdentity() *models.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return nil
	}
	id := *f.current
	return &id
}

func (f *fakeAuth) signIn() (*models.Identity, error) {
	f.publish(models.IdentityEvent{State: models.Pending})
	if f.SignInErr != nil {
		f.set(f.CurrentIdentity())
		return nil, f.SignInErr
	}
	f.set(f.SignInID)
	return f.CurrentIdentity(), nil
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.signIn()
}

func (f *fakeAuth) SignInAnonymously(ctx context.Context) (*models.Identity, error) {
	return f.signIn()
}

func (f *fakeAuth) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	f.LastEmail, f.LastPassword = email, password
	return f.signIn()
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.SignOuts++
	f.set(nil)
	return f.SignOutErr
}

func (f *fakeAuth) Restore(ctx context.Context) (*models.Identity, error) {
	f.publish(models.IdentityEvent{State: models.Pending})
	id := f.CurrentIdentity()
	f.set(id)
	return id, nil
}

func (f *fakeAuth) Subscribe(fn func(models.IdentityEvent)) func() {
	f.mu.Lock()
	if f.subs == nil {
		f.subs = make(map[int]func(models.IdentityEvent))
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	}
}

func (f *fakeAuth) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.PingErr
}

func (f *fakeAuth) setPingErr(err error) {
	f.mu.Lock()
	f.PingErr = err
	f.mu.Unlock()
}

func (f *fakeAuth) Close(ctx context.Context) error { return nil }

// ---- fake application store ----

type fakeApps struct {
	byID  map[string]records.Application
	order []string
	seq   int

	ListErr   error
	ExportRet *models.Export
	ExportErr error

	Lists, Creates, Updates, Deletes int
	LastFields                       records.Fields
}

var _ services.ApplicationService = (*fakeApps)(nil)

func newFakeApps(apps ...records.Application) *fakeApps {
	f := &fakeApps{byID: map[string]records.Application{}}
	for _, a := range apps {
		f.byID[a.ID] = a
		f.order = append(f.order, a.ID)
	}
	return f
}

func (f *fakeApps) List(ctx context.Context) ([]records.Application, error) {
	f.Lists++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]records.Application, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeApps) Create(ctx context.Context, fl records.Fields) (string, error) {
	f.Creates++
	f.LastFields = fl
	f.seq++
	id := fmt.Sprintf("n%d", f.seq)
	f.byID[id] = records.Application{ID: id, CompanyName: fl.CompanyName, URL: fl.URL, Status: fl.Status, DateApplied: fl.DateApplied}
	f.order = append(f.order, id)
	return id, nil
}

func (f *fakeApps) Get(ctx context.Context, id string) (records.Application, error) {
	a, ok := f.byID[id]
	if !ok {
		return records.Application{}, common.ErrorNotFound
	}
	return a, nil
}

func (f *fakeApps) Update(ctx context.Context, id string, fl records.Fields) error {
	f.Updates++
	f.LastFields = fl
	a, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.CompanyName, a.URL, a.Status, a.DateApplied = fl.CompanyName, fl.URL, fl.Status, fl.DateApplied
	f.byID[id] = a
	return nil
}

func (f *fakeApps) Delete(ctx context.Context, id string) error {
	f.Deletes++
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	out := f.order[:0:0]
	for _, v := range f.order {
		if v != id {
			out = append(out, v)
		}
	}
	f.order = out
	return nil
}

func (f *fakeApps) Export(ctx context.Context) (*models.Export, error) {
	return f.ExportRet, f.ExportErr
}

// ---- harness ----

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)

type harness struct {
	app   *App
	auth  *fakeAuth
	apps  *fakeApps
	lines *[]string
}

func (h *harness) output() string { return strings.Join(*h.lines, "\n") }

// newHarness builds an App on fakes. input feeds every prompt and the REPL;
// printed lines are captured.
func newHarness(t *testing.T, input string, auth *fakeAuth, apps *fakeApps) *harness {
	t.Helper()

	var lines []string
	oldPrintln, oldPrint, oldPassword, oldNow, oldTerm := printlnFn, printFn, getPassword, nowFn, isTerminal
	t.Cleanup(func() {
		printlnFn, printFn, getPassword, nowFn, isTerminal = oldPrintln, oldPrint, oldPassword, oldNow, oldTerm
	})
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	getPassword = func(io.Writer) ([]byte, error) { return []byte("secret-pass"), nil }
	nowFn = func() time.Time { return testNow }
	isTerminal = func() bool { return false }

	sess := session.New(auth)
	require.NoError(t, sess.Init(context.Background()))

	cfg := &config.Config{ExportDir: t.TempDir()}
	app := newApp(cfg, logging.Nop(), auth, apps, sess, bufio.NewReader(strings.NewReader(input)), io.Discard)
	t.Cleanup(app.session.Close)

	return &harness{app: app, auth: auth, apps: apps, lines: &lines}
}

func signedInAuth() *fakeAuth {
	return &fakeAuth{current: &models.Identity{UserID: "u1", Email: "a@b.c"}}
}

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour).Truncate(time.Minute)
}
