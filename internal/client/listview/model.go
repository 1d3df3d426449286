// Package listview keeps the list screen's state: the records confirmed by
// the server, in display order, plus the in-flight flags. A successful
// delete removes exactly that record from the local cache without another
// read.
package listview

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/records"
)

// ErrBusy is returned when an operation starts while another is in flight.
var ErrBusy = errors.New("another operation is in progress")

// Gateway is the part of the record store the list screen uses.
type Gateway interface {
	List(ctx context.Context) ([]records.Application, error)
	Delete(ctx context.Context, id string) error
}

type Model struct {
	gateway Gateway

	mu       sync.Mutex
	busy     bool
	loading  bool
	loaded   bool
	order    []string
	byID     map[string]records.Application
	watchers map[int]func()
	nextW    int
}

func New(g Gateway) *Model {
	return &Model{
		gateway:  g,
		byID:     make(map[string]records.Application),
		watchers: make(map[int]func()),
	}
}

func (m *Model) acquire(loading bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	m.loading = loading
	return nil
}

func (m *Model) release() {
	m.mu.Lock()
	m.busy = false
	m.loading = false
	m.mu.Unlock()
}

// Load replaces the cache with a full fetch. On failure the cache is left
// as it was.
func (m *Model) Load(ctx context.Context) error {
	if err := m.acquire(true); err != nil {
		return err
	}
	defer m.release()

	apps, err := m.gateway.List(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.order = make([]string, 0, len(apps))
	m.byID = make(map[string]records.Application, len(apps))
	for _, a := range apps {
		if _, dup := m.byID[a.ID]; !dup {
			m.order = append(m.order, a.ID)
		}
		m.byID[a.ID] = a
	}
	m.loaded = true
	m.mu.Unlock()

	m.notify()
	return nil
}

// Delete removes id on the server and, once confirmed, from the cache.
func (m *Model) Delete(ctx context.Context, id string) error {
	if err := m.acquire(false); err != nil {
		return err
	}
	defer m.release()

	if err := m.gateway.Delete(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	_, cached := m.byID[id]
	if cached {
		delete(m.byID, id)
		m.order = removeID(m.order, id)
	}
	m.mu.Unlock()

	if cached {
		m.notify()
	}
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Reset forgets every cached record, e.g. after sign-out.
func (m *Model) Reset() {
	m.mu.Lock()
	m.order = nil
	m.byID = make(map[string]records.Application)
	m.loaded = false
	m.mu.Unlock()

	m.notify()
}

// Items returns the cached records in the order the server returned them.
func (m *Model) Items() []records.Application {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]records.Application, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id])
	}
	return out
}

func (m *Model) Get(id string) (records.Application, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.byID[id]
	return a, ok
}

// Projection groups the cached records for display.
func (m *Model) Projection() records.Projection {
	return records.Project(m.Items())
}

func (m *Model) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Model) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

func (m *Model) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Subscribe calls fn after every confirmed change to the cache.
func (m *Model) Subscribe(fn func()) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextW
	m.nextW++
	m.watchers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.watchers, id)
		m.mu.Unlock()
	}
}

func (m *Model) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.watchers))
	for i := 0; i < m.nextW; i++ {
		if fn, ok := m.watchers[i]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
