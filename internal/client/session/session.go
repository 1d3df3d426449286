// Package session holds the CLI's current identity. A Context is created
// once at start-up, follows the identity provider's event stream until
// Close, and is passed to every component that needs to know who is
// signed in.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
)

// Provider is the identity boundary the context follows.
type Provider interface {
	CurrentIdentity() *models.Identity
	Restore(ctx context.Context) (*models.Identity, error)
	Subscribe(fn func(models.IdentityEvent)) (unsubscribe func())
}

type Context struct {
	provider Provider

	mu          sync.RWMutex
	state       models.SessionState
	identity    *models.Identity
	unsubscribe func()

	observers map[int]func(models.IdentityEvent)
	nextObs   int
}

func New(provider Provider) *Context {
	return &Context{
		provider:  provider,
		state:     models.Pending,
		observers: make(map[int]func(models.IdentityEvent)),
	}
}

// Init subscribes to the provider and resumes a saved session. The context
// stays Pending until the provider reports the outcome. Calling Init twice
// is a no-op.
func (c *Context) Init(ctx context.Context) error {
	c.mu.Lock()
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return nil
	}
	c.unsubscribe = c.provider.Subscribe(c.apply)
	c.mu.Unlock()

	_, err := c.provider.Restore(ctx)

	// Restore may fail before publishing anything; fall back to whatever the
	// provider currently holds so the context never stays Pending.
	c.mu.RLock()
	pending := c.state == models.Pending
	c.mu.RUnlock()
	if pending {
		c.sync()
	}
	return err
}

// Close stops following the provider. Observers are dropped.
func (c *Context) Close() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.observers = make(map[int]func(models.IdentityEvent))
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Context) sync() {
	id := c.provider.CurrentIdentity()
	if id == nil {
		c.apply(models.IdentityEvent{State: models.SignedOut})
		return
	}
	c.apply(models.IdentityEvent{State: models.SignedIn, Identity: id})
}

func (c *Context) apply(ev models.IdentityEvent) {
	c.mu.Lock()
	c.state = ev.State
	if ev.State == models.SignedIn && ev.Identity != nil {
		id := *ev.Identity
		c.identity = &id
	} else if ev.State == models.SignedOut {
		c.identity = nil
	}
	fns := make([]func(models.IdentityEvent), 0, len(c.observers))
	for i := 0; i < c.nextObs; i++ {
		if fn, ok := c.observers[i]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Identity returns a copy of the signed-in identity, or nil. While a
// transition is pending the previous identity is still reported.
func (c *Context) Identity() *models.Identity {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return nil
	}
	id := *c.identity
	return &id
}

func (c *Context) SignedIn() bool {
	return c.Identity() != nil
}

func (c *Context) Pending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == models.Pending
}

func (c *Context) State() models.SessionState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Subscribe registers fn for every state change seen after this call.
func (c *Context) Subscribe(fn func(models.IdentityEvent)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.observers, id)
		c.mu.Unlock()
	}
}
