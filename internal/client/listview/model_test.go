package listview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	apps      []records.Application
	listErr   error
	deleteErr error
	lists     int
	deleted   []string

	// block, when set, holds the call until released
	block   chan struct{}
	entered chan struct{}
}

func (g *fakeGateway) wait() {
	if g.block != nil {
		g.entered <- struct{}{}
		<-g.block
	}
}

func (g *fakeGateway) List(ctx context.Context) ([]records.Application, error) {
	g.lists++
	g.wait()
	if g.listErr != nil {
		return nil, g.listErr
	}
	return append([]records.Application(nil), g.apps...), nil
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	g.wait()
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, id)
	return nil
}

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func app(id string, status records.Status, days int) records.Application {
	return records.Application{
		ID:          id,
		CompanyName: "Co " + id,
		URL:         "https://example.com/" + id,
		Status:      status,
		DateApplied: t0.AddDate(0, 0, days),
	}
}

func sample() []records.Application {
	return []records.Application{
		app("a", records.StatusPending, 3),
		app("b", records.StatusOfferReceived, 1),
		app("c", records.StatusRejected, 2),
		app("d", records.StatusInterviewScheduled, 0),
		app("e", records.StatusPending, 0),
	}
}

func ids(apps []records.Application) []string {
	out := make([]string, len(apps))
	for i, a := range apps {
		out[i] = a.ID
	}
	return out
}

func TestLoad_FillsCacheInServerOrder(t *testing.T) {
	g := &fakeGateway{apps: sample()}
	m := New(g)

	require.False(t, m.Loaded())
	require.NoError(t, m.Load(context.Background()))
	assert.True(t, m.Loaded())
	assert.False(t, m.Loading())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(m.Items()))

	a, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, records.StatusRejected, a.Status)
}

func TestLoad_FailureKeepsCache(t *testing.T) {
	g := &fakeGateway{apps: sample()}
	m := New(g)
	require.NoError(t, m.Load(context.Background()))

	g.listErr = errors.New("offline")
	require.EqualError(t, m.Load(context.Background()), "offline")
	assert.Len(t, m.Items(), 5)
}

func TestLoad_RefetchesEveryTime(t *testing.T) {
	g := &fakeGateway{apps: sample()}
	m := New(g)
	require.NoError(t, m.Load(context.Background()))

	g.apps = g.apps[:2]
	require.NoError(t, m.Load(context.Background()))
	assert.Equal(t, 2, g.lists)
	assert.Equal(t, []string{"a", "b"}, ids(m.Items()))
}

// Deleting X from a displayed list leaves exactly the list without X and
// makes no further read.
func TestDelete_RemovesOnlyThatRecordWithoutReread(t *testing.T) {
	g := &fakeGateway{apps: sample()}
	m := New(g)
	ctx := context.Background()
	require.NoError(t, m.Load(ctx))

	before := m.Items()
	beforeProj := m.Projection()

	require.NoError(t, m.Delete(ctx, "c"))
	assert.Equal(t, 1, g.lists)
	assert.Equal(t, []string{"c"}, g.deleted)

	var want []records.Application
	for _, a := range before {
		if a.ID != "c" {
			want = append(want, a)
		}
	}
	assert.Equal(t, want, m.Items())

	proj := m.Projection()
	assert.Empty(t, proj[records.BucketRejected])
	for _, b := range []records.Bucket{records.BucketOfferReceived, records.BucketInterviewScheduled, records.BucketOther} {
		assert.Equal(t, beforeProj[b], proj[b], b)
	}
}

func TestDelete_FailureLeavesCache(t *testing.T) {
	g := &fakeGateway{apps: sample(), deleteErr: errors.New("denied")}
	m := New(g)
	ctx := context.Background()
	require.NoError(t, m.Load(ctx))

	var notified int
	m.Subscribe(func() { notified++ })

	require.EqualError(t, m.Delete(ctx, "a"), "denied")
	assert.Len(t, m.Items(), 5)
	assert.Zero(t, notified)
}

func TestDelete_UnknownIDChangesNothing(t *testing.T) {
	g := &fakeGateway{apps: sample()}
	m := New(g)
	ctx := context.Background()
	require.NoError(t, m.Load(ctx))

	var notified int
	m.Subscribe(func() { notified++ })

	require.NoError(t, m.Delete(ctx, "zzz"))
	assert.Len(t, m.Items(), 5)
	assert.Zero(t, notified)
}

func TestProjection_Deterministic(t *testing.T) {
	m := New(&fakeGateway{apps: sample()})
	require.NoError(t, m.Load(context.Background()))

	p1 := m.Projection()
	p2 := m.Projection()
	assert.Equal(t, p1, p2)
	assert.Equal(t, []string{"e", "a"}, ids(p1[records.BucketOther]))
	assert.Equal(t, 5, p1.Len())
}

func TestSubscribe_NotifiedOnConfirmedChanges(t *testing.T) {
	m := New(&fakeGateway{apps: sample()})
	ctx := context.Background()

	var notified int
	unsubscribe := m.Subscribe(func() { notified++ })

	require.NoError(t, m.Load(ctx))
	require.NoError(t, m.Delete(ctx, "a"))
	assert.Equal(t, 2, notified)

	unsubscribe()
	m.Reset()
	assert.Equal(t, 2, notified)
	assert.Empty(t, m.Items())
	assert.False(t, m.Loaded())
}

func TestBusy_SecondOperationFailsFast(t *testing.T) {
	g := &fakeGateway{
		apps:    sample(),
		block:   make(chan struct{}),
		entered: make(chan struct{}),
	}
	m := New(g)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- m.Load(ctx) }()
	<-g.entered

	assert.True(t, m.Loading())
	assert.True(t, m.Busy())
	assert.ErrorIs(t, m.Delete(ctx, "a"), ErrBusy)
	assert.ErrorIs(t, m.Load(ctx), ErrBusy)

	close(g.block)
	require.NoError(t, <-done)
	assert.False(t, m.Busy())
	assert.Len(t, m.Items(), 5)
}
