package srv

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name   string
	start  func(ctx context.Context) error
	mu     *sync.Mutex
	events *[]string
}

func (f *fakeService) Start(ctx context.Context) error {
	return f.start(ctx)
}

func (f *fakeService) Shutdown(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.events = append(*f.events, "shutdown:"+f.name)
	return nil
}

func TestRun_FirstReturnStopsAll(t *testing.T) {
	var mu sync.Mutex
	var events []string

	blocking := &fakeService{name: "db", mu: &mu, events: &events, start: func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	}}
	shell := &fakeService{name: "shell", mu: &mu, events: &events, start: func(ctx context.Context) error {
		return nil
	}}

	err := Run(context.Background(), []Service{blocking, shell})
	require.NoError(t, err)
	assert.Equal(t, []string{"shutdown:shell", "shutdown:db"}, events)
}

func TestRun_ErrorIsReturned(t *testing.T) {
	var mu sync.Mutex
	var events []string
	boom := errors.New("boom")

	failing := &fakeService{name: "shell", mu: &mu, events: &events, start: func(ctx context.Context) error {
		return boom
	}}

	err := Run(context.Background(), []Service{failing})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"shutdown:shell"}, events)
}

func TestRun_ParentCancellationIsClean(t *testing.T) {
	var mu sync.Mutex
	var events []string

	svc := &fakeService{name: "shell", mu: &mu, events: &events, start: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.NoError(t, Run(ctx, []Service{svc}))
	assert.Equal(t, []string{"shutdown:shell"}, events)
}

func TestCleanup_RunsOnShutdown(t *testing.T) {
	called := false
	svc := NewCleanup(func() error {
		called = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.True(t, called)
}
