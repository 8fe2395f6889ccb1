package sweeper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/config"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/session/service/mocks"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeLister returns stale or orphaned sessions depending on the filter.
type fakeLister struct {
	stale    []*session.Session
	orphaned []*session.Session
	active   int
	listErr  error
	cutoffs  []time.Time
	limits   []int
}

func (f *fakeLister) ListActiveSessions(_ context.Context, opts ...sessionstore.ListOption) ([]*session.Session, error) {
	options := &sessionstore.ListOptions{}
	for _, opt := range opts {
		opt(options)
	}
	f.limits = append(f.limits, options.Limit)
	if f.listErr != nil {
		return nil, f.listErr
	}
	if options.SettledBefore != nil {
		f.cutoffs = append(f.cutoffs, *options.SettledBefore)
		return f.stale, nil
	}
	if options.OnInactiveNodes {
		return f.orphaned, nil
	}
	return nil, nil
}

func (f *fakeLister) CountActiveSessions(context.Context) (int, error) {
	return f.active, nil
}

type countingPruner struct{ calls int }

func (p *countingPruner) Prune() int {
	p.calls++
	return 3
}

func newTestSweeper(lister SessionLister, lifecycle Lifecycle, pruner Pruner) *Sweeper {
	s := New(&config.SweeperConfig{
		Enabled:    true,
		Interval:   time.Hour,
		StaleAfter: 10 * time.Minute,
		BatchSize:  25,
	}, lister, lifecycle, pruner, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestSweepOnce_SettlesStaleSessions(t *testing.T) {
	lister := &fakeLister{
		stale:  []*session.Session{{ID: 1}, {ID: 2}},
		active: 2,
	}
	lifecycle := mocks.NewService(t)
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(1)).
		Return(&session.SettleResult{Cost: decimal.RequireFromString("0.01")}, nil).Once()
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(2)).
		Return(nil, session.ErrNothingToSettle).Once()
	pruner := &countingPruner{}

	report, err := newTestSweeper(lister, lifecycle, pruner).SweepOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Settled)
	assert.Equal(t, 0, report.Exhausted)
	assert.Equal(t, 0, report.Errors)
	assert.Equal(t, 2, report.Active)
	assert.Equal(t, 3, report.Pruned)
	assert.Equal(t, 1, pruner.calls)
	assert.Equal(t, []time.Time{now.Add(-10 * time.Minute)}, lister.cutoffs)
	assert.Equal(t, []int{25, 25}, lister.limits)
}

func TestSweepOnce_FailsExhaustedSessions(t *testing.T) {
	lister := &fakeLister{stale: []*session.Session{{ID: 1}, {ID: 2}}}
	lifecycle := mocks.NewService(t)
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(1)).
		Return(&session.SettleResult{BalanceExhausted: true}, nil).Once()
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(2)).
		Return(nil, fmt.Errorf("%w: %w", session.ErrNothingToSettle, session.ErrInsufficientBalance)).Once()
	lifecycle.EXPECT().FailSession(mock.Anything, int64(1)).
		Return(&session.Session{ID: 1, Status: session.StatusFailed}, nil).Once()
	lifecycle.EXPECT().FailSession(mock.Anything, int64(2)).
		Return(&session.Session{ID: 2, Status: session.StatusFailed}, nil).Once()

	report, err := newTestSweeper(lister, lifecycle, nil).SweepOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Settled)
	assert.Equal(t, 2, report.Exhausted)
	assert.Equal(t, 0, report.Pruned)
}

func TestSweepOnce_FailsSessionsOnInactiveNodes(t *testing.T) {
	lister := &fakeLister{orphaned: []*session.Session{{ID: 7}, {ID: 8}}}
	lifecycle := mocks.NewService(t)
	lifecycle.EXPECT().FailSession(mock.Anything, int64(7)).
		Return(&session.Session{ID: 7, Status: session.StatusFailed}, nil).Once()
	lifecycle.EXPECT().FailSession(mock.Anything, int64(8)).
		Return(nil, errors.New("db gone")).Once()

	report, err := newTestSweeper(lister, lifecycle, nil).SweepOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Orphaned)
	assert.Equal(t, 1, report.Errors)
}

func TestSweepOnce_SettleErrorsAreCounted(t *testing.T) {
	lister := &fakeLister{stale: []*session.Session{{ID: 1}, {ID: 2}}}
	lifecycle := mocks.NewService(t)
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(1)).
		Return(nil, session.ErrConcurrentModification).Once()
	lifecycle.EXPECT().ForceSettle(mock.Anything, int64(2)).
		Return(nil, session.ErrNotActive).Once()

	report, err := newTestSweeper(lister, lifecycle, nil).SweepOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Settled)
	assert.Equal(t, 1, report.Errors)
}

func TestSweepOnce_ListError(t *testing.T) {
	lister := &fakeLister{listErr: errors.New("connection refused")}

	_, err := newTestSweeper(lister, mocks.NewService(t), nil).SweepOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stale sessions")
}

func TestSweeper_StartStop(t *testing.T) {
	s := newTestSweeper(&fakeLister{}, mocks.NewService(t), nil)
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
