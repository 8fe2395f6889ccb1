// Package sweeper periodically force-settles sessions nobody settled for a
// while and fails sessions left behind on deactivated nodes.
package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/internal/metrics"
	"github.com/ShahiTechnovation/X4PN/pkg/config"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
)

const sweepTimeout = 2 * time.Minute

// SessionLister reads active sessions.
type SessionLister interface {
	ListActiveSessions(ctx context.Context, opts ...sessionstore.ListOption) ([]*session.Session, error)
	CountActiveSessions(ctx context.Context) (int, error)
}

// Lifecycle applies system settlements and terminations.
type Lifecycle interface {
	ForceSettle(ctx context.Context, id int64) (*session.SettleResult, error)
	FailSession(ctx context.Context, id int64) (*session.Session, error)
}

// Pruner drops idle per-client state, such as rate limiter buckets.
type Pruner interface {
	Prune() int
}

// Report summarizes one sweep.
type Report struct {
	Settled   int
	Exhausted int
	Orphaned  int
	Errors    int
	Active    int
	Pruned    int
}

// Sweeper runs sweeps on a fixed interval until stopped.
type Sweeper struct {
	sessions   SessionLister
	lifecycle  Lifecycle
	pruner     Pruner
	logger     *zap.Logger
	interval   time.Duration
	staleAfter time.Duration
	batchSize  int
	now        func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a Sweeper. pruner may be nil.
func New(cfg *config.SweeperConfig, sessions SessionLister, lifecycle Lifecycle, pruner Pruner, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		sessions:   sessions,
		lifecycle:  lifecycle,
		pruner:     pruner,
		logger:     logger,
		interval:   cfg.Interval,
		staleAfter: cfg.StaleAfter,
		batchSize:  cfg.BatchSize,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
}

// SweepOnce settles stale sessions, fails sessions whose balance ran out or
// whose node went inactive, and refreshes the active session gauge.
func (s *Sweeper) SweepOnce(ctx context.Context) (*Report, error) {
	report := &Report{}

	cutoff := s.now().Add(-s.staleAfter)
	stale, err := s.sessions.ListActiveSessions(ctx,
		sessionstore.SettledBefore(cutoff),
		sessionstore.Limit(s.batchSize),
	)
	if err != nil {
		return report, fmt.Errorf("failed to list stale sessions: %w", err)
	}
	for _, sess := range stale {
		s.settleStale(ctx, sess, report)
	}

	orphaned, err := s.sessions.ListActiveSessions(ctx,
		sessionstore.OnInactiveNodes(),
		sessionstore.Limit(s.batchSize),
	)
	if err != nil {
		return report, fmt.Errorf("failed to list sessions on inactive nodes: %w", err)
	}
	for _, sess := range orphaned {
		if _, err := s.lifecycle.FailSession(ctx, sess.ID); err != nil {
			report.Errors++
			s.logger.Warn("Failed to fail session on inactive node",
				zap.Int64("session_id", sess.ID),
				zap.String("node_id", sess.NodeID.String()),
				zap.Error(err))
			continue
		}
		report.Orphaned++
	}

	active, err := s.sessions.CountActiveSessions(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to count active sessions: %w", err)
	}
	report.Active = active
	metrics.ActiveSessions.Set(float64(active))

	if s.pruner != nil {
		report.Pruned = s.pruner.Prune()
	}
	return report, nil
}

func (s *Sweeper) settleStale(ctx context.Context, sess *session.Session, report *Report) {
	res, err := s.lifecycle.ForceSettle(ctx, sess.ID)
	switch {
	case err == nil:
		report.Settled++
		if !res.BalanceExhausted {
			return
		}
	case errors.Is(err, session.ErrInsufficientBalance):
	case errors.Is(err, session.ErrNothingToSettle), errors.Is(err, session.ErrNotActive):
		return
	default:
		report.Errors++
		s.logger.Warn("Failed to settle stale session",
			zap.Int64("session_id", sess.ID),
			zap.Error(err))
		return
	}

	// the user can no longer pay for the connection
	if _, err := s.lifecycle.FailSession(ctx, sess.ID); err != nil {
		report.Errors++
		s.logger.Warn("Failed to fail exhausted session",
			zap.Int64("session_id", sess.ID),
			zap.Error(err))
		return
	}
	report.Exhausted++
}

// Start launches the sweep loop in a background goroutine.
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("Started session sweeper",
			zap.Duration("interval", s.interval),
			zap.Duration("stale_after", s.staleAfter))

		for {
			select {
			case <-ticker.C:
				s.run()
			case <-s.stopCh:
				s.logger.Info("Stopping session sweeper")
				return
			}
		}
	}()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	start := time.Now()
	report, err := s.SweepOnce(ctx)
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
		s.logger.Error("Session sweep failed", zap.Error(err))
	case report.Errors > 0:
		outcome = "partial"
	}
	metrics.SweeperRuns.WithLabelValues(outcome).Inc()

	if report.Settled+report.Exhausted+report.Orphaned+report.Errors > 0 {
		s.logger.Info("Session sweep completed",
			zap.Int("settled", report.Settled),
			zap.Int("exhausted", report.Exhausted),
			zap.Int("orphaned", report.Orphaned),
			zap.Int("errors", report.Errors),
			zap.Int("active", report.Active),
			zap.Duration("duration", time.Since(start)))
	}
}

// Stop stops the sweep loop and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}
