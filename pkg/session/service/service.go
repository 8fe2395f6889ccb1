// Package service implements the session lifecycle: start, settle and end of
// metered VPN sessions, plus the system paths used by node deactivation and
// the stale session sweeper.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/internal/metrics"
	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/attestation"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/billing"
	"github.com/ShahiTechnovation/X4PN/pkg/node"
	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/sessionstore"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

const (
	defaultMaxSettleRetries = 3
	defaultNotifyTimeout    = 2 * time.Second
	historyLimit            = 100
	failBatchSize           = 100
)

// UserStore is the subset of the user store the lifecycle reads from.
//
//go:generate mockery --name UserStore --output mocks --outpkg mocks --filename mock_user_store.go --with-expecter
type UserStore interface {
	CreateUser(ctx context.Context, usr *user.User) (*user.User, error)
	GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
}

// NodeStore resolves the node a session is opened on.
//
//go:generate mockery --name NodeStore --output mocks --outpkg mocks --filename mock_node_store.go --with-expecter
type NodeStore interface {
	GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error)
}

// Publisher delivers session start notifications to the node's channel.
//
//go:generate mockery --name Publisher --output mocks --outpkg mocks --filename mock_publisher.go --with-expecter
type Publisher interface {
	PublishSessionStarted(ctx context.Context, n *session.Notification) error
}

// Service defines the session lifecycle operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	StartSession(ctx context.Context, caller string, req *session.StartRequest) (*session.Session, error)
	SettleSession(ctx context.Context, caller string, req *session.SettleRequest) (*session.SettleResult, error)
	EndSession(ctx context.Context, caller string, req *session.EndRequest) (*session.Session, error)

	// ForceSettle charges the elapsed time of a session on behalf of the system.
	ForceSettle(ctx context.Context, id int64) (*session.SettleResult, error)
	// FailSession moves an active session to failed without settling it.
	FailSession(ctx context.Context, id int64) (*session.Session, error)
	// FailNodeSessions settles what it can on every active session of a node
	// and then fails them. Returns the number of sessions failed.
	FailNodeSessions(ctx context.Context, nodeID uuid.UUID) (int, error)

	GetSession(ctx context.Context, id int64) (*session.Session, error)
	ListSessionsByUser(ctx context.Context, address string) ([]*session.Session, error)
	GetActiveSessionByUser(ctx context.Context, address string) (*session.Session, error)
}

type sessionService struct {
	store     sessionstore.Store
	users     UserStore
	nodes     NodeStore
	publisher Publisher
	logger    *zap.Logger

	now                 func() time.Time
	maxSettleRetries    int
	notifyTimeout       time.Duration
	domain              attestation.Domain
	attestationRequired bool
	initialUsdc         decimal.Decimal
	initialX4pn         decimal.Decimal
}

// Option configures the session service
type Option func(*sessionService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *sessionService) {
		s.now = now
	}
}

// WithMaxSettleRetries bounds the retries on optimistic settlement conflicts.
func WithMaxSettleRetries(n int) Option {
	return func(s *sessionService) {
		if n > 0 {
			s.maxSettleRetries = n
		}
	}
}

// WithNotifyTimeout bounds a single start notification publish.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *sessionService) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// WithAttestation sets the domain settle signatures are verified against.
// When required is true, unsigned settle requests are rejected.
func WithAttestation(domain attestation.Domain, required bool) Option {
	return func(s *sessionService) {
		s.domain = domain
		s.attestationRequired = required
	}
}

// WithInitialBalances sets the balances granted to wallets seen for the first time on start.
func WithInitialBalances(usdc, x4pn decimal.Decimal) Option {
	return func(s *sessionService) {
		s.initialUsdc = usdc
		s.initialX4pn = x4pn
	}
}

// NewService creates the session lifecycle service. publisher may be nil.
func NewService(
	store sessionstore.Store,
	users UserStore,
	nodes NodeStore,
	publisher Publisher,
	logger *zap.Logger,
	opts ...Option,
) Service {
	s := &sessionService{
		store:            store,
		users:            users,
		nodes:            nodes,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
		maxSettleRetries: defaultMaxSettleRetries,
		notifyTimeout:    defaultNotifyTimeout,
		initialUsdc:      decimal.Zero,
		initialX4pn:      decimal.Zero,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// clock returns the current time at the precision postgres stores, so a
// timestamp read back compares equal to the one written.
func (s *sessionService) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *sessionService) StartSession(ctx context.Context, caller string, req *session.StartRequest) (*session.Session, error) {
	if !auth.ValidateEVMAddress(req.UserAddress) {
		return nil, apperrors.BadRequestError(nil, "Invalid user address")
	}
	address := auth.NormalizeAddress(req.UserAddress)
	if !auth.SameAddress(caller, address) {
		return nil, apperrors.ForbiddenError(session.ErrForbidden, "You can only start sessions for your own wallet")
	}

	switch _, err := s.store.GetActiveSession(ctx, address); {
	case err == nil:
		return nil, apperrors.ConflictError(session.ErrAlreadyActive, "User already has an active session")
	case !errors.Is(err, session.ErrNotFound):
		return nil, apperrors.GeneralError(err)
	}

	n, err := s.nodes.GetNode(ctx, req.NodeID)
	if err != nil {
		if errors.Is(err, nodestore.ErrNodeNotFound) {
			return nil, apperrors.ResourceNotFoundError(session.ErrNodeUnavailable, "Node not found")
		}
		return nil, apperrors.GeneralError(err)
	}
	if !n.IsActive {
		return nil, apperrors.BadRequestError(session.ErrNodeUnavailable, "Node is not active")
	}

	usr, err := s.users.CreateUser(ctx, user.New(address, s.initialUsdc, s.initialX4pn))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if !usr.UsdcBalance.IsPositive() {
		return nil, apperrors.BadRequestError(session.ErrInsufficientBalance, "Insufficient USDC balance")
	}

	now := s.clock()
	created, err := s.store.CreateSession(ctx, &session.Session{
		UserID:        usr.ID,
		UserAddress:   usr.WalletAddress,
		NodeID:        n.ID,
		NodeAddress:   n.OperatorAddress,
		RatePerMinute: n.RatePerMinute,
		RatePerSecond: billing.RatePerSecond(n.RatePerMinute),
		StartedAt:     now,
		LastSettledAt: now,
		TotalCost:     decimal.Zero,
		X4pnEarned:    decimal.Zero,
		IsActive:      true,
		Status:        session.StatusActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAlreadyActive):
			return nil, apperrors.ConflictError(err, "User already has an active session")
		case errors.Is(err, session.ErrNodeUnavailable):
			return nil, apperrors.ResourceNotFoundError(err, "Node not found")
		default:
			return nil, apperrors.GeneralError(err)
		}
	}
	metrics.SessionsStarted.Inc()

	s.notifyStarted(ctx, created)
	return created, nil
}

// notifyStarted runs after the session is committed. A failed publish is
// logged and counted, never returned.
func (s *sessionService) notifyStarted(ctx context.Context, sess *session.Session) {
	if s.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	err := s.publisher.PublishSessionStarted(ctx, &session.Notification{
		SessionID:   sess.ID,
		UserAddress: sess.UserAddress,
		NodeID:      sess.NodeID,
		StartedAt:   sess.StartedAt,
	})
	if err != nil {
		metrics.NotificationFailures.Inc()
		s.logger.Warn("failed to publish session start",
			zap.Int64("session_id", sess.ID),
			zap.String("node_id", sess.NodeID.String()),
			zap.Error(err),
		)
	}
}

func (s *sessionService) SettleSession(ctx context.Context, caller string, req *session.SettleRequest) (*session.SettleResult, error) {
	return s.settleWithRetry(ctx, req, func(sess *session.Session) error {
		if !auth.SameAddress(caller, sess.UserAddress) {
			return apperrors.ForbiddenError(session.ErrForbidden, "You can only settle your own sessions")
		}
		if s.attestationRequired && !req.HasAttestation() {
			return apperrors.UnAuthorizedError(session.ErrInvalidSignature, "Settlement signature required")
		}
		return nil
	})
}

func (s *sessionService) ForceSettle(ctx context.Context, id int64) (*session.SettleResult, error) {
	return s.settleWithRetry(ctx, &session.SettleRequest{SessionID: id}, nil)
}

// settleWithRetry runs settleOnce until it stops losing optimistic races.
func (s *sessionService) settleWithRetry(
	ctx context.Context,
	req *session.SettleRequest,
	authorize func(*session.Session) error,
) (*session.SettleResult, error) {
	for attempt := 1; attempt <= s.maxSettleRetries; attempt++ {
		result, err := s.settleOnce(ctx, req, authorize)
		if !errors.Is(err, session.ErrConcurrentModification) {
			return result, err
		}
		metrics.SettlementRetries.Inc()
		s.logger.Debug("settlement conflict, retrying",
			zap.Int64("session_id", req.SessionID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if err := ctx.Err(); err != nil {
			return nil, apperrors.GeneralError(err)
		}
	}
	metrics.SettlementsTotal.WithLabelValues(metrics.SettlementConflict).Inc()
	return nil, apperrors.UnavailableError(session.ErrConcurrentModification, "Session is busy, please retry")
}

// settleOnce reads the session and balance, computes the charge and applies it
// if no other writer moved the session in between. A lost race is returned as
// session.ErrConcurrentModification, unwrapped, so the caller can retry.
func (s *sessionService) settleOnce(
	ctx context.Context,
	req *session.SettleRequest,
	authorize func(*session.Session) error,
) (*session.SettleResult, error) {
	sess, err := s.store.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if authorize != nil {
		if err := authorize(sess); err != nil {
			metrics.SettlementsTotal.WithLabelValues(metrics.SettlementRejected).Inc()
			return nil, err
		}
	}
	if !sess.IsActive {
		return nil, apperrors.BadRequestError(session.ErrNotActive, "Session is not active")
	}

	if req.HasAttestation() {
		if err := s.verifyAttestation(sess, req); err != nil {
			metrics.SettlementsTotal.WithLabelValues(metrics.SettlementRejected).Inc()
			return nil, err
		}
	}

	usr, err := s.users.GetUser(ctx, userstore.WithWalletAddress(sess.UserAddress))
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "User not found")
		}
		return nil, apperrors.GeneralError(err)
	}

	now := s.clock()
	res := billing.ComputeMinuteRateSettlement(sess.RatePerMinute, sess.LastSettledAt, now, &usr.UsdcBalance)

	if !res.Cost.IsPositive() {
		if req.HasAttestation() && res.Elapsed == 0 {
			metrics.SettlementsTotal.WithLabelValues(metrics.SettlementNoop).Inc()
			return &session.SettleResult{Session: sess, Cost: decimal.Zero, Reward: decimal.Zero}, nil
		}
		metrics.SettlementsTotal.WithLabelValues(metrics.SettlementNothing).Inc()
		if res.Capped {
			return nil, apperrors.BadRequestError(
				fmt.Errorf("%w: %w", session.ErrNothingToSettle, session.ErrInsufficientBalance),
				"Insufficient balance for settlement",
			)
		}
		return nil, apperrors.BadRequestError(session.ErrNothingToSettle, "Nothing to settle yet")
	}

	updated, err := s.store.ApplySettlement(ctx, &session.Settlement{
		SessionID:         sess.ID,
		UserAddress:       sess.UserAddress,
		NodeID:            sess.NodeID,
		PreviousSettledAt: sess.LastSettledAt,
		SettledAt:         now,
		Cost:              res.Cost,
		Reward:            res.Reward,
		SecondsPaid:       res.SecondsPaid,
		Signature:         req.Signature,
	})
	if err != nil {
		if errors.Is(err, session.ErrConcurrentModification) {
			return nil, session.ErrConcurrentModification
		}
		return nil, mapStoreError(err)
	}

	metrics.SettlementsTotal.WithLabelValues(metrics.SettlementApplied).Inc()
	metrics.SettledUSDC.Add(res.Cost.InexactFloat64())
	metrics.RewardedX4PN.Add(res.Reward.InexactFloat64())
	metrics.SettlementCost.Observe(res.Cost.InexactFloat64())

	return &session.SettleResult{
		Session:          updated,
		Cost:             res.Cost,
		Reward:           res.Reward,
		SecondsPaid:      res.SecondsPaid,
		BalanceExhausted: res.Capped,
	}, nil
}

// verifyAttestation checks that the session owner signed the claimed totals.
// The claim does not change what is charged.
func (s *sessionService) verifyAttestation(sess *session.Session, req *session.SettleRequest) error {
	if req.ClaimedCost == nil || req.ClaimedDuration == nil {
		return apperrors.BadRequestError(nil, "claimedCost and claimedDuration are required with a signature")
	}
	claim := attestation.Claim{
		SessionID:       sess.ID,
		ClaimedCost:     *req.ClaimedCost,
		ClaimedDuration: *req.ClaimedDuration,
	}
	ok, err := attestation.Verify(s.domain, claim, req.Signature, common.HexToAddress(sess.UserAddress))
	if err != nil {
		if errors.Is(err, attestation.ErrInvalidClaim) {
			return apperrors.BadRequestError(err, "Invalid settlement claim")
		}
		return apperrors.UnAuthorizedError(fmt.Errorf("%w: %w", session.ErrInvalidSignature, err), "Invalid settlement signature")
	}
	if !ok {
		return apperrors.UnAuthorizedError(session.ErrInvalidSignature, "Invalid settlement signature")
	}
	return nil
}

func (s *sessionService) EndSession(ctx context.Context, caller string, req *session.EndRequest) (*session.Session, error) {
	sess, err := s.store.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !auth.SameAddress(caller, sess.UserAddress) {
		return nil, apperrors.ForbiddenError(session.ErrForbidden, "You can only end your own sessions")
	}
	if !sess.IsActive {
		return sess, nil
	}
	return s.terminate(ctx, sess, session.StatusEnded)
}

func (s *sessionService) FailSession(ctx context.Context, id int64) (*session.Session, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !sess.IsActive {
		return sess, nil
	}
	return s.terminate(ctx, sess, session.StatusFailed)
}

func (s *sessionService) terminate(ctx context.Context, sess *session.Session, status session.Status) (*session.Session, error) {
	terminated, changed, err := s.store.Terminate(ctx, &session.Termination{
		SessionID: sess.ID,
		NodeID:    sess.NodeID,
		Status:    status,
		EndedAt:   s.clock(),
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	if changed {
		metrics.SessionsTerminated.WithLabelValues(string(status)).Inc()
	}
	return terminated, nil
}

func (s *sessionService) FailNodeSessions(ctx context.Context, nodeID uuid.UUID) (int, error) {
	failed := 0
	for {
		batch, err := s.store.ListActiveSessions(ctx,
			sessionstore.OnNode(nodeID),
			sessionstore.Limit(failBatchSize),
		)
		if err != nil {
			return failed, apperrors.GeneralError(err)
		}
		for _, sess := range batch {
			if _, err := s.ForceSettle(ctx, sess.ID); err != nil && !errors.Is(err, session.ErrNothingToSettle) {
				s.logger.Warn("final settlement failed, failing session unsettled",
					zap.Int64("session_id", sess.ID),
					zap.Error(err),
				)
			}
			if _, err := s.terminate(ctx, sess, session.StatusFailed); err != nil {
				return failed, err
			}
			failed++
		}
		if len(batch) < failBatchSize {
			return failed, nil
		}
	}
}

func (s *sessionService) GetSession(ctx context.Context, id int64) (*session.Session, error) {
	sess, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return sess, nil
}

func (s *sessionService) ListSessionsByUser(ctx context.Context, address string) ([]*session.Session, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid wallet address")
	}
	sessions, err := s.store.ListSessionsByUser(ctx, auth.NormalizeAddress(address), historyLimit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return sessions, nil
}

// GetActiveSessionByUser returns nil without error when the user has no active session.
func (s *sessionService) GetActiveSessionByUser(ctx context.Context, address string) (*session.Session, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid wallet address")
	}
	sess, err := s.store.GetActiveSession(ctx, auth.NormalizeAddress(address))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.GeneralError(err)
	}
	return sess, nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return apperrors.ResourceNotFoundError(err, "Session not found")
	case errors.Is(err, userstore.ErrUserNotFound):
		return apperrors.ResourceNotFoundError(err, "User not found")
	default:
		return apperrors.GeneralError(err)
	}
}
