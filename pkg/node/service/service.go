// Package service implements node registration, discovery and operator updates.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/node"
	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
)

var (
	ErrInvalidRate = errors.New("rate per minute must be positive")
	ErrNotOperator = errors.New("caller does not operate this node")
	ErrEmptyUpdate = errors.New("no fields to update")
)

// Store is the node persistence used by the service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateNode(ctx context.Context, n *node.Node) error
	GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error)
	ListNodes(ctx context.Context, opts ...nodestore.ListOption) ([]*node.Node, error)
	UpdateNode(ctx context.Context, id uuid.UUID, req *node.UpdateRequest) (*node.Node, error)
	Stats(ctx context.Context) (*node.Stats, error)
}

// SessionTerminator ends the sessions still attached to a node that went offline.
//
//go:generate mockery --name SessionTerminator --output mocks --outpkg mocks --filename mock_session_terminator.go --with-expecter
type SessionTerminator interface {
	FailNodeSessions(ctx context.Context, nodeID uuid.UUID) (int, error)
}

// Service defines node operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, caller string, req *node.RegisterRequest) (*node.Node, error)
	GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error)
	ListNodes(ctx context.Context, activeOnly bool) ([]*node.Node, error)
	ListByOperator(ctx context.Context, address string) ([]*node.Node, error)
	Update(ctx context.Context, caller string, id uuid.UUID, req *node.UpdateRequest) (*node.Node, error)
	Stats(ctx context.Context) (*node.Stats, error)
}

type nodeService struct {
	store    Store
	sessions SessionTerminator
	logger   *zap.Logger
}

// NewService creates the node service. sessions may be nil, in which case
// deactivating a node leaves its sessions to the sweeper.
func NewService(store Store, sessions SessionTerminator, logger *zap.Logger) Service {
	return &nodeService{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// Register creates an active node owned by caller. Port and rate fall back to
// the network defaults.
func (s *nodeService) Register(ctx context.Context, caller string, req *node.RegisterRequest) (*node.Node, error) {
	rate := node.DefaultRatePerMinute
	if req.RatePerMinute != nil {
		rate = *req.RatePerMinute
	}
	if !rate.IsPositive() {
		return nil, apperrors.BadRequestError(ErrInvalidRate, "Rate per minute must be positive")
	}
	port := req.Port
	if port == 0 {
		port = node.DefaultPort
	}

	n := &node.Node{
		ID:              uuid.New(),
		OperatorAddress: auth.NormalizeAddress(caller),
		Name:            req.Name,
		Location:        req.Location,
		Country:         req.Country,
		CountryCode:     strings.ToUpper(req.CountryCode),
		IPAddress:       req.IPAddress,
		Port:            port,
		RatePerMinute:   rate,
		IsActive:        true,
		TotalEarnedUsdc: decimal.Zero,
		TotalEarnedX4pn: decimal.Zero,
		Uptime:          100,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.store.CreateNode(ctx, n); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return n, nil
}

func (s *nodeService) GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error) {
	n, err := s.store.GetNode(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return n, nil
}

func (s *nodeService) ListNodes(ctx context.Context, activeOnly bool) ([]*node.Node, error) {
	var opts []nodestore.ListOption
	if activeOnly {
		opts = append(opts, nodestore.ActiveOnly())
	}
	nodes, err := s.store.ListNodes(ctx, opts...)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return nodes, nil
}

func (s *nodeService) ListByOperator(ctx context.Context, address string) ([]*node.Node, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid operator address")
	}
	nodes, err := s.store.ListNodes(ctx, nodestore.WithOperator(auth.NormalizeAddress(address)))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return nodes, nil
}

// Update applies operator changes. Taking an active node offline fails the
// sessions still running on it.
func (s *nodeService) Update(ctx context.Context, caller string, id uuid.UUID, req *node.UpdateRequest) (*node.Node, error) {
	if req.IsEmpty() {
		return nil, apperrors.BadRequestError(ErrEmptyUpdate, "No fields to update")
	}
	current, err := s.store.GetNode(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !auth.SameAddress(caller, current.OperatorAddress) {
		return nil, apperrors.ForbiddenError(ErrNotOperator, "Only the node operator can update this node")
	}

	updated, err := s.store.UpdateNode(ctx, id, req)
	if err != nil {
		return nil, mapStoreError(err)
	}

	if current.IsActive && !updated.IsActive && s.sessions != nil {
		failed, err := s.sessions.FailNodeSessions(ctx, id)
		if err != nil {
			// the sweeper retries sessions left on inactive nodes
			s.logger.Warn("failed to terminate sessions on deactivated node",
				zap.String("node_id", id.String()),
				zap.Error(err),
			)
		} else if failed > 0 {
			s.logger.Info("terminated sessions on deactivated node",
				zap.String("node_id", id.String()),
				zap.Int("sessions", failed),
			)
		}
	}
	return updated, nil
}

func (s *nodeService) Stats(ctx context.Context) (*node.Stats, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return stats, nil
}

func mapStoreError(err error) error {
	if errors.Is(err, nodestore.ErrNodeNotFound) {
		return apperrors.ResourceNotFoundError(err, "Node not found")
	}
	return apperrors.GeneralError(err)
}
