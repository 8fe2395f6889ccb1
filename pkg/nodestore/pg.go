package nodestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a postgres node store. db may be a bun.Tx.
func NewStore(db bun.IDB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateNode(ctx context.Context, n *node.Node) error {
	_, err := s.db.NewInsert().
		Model(toNodeDao(n)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create node: %w", err)
	}
	return nil
}

func (s *pgStore) GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error) {
	dao := new(NodeDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	return toNode(dao), nil
}

func (s *pgStore) ListNodes(ctx context.Context, opts ...ListOption) ([]*node.Node, error) {
	options := &ListOptions{}
	for _, opt := range opts {
		opt(options)
	}

	var daos []NodeDao
	query := s.db.NewSelect().Model(&daos)
	if options.ActiveOnly {
		query = query.Where("is_active")
	}
	if options.OperatorAddress != nil {
		query = query.Where("operator_address = ?", *options.OperatorAddress)
	}

	if err := query.OrderExpr("created_at ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	nodes := make([]*node.Node, len(daos))
	for i := range daos {
		nodes[i] = toNode(&daos[i])
	}
	return nodes, nil
}

func (s *pgStore) UpdateNode(ctx context.Context, id uuid.UUID, req *node.UpdateRequest) (*node.Node, error) {
	if req.IsEmpty() {
		return s.GetNode(ctx, id)
	}

	dao := new(NodeDao)
	query := s.db.NewUpdate().Model(dao)
	if req.Name != nil {
		query = query.Set("name = ?", *req.Name)
	}
	if req.Location != nil {
		query = query.Set("location = ?", *req.Location)
	}
	if req.IsActive != nil {
		query = query.Set("is_active = ?", *req.IsActive)
	}
	if req.Uptime != nil {
		query = query.Set("uptime = ?", *req.Uptime)
	}
	if req.Latency != nil {
		query = query.Set("latency = ?", *req.Latency)
	}

	err := query.Where("id = ?", id).Returning("*").Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to update node: %w", err)
	}
	return toNode(dao), nil
}

// ApplyEarnings adds a settlement's cost and reward to the node's lifetime totals.
func (s *pgStore) ApplyEarnings(ctx context.Context, id uuid.UUID, usdc, x4pn decimal.Decimal) (*node.Node, error) {
	dao := new(NodeDao)
	err := s.db.NewUpdate().
		Model(dao).
		Set("total_earned_usdc = total_earned_usdc + ?::numeric", usdc).
		Set("total_earned_x4pn = total_earned_x4pn + ?::numeric", x4pn).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNodeNotFound
		}
		return nil, fmt.Errorf("failed to apply node earnings: %w", err)
	}
	return toNode(dao), nil
}

func (s *pgStore) IncrementActiveUsers(ctx context.Context, id uuid.UUID) error {
	return s.adjustActiveUsers(ctx, id, "active_users = active_users + 1")
}

// DecrementActiveUsers never drives the counter below zero.
func (s *pgStore) DecrementActiveUsers(ctx context.Context, id uuid.UUID) error {
	return s.adjustActiveUsers(ctx, id, "active_users = GREATEST(active_users - 1, 0)")
}

func (s *pgStore) adjustActiveUsers(ctx context.Context, id uuid.UUID, set string) error {
	res, err := s.db.NewUpdate().
		Model((*NodeDao)(nil)).
		Set(set).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update active users: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNodeNotFound
	}
	return nil
}

func (s *pgStore) Stats(ctx context.Context) (*node.Stats, error) {
	stats := new(node.Stats)
	err := s.db.NewSelect().
		Model((*NodeDao)(nil)).
		ColumnExpr("COUNT(*) AS total_nodes").
		ColumnExpr("COUNT(*) FILTER (WHERE is_active) AS active_nodes").
		ColumnExpr("COALESCE(SUM(active_users), 0)::int AS total_users").
		ColumnExpr("COALESCE(ROUND(AVG(latency)), 0)::int AS avg_latency").
		Scan(ctx, &stats.TotalNodes, &stats.ActiveNodes, &stats.TotalUsers, &stats.AvgLatency)
	if err != nil {
		return nil, fmt.Errorf("failed to compute node stats: %w", err)
	}
	return stats, nil
}
