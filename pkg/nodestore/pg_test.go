package nodestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
	"github.com/ShahiTechnovation/X4PN/pkg/pgutil"
	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil/migrations"
)

const operatorAddress = "0x3333333333333333333333333333333333333333"

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &NodeDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return ctx, NewStore(db)
}

func newTestNode(active bool, latency int) *node.Node {
	return &node.Node{
		ID:              uuid.New(),
		OperatorAddress: operatorAddress,
		Name:            "Frankfurt-1",
		Location:        "Frankfurt",
		Country:         "Germany",
		CountryCode:     "DE",
		IPAddress:       "10.0.0.1",
		Port:            node.DefaultPort,
		RatePerMinute:   node.DefaultRatePerMinute,
		IsActive:        active,
		TotalEarnedUsdc: decimal.Zero,
		TotalEarnedX4pn: decimal.Zero,
		Uptime:          100,
		Latency:         latency,
		CreatedAt:       time.Now().UTC(),
	}
}

func TestNodePGStore_CreateGetList(t *testing.T) {
	ctx, s := setupStore(t)

	active := newTestNode(true, 10)
	inactive := newTestNode(false, 30)
	inactive.OperatorAddress = "0x4444444444444444444444444444444444444444"
	for _, n := range []*node.Node{active, inactive} {
		if err := s.CreateNode(ctx, n); err != nil {
			t.Fatalf("CreateNode() failed: %v", err)
		}
	}

	got, err := s.GetNode(ctx, active.ID)
	if err != nil {
		t.Fatalf("GetNode() failed: %v", err)
	}
	if !got.RatePerMinute.Equal(node.DefaultRatePerMinute) {
		t.Fatalf("rate mismatch: got %s", got.RatePerMinute)
	}

	all, err := s.ListNodes(ctx)
	if err != nil {
		t.Fatalf("ListNodes() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(all))
	}

	onlyActive, err := s.ListNodes(ctx, ActiveOnly())
	if err != nil {
		t.Fatalf("ListNodes(ActiveOnly) failed: %v", err)
	}
	if len(onlyActive) != 1 || onlyActive[0].ID != active.ID {
		t.Fatalf("expected only the active node, got %+v", onlyActive)
	}

	byOperator, err := s.ListNodes(ctx, WithOperator(operatorAddress))
	if err != nil {
		t.Fatalf("ListNodes(WithOperator) failed: %v", err)
	}
	if len(byOperator) != 1 || byOperator[0].ID != active.ID {
		t.Fatalf("expected operator's node, got %+v", byOperator)
	}

	_, err = s.GetNode(ctx, uuid.New())
	if !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestNodePGStore_ActiveUsersFloorAtZero(t *testing.T) {
	ctx, s := setupStore(t)

	n := newTestNode(true, 0)
	if err := s.CreateNode(ctx, n); err != nil {
		t.Fatalf("CreateNode() failed: %v", err)
	}

	if err := s.IncrementActiveUsers(ctx, n.ID); err != nil {
		t.Fatalf("IncrementActiveUsers() failed: %v", err)
	}
	for range 3 {
		if err := s.DecrementActiveUsers(ctx, n.ID); err != nil {
			t.Fatalf("DecrementActiveUsers() failed: %v", err)
		}
	}

	got, err := s.GetNode(ctx, n.ID)
	if err != nil {
		t.Fatalf("GetNode() failed: %v", err)
	}
	if got.ActiveUsers != 0 {
		t.Fatalf("expected active users floored at 0, got %d", got.ActiveUsers)
	}

	if err := s.IncrementActiveUsers(ctx, uuid.New()); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestNodePGStore_ApplyEarningsAndUpdate(t *testing.T) {
	ctx, s := setupStore(t)

	n := newTestNode(true, 0)
	if err := s.CreateNode(ctx, n); err != nil {
		t.Fatalf("CreateNode() failed: %v", err)
	}

	for range 2 {
		if _, err := s.ApplyEarnings(ctx, n.ID, decimal.RequireFromString("0.6"), decimal.RequireFromString("6")); err != nil {
			t.Fatalf("ApplyEarnings() failed: %v", err)
		}
	}

	got, err := s.GetNode(ctx, n.ID)
	if err != nil {
		t.Fatalf("GetNode() failed: %v", err)
	}
	if !got.TotalEarnedUsdc.Equal(decimal.RequireFromString("1.2")) {
		t.Fatalf("expected 1.2 usdc earned, got %s", got.TotalEarnedUsdc)
	}
	if !got.TotalEarnedX4pn.Equal(decimal.RequireFromString("12")) {
		t.Fatalf("expected 12 x4pn earned, got %s", got.TotalEarnedX4pn)
	}

	inactive := false
	latency := 42
	updated, err := s.UpdateNode(ctx, n.ID, &node.UpdateRequest{IsActive: &inactive, Latency: &latency})
	if err != nil {
		t.Fatalf("UpdateNode() failed: %v", err)
	}
	if updated.IsActive || updated.Latency != 42 {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.Name != n.Name {
		t.Fatalf("untouched field changed: %q", updated.Name)
	}

	if _, err := s.UpdateNode(ctx, uuid.New(), &node.UpdateRequest{Latency: &latency}); !errors.Is(err, ErrNodeNotFound) {
		t.Fatalf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestNodePGStore_Stats(t *testing.T) {
	ctx, s := setupStore(t)

	empty, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() on empty table failed: %v", err)
	}
	if *empty != (node.Stats{}) {
		t.Fatalf("expected zero stats, got %+v", empty)
	}

	a := newTestNode(true, 10)
	b := newTestNode(false, 31)
	for _, n := range []*node.Node{a, b} {
		if err := s.CreateNode(ctx, n); err != nil {
			t.Fatalf("CreateNode() failed: %v", err)
		}
	}
	if err := s.IncrementActiveUsers(ctx, a.ID); err != nil {
		t.Fatalf("IncrementActiveUsers() failed: %v", err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	want := node.Stats{TotalNodes: 2, ActiveNodes: 1, TotalUsers: 1, AvgLatency: 21}
	if *stats != want {
		t.Fatalf("expected %+v, got %+v", want, *stats)
	}
}
