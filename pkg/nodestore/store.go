package nodestore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
)

// ErrNodeNotFound is returned when a node lookup finds no matching record.
var ErrNodeNotFound = errors.New("node not found")

// Accumulator tracks cumulative node earnings and the live user counter.
// All methods are single atomic statements so they compose inside a caller's transaction.
type Accumulator interface {
	ApplyEarnings(ctx context.Context, id uuid.UUID, usdc, x4pn decimal.Decimal) (*node.Node, error)
	IncrementActiveUsers(ctx context.Context, id uuid.UUID) error
	DecrementActiveUsers(ctx context.Context, id uuid.UUID) error
}

// Store defines node persistence
type Store interface {
	Accumulator
	CreateNode(ctx context.Context, n *node.Node) error
	GetNode(ctx context.Context, id uuid.UUID) (*node.Node, error)
	ListNodes(ctx context.Context, opts ...ListOption) ([]*node.Node, error)
	UpdateNode(ctx context.Context, id uuid.UUID, req *node.UpdateRequest) (*node.Node, error)
	Stats(ctx context.Context) (*node.Stats, error)
}

// ListOptions filters node listings
type ListOptions struct {
	ActiveOnly      bool
	OperatorAddress *string
}

// ListOption is a functional option for listing nodes
type ListOption func(*ListOptions)

// ActiveOnly restricts the listing to active nodes
func ActiveOnly() ListOption {
	return func(opts *ListOptions) {
		opts.ActiveOnly = true
	}
}

// WithOperator restricts the listing to nodes run by the given operator
func WithOperator(address string) ListOption {
	return func(opts *ListOptions) {
		opts.OperatorAddress = &address
	}
}
