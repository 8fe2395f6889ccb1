package userstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientBalance is returned when a guarded delta would drive a balance negative.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Ledger applies atomic balance deltas. Every balance change goes through here.
type Ledger interface {
	ApplyDelta(ctx context.Context, address string, delta user.Delta) (*user.User, error)
	ApplyGuardedDelta(ctx context.Context, address string, delta user.Delta) (*user.User, error)
}

// Store defines the interface for user and transaction persistence
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Ledger
	CreateUser(ctx context.Context, usr *user.User) (*user.User, error)
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	CountUsers(ctx context.Context) (int, error)
	CreateTransaction(ctx context.Context, tx *user.Transaction) error
	ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*user.Transaction, error)
	// RunInTx runs fn against a Store bound to a single database transaction.
	RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	WalletAddress *string
	ID            *uuid.UUID
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithWalletAddress filters by normalized (lowercase) wallet address
func WithWalletAddress(address string) QueryOption {
	return func(opts *QueryOptions) {
		opts.WalletAddress = &address
	}
}

// WithID filters by user id
func WithID(id uuid.UUID) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}
