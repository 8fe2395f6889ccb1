package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

const defaultTransactionLimit = 100

type pgStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the user store.
// db may be a *bun.DB or a bun.Tx, so the store can join a caller's transaction.
func NewStore(db bun.IDB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) RunInTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, NewStore(tx))
	})
}

// CreateUser inserts usr unless a user with the same wallet address exists,
// and returns whichever row is stored.
func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) (*user.User, error) {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (wallet_address) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.GetUser(ctx, WithWalletAddress(usr.WalletAddress))
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *options.WalletAddress)
	}
	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) CountUsers(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*UserDao)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// ApplyDelta adds delta to the user's balances and totals in a single statement.
func (s *pgStore) ApplyDelta(ctx context.Context, address string, delta user.Delta) (*user.User, error) {
	return s.applyDelta(ctx, address, delta, false)
}

// ApplyGuardedDelta is ApplyDelta that refuses to drive either balance below zero.
func (s *pgStore) ApplyGuardedDelta(ctx context.Context, address string, delta user.Delta) (*user.User, error) {
	return s.applyDelta(ctx, address, delta, true)
}

func (s *pgStore) applyDelta(ctx context.Context, address string, delta user.Delta, guarded bool) (*user.User, error) {
	dao := new(UserDao)
	query := s.db.NewUpdate().
		Model(dao).
		Set("usdc_balance = usdc_balance + ?::numeric", delta.Usdc).
		Set("x4pn_balance = x4pn_balance + ?::numeric", delta.X4pn).
		Set("total_spent = total_spent + ?::numeric", delta.Spent).
		Set("total_earned_x4pn = total_earned_x4pn + ?::numeric", delta.Earned).
		Where("wallet_address = ?", address).
		Returning("*")

	if guarded {
		query = query.
			Where("usdc_balance + ?::numeric >= 0", delta.Usdc).
			Where("x4pn_balance + ?::numeric >= 0", delta.X4pn)
	}

	err := query.Scan(ctx)
	if err == nil {
		return toUser(dao), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to apply balance delta: %w", err)
	}

	// no row matched: either the user is missing or the guard rejected the update
	if !guarded {
		return nil, ErrUserNotFound
	}
	exists, err := s.db.NewSelect().
		Model((*UserDao)(nil)).
		Where("wallet_address = ?", address).
		Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check user exists: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return nil, ErrInsufficientBalance
}

func (s *pgStore) CreateTransaction(ctx context.Context, tx *user.Transaction) error {
	_, err := s.db.NewInsert().
		Model(toTransactionDao(tx)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *pgStore) ListTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*user.Transaction, error) {
	if limit <= 0 {
		limit = defaultTransactionLimit
	}

	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		OrderExpr("created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txs := make([]*user.Transaction, len(daos))
	for i := range daos {
		txs[i] = toTransaction(&daos[i])
	}
	return txs, nil
}
