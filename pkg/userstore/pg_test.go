package userstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ShahiTechnovation/X4PN/pkg/pgutil"
	mghelper "github.com/ShahiTechnovation/X4PN/pkg/pgutil/migrations"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

const (
	aliceAddress = "0x1111111111111111111111111111111111111111"
	bobAddress   = "0x2222222222222222222222222222222222222222"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()
	pgutil.RequireDockerAccess(t)

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &UserDao{}, &TransactionDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimalEqual(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Fatalf("decimal mismatch: got %s want %s", got.String(), want)
	}
}

func TestUserPGStore_CreateUserIsGetOrCreate(t *testing.T) {
	ctx, s := setupStore(t)

	created, err := s.CreateUser(ctx, user.New(aliceAddress, dec("100"), dec("500")))
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	assertDecimalEqual(t, created.UsdcBalance, "100")
	assertDecimalEqual(t, created.X4pnBalance, "500")

	again, err := s.CreateUser(ctx, user.New(aliceAddress, dec("1"), dec("1")))
	if err != nil {
		t.Fatalf("second CreateUser() failed: %v", err)
	}
	if again.ID != created.ID {
		t.Fatalf("expected existing user %s, got %s", created.ID, again.ID)
	}
	assertDecimalEqual(t, again.UsdcBalance, "100")

	n, err := s.CountUsers(ctx)
	if err != nil {
		t.Fatalf("CountUsers() failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestUserPGStore_GetUserNotFound(t *testing.T) {
	ctx, s := setupStore(t)

	_, err := s.GetUser(ctx, WithWalletAddress(bobAddress))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	_, err = s.GetUser(ctx, WithID(uuid.New()))
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPGStore_ApplyDelta(t *testing.T) {
	ctx, s := setupStore(t)

	if _, err := s.CreateUser(ctx, user.New(aliceAddress, dec("100"), dec("0"))); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	got, err := s.ApplyDelta(ctx, aliceAddress, user.SettlementDelta(dec("0.6"), dec("6")))
	if err != nil {
		t.Fatalf("ApplyDelta() failed: %v", err)
	}
	assertDecimalEqual(t, got.UsdcBalance, "99.4")
	assertDecimalEqual(t, got.X4pnBalance, "6")
	assertDecimalEqual(t, got.TotalSpent, "0.6")
	assertDecimalEqual(t, got.TotalEarnedX4pn, "6")

	_, err = s.ApplyDelta(ctx, bobAddress, user.Delta{Usdc: dec("1")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown user, got %v", err)
	}
}

func TestUserPGStore_ApplyGuardedDeltaRejectsOverdraft(t *testing.T) {
	ctx, s := setupStore(t)

	if _, err := s.CreateUser(ctx, user.New(aliceAddress, dec("0.5"), dec("0"))); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	_, err := s.ApplyGuardedDelta(ctx, aliceAddress, user.SettlementDelta(dec("0.51"), dec("5.1")))
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	got, err := s.GetUser(ctx, WithWalletAddress(aliceAddress))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	assertDecimalEqual(t, got.UsdcBalance, "0.5")
	assertDecimalEqual(t, got.X4pnBalance, "0")

	got, err = s.ApplyGuardedDelta(ctx, aliceAddress, user.SettlementDelta(dec("0.5"), dec("5")))
	if err != nil {
		t.Fatalf("ApplyGuardedDelta() exact balance failed: %v", err)
	}
	assertDecimalEqual(t, got.UsdcBalance, "0")

	_, err = s.ApplyGuardedDelta(ctx, bobAddress, user.Delta{Usdc: dec("-1")})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserPGStore_ConcurrentGuardedDebitsNeverOverdraw(t *testing.T) {
	ctx, s := setupStore(t)

	if _, err := s.CreateUser(ctx, user.New(aliceAddress, dec("1"), dec("0"))); err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.ApplyGuardedDelta(ctx, aliceAddress, user.SettlementDelta(dec("0.3"), dec("3")))
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 3 {
		t.Fatalf("expected 3 successful debits, got %d", succeeded)
	}
	got, err := s.GetUser(ctx, WithWalletAddress(aliceAddress))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	assertDecimalEqual(t, got.UsdcBalance, "0.1")
}

func TestUserPGStore_TransactionsAndTx(t *testing.T) {
	ctx, s := setupStore(t)

	alice, err := s.CreateUser(ctx, user.New(aliceAddress, dec("0"), dec("0")))
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	boom := errors.New("boom")
	err = s.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		if _, err := tx.ApplyDelta(ctx, aliceAddress, user.Delta{Usdc: dec("10")}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected rollback error, got %v", err)
	}
	got, err := s.GetUser(ctx, WithID(alice.ID))
	if err != nil {
		t.Fatalf("GetUser() failed: %v", err)
	}
	assertDecimalEqual(t, got.UsdcBalance, "0")

	err = s.RunInTx(ctx, func(ctx context.Context, tx Store) error {
		if _, err := tx.ApplyDelta(ctx, aliceAddress, user.Delta{Usdc: dec("10")}); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, &user.Transaction{
			ID:     uuid.New(),
			UserID: alice.ID,
			Type:   user.TransactionDeposit,
			Amount: dec("10"),
			Token:  user.TokenUSDC,
			TxHash: "0xabc",
			Status: user.TransactionCompleted,
		})
	})
	if err != nil {
		t.Fatalf("RunInTx() failed: %v", err)
	}

	txs, err := s.ListTransactions(ctx, alice.ID, 0)
	if err != nil {
		t.Fatalf("ListTransactions() failed: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txs))
	}
	if txs[0].TxHash != "0xabc" || txs[0].Type != user.TransactionDeposit {
		t.Fatalf("unexpected transaction: %+v", txs[0])
	}
	assertDecimalEqual(t, txs[0].Amount, "10")
}

func TestUserPGStore_DuplicateTransactionID(t *testing.T) {
	ctx, s := setupStore(t)

	alice, err := s.CreateUser(ctx, user.New(aliceAddress, dec("0"), dec("0")))
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}

	tx := &user.Transaction{
		ID:     uuid.New(),
		UserID: alice.ID,
		Type:   user.TransactionWithdrawal,
		Amount: dec("1"),
		Token:  user.TokenX4PN,
		Status: user.TransactionCompleted,
	}
	if err := s.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction() failed: %v", err)
	}

	err = s.CreateTransaction(ctx, tx)
	var pgErr pgdriver.Error
	if !errors.As(err, &pgErr) {
		t.Fatalf("expected postgres error type, got: %v", err)
	}
	if !pgErr.IntegrityViolation() {
		t.Fatalf("expected unique violation, got %s (%v)", pgErr.Field('C'), err)
	}
}
