package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/internal/metrics"
	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

var (
	ErrInvalidAddress = errors.New("invalid wallet address")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrNotOwner       = errors.New("caller does not own this wallet")
)

// Service defines the balance ledger operations exposed over HTTP
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetOrCreate(ctx context.Context, address string) (*user.User, error)
	Deposit(ctx context.Context, caller string, req *user.DepositRequest) (*user.LedgerResponse, error)
	Withdraw(ctx context.Context, caller string, req *user.WithdrawRequest) (*user.LedgerResponse, error)
	ListTransactions(ctx context.Context, address string, limit int) ([]*user.Transaction, error)
}

type ledgerService struct {
	store       userstore.Store
	initialUsdc decimal.Decimal
	initialX4pn decimal.Decimal
	logger      *zap.Logger
}

// NewService creates the ledger service. Wallets seen for the first time are
// opened with the given balances.
func NewService(store userstore.Store, initialUsdc, initialX4pn decimal.Decimal, logger *zap.Logger) Service {
	return &ledgerService{
		store:       store,
		initialUsdc: initialUsdc,
		initialX4pn: initialX4pn,
		logger:      logger,
	}
}

func (s *ledgerService) GetOrCreate(ctx context.Context, address string) (*user.User, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(ErrInvalidAddress, "Invalid wallet address")
	}
	usr, err := s.store.CreateUser(ctx, user.New(auth.NormalizeAddress(address), s.initialUsdc, s.initialX4pn))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return usr, nil
}

// Deposit credits USDC and records a completed deposit in one transaction.
// The amount is trusted as reported by the caller. TxHash is stored for
// reference only and is not checked against the chain.
func (s *ledgerService) Deposit(ctx context.Context, caller string, req *user.DepositRequest) (*user.LedgerResponse, error) {
	if err := checkMovement(caller, req.UserAddress, req.Amount); err != nil {
		return nil, err
	}
	usr, err := s.GetOrCreate(ctx, req.UserAddress)
	if err != nil {
		return nil, err
	}

	tx := newTransaction(usr.ID, user.TransactionDeposit, user.TokenUSDC, req.Amount, req.TxHash)
	resp, err := s.move(ctx, usr.WalletAddress, user.Delta{Usdc: req.Amount}, false, tx)
	if err != nil {
		return nil, err
	}
	metrics.LedgerMovements.WithLabelValues(string(tx.Type), string(tx.Token)).Inc()
	return resp, nil
}

// Withdraw debits the requested token. The debit is refused rather than
// driving the balance negative.
func (s *ledgerService) Withdraw(ctx context.Context, caller string, req *user.WithdrawRequest) (*user.LedgerResponse, error) {
	if err := checkMovement(caller, req.UserAddress, req.Amount); err != nil {
		return nil, err
	}
	token := req.Token
	if token == "" {
		token = user.TokenUSDC
	}

	var delta user.Delta
	switch token {
	case user.TokenUSDC:
		delta.Usdc = req.Amount.Neg()
	case user.TokenX4PN:
		delta.X4pn = req.Amount.Neg()
	default:
		return nil, apperrors.BadRequestError(nil, fmt.Sprintf("unsupported token %q", token))
	}

	address := auth.NormalizeAddress(req.UserAddress)
	usr, err := s.store.GetUser(ctx, userstore.WithWalletAddress(address))
	if err != nil {
		return nil, mapStoreError(err)
	}

	tx := newTransaction(usr.ID, user.TransactionWithdrawal, token, req.Amount, "")
	resp, err := s.move(ctx, address, delta, true, tx)
	if err != nil {
		return nil, err
	}
	metrics.LedgerMovements.WithLabelValues(string(tx.Type), string(tx.Token)).Inc()
	return resp, nil
}

func (s *ledgerService) move(
	ctx context.Context,
	address string,
	delta user.Delta,
	guarded bool,
	tx *user.Transaction,
) (*user.LedgerResponse, error) {
	var updated *user.User
	err := s.store.RunInTx(ctx, func(ctx context.Context, store userstore.Store) error {
		var err error
		if guarded {
			updated, err = store.ApplyGuardedDelta(ctx, address, delta)
		} else {
			updated, err = store.ApplyDelta(ctx, address, delta)
		}
		if err != nil {
			return err
		}
		return store.CreateTransaction(ctx, tx)
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return &user.LedgerResponse{User: updated, Transaction: tx}, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, address string, limit int) ([]*user.Transaction, error) {
	usr, err := s.store.GetUser(ctx, userstore.WithWalletAddress(auth.NormalizeAddress(address)))
	if err != nil {
		return nil, mapStoreError(err)
	}
	txs, err := s.store.ListTransactions(ctx, usr.ID, limit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return txs, nil
}

func checkMovement(caller, owner string, amount decimal.Decimal) error {
	if !auth.SameAddress(caller, owner) {
		return apperrors.ForbiddenError(ErrNotOwner, "Cannot move funds for another wallet")
	}
	if !amount.IsPositive() {
		return apperrors.BadRequestError(ErrInvalidAmount, "Amount must be positive")
	}
	return nil
}

func newTransaction(userID uuid.UUID, typ user.TransactionType, token user.Token, amount decimal.Decimal, txHash string) *user.Transaction {
	return &user.Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Amount:    amount,
		Token:     token,
		TxHash:    txHash,
		Status:    user.TransactionCompleted,
		CreatedAt: time.Now().UTC(),
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, userstore.ErrUserNotFound):
		return apperrors.ResourceNotFoundError(err, "User not found")
	case errors.Is(err, userstore.ErrInsufficientBalance):
		return apperrors.BadRequestError(err, "Insufficient balance")
	default:
		return apperrors.GeneralError(err)
	}
}
