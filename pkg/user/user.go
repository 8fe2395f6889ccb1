package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Token identifies which balance a ledger movement applies to.
type Token string

const (
	TokenUSDC Token = "usdc"
	TokenX4PN Token = "x4pn"
)

// TransactionType is the kind of ledger movement recorded for a user.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the lifecycle state of a recorded transaction.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// User represents a wallet holder with a prepaid USDC balance and an X4PN reward balance.
type User struct {
	ID              uuid.UUID       `json:"id"`
	WalletAddress   string          `json:"walletAddress"`
	UsdcBalance     decimal.Decimal `json:"usdcBalance"`
	X4pnBalance     decimal.Decimal `json:"x4pnBalance"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	TotalEarnedX4pn decimal.Decimal `json:"totalEarnedX4pn"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// New creates a User with the given opening balances.
func New(walletAddress string, usdc, x4pn decimal.Decimal) *User {
	return &User{
		ID:              uuid.New(),
		WalletAddress:   walletAddress,
		UsdcBalance:     usdc,
		X4pnBalance:     x4pn,
		TotalSpent:      decimal.Zero,
		TotalEarnedX4pn: decimal.Zero,
		CreatedAt:       time.Now().UTC(),
	}
}

// Delta is a signed change applied to a user's balances and lifetime totals in one statement.
type Delta struct {
	Usdc   decimal.Decimal
	X4pn   decimal.Decimal
	Spent  decimal.Decimal
	Earned decimal.Decimal
}

// IsZero reports whether applying d would change nothing.
func (d Delta) IsZero() bool {
	return d.Usdc.IsZero() && d.X4pn.IsZero() && d.Spent.IsZero() && d.Earned.IsZero()
}

// SettlementDelta is the ledger movement for a settled window: debit cost, credit reward.
func SettlementDelta(cost, reward decimal.Decimal) Delta {
	return Delta{
		Usdc:   cost.Neg(),
		X4pn:   reward,
		Spent:  cost,
		Earned: reward,
	}
}

// Transaction is an append-only record of a deposit or withdrawal.
type Transaction struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"userId"`
	Type      TransactionType   `json:"type"`
	Amount    decimal.Decimal   `json:"amount"`
	Token     Token             `json:"token"`
	TxHash    string            `json:"txHash,omitempty"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// DepositRequest credits the caller's prepaid USDC balance.
type DepositRequest struct {
	UserAddress string          `json:"userAddress" validate:"required,eth_addr"`
	Amount      decimal.Decimal `json:"amount"`
	TxHash      string          `json:"txHash,omitempty" validate:"omitempty,max=80"`
}

// WithdrawRequest debits one of the caller's balances. Token defaults to usdc.
type WithdrawRequest struct {
	UserAddress string          `json:"userAddress" validate:"required,eth_addr"`
	Amount      decimal.Decimal `json:"amount"`
	Token       Token           `json:"token,omitempty" validate:"omitempty,oneof=usdc x4pn"`
}

// LedgerResponse is returned by deposit and withdrawal endpoints.
type LedgerResponse struct {
	User        *User        `json:"user"`
	Transaction *Transaction `json:"transaction"`
}
