// Package session holds the metered VPN session model, the lifecycle error taxonomy
// and the request types accepted by the lifecycle manager.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a session. Only StatusActive sessions can be settled.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
	StatusFailed Status = "failed"
)

var (
	ErrAlreadyActive       = errors.New("user already has an active session")
	ErrNodeUnavailable     = errors.New("node not found or inactive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNotFound            = errors.New("session not found")
	ErrNotActive           = errors.New("session is not active")
	ErrForbidden           = errors.New("caller does not own this session")
	ErrInvalidSignature    = errors.New("invalid settlement signature")
	ErrNothingToSettle     = errors.New("nothing to settle yet")
	// ErrConcurrentModification signals that another writer moved the session first.
	// It is retried internally and never returned to HTTP callers as-is.
	ErrConcurrentModification = errors.New("session modified concurrently")
)

// Session is a metered connection between one user and one node.
type Session struct {
	ID                   int64           `json:"id"`
	UserID               uuid.UUID       `json:"userId"`
	UserAddress          string          `json:"userAddress"`
	NodeID               uuid.UUID       `json:"nodeId"`
	NodeAddress          string          `json:"nodeAddress"`
	RatePerMinute        decimal.Decimal `json:"ratePerMinute"`
	RatePerSecond        decimal.Decimal `json:"ratePerSecond"`
	StartedAt            time.Time       `json:"startedAt"`
	LastSettledAt        time.Time       `json:"lastSettledAt"`
	EndedAt              *time.Time      `json:"endedAt,omitempty"`
	TotalCost            decimal.Decimal `json:"totalCost"`
	TotalDuration        int64           `json:"totalDuration"`
	X4pnEarned           decimal.Decimal `json:"x4pnEarned"`
	IsActive             bool            `json:"isActive"`
	Status               Status          `json:"status"`
	AttestationSignature string          `json:"lastAttestationSignature,omitempty"`
}

// Settlement is one applied charge window. The store applies it only if the session
// is still active and its last_settled_at still equals PreviousSettledAt.
type Settlement struct {
	SessionID         int64
	UserAddress       string
	NodeID            uuid.UUID
	PreviousSettledAt time.Time
	SettledAt         time.Time
	Cost              decimal.Decimal
	Reward            decimal.Decimal
	SecondsPaid       int64
	Signature         string
}

// Termination moves an active session into a terminal status.
type Termination struct {
	SessionID int64
	NodeID    uuid.UUID
	Status    Status
	EndedAt   time.Time
}

// StartRequest opens a session for UserAddress on NodeID.
type StartRequest struct {
	NodeID      uuid.UUID `json:"nodeId" validate:"required"`
	UserAddress string    `json:"userAddress" validate:"required,eth_addr"`
}

// SettleRequest charges the elapsed time of an active session. The claim fields are
// optional and only meaningful together with Signature.
type SettleRequest struct {
	SessionID       int64            `json:"sessionId" validate:"required,gt=0"`
	Signature       string           `json:"signature,omitempty" validate:"omitempty,hexadecimal"`
	ClaimedCost     *decimal.Decimal `json:"claimedCost,omitempty"`
	ClaimedDuration *int64           `json:"claimedDuration,omitempty" validate:"omitempty,min=0"`
}

// HasAttestation reports whether the request carries a signed claim.
func (r *SettleRequest) HasAttestation() bool {
	return r.Signature != ""
}

// EndRequest closes a session.
type EndRequest struct {
	SessionID int64 `json:"sessionId" validate:"required,gt=0"`
}

// SettleResult is the outcome of a settle call.
type SettleResult struct {
	Session     *Session        `json:"session"`
	Cost        decimal.Decimal `json:"cost"`
	Reward      decimal.Decimal `json:"x4pnReward"`
	SecondsPaid int64           `json:"secondsPaid"`

	// BalanceExhausted is set when the charge was capped to the remaining balance.
	BalanceExhausted bool `json:"balanceExhausted"`
}

// Notification is published to a node's channel when a session starts.
type Notification struct {
	SessionID   int64     `json:"sessionId"`
	UserAddress string    `json:"userAddress"`
	NodeID      uuid.UUID `json:"nodeId"`
	StartedAt   time.Time `json:"startedAt"`
}
