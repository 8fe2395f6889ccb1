// Package sessionstore persists metered sessions and applies settlements and
// terminations atomically together with the user ledger and node accumulator.
package sessionstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

// Store defines session persistence.
//
// CreateSession, ApplySettlement and Terminate each run in one database
// transaction that also touches the users and nodes tables.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	// CreateSession allocates the next session id, inserts s and increments the
	// node's active user counter. Returns session.ErrAlreadyActive if the user
	// already holds an active session.
	CreateSession(ctx context.Context, s *session.Session) (*session.Session, error)
	GetSession(ctx context.Context, id int64) (*session.Session, error)
	GetActiveSession(ctx context.Context, userAddress string) (*session.Session, error)
	ListSessionsByUser(ctx context.Context, userAddress string, limit int) ([]*session.Session, error)
	ListActiveSessions(ctx context.Context, opts ...ListOption) ([]*session.Session, error)
	CountActiveSessions(ctx context.Context) (int, error)
	// ApplySettlement debits the user, credits the node and advances the
	// session, provided the session is still active and was last settled at
	// st.PreviousSettledAt. Otherwise returns session.ErrConcurrentModification.
	ApplySettlement(ctx context.Context, st *session.Settlement) (*session.Session, error)
	// Terminate moves an active session to t.Status and decrements the node
	// counter. changed is false when the session was already terminal.
	Terminate(ctx context.Context, t *session.Termination) (sess *session.Session, changed bool, err error)
}

// ListOptions filters active session listings
type ListOptions struct {
	SettledBefore   *time.Time
	NodeID          *uuid.UUID
	OnInactiveNodes bool
	Limit           int
}

// ListOption is a functional option for listing active sessions
type ListOption func(*ListOptions)

// SettledBefore selects sessions whose last settlement is older than t.
func SettledBefore(t time.Time) ListOption {
	return func(opts *ListOptions) {
		opts.SettledBefore = &t
	}
}

// OnNode selects sessions attached to the given node.
func OnNode(id uuid.UUID) ListOption {
	return func(opts *ListOptions) {
		opts.NodeID = &id
	}
}

// OnInactiveNodes selects sessions whose node has been deactivated.
func OnInactiveNodes() ListOption {
	return func(opts *ListOptions) {
		opts.OnInactiveNodes = true
	}
}

// Limit caps the number of returned sessions.
func Limit(n int) ListOption {
	return func(opts *ListOptions) {
		opts.Limit = n
	}
}
