package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/ShahiTechnovation/X4PN/pkg/nodestore"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

const (
	defaultListLimit = 100
	uniqueViolation  = "23505"
)

type pgStore struct {
	db bun.IDB
}

// NewStore creates a new postgres implementation of the session store.
func NewStore(db bun.IDB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateSession(ctx context.Context, sess *session.Session) (*session.Session, error) {
	dao := toSessionDao(sess)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().
			ColumnExpr("nextval(?)", SessionSequence).
			Scan(ctx, &dao.ID); err != nil {
			return fmt.Errorf("failed to allocate session id: %w", err)
		}

		if _, err := tx.NewInsert().Model(dao).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return session.ErrAlreadyActive
			}
			return fmt.Errorf("failed to insert session: %w", err)
		}

		if err := nodestore.NewStore(tx).IncrementActiveUsers(ctx, dao.NodeID); err != nil {
			if errors.Is(err, nodestore.ErrNodeNotFound) {
				return session.ErrNodeUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSession(dao), nil
}

func (s *pgStore) GetSession(ctx context.Context, id int64) (*session.Session, error) {
	dao := new(SessionDao)
	err := s.db.NewSelect().Model(dao).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return toSession(dao), nil
}

func (s *pgStore) GetActiveSession(ctx context.Context, userAddress string) (*session.Session, error) {
	dao := new(SessionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("user_address = ?", userAddress).
		Where("is_active").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return toSession(dao), nil
}

func (s *pgStore) ListSessionsByUser(ctx context.Context, userAddress string, limit int) ([]*session.Session, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var daos []SessionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_address = ?", userAddress).
		OrderExpr("id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return toSessions(daos), nil
}

func (s *pgStore) ListActiveSessions(ctx context.Context, opts ...ListOption) ([]*session.Session, error) {
	options := &ListOptions{Limit: defaultListLimit}
	for _, opt := range opts {
		opt(options)
	}

	var daos []SessionDao
	query := s.db.NewSelect().
		Model(&daos).
		Where("s.is_active")

	if options.SettledBefore != nil {
		query = query.Where("s.last_settled_at < ?", *options.SettledBefore)
	}
	if options.NodeID != nil {
		query = query.Where("s.node_id = ?", *options.NodeID)
	}
	if options.OnInactiveNodes {
		query = query.
			Join("JOIN nodes AS n ON n.id = s.node_id").
			Where("NOT n.is_active")
	}

	err := query.
		OrderExpr("s.last_settled_at ASC").
		Limit(options.Limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return toSessions(daos), nil
}

func (s *pgStore) CountActiveSessions(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().
		Model((*SessionDao)(nil)).
		Where("is_active").
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return n, nil
}

func (s *pgStore) ApplySettlement(ctx context.Context, st *session.Settlement) (*session.Session, error) {
	dao := new(SessionDao)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		query := tx.NewUpdate().
			Model(dao).
			Set("last_settled_at = ?", st.SettledAt).
			Set("total_cost = total_cost + ?::numeric", st.Cost).
			Set("total_duration = total_duration + ?", st.SecondsPaid).
			Set("x4pn_earned = x4pn_earned + ?::numeric", st.Reward).
			Where("id = ?", st.SessionID).
			Where("is_active").
			Where("last_settled_at = ?", st.PreviousSettledAt).
			Returning("*")
		if st.Signature != "" {
			query = query.Set("attestation_signature = ?", st.Signature)
		}

		if err := query.Scan(ctx); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return s.classifyMiss(ctx, tx, st.SessionID)
			}
			return fmt.Errorf("failed to advance session: %w", err)
		}

		_, err := userstore.NewStore(tx).ApplyGuardedDelta(ctx, st.UserAddress, user.SettlementDelta(st.Cost, st.Reward))
		if err != nil {
			if errors.Is(err, userstore.ErrInsufficientBalance) {
				// balance moved since the cost was capped; recompute on retry
				return fmt.Errorf("%w: %w", session.ErrConcurrentModification, err)
			}
			return err
		}

		if _, err := nodestore.NewStore(tx).ApplyEarnings(ctx, st.NodeID, st.Cost, st.Reward); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSession(dao), nil
}

// classifyMiss distinguishes a missing session from one another writer moved.
func (s *pgStore) classifyMiss(ctx context.Context, db bun.IDB, id int64) error {
	exists, err := db.NewSelect().
		Model((*SessionDao)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session exists: %w", err)
	}
	if !exists {
		return session.ErrNotFound
	}
	return session.ErrConcurrentModification
}

func (s *pgStore) Terminate(ctx context.Context, t *session.Termination) (*session.Session, bool, error) {
	dao := new(SessionDao)
	changed := false

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewUpdate().
			Model(dao).
			Set("is_active = FALSE").
			Set("status = ?", string(t.Status)).
			Set("ended_at = ?", t.EndedAt).
			Where("id = ?", t.SessionID).
			Where("is_active").
			Returning("*").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			// already terminal: report the stored row, no second decrement
			if err := tx.NewSelect().Model(dao).Where("id = ?", t.SessionID).Scan(ctx); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return session.ErrNotFound
				}
				return fmt.Errorf("failed to get session: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to terminate session: %w", err)
		}

		changed = true
		return nodestore.NewStore(tx).DecrementActiveUsers(ctx, dao.NodeID)
	})
	if err != nil {
		return nil, false, err
	}
	return toSession(dao), changed, nil
}

func toSessions(daos []SessionDao) []*session.Session {
	out := make([]*session.Session, len(daos))
	for i := range daos {
		out[i] = toSession(&daos[i])
	}
	return out
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation
}
