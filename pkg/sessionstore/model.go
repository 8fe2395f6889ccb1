package sessionstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

const (
	// SessionSequence allocates session ids. Ids are never reused.
	SessionSequence = "session_seq"
	// ActiveSessionIndex is the partial unique index allowing one active session per user.
	ActiveSessionIndex = "sessions_user_id_active_idx"
)

// SessionDao maps to the 'sessions' table.
type SessionDao struct {
	bun.BaseModel        `bun:"table:sessions,alias:s"`
	ID                   int64           `bun:"id,pk"`
	UserID               uuid.UUID       `bun:"user_id,notnull,type:uuid"`
	UserAddress          string          `bun:"user_address,notnull,type:varchar(42)"`
	NodeID               uuid.UUID       `bun:"node_id,notnull,type:uuid"`
	NodeAddress          string          `bun:"node_address,notnull,type:varchar(42)"`
	RatePerMinute        decimal.Decimal `bun:"rate_per_minute,notnull,type:numeric(38,18)"`
	RatePerSecond        decimal.Decimal `bun:"rate_per_second,notnull,type:numeric(38,18)"`
	StartedAt            time.Time       `bun:"started_at,notnull"`
	LastSettledAt        time.Time       `bun:"last_settled_at,notnull"`
	EndedAt              *time.Time      `bun:"ended_at"`
	TotalCost            decimal.Decimal `bun:"total_cost,notnull,type:numeric(38,18),default:0"`
	TotalDuration        int64           `bun:"total_duration,notnull,default:0"`
	X4pnEarned           decimal.Decimal `bun:"x4pn_earned,notnull,type:numeric(38,18),default:0"`
	IsActive             bool            `bun:"is_active,notnull"`
	Status               string          `bun:"status,notnull,type:varchar(16)"`
	AttestationSignature *string         `bun:"attestation_signature,type:text"`
}

func toSessionDao(s *session.Session) *SessionDao {
	var sig *string
	if s.AttestationSignature != "" {
		sig = &s.AttestationSignature
	}
	return &SessionDao{
		ID:                   s.ID,
		UserID:               s.UserID,
		UserAddress:          s.UserAddress,
		NodeID:               s.NodeID,
		NodeAddress:          s.NodeAddress,
		RatePerMinute:        s.RatePerMinute,
		RatePerSecond:        s.RatePerSecond,
		StartedAt:            s.StartedAt,
		LastSettledAt:        s.LastSettledAt,
		EndedAt:              s.EndedAt,
		TotalCost:            s.TotalCost,
		TotalDuration:        s.TotalDuration,
		X4pnEarned:           s.X4pnEarned,
		IsActive:             s.IsActive,
		Status:               string(s.Status),
		AttestationSignature: sig,
	}
}

func toSession(dao *SessionDao) *session.Session {
	s := &session.Session{
		ID:            dao.ID,
		UserID:        dao.UserID,
		UserAddress:   dao.UserAddress,
		NodeID:        dao.NodeID,
		NodeAddress:   dao.NodeAddress,
		RatePerMinute: dao.RatePerMinute,
		RatePerSecond: dao.RatePerSecond,
		StartedAt:     dao.StartedAt.UTC(),
		LastSettledAt: dao.LastSettledAt.UTC(),
		TotalCost:     dao.TotalCost,
		TotalDuration: dao.TotalDuration,
		X4pnEarned:    dao.X4pnEarned,
		IsActive:      dao.IsActive,
		Status:        session.Status(dao.Status),
	}
	if dao.EndedAt != nil {
		ended := dao.EndedAt.UTC()
		s.EndedAt = &ended
	}
	if dao.AttestationSignature != nil {
		s.AttestationSignature = *dao.AttestationSignature
	}
	return s
}
