package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

const serviceName = "SessionService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the session Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

func (ls *logService) StartSession(ctx context.Context, caller string, req *session.StartRequest) (sess *session.Session, err error) {
	start := time.Now()
	ls.logger.Debug("StartSession called",
		zap.String("service", serviceName),
		zap.String("user_address", req.UserAddress),
		zap.String("node_id", req.NodeID.String()),
	)
	defer func() {
		if err != nil {
			ls.failed("StartSession", start, err,
				zap.String("user_address", req.UserAddress),
				zap.String("node_id", req.NodeID.String()),
			)
			return
		}
		ls.logger.Info("StartSession completed",
			zap.String("service", serviceName),
			zap.String("method", "StartSession"),
			zap.Int64("session_id", sess.ID),
			zap.String("user_address", sess.UserAddress),
			zap.String("node_id", sess.NodeID.String()),
			zap.String("rate_per_minute", sess.RatePerMinute.String()),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.StartSession(ctx, caller, req)
}

func (ls *logService) SettleSession(ctx context.Context, caller string, req *session.SettleRequest) (res *session.SettleResult, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("SettleSession", start, err,
				zap.Int64("session_id", req.SessionID),
				zap.Bool("attested", req.HasAttestation()),
				zap.String("signature", redactSignature(req.Signature)),
			)
			return
		}
		ls.settled("SettleSession", start, res, zap.Bool("attested", req.HasAttestation()))
	}()
	return ls.svc.SettleSession(ctx, caller, req)
}

func (ls *logService) EndSession(ctx context.Context, caller string, req *session.EndRequest) (sess *session.Session, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("EndSession", start, err, zap.Int64("session_id", req.SessionID))
			return
		}
		ls.logger.Info("EndSession completed",
			zap.String("service", serviceName),
			zap.String("method", "EndSession"),
			zap.Int64("session_id", sess.ID),
			zap.String("status", string(sess.Status)),
			zap.String("total_cost", sess.TotalCost.String()),
			zap.Int64("total_duration", sess.TotalDuration),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.EndSession(ctx, caller, req)
}

func (ls *logService) ForceSettle(ctx context.Context, id int64) (res *session.SettleResult, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			// nothing to settle is the common outcome for idle sessions
			ls.logger.Debug("ForceSettle skipped",
				zap.String("service", serviceName),
				zap.Int64("session_id", id),
				zap.Error(err),
			)
			return
		}
		ls.settled("ForceSettle", start, res)
	}()
	return ls.svc.ForceSettle(ctx, id)
}

func (ls *logService) FailSession(ctx context.Context, id int64) (sess *session.Session, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("FailSession", start, err, zap.Int64("session_id", id))
			return
		}
		ls.logger.Info("FailSession completed",
			zap.String("service", serviceName),
			zap.String("method", "FailSession"),
			zap.Int64("session_id", id),
			zap.String("status", string(sess.Status)),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.FailSession(ctx, id)
}

func (ls *logService) FailNodeSessions(ctx context.Context, nodeID uuid.UUID) (n int, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("FailNodeSessions", start, err, zap.String("node_id", nodeID.String()), zap.Int("failed", n))
			return
		}
		ls.logger.Info("FailNodeSessions completed",
			zap.String("service", serviceName),
			zap.String("method", "FailNodeSessions"),
			zap.String("node_id", nodeID.String()),
			zap.Int("failed", n),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.FailNodeSessions(ctx, nodeID)
}

func (ls *logService) GetSession(ctx context.Context, id int64) (sess *session.Session, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("GetSession", start, err, zap.Int64("session_id", id))
		}
	}()
	return ls.svc.GetSession(ctx, id)
}

func (ls *logService) ListSessionsByUser(ctx context.Context, address string) (sessions []*session.Session, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("ListSessionsByUser", start, err, zap.String("user_address", address))
		}
	}()
	return ls.svc.ListSessionsByUser(ctx, address)
}

func (ls *logService) GetActiveSessionByUser(ctx context.Context, address string) (sess *session.Session, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("GetActiveSessionByUser", start, err, zap.String("user_address", address))
		}
	}()
	return ls.svc.GetActiveSessionByUser(ctx, address)
}

func (ls *logService) settled(method string, start time.Time, res *session.SettleResult, fields ...zap.Field) {
	ls.logger.Info(method+" completed", append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Int64("session_id", res.Session.ID),
		zap.String("cost", res.Cost.String()),
		zap.String("reward", res.Reward.String()),
		zap.Int64("seconds_paid", res.SecondsPaid),
		zap.Bool("balance_exhausted", res.BalanceExhausted),
		zap.Duration("duration", time.Since(start)),
	)...)
}

func (ls *logService) failed(method string, start time.Time, err error, fields ...zap.Field) {
	ls.logger.Error(method+" failed", append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)...)
}

// redactSignature keeps enough of a signature to correlate log lines.
func redactSignature(sig string) string {
	if len(sig) <= 12 {
		return sig
	}
	return sig[:10] + "..." + sig[len(sig)-4:]
}
