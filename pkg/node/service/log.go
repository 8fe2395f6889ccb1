package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/node"
)

const serviceName = "NodeService"

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the node Service. Reads are logged
// only on failure.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

func (ls *logService) Register(ctx context.Context, caller string, req *node.RegisterRequest) (n *node.Node, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("Register", start, err, zap.String("operator", caller), zap.String("name", req.Name))
			return
		}
		ls.logger.Info("Register completed",
			zap.String("service", serviceName),
			zap.String("method", "Register"),
			zap.String("node_id", n.ID.String()),
			zap.String("operator", n.OperatorAddress),
			zap.String("rate_per_minute", n.RatePerMinute.String()),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.Register(ctx, caller, req)
}

func (ls *logService) GetNode(ctx context.Context, id uuid.UUID) (n *node.Node, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("GetNode", start, err, zap.String("node_id", id.String()))
		}
	}()
	return ls.svc.GetNode(ctx, id)
}

func (ls *logService) ListNodes(ctx context.Context, activeOnly bool) (nodes []*node.Node, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("ListNodes", start, err, zap.Bool("active_only", activeOnly))
		}
	}()
	return ls.svc.ListNodes(ctx, activeOnly)
}

func (ls *logService) ListByOperator(ctx context.Context, address string) (nodes []*node.Node, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("ListByOperator", start, err, zap.String("operator", address))
		}
	}()
	return ls.svc.ListByOperator(ctx, address)
}

func (ls *logService) Update(ctx context.Context, caller string, id uuid.UUID, req *node.UpdateRequest) (n *node.Node, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("Update", start, err, zap.String("node_id", id.String()), zap.String("caller", caller))
			return
		}
		ls.logger.Info("Update completed",
			zap.String("service", serviceName),
			zap.String("method", "Update"),
			zap.String("node_id", id.String()),
			zap.Bool("is_active", n.IsActive),
			zap.Duration("duration", time.Since(start)),
		)
	}()
	return ls.svc.Update(ctx, caller, id, req)
}

func (ls *logService) Stats(ctx context.Context) (stats *node.Stats, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.failed("Stats", start, err)
		}
	}()
	return ls.svc.Stats(ctx)
}

func (ls *logService) failed(method string, start time.Time, err error, fields ...zap.Field) {
	ls.logger.Error(method+" failed", append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
		zap.Error(err),
	)...)
}
