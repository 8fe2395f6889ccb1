package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

const serviceName = "LedgerService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the ledger Service.
// It logs method entry/exit, duration, errors and the resulting balances.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) GetOrCreate(ctx context.Context, address string) (usr *user.User, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("GetOrCreate failed",
				zap.String("service", serviceName),
				zap.String("method", "GetOrCreate"),
				zap.String("address", address),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.GetOrCreate(ctx, address)
}

// Deposit wraps the service method with logging
func (ls *logService) Deposit(
	ctx context.Context,
	caller string,
	req *user.DepositRequest,
) (resp *user.LedgerResponse, err error) {
	start := time.Now()

	ls.logger.Info("Deposit started",
		zap.String("service", serviceName),
		zap.String("method", "Deposit"),
		zap.String("address", req.UserAddress),
		zap.String("amount", req.Amount.String()),
		zap.String("tx_hash", req.TxHash),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Deposit failed",
				zap.String("service", serviceName),
				zap.String("method", "Deposit"),
				zap.String("address", req.UserAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Deposit completed",
			zap.String("service", serviceName),
			zap.String("method", "Deposit"),
			zap.String("transaction_id", resp.Transaction.ID.String()),
			zap.String("usdc_balance", resp.User.UsdcBalance.String()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Deposit(ctx, caller, req)
}

// Withdraw wraps the service method with logging
func (ls *logService) Withdraw(
	ctx context.Context,
	caller string,
	req *user.WithdrawRequest,
) (resp *user.LedgerResponse, err error) {
	start := time.Now()

	ls.logger.Info("Withdraw started",
		zap.String("service", serviceName),
		zap.String("method", "Withdraw"),
		zap.String("address", req.UserAddress),
		zap.String("amount", req.Amount.String()),
		zap.String("token", string(req.Token)),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Withdraw failed",
				zap.String("service", serviceName),
				zap.String("method", "Withdraw"),
				zap.String("address", req.UserAddress),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Withdraw completed",
			zap.String("service", serviceName),
			zap.String("method", "Withdraw"),
			zap.String("transaction_id", resp.Transaction.ID.String()),
			zap.String("usdc_balance", resp.User.UsdcBalance.String()),
			zap.String("x4pn_balance", resp.User.X4pnBalance.String()),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Withdraw(ctx, caller, req)
}

func (ls *logService) ListTransactions(ctx context.Context, address string, limit int) (txs []*user.Transaction, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Error("ListTransactions failed",
				zap.String("service", serviceName),
				zap.String("method", "ListTransactions"),
				zap.String("address", address),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()
	return ls.svc.ListTransactions(ctx, address, limit)
}
