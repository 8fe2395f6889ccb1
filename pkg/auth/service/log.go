package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

const serviceName = "AuthService"

const signatureDisplaySize = 16

type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the auth Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{svc: svc, logger: logger}
}

func (ls *logService) IssueNonce(ctx context.Context, address string) (resp *auth.NonceResponse, err error) {
	start := time.Now()
	defer func() {
		ls.done("IssueNonce", start, err, zap.String("address", address))
	}()
	return ls.svc.IssueNonce(ctx, address)
}

func (ls *logService) Login(ctx context.Context, req *auth.LoginRequest) (resp *auth.LoginResponse, err error) {
	start := time.Now()

	ls.logger.Info("Login started",
		zap.String("service", serviceName),
		zap.String("method", "Login"),
		zap.String("address", req.Address),
		zap.String("signature", redactSignature(req.Signature)),
	)

	defer func() {
		fields := []zap.Field{zap.String("address", req.Address)}
		if err == nil {
			fields = append(fields, zap.String("user_id", resp.User.ID.String()), zap.Time("expires_at", resp.ExpiresAt))
		}
		ls.done("Login", start, err, fields...)
	}()

	return ls.svc.Login(ctx, req)
}

func (ls *logService) Logout(ctx context.Context, claims *auth.Claims) (err error) {
	start := time.Now()
	defer func() {
		var fields []zap.Field
		if claims != nil {
			fields = append(fields, zap.String("address", claims.Subject), zap.String("jti", claims.ID))
		}
		ls.done("Logout", start, err, fields...)
	}()
	return ls.svc.Logout(ctx, claims)
}

func (ls *logService) Me(ctx context.Context, address string) (usr *user.User, err error) {
	start := time.Now()
	defer func() {
		ls.done("Me", start, err, zap.String("address", address))
	}()
	return ls.svc.Me(ctx, address)
}

func (ls *logService) done(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

// redactSignature shows only the edges and length of a signature
func redactSignature(sig string) string {
	if sig == "" {
		return "<empty>"
	}
	sigLen := len(sig)
	if sigLen > signatureDisplaySize {
		return fmt.Sprintf("%s...%s (%d bytes)", sig[:8], sig[sigLen-4:], sigLen)
	}
	return fmt.Sprintf("<%d bytes>", sigLen)
}
