package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/internal/metrics"
	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

var (
	ErrInvalidAddress   = errors.New("invalid address")
	ErrSignatureInvalid = errors.New("signature does not match address")
)

// Store is the narrow user persistence needed by login.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, usr *user.User) (*user.User, error)
	GetUser(ctx context.Context, opts ...userstore.QueryOption) (*user.User, error)
}

// Tokens issues API tokens for authenticated wallets.
type Tokens interface {
	Issue(address string) (string, *auth.Claims, error)
}

// Service defines wallet login
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	IssueNonce(ctx context.Context, address string) (*auth.NonceResponse, error)
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
	Me(ctx context.Context, address string) (*user.User, error)
}

type authService struct {
	store       Store
	challenges  auth.ChallengeStore
	tokens      Tokens
	initialUsdc decimal.Decimal
	initialX4pn decimal.Decimal
	logger      *zap.Logger
}

// NewService creates the login service. New wallets are credited with the
// given starting balances on first login.
func NewService(
	store Store,
	challenges auth.ChallengeStore,
	tokens Tokens,
	initialUsdc, initialX4pn decimal.Decimal,
	logger *zap.Logger,
) Service {
	return &authService{
		store:       store,
		challenges:  challenges,
		tokens:      tokens,
		initialUsdc: initialUsdc,
		initialX4pn: initialX4pn,
		logger:      logger,
	}
}

func (s *authService) IssueNonce(ctx context.Context, address string) (*auth.NonceResponse, error) {
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(ErrInvalidAddress, "Invalid address")
	}
	message, err := s.challenges.IssueNonce(ctx, address)
	if err != nil {
		return nil, apperrors.DependencyError(err, "failed to issue nonce")
	}
	return &auth.NonceResponse{Nonce: message}, nil
}

// Login proves wallet ownership with the pending nonce, then returns a token
// for the (possibly newly created) user. The nonce is single use whether or
// not the signature matches.
func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if !auth.ValidateEVMAddress(req.Address) {
		return nil, apperrors.BadRequestError(ErrInvalidAddress, "Invalid address")
	}
	address := auth.NormalizeAddress(req.Address)

	message, err := s.challenges.ConsumeNonce(ctx, address)
	if errors.Is(err, auth.ErrNonceNotFound) {
		metrics.LoginsTotal.WithLabelValues("no_nonce").Inc()
		return nil, apperrors.BadRequestError(err, "Nonce not found. Request valid nonce first.")
	}
	if err != nil {
		return nil, apperrors.DependencyError(err, "failed to read nonce")
	}

	recovered, err := auth.VerifyEIP191Signature(message, req.Signature)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_signature").Inc()
		return nil, apperrors.UnAuthorizedError(err, "Invalid signature")
	}
	if auth.NormalizeAddress(recovered.Hex()) != address {
		metrics.LoginsTotal.WithLabelValues("invalid_signature").Inc()
		return nil, apperrors.UnAuthorizedError(ErrSignatureInvalid, "Invalid signature")
	}

	usr, err := s.store.CreateUser(ctx, user.New(address, s.initialUsdc, s.initialX4pn))
	if err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("get or create user: %w", err))
	}

	token, claims, err := s.tokens.Issue(address)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &auth.LoginResponse{
		Message:   "Logged in successfully",
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      usr,
	}, nil
}

// Logout revokes the presented token for the rest of its lifetime.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	if err := s.challenges.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.DependencyError(err, "Failed to logout")
	}
	return nil
}

func (s *authService) Me(ctx context.Context, address string) (*user.User, error) {
	usr, err := s.store.GetUser(ctx, userstore.WithWalletAddress(auth.NormalizeAddress(address)))
	if errors.Is(err, userstore.ErrUserNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "User not found")
	}
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return usr, nil
}
