package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	authmocks "github.com/ShahiTechnovation/X4PN/pkg/auth/mocks"
	"github.com/ShahiTechnovation/X4PN/pkg/auth/service/mocks"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
	"github.com/ShahiTechnovation/X4PN/pkg/userstore"
)

type wallet struct {
	address string
	sign    func(message string) string
}

func newWallet(t *testing.T) wallet {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	return wallet{
		address: auth.NormalizeAddress(crypto.PubkeyToAddress(key.PublicKey).Hex()),
		sign: func(message string) string {
			sig, err := auth.SignEIP191(message, func(hash []byte) ([]byte, error) {
				return crypto.Sign(hash, key)
			})
			if err != nil {
				t.Fatalf("SignEIP191() failed: %v", err)
			}
			return sig
		},
	}
}

func newTestService(t *testing.T) (Service, *mocks.Store, *authmocks.ChallengeStore) {
	t.Helper()
	store := mocks.NewStore(t)
	challenges := authmocks.NewChallengeStore(t)
	tokens, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "x4pn", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenIssuer() failed: %v", err)
	}
	svc := NewService(store, challenges, tokens, decimal.NewFromInt(100), decimal.NewFromInt(500), zap.NewNop())
	return svc, store, challenges
}

func TestAuthService_Login_CreatesUserWithStartingBalances(t *testing.T) {
	ctx := context.Background()
	w := newWallet(t)
	message := auth.LoginMessage("n-1")

	svc, store, challenges := newTestService(t)
	challenges.EXPECT().ConsumeNonce(ctx, w.address).Return(message, nil).Once()
	store.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
		return u.WalletAddress == w.address &&
			u.UsdcBalance.Equal(decimal.NewFromInt(100)) &&
			u.X4pnBalance.Equal(decimal.NewFromInt(500))
	})).RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) {
		return u, nil
	}).Once()

	resp, err := svc.Login(ctx, &auth.LoginRequest{
		Address:   w.address[:2] + strings.ToUpper(w.address[2:]),
		Signature: w.sign(message),
	})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token")
	}
	if resp.User.WalletAddress != w.address {
		t.Fatalf("expected user %s, got %s", w.address, resp.User.WalletAddress)
	}
}

func TestAuthService_Login_NoNonce(t *testing.T) {
	ctx := context.Background()
	w := newWallet(t)

	svc, _, challenges := newTestService(t)
	challenges.EXPECT().ConsumeNonce(ctx, w.address).Return("", auth.ErrNonceNotFound).Once()

	_, err := svc.Login(ctx, &auth.LoginRequest{Address: w.address, Signature: w.sign("anything")})
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected CategoryDataError, got %v", err)
	}
	if !errors.Is(err, auth.ErrNonceNotFound) {
		t.Fatalf("expected ErrNonceNotFound, got %v", err)
	}
}

func TestAuthService_Login_SignatureFromOtherWallet(t *testing.T) {
	ctx := context.Background()
	victim := newWallet(t)
	attacker := newWallet(t)
	message := auth.LoginMessage("n-2")

	svc, _, challenges := newTestService(t)
	challenges.EXPECT().ConsumeNonce(ctx, victim.address).Return(message, nil).Once()

	_, err := svc.Login(ctx, &auth.LoginRequest{Address: victim.address, Signature: attacker.sign(message)})
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
		t.Fatalf("expected CategoryUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_StaleNonceSignature(t *testing.T) {
	ctx := context.Background()
	w := newWallet(t)

	svc, _, challenges := newTestService(t)
	challenges.EXPECT().ConsumeNonce(ctx, w.address).Return(auth.LoginMessage("current"), nil).Once()

	_, err := svc.Login(ctx, &auth.LoginRequest{Address: w.address, Signature: w.sign(auth.LoginMessage("previous"))})
	if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
		t.Fatalf("expected CategoryUnauthorized, got %v", err)
	}
}

func TestAuthService_IssueNonce(t *testing.T) {
	ctx := context.Background()
	svc, _, challenges := newTestService(t)

	if _, err := svc.IssueNonce(ctx, "not-an-address"); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}

	w := newWallet(t)
	challenges.EXPECT().IssueNonce(ctx, w.address).Return(auth.LoginMessage("x"), nil).Once()
	resp, err := svc.IssueNonce(ctx, w.address)
	if err != nil {
		t.Fatalf("IssueNonce() failed: %v", err)
	}
	if resp.Nonce != auth.LoginMessage("x") {
		t.Fatalf("unexpected nonce %q", resp.Nonce)
	}
}

func TestAuthService_Logout_RevokesUntilExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _, challenges := newTestService(t)

	tokens, _ := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "x4pn", time.Hour)
	_, claims, err := tokens.Issue(newWallet(t).address)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}
	challenges.EXPECT().Revoke(ctx, claims.ID, claims.ExpiresAt.Time).Return(nil).Once()

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
}

func TestAuthService_Me_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	store.EXPECT().GetUser(ctx, mock.Anything).Return(nil, userstore.ErrUserNotFound).Once()

	_, err := svc.Me(ctx, newWallet(t).address)
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected CategoryResourceNotFound, got %v", err)
	}
}
