package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/auth/mocks"
)

const address = "0x52908400098527886E0F7030069857D2E4169EE7"

func protected(t *testing.T, challenges auth.ChallengeStore) (http.Handler, *auth.TokenIssuer) {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", "x4pn", time.Hour)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr, _ := auth.EVMAddressFromContext(r.Context())
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(addr + " " + claims.ID))
	})
	return auth.Middleware(issuer, challenges, zap.NewNop())(next), issuer
}

func TestMiddleware_ValidToken(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	handler, issuer := protected(t, challenges)

	token, claims, err := issuer.Issue(address)
	require.NoError(t, err)
	challenges.EXPECT().IsRevoked(mock.Anything, claims.ID).Return(false, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strings.ToLower(address)+" "+claims.ID, rec.Body.String())
}

func TestMiddleware_Rejections(t *testing.T) {
	challenges := mocks.NewChallengeStore(t)
	handler, issuer := protected(t, challenges)

	token, claims, err := issuer.Issue(address)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		setup  func()
		status int
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + token, status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", status: http.StatusUnauthorized},
		{
			name:   "revoked",
			header: "Bearer " + token,
			setup: func() {
				challenges.EXPECT().IsRevoked(mock.Anything, claims.ID).Return(true, nil).Once()
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "revocation lookup fails",
			header: "Bearer " + token,
			setup: func() {
				challenges.EXPECT().IsRevoked(mock.Anything, claims.ID).Return(false, errors.New("redis down")).Once()
			},
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
