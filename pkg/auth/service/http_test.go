package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/auth/service/mocks"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

func newAuthTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	withAddress := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := &auth.Claims{}
			claims.Subject = "0x52908400098527886e0f7030069857d2e4169ee7"
			claims.ID = "jti"
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
	RegisterRoutes(r, svc, withAddress, zap.NewNop())
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, int) {
	t.Helper()
	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got.Error, got.Code
}

func TestAuthHTTP_Login_InvalidJSON(t *testing.T) {
	handler := newAuthTestServer(mocks.NewService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg, _ := decodeError(t, rec); msg != "invalid JSON" {
		t.Fatalf("expected error %q, got %q", "invalid JSON", msg)
	}
}

func TestAuthHTTP_Login_MissingSignature(t *testing.T) {
	handler := newAuthTestServer(mocks.NewService(t))

	body := `{"address":"0x52908400098527886E0F7030069857D2E4169EE7"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg, _ := decodeError(t, rec); msg != "invalid Signature: failed required" {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestAuthHTTP_Login_Success(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newAuthTestServer(svc)

	svc.EXPECT().Login(mock.Anything, &auth.LoginRequest{
		Address:   "0x52908400098527886E0F7030069857D2E4169EE7",
		Signature: "0xabcdef",
	}).Return(&auth.LoginResponse{
		Message:   "Logged in successfully",
		Token:     "tok",
		ExpiresAt: time.Unix(1700000000, 0).UTC(),
		User:      &user.User{WalletAddress: "0x52908400098527886e0f7030069857d2e4169ee7"},
	}, nil).Once()

	body := `{"address":"0x52908400098527886E0F7030069857D2E4169EE7","signature":"0xabcdef"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got auth.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Token != "tok" || got.User.WalletAddress == "" {
		t.Fatalf("unexpected response %+v", got)
	}
}

func TestAuthHTTP_NonceAndMe(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newAuthTestServer(svc)

	svc.EXPECT().IssueNonce(mock.Anything, "0xabc").Return(&auth.NonceResponse{Nonce: "m"}, nil).Once()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/nonce/0xabc", nil))
	if rec.Code != http.StatusOK || !bytes.Contains(rec.Body.Bytes(), []byte(`"nonce":"m"`)) {
		t.Fatalf("unexpected nonce response %d %s", rec.Code, rec.Body.String())
	}

	svc.EXPECT().Me(mock.Anything, "0x52908400098527886e0f7030069857d2e4169ee7").
		Return(&user.User{WalletAddress: "0x52908400098527886e0f7030069857d2e4169ee7"}, nil).Once()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	svc.EXPECT().Logout(mock.Anything, mock.MatchedBy(func(c *auth.Claims) bool { return c.ID == "jti" })).Return(nil).Once()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
