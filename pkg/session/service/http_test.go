package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
	"github.com/ShahiTechnovation/X4PN/pkg/session/service/mocks"
)

const caller = "0x52908400098527886e0f7030069857d2e4169ee7"

func newSessionTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	authenticate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithEVMAddress(r.Context(), caller)))
		})
	}
	RegisterRoutes(r, svc, authenticate, zap.NewNop())
	return r
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	return rec
}

func TestSessionHTTP_Start(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	nodeID := uuid.New()
	svc.EXPECT().StartSession(mock.Anything, caller, &session.StartRequest{NodeID: nodeID, UserAddress: caller}).
		Return(&session.Session{ID: 3, NodeID: nodeID, UserAddress: caller, IsActive: true, Status: session.StatusActive}, nil).Once()

	rec := serve(handler, http.MethodPost, "/api/sessions/start",
		`{"nodeId":"`+nodeID.String()+`","userAddress":"`+caller+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}
	var got session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != 3 || got.Status != session.StatusActive {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionHTTP_Start_ValidatesBody(t *testing.T) {
	handler := newSessionTestServer(mocks.NewService(t))

	for _, body := range []string{
		`{"nodeId":"` + uuid.NewString() + `","userAddress":"nope"}`,
		`{"userAddress":"` + caller + `"}`,
		`not json`,
	} {
		if rec := serve(handler, http.MethodPost, "/api/sessions/start", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected status %d, got %d", body, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestSessionHTTP_Settle(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	svc.EXPECT().SettleSession(mock.Anything, caller, mock.MatchedBy(func(req *session.SettleRequest) bool {
		return req.SessionID == 3 &&
			req.Signature == "0xabcdef" &&
			req.ClaimedCost != nil && req.ClaimedCost.Equal(decimal.RequireFromString("0.6")) &&
			req.ClaimedDuration != nil && *req.ClaimedDuration == 60
	})).Return(&session.SettleResult{
		Session:     &session.Session{ID: 3},
		Cost:        decimal.RequireFromString("0.6"),
		Reward:      decimal.RequireFromString("6"),
		SecondsPaid: 60,
	}, nil).Once()

	rec := serve(handler, http.MethodPost, "/api/sessions/settle",
		`{"sessionId":3,"signature":"0xabcdef","claimedCost":"0.6","claimedDuration":60}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"secondsPaid":60`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSessionHTTP_Settle_Rejections(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	if rec := serve(handler, http.MethodPost, "/api/sessions/settle", `{"sessionId":0}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for missing id, got %d", http.StatusBadRequest, rec.Code)
	}
	if rec := serve(handler, http.MethodPost, "/api/sessions/settle", `{"sessionId":1,"signature":"0xabcdef","claimedCost":"-1","claimedDuration":1}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for negative claim, got %d", http.StatusBadRequest, rec.Code)
	}

	svc.EXPECT().SettleSession(mock.Anything, caller, mock.Anything).
		Return(nil, apperrors.UnavailableError(session.ErrConcurrentModification, "Session is busy, please retry")).Once()
	rec := serve(handler, http.MethodPost, "/api/sessions/settle", `{"sessionId":1}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Session is busy") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSessionHTTP_End(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	svc.EXPECT().EndSession(mock.Anything, caller, &session.EndRequest{SessionID: 9}).
		Return(&session.Session{ID: 9, Status: session.StatusEnded}, nil).Once()

	rec := serve(handler, http.MethodPost, "/api/sessions/end", `{"sessionId":9}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestSessionHTTP_ActiveWritesNull(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	svc.EXPECT().GetActiveSessionByUser(mock.Anything, caller).Return(nil, nil).Once()

	rec := serve(handler, http.MethodGet, "/api/sessions/active/"+caller, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body, got %s", rec.Body.String())
	}
}

func TestSessionHTTP_History(t *testing.T) {
	svc := mocks.NewService(t)
	handler := newSessionTestServer(svc)

	svc.EXPECT().ListSessionsByUser(mock.Anything, caller).
		Return([]*session.Session{{ID: 2}, {ID: 1}}, nil).Once()

	rec := serve(handler, http.MethodGet, "/api/sessions/"+caller, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got []session.Session
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(got))
	}
}
