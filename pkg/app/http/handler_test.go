package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
)

type endRequest struct {
	SessionID int64 `json:"sessionId" validate:"required,gt=0"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleError_ServiceError(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return apperrors.ConflictError(nil, "User already has an active session")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/api/sessions/start", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeError(t, rec)
	assert.Equal(t, "User already has an active session", body.ErrMsg)
	assert.Equal(t, http.StatusConflict, body.ErrMsgCode)
}

func TestHandleError_HidesUnknownErrors(t *testing.T) {
	h := HandleError(func(http.ResponseWriter, *http.Request) error {
		return errors.New("pq: connection reset")
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unexpected Service Error", decodeError(t, rec).ErrMsg)
}

func TestDecodeJSON(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"valid", `{"sessionId":4}`, ""},
		{"malformed", `{"sessionId":`, "invalid JSON"},
		{"missing field", `{}`, "invalid SessionID: failed required"},
		{"out of range", `{"sessionId":-1}`, "invalid SessionID: failed gt"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req endRequest
			r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			err := DecodeJSON(r, &req)
			if tc.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, int64(4), req.SessionID)
				return
			}
			var svcErr *apperrors.ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, apperrors.CategoryDataError, svcErr.Category)
			assert.Equal(t, tc.wantErr, svcErr.Message)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("0x52908400098527886e0f7030069857d2e4169ee7", "eth_addr", "invalid address"))

	err := ValidateVar("nope", "eth_addr", "invalid address")
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}
