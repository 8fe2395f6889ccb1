package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/session"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the session endpoints. Lifecycle changes require an
// authenticated wallet; history lookups are public.
func RegisterRoutes(r chi.Router, service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/sessions/active/{address}", apphttp.HandleError(h.active))
	r.Get("/api/sessions/{address}", apphttp.HandleError(h.history))

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/sessions/start", apphttp.HandleError(h.start))
		r.Post("/api/sessions/settle", apphttp.HandleError(h.settle))
		r.Post("/api/sessions/end", apphttp.HandleError(h.end))
	})
}

func (h *HTTP) start(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req session.StartRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	sess, err := h.service.StartSession(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, sess)
	return nil
}

func (h *HTTP) settle(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req session.SettleRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.ClaimedCost != nil && req.ClaimedCost.IsNegative() {
		return apperrors.BadRequestError(nil, "invalid ClaimedCost: failed min")
	}
	res, err := h.service.SettleSession(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) end(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFrom(r)
	if err != nil {
		return err
	}
	var req session.EndRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	sess, err := h.service.EndSession(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, sess)
	return nil
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	sessions, err := h.service.ListSessionsByUser(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, sessions)
	return nil
}

// active writes null when the wallet has no active session.
func (h *HTTP) active(w http.ResponseWriter, r *http.Request) error {
	sess, err := h.service.GetActiveSessionByUser(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, sess)
	return nil
}

func callerFrom(r *http.Request) (string, error) {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	return caller, nil
}
