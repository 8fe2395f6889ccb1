package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes mounts the public login endpoints on r and the
// authenticated ones behind authMiddleware.
func RegisterRoutes(r chi.Router, service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Get("/nonce/{address}", apphttp.HandleError(h.nonce))
		r.Post("/login", apphttp.HandleError(h.login))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", apphttp.HandleError(h.logout))
			r.Get("/me", apphttp.HandleError(h.me))
		})
	})
}

func (h *HTTP) nonce(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.IssueNonce(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	var req auth.LoginRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) logout(w http.ResponseWriter, r *http.Request) error {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	if err := h.service.Logout(r.Context(), claims); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
	return nil
}

func (h *HTTP) me(w http.ResponseWriter, r *http.Request) error {
	address, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	usr, err := h.service.Me(r.Context(), address)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, usr)
	return nil
}
