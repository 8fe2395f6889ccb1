package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/node"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers node discovery, registration and update endpoints
// plus the network stats endpoint.
func RegisterRoutes(r chi.Router, service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/stats", apphttp.HandleError(h.stats))

	r.Get("/api/nodes", apphttp.HandleError(h.list))
	r.Get("/api/nodes/operator/{address}", apphttp.HandleError(h.listByOperator))
	r.Get("/api/nodes/{id}", apphttp.HandleError(h.get))

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/nodes/register", apphttp.HandleError(h.register))
		r.Patch("/api/nodes/{id}", apphttp.HandleError(h.update))
	})
}

// ParseNodeID reads the {id} path parameter.
func ParseNodeID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequestError(err, "Invalid node id")
	}
	return id, nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	activeOnly := false
	if raw := r.URL.Query().Get("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return apperrors.BadRequestError(err, "active must be a boolean")
		}
		activeOnly = v
	}
	nodes, err := h.service.ListNodes(r.Context(), activeOnly)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, nodes)
	return nil
}

func (h *HTTP) listByOperator(w http.ResponseWriter, r *http.Request) error {
	nodes, err := h.service.ListByOperator(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, nodes)
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	id, err := ParseNodeID(r)
	if err != nil {
		return err
	}
	n, err := h.service.GetNode(r.Context(), id)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, n)
	return nil
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	var req node.RegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	n, err := h.service.Register(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, n)
	return nil
}

func (h *HTTP) update(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	id, err := ParseNodeID(r)
	if err != nil {
		return err
	}
	var req node.UpdateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	n, err := h.service.Update(r.Context(), caller, id, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, n)
	return nil
}

func (h *HTTP) stats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, stats)
	return nil
}
