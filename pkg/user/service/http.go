package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/ShahiTechnovation/X4PN/pkg/app/errors"
	apphttp "github.com/ShahiTechnovation/X4PN/pkg/app/http"
	"github.com/ShahiTechnovation/X4PN/pkg/auth"
	"github.com/ShahiTechnovation/X4PN/pkg/user"
)

const maxTransactionLimit = 500

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the ledger endpoints. Deposits, withdrawals and the
// transaction list require authentication.
func RegisterRoutes(r chi.Router, service Service, authMiddleware func(http.Handler) http.Handler, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/api/users/{address}", apphttp.HandleError(h.getUser))

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/api/deposits", apphttp.HandleError(h.deposit))
		r.Post("/api/withdrawals", apphttp.HandleError(h.withdraw))
		r.Get("/api/transactions", apphttp.HandleError(h.listTransactions))
	})
}

func (h *HTTP) getUser(w http.ResponseWriter, r *http.Request) error {
	usr, err := h.service.GetOrCreate(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, usr)
	return nil
}

func (h *HTTP) deposit(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	var req user.DepositRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	resp, err := h.service.Deposit(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) withdraw(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	var req user.WithdrawRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	resp, err := h.service.Withdraw(r.Context(), caller, &req)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) listTransactions(w http.ResponseWriter, r *http.Request) error {
	caller, ok := auth.EVMAddressFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Not authenticated")
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxTransactionLimit {
			return apperrors.BadRequestError(err, "limit must be between 1 and 500")
		}
		limit = n
	}
	txs, err := h.service.ListTransactions(r.Context(), caller, limit)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, txs)
	return nil
}
