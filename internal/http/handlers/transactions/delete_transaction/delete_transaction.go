package deletetransaction

import (
	"errors"
	"net/http"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	deletetransaction "spendlog/internal/core/services/delete_transaction"
	"spendlog/internal/http/handlers/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service services.Service[deletetransaction.Input, deletetransaction.Result]
}

func New(
	service services.Service[deletetransaction.Input, deletetransaction.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rawID := chi.URLParam(r, "transactionID")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid transaction ID", http.StatusBadRequest)
		return
	}

	_, err = h.service.Run(
		r.Context(),
		deletetransaction.Input{TransactionID: transaction.ID(id)},
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidSessionToken),
			errors.Is(err, user.ErrStaleSessionToken),
			errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		case errors.Is(err, user.ErrPermissionDenied):
			response.RenderForbidden(rw)
		case errors.Is(err, transaction.ErrTransactionDoesNotExist):
			response.RenderNotFound(rw, "transaction does not exist")
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	rw.WriteHeader(http.StatusNoContent)
}
