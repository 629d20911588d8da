package listtransactions

import (
	"errors"
	"net/http"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	service "spendlog/internal/core/services/list_user_transactions"
	"spendlog/internal/http/handlers/response"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Transactions []response.Transaction `json:"transactions"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(r.Context(), service.Input{})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidSessionToken),
			errors.Is(err, user.ErrStaleSessionToken),
			errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderUnauthorized(rw)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	response.Render(
		rw,
		Result{Transactions: response.TransactionsFromDomain(result.Transactions)},
		http.StatusOK,
	)
}
