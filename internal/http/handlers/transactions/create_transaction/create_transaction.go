package createtransaction

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	createtransaction "spendlog/internal/core/services/create_transaction"
	"spendlog/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createtransaction.Input, createtransaction.Result]
}

func New(
	service services.Service[createtransaction.Input, createtransaction.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Text   string `json:"text"`
	Amount int64  `json:"amount"`
}

type Result struct {
	Transaction response.Transaction `json:"transaction"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Text, validation.Required, validation.Length(0, 512)),
		validation.Field(&i.Amount, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		createtransaction.Input{
			Text:   input.Text,
			Amount: transaction.Amount(input.Amount),
		},
	)
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

	res := Result{}
	res.Transaction.FromDomainTransaction(result.Transaction)
	response.Render(rw, res, http.StatusCreated)
}
