package transaction

import (
	"context"
	"spendlog/internal/core/domain/user"
	"time"
)

type CreateInput struct {
	CreatedBy user.ID
	Text      string
	Amount    Amount
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Transaction, error)
	GetByID(ctx context.Context, id ID) (Transaction, error)
	// ListByUser returns the user's transactions ordered by creation time,
	// newest first.
	ListByUser(ctx context.Context, userID user.ID) ([]Transaction, error)
	Delete(ctx context.Context, id ID) error
}
