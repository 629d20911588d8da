package uow

import (
	"context"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Transactions() transaction.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
