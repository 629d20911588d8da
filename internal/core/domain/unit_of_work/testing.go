package uow

import (
	"context"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
)

type FakeUnitOfWorkContext struct {
	UserRepository        *user.FakeUserRepository
	TransactionRepository *transaction.FakeRepository
	WasRollbackCalled     bool
	WasCommitCalled       bool
}

func NewFakeUnitOfWorkContext(
	userRepository *user.FakeUserRepository,
	transactionRepository *transaction.FakeRepository,
) *FakeUnitOfWorkContext {
	return &FakeUnitOfWorkContext{
		UserRepository:        userRepository,
		TransactionRepository: transactionRepository,
	}
}

func (c *FakeUnitOfWorkContext) Rollback(ctx context.Context) error {
	c.WasRollbackCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Commit(ctx context.Context) error {
	c.WasCommitCalled = true
	return nil
}

func (c *FakeUnitOfWorkContext) Users() user.UserRepository {
	return c.UserRepository
}

func (c *FakeUnitOfWorkContext) Transactions() transaction.Repository {
	return c.TransactionRepository
}

type FakeUnitOfWork struct {
	Context *FakeUnitOfWorkContext
}

func NewFakeUnitOfWork() *FakeUnitOfWork {
	return &FakeUnitOfWork{
		Context: NewFakeUnitOfWorkContext(
			user.NewFakeUserRepository(),
			transaction.NewFakeRepository(),
		),
	}
}

func (u *FakeUnitOfWork) Begin(ctx context.Context) (Context, error) {
	return u.Context, nil
}
