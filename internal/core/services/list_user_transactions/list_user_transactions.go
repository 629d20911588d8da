package listusertransactions

import (
	"context"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
)

type Input struct {
	User user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	Transactions []transaction.Transaction
}

type service struct {
	log                   logging.Logger
	transactionRepository transaction.Repository
}

func New(
	log logging.Logger,
	transactionRepository transaction.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if transactionRepository == nil {
		panic(e.NewNilArgumentError("transactionRepository"))
	}
	return &service{
		log:                   log,
		transactionRepository: transactionRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	transactions, err := s.transactionRepository.ListByUser(ctx, input.User.ID)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not list user transactions.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Transactions: transactions}, nil
}
