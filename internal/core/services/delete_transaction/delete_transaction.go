package deletetransaction

import (
	"context"
	"errors"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
)

type Input struct {
	TransactionID transaction.ID
	User          user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct{}

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
	err = s.transactionRepository.Delete(ctx, input.TransactionID)
	if errors.Is(err, transaction.ErrTransactionDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete transaction.",
			logging.Entry("transactionID", input.TransactionID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Transaction has been deleted.",
		logging.Entry("transactionID", input.TransactionID),
		logging.Entry("deletedBy", input.User.ID),
	)
	return result, nil
}
