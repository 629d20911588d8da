package createtransaction

import (
	"context"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
	"time"
)

type Input struct {
	Text   string
	Amount transaction.Amount
	User   user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	Transaction transaction.Transaction
}

type service struct {
	log                   logging.Logger
	transactionRepository transaction.Repository
	now                   func() time.Time
}

func New(
	log logging.Logger,
	transactionRepository transaction.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if transactionRepository == nil {
		panic(e.NewNilArgumentError("transactionRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                   log,
		transactionRepository: transactionRepository,
		now:                   now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	t, err := s.transactionRepository.Create(ctx, transaction.CreateInput{
		CreatedBy: input.User.ID,
		Text:      input.Text,
		Amount:    input.Amount,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create transaction.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"New transaction has been created.",
		logging.Entry("transactionID", t.ID),
		logging.Entry("userID", input.User.ID),
	)
	return Result{Transaction: t}, nil
}
