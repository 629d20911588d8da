package deletetransaction

import (
	"context"
	"errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const ADMIN_ID = user.ID(1)

var NOW = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger                *logging.FakeLogger
	TransactionRepository *transaction.FakeRepository
	Service               services.Service[Input, Result]
	Transaction           transaction.Transaction
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.TransactionRepository = transaction.NewFakeRepository()
	suite.Service = New(suite.Logger, suite.TransactionRepository)

	t, err := suite.TransactionRepository.Create(context.Background(), transaction.CreateInput{
		CreatedBy: user.ID(42),
		Text:      "groceries",
		Amount:    transaction.Amount(-2550),
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
	suite.Transaction = t
}

func TestDeleteTransactionService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	_, err := suite.Service.Run(context.Background(), Input{
		TransactionID: suite.Transaction.ID,
		User:          user.User{ID: ADMIN_ID, Role: user.RoleAdmin},
	})

	assert := suite.Require()
	assert.Nil(err)

	_, err = suite.TransactionRepository.GetByID(context.Background(), suite.Transaction.ID)
	assert.True(errors.Is(err, transaction.ErrTransactionDoesNotExist))
}

func (suite *testSuite) TestTransactionDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{
		TransactionID: suite.Transaction.ID + 1,
		User:          user.User{ID: ADMIN_ID, Role: user.RoleAdmin},
	})

	suite.Require().True(errors.Is(err, transaction.ErrTransactionDoesNotExist))
	suite.Require().Equal(1, len(suite.TransactionRepository.Transactions))
}
