package createtransaction

import (
	"context"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/transaction"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER_ID = user.ID(42)
	TEXT    = "groceries"
	AMOUNT  = transaction.Amount(-2550)
)

var NOW = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger                *logging.FakeLogger
	TransactionRepository *transaction.FakeRepository
	Service               services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.TransactionRepository = transaction.NewFakeRepository()
	suite.Service = New(
		suite.Logger,
		suite.TransactionRepository,
		func() time.Time { return NOW },
	)
}

func TestCreateTransactionService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		Text:   TEXT,
		Amount: AMOUNT,
		User:   user.User{ID: USER_ID},
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(TEXT, result.Transaction.Text)
	assert.Equal(AMOUNT, result.Transaction.Amount)
	assert.Equal(USER_ID, result.Transaction.CreatedBy)
	assert.Equal(NOW, result.Transaction.CreatedAt)

	stored, err := suite.TransactionRepository.GetByID(
		context.Background(),
		result.Transaction.ID,
	)
	assert.Nil(err)
	assert.Equal(result.Transaction, stored)
}

func (suite *testSuite) TestRepositoryError() {
	suite.TransactionRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{
		Text:   TEXT,
		Amount: AMOUNT,
		User:   user.User{ID: USER_ID},
	})

	suite.Require().NotNil(err)
	suite.Require().Equal(0, len(suite.TransactionRepository.Transactions))
}
