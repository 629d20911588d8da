package sendpasswordresettoken

import (
	"context"
	"errors"
	c "spendlog/internal/core/domain/common"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL       = c.Email("test@test.test")
	RESET_TOKEN = "test-reset-token"
)

var NOW = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

const VALID_DURATION = 10 * time.Minute

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	TokenGenerator *user.FakePasswordResetTokenGenerator
	TokenSender    *user.FakePasswordResetTokenSender
	Service        services.Service[Input, Result]
	User           user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.TokenGenerator = user.NewFakePasswordResetTokenGenerator(RESET_TOKEN)
	suite.TokenSender = user.NewFakePasswordResetTokenSender()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.TokenGenerator,
		suite.TokenSender,
		VALID_DURATION,
		func() time.Time { return NOW },
	)

	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: user.PasswordHash("test"),
		Role:         user.RoleUser,
		CreatedAt:    NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestSendPasswordResetTokenService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(user.PasswordResetToken(RESET_TOKEN), result.Token)
	assert.Equal(1, suite.TokenSender.SentCount())
	assert.Equal(suite.User.ID, suite.TokenSender.LastSentTo().ID)

	stored, err := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	assert.Nil(err)
	assert.True(stored.PasswordResetTokenHash.IsPresent)
	assert.Equal(
		suite.TokenGenerator.HashToken(user.PasswordResetToken(RESET_TOKEN)),
		stored.PasswordResetTokenHash.Value,
	)
	assert.True(stored.PasswordResetExpiresAt.IsPresent)
	assert.Equal(NOW.Add(VALID_DURATION), stored.PasswordResetExpiresAt.Value)
}

func (suite *testSuite) TestUserDoesNotExist() {
	_, err := suite.Service.Run(context.Background(), Input{Email: c.Email("unknown@test.test")})

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
	suite.Require().Equal(0, suite.TokenSender.SentCount())
}

func (suite *testSuite) TestSendFailureClearsPendingToken() {
	suite.TokenSender.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL})

	assert := suite.Require()
	assert.NotNil(err)
	stored, getErr := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	assert.Nil(getErr)
	assert.False(stored.PasswordResetTokenHash.IsPresent)
	assert.False(stored.PasswordResetExpiresAt.IsPresent)
}
