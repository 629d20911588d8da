package loginwithemail

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
	EMAIL        = c.Email("test@test.test")
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Codec          *user.FakeSessionTokenCodec
	Service        services.Service[Input, Result]
	User           user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Codec = user.NewFakeSessionTokenCodec()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		suite.Codec,
		func() time.Time { return NOW },
	)

	passwordHash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: passwordHash,
		Role:         user.RoleUser,
		CreatedAt:    NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	claims, err := suite.Codec.VerifyToken(result.Token)
	assert.Nil(err)
	assert.Equal(suite.User.ID, claims.UserID)
	assert.Equal(NOW, claims.IssuedAt)
}

func (suite *testSuite) TestUnknownEmail() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: c.Email("unknown@test.test"), Password: RAW_PASSWORD},
	)

	suite.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestWrongPassword() {
	_, err := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong-password")},
	)

	suite.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

// Unknown email and wrong password must be indistinguishable to the caller.
func (suite *testSuite) TestErrorsDoNotDistinguishUnknownEmailFromWrongPassword() {
	_, errUnknownEmail := suite.Service.Run(
		context.Background(),
		Input{Email: c.Email("unknown@test.test"), Password: RAW_PASSWORD},
	)
	_, errWrongPassword := suite.Service.Run(
		context.Background(),
		Input{Email: EMAIL, Password: user.RawPassword("wrong-password")},
	)

	suite.Require().Equal(errUnknownEmail, errWrongPassword)
}
