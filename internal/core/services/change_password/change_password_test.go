package changepassword

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
	CURRENT_PASSWORD = user.RawPassword("current-password")
	NEW_PASSWORD     = user.RawPassword("new-password")
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

	passwordHash, err := suite.PasswordHasher.HashPassword(CURRENT_PASSWORD)
	suite.Require().Nil(err)
	u, err := suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail("test@test.test"),
		PasswordHash: passwordHash,
		Role:         user.RoleUser,
		CreatedAt:    NOW.Add(-time.Hour),
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestChangePasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		CurrentPassword: CURRENT_PASSWORD,
		NewPassword:     NEW_PASSWORD,
		User:            suite.User,
	})

	assert := suite.Require()
	assert.Nil(err)

	stored, err := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, stored.PasswordHash))
	assert.True(stored.PasswordChangedAt.IsPresent)
	assert.Equal(NOW, stored.PasswordChangedAt.Value)

	claims, err := suite.Codec.VerifyToken(result.Token)
	assert.Nil(err)
	assert.Equal(suite.User.ID, claims.UserID)
	assert.False(stored.ChangedPasswordAfter(claims.IssuedAt))
}

func (suite *testSuite) TestWrongCurrentPassword() {
	_, err := suite.Service.Run(context.Background(), Input{
		CurrentPassword: user.RawPassword("wrong-password"),
		NewPassword:     NEW_PASSWORD,
		User:            suite.User,
	})

	suite.Require().True(errors.Is(err, user.ErrInvalidCredentials))

	stored, getErr := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	suite.Require().Nil(getErr)
	suite.Require().True(suite.PasswordHasher.ValidatePassword(CURRENT_PASSWORD, stored.PasswordHash))
}
