package resetpassword

import (
	"context"
	"errors"
	c "spendlog/internal/core/domain/common"
	"spendlog/internal/core/domain/logging"
	uow "spendlog/internal/core/domain/unit_of_work"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL        = c.Email("test@test.test")
	RESET_TOKEN  = user.PasswordResetToken("test-reset-token")
	NEW_PASSWORD = user.RawPassword("new-password")
)

var NOW = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	UserRepository *user.FakeUserRepository
	TokenGenerator *user.FakePasswordResetTokenGenerator
	PasswordHasher *user.FakePasswordHasher
	Codec          *user.FakeSessionTokenCodec
	Service        services.Service[Input, Result]
	User           user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.UserRepository = suite.UnitOfWork.Context.UserRepository
	suite.TokenGenerator = user.NewFakePasswordResetTokenGenerator(string(RESET_TOKEN))
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Codec = user.NewFakeSessionTokenCodec()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.UnitOfWork,
		suite.TokenGenerator,
		suite.PasswordHasher,
		suite.Codec,
		func() time.Time { return NOW },
	)

	passwordHash, err := suite.PasswordHasher.HashPassword(user.RawPassword("old-password"))
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

func TestResetPasswordService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) storeResetToken(expiresAt time.Time) {
	err := suite.UserRepository.SetPasswordResetToken(
		context.Background(),
		suite.User.ID,
		suite.TokenGenerator.HashToken(RESET_TOKEN),
		expiresAt,
	)
	suite.Require().Nil(err)
}

func (suite *testSuite) TestSuccess() {
	suite.storeResetToken(NOW.Add(10 * time.Minute))

	result, err := suite.Service.Run(context.Background(), Input{
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	stored, err := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	assert.Nil(err)
	assert.True(suite.PasswordHasher.ValidatePassword(NEW_PASSWORD, stored.PasswordHash))
	assert.False(stored.PasswordResetTokenHash.IsPresent)
	assert.False(stored.PasswordResetExpiresAt.IsPresent)
	assert.True(stored.PasswordChangedAt.IsPresent)
	assert.Equal(NOW, stored.PasswordChangedAt.Value)

	claims, err := suite.Codec.VerifyToken(result.Token)
	assert.Nil(err)
	assert.Equal(suite.User.ID, claims.UserID)
	// The fresh token must survive the password freshness check.
	assert.False(stored.ChangedPasswordAfter(claims.IssuedAt))
}

func (suite *testSuite) TestExpiredToken() {
	suite.storeResetToken(NOW.Add(-time.Second))

	_, err := suite.Service.Run(context.Background(), Input{
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})

	suite.Require().True(errors.Is(err, user.ErrInvalidPasswordResetToken))
	suite.Require().False(suite.UnitOfWork.Context.WasCommitCalled)
}

func (suite *testSuite) TestUnknownToken() {
	suite.storeResetToken(NOW.Add(10 * time.Minute))

	_, err := suite.Service.Run(context.Background(), Input{
		Token:       user.PasswordResetToken("other-token"),
		NewPassword: NEW_PASSWORD,
	})

	suite.Require().True(errors.Is(err, user.ErrInvalidPasswordResetToken))
}

// An old session token must fail the freshness check after a reset.
func (suite *testSuite) TestResetInvalidatesPreviouslyIssuedTokens() {
	oldToken, err := suite.Codec.IssueToken(suite.User.ID, NOW.Add(-time.Minute))
	suite.Require().Nil(err)
	suite.storeResetToken(NOW.Add(10 * time.Minute))

	_, err = suite.Service.Run(context.Background(), Input{
		Token:       RESET_TOKEN,
		NewPassword: NEW_PASSWORD,
	})
	suite.Require().Nil(err)

	stored, err := suite.UserRepository.GetByID(context.Background(), suite.User.ID)
	suite.Require().Nil(err)
	oldClaims, err := suite.Codec.VerifyToken(oldToken)
	suite.Require().Nil(err)
	suite.Require().True(stored.ChangedPasswordAfter(oldClaims.IssuedAt))
}
