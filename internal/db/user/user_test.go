package user

import (
	"context"
	"errors"
	c "spendlog/internal/core/domain/common"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
	TOKEN_HASH    = "test-reset-token-hash"
)

var NOW time.Time = time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser() user.User {
	u, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	return u
}

func (suite *testSuite) TestCreateSuccess() {
	u := suite.createUser()

	assert := suite.Require()
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(c.Email(EMAIL), u.Email)
	assert.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	assert.Equal(user.RoleUser, u.Role)
	assert.True(NOW.Equal(u.CreatedAt))
	assert.False(u.PasswordChangedAt.IsPresent)
	assert.False(u.PasswordResetTokenHash.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	suite.createUser()

	_, err := suite.repo.Create(context.Background(), user.CreateUserInput{
		Email:        c.Email(EMAIL),
		PasswordHash: user.PasswordHash("another-hash"),
		Role:         user.RoleUser,
		CreatedAt:    NOW,
	})

	suite.Require().True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByID() {
	created := suite.createUser()

	u, err := suite.repo.GetByID(context.Background(), created.ID)

	suite.Require().Nil(err)
	suite.Require().Equal(created.ID, u.ID)
	suite.Require().Equal(created.Email, u.Email)
}

func (suite *testSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(context.Background(), user.ID(111111))

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestGetByEmail() {
	created := suite.createUser()

	u, err := suite.repo.GetByEmail(context.Background(), c.Email(EMAIL))

	suite.Require().Nil(err)
	suite.Require().Equal(created.ID, u.ID)
}

func (suite *testSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail(context.Background(), c.Email("unknown@test.test"))

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetPassword() {
	created := suite.createUser()

	err := suite.repo.SetPassword(
		context.Background(),
		created.ID,
		user.PasswordHash("new-hash"),
		NOW.Add(time.Hour),
	)

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
	assert.True(u.PasswordChangedAt.IsPresent)
	assert.True(NOW.Add(time.Hour).Equal(u.PasswordChangedAt.Value))
}

func (suite *testSuite) TestSetPasswordUserDoesNotExist() {
	err := suite.repo.SetPassword(
		context.Background(),
		user.ID(111111),
		user.PasswordHash("new-hash"),
		NOW,
	)

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestSetAndGetByPasswordResetTokenHash() {
	created := suite.createUser()
	expiresAt := NOW.Add(10 * time.Minute)

	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetTokenHash(TOKEN_HASH),
		expiresAt,
	)
	suite.Require().Nil(err)

	u, err := suite.repo.GetByPasswordResetTokenHash(
		context.Background(),
		user.PasswordResetTokenHash(TOKEN_HASH),
		NOW,
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.True(u.PasswordResetTokenHash.IsPresent)
	assert.True(expiresAt.Equal(u.PasswordResetExpiresAt.Value))
}

func (suite *testSuite) TestGetByPasswordResetTokenHashExpired() {
	created := suite.createUser()
	expiresAt := NOW.Add(10 * time.Minute)

	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetTokenHash(TOKEN_HASH),
		expiresAt,
	)
	suite.Require().Nil(err)

	_, err = suite.repo.GetByPasswordResetTokenHash(
		context.Background(),
		user.PasswordResetTokenHash(TOKEN_HASH),
		expiresAt,
	)

	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestClearPasswordResetToken() {
	created := suite.createUser()

	err := suite.repo.SetPasswordResetToken(
		context.Background(),
		created.ID,
		user.PasswordResetTokenHash(TOKEN_HASH),
		NOW.Add(10*time.Minute),
	)
	suite.Require().Nil(err)

	err = suite.repo.ClearPasswordResetToken(context.Background(), created.ID)

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByID(context.Background(), created.ID)
	assert.Nil(err)
	assert.False(u.PasswordResetTokenHash.IsPresent)
	assert.False(u.PasswordResetExpiresAt.IsPresent)
}
