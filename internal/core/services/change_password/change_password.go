package changepassword

import (
	"context"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"spendlog/internal/core/services/auth"
	"time"
)

type Input struct {
	CurrentPassword user.RawPassword
	NewPassword     user.RawPassword
	User            user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	Token user.SessionToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	codec          user.SessionTokenCodec
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	codec user.SessionTokenCodec,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if codec == nil {
		panic(e.NewNilArgumentError("codec"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		codec:          codec,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.passwordHasher.ValidatePassword(input.CurrentPassword, input.User.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	changedAt := s.now()
	if err := s.userRepository.SetPassword(ctx, input.User.ID, newPasswordHash, changedAt); err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.codec.IssueToken(input.User.ID, changedAt)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue session token after password change.",
			logging.Entry("userID", input.User.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User password has been changed.", logging.Entry("userID", input.User.ID))
	return Result{Token: token}, nil
}
