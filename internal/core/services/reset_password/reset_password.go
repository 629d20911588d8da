package resetpassword

import (
	"context"
	"errors"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	uow "spendlog/internal/core/domain/unit_of_work"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"time"
)

type Input struct {
	Token       user.PasswordResetToken
	NewPassword user.RawPassword
}

type Result struct {
	Token user.SessionToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	unitOfWork     uow.UnitOfWork
	tokenGenerator user.PasswordResetTokenGenerator
	passwordHasher user.PasswordHasher
	codec          user.SessionTokenCodec
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	unitOfWork uow.UnitOfWork,
	tokenGenerator user.PasswordResetTokenGenerator,
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
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
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
		unitOfWork:     unitOfWork,
		tokenGenerator: tokenGenerator,
		passwordHasher: passwordHasher,
		codec:          codec,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	// The presented secret is never compared directly; only its hash is
	// looked up, together with an unexpired window.
	hash := s.tokenGenerator.HashToken(input.Token)
	u, err := s.userRepository.GetByPasswordResetTokenHash(ctx, hash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrInvalidPasswordResetToken
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user by password reset token.", logging.Entry("err", err))
		return result, err
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	changedAt := s.now()
	uow, err := s.unitOfWork.Begin(ctx)
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, err
	}
	defer uow.Rollback(ctx)

	if err := uow.Users().SetPassword(ctx, u.ID, newPasswordHash, changedAt); err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err := uow.Users().ClearPasswordResetToken(ctx, u.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not clear password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if err := uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, err
	}

	token, err := s.codec.IssueToken(u.ID, changedAt)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue session token after password reset.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New password has been successfully set.", logging.Entry("userID", u.ID))
	return Result{Token: token}, nil
}
