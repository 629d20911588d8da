package sendpasswordresettoken

import (
	"context"
	"errors"
	c "spendlog/internal/core/domain/common"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
	"time"
)

type Input struct {
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

type Result struct {
	Token user.PasswordResetToken
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	tokenGenerator user.PasswordResetTokenGenerator
	tokenSender    user.PasswordResetTokenSender
	validDuration  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenGenerator user.PasswordResetTokenGenerator,
	tokenSender user.PasswordResetTokenSender,
	validDuration time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		tokenGenerator: tokenGenerator,
		tokenSender:    tokenSender,
		validDuration:  validDuration,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(ctx, "User not found for password reset.", logging.Entry("email", input.Email))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.tokenGenerator.GenerateToken()
	if err != nil {
		s.log.Error(ctx, "Could not generate password reset token.", logging.Entry("err", err))
		return result, err
	}

	// Hash and expiry are persisted as one write; the plaintext token exists
	// only in this request and in the outgoing email.
	err = s.userRepository.SetPasswordResetToken(
		ctx,
		u.ID,
		s.tokenGenerator.HashToken(token),
		s.now().Add(s.validDuration),
	)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not store password reset token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.tokenSender.SendPasswordResetToken(ctx, u, token); err != nil {
		s.log.Error(
			ctx,
			"Could not send password reset token, clearing pending token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		// Delivery failed, so the stored hash can never be redeemed; treat
		// the reset attempt as never happened.
		if clearErr := s.userRepository.ClearPasswordResetToken(ctx, u.ID); clearErr != nil {
			s.log.Error(
				ctx,
				"Could not clear pending password reset token.",
				logging.Entry("userID", u.ID),
				logging.Entry("err", clearErr),
			)
		}
		return result, err
	}

	s.log.Info(ctx, "Password reset token has been sent.", logging.Entry("userID", u.ID))
	return Result{Token: token}, nil
}
