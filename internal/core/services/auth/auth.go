package auth

import (
	"context"
	"errors"
	e "spendlog/internal/core/domain/errors"
	"spendlog/internal/core/domain/logging"
	"spendlog/internal/core/domain/user"
	"spendlog/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	log            logging.Logger
	codec          user.SessionTokenCodec
	userRepository user.UserRepository
	inner          services.Service[T, S]
}

// WithAuthentication wraps a service with the ordered authentication checks:
// a bearer token must be present in the context, it must verify, its subject
// must still exist, and it must have been issued after the user's last
// password change. The resolved user is attached to the inner service input.
func WithAuthentication[T Input, S any](
	log logging.Logger,
	codec user.SessionTokenCodec,
	userRepository user.UserRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if codec == nil {
		panic(e.NewNilArgumentError("codec"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		log:            log,
		codec:          codec,
		userRepository: userRepository,
		inner:          inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	if !ok {
		return result, user.ErrInvalidSessionToken
	}
	claims, err := s.codec.VerifyToken(authToken)
	if err != nil {
		return result, user.ErrInvalidSessionToken
	}
	u, err := s.userRepository.GetByID(ctx, claims.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, user.ErrUserDoesNotExist
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not load user for session token.",
			logging.Entry("userID", claims.UserID),
			logging.Entry("err", err),
		)
		return result, err
	}
	if u.ChangedPasswordAfter(claims.IssuedAt) {
		return result, user.ErrStaleSessionToken
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}

type AuthenticatedInput interface {
	AuthenticatedUser() user.User
}

type roleRestricted[T AuthenticatedInput, S any] struct {
	allowedRoles []user.Role
	inner        services.Service[T, S]
}

// WithRoleRestriction fails with ErrPermissionDenied unless the already
// authenticated user's role is one of allowedRoles. It must be layered inside
// WithAuthentication so the input carries the resolved user.
func WithRoleRestriction[T AuthenticatedInput, S any](
	allowedRoles []user.Role,
	inner services.Service[T, S],
) services.Service[T, S] {
	if len(allowedRoles) == 0 {
		panic(e.NewInvalidStateError("allowedRoles must not be empty"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &roleRestricted[T, S]{allowedRoles: allowedRoles, inner: inner}
}

func (s *roleRestricted[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	role := input.AuthenticatedUser().Role
	for _, allowed := range s.allowedRoles {
		if role == allowed {
			return s.inner.Run(ctx, input)
		}
	}
	return result, user.ErrPermissionDenied
}
