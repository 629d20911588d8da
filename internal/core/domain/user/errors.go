package user

import (
	"errors"
)

var (
	ErrEmailAlreadyExists        = errors.New("email already exists")
	ErrUserDoesNotExist          = errors.New("user does not exist")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidSessionToken       = errors.New("invalid session token")
	ErrStaleSessionToken         = errors.New("session token issued before last password change")
	ErrInvalidPasswordResetToken = errors.New("password reset token is invalid or has expired")
	ErrPermissionDenied          = errors.New("permission denied")
)
