package user

import (
	"context"
	c "spendlog/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	Role         Role
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	// GetByPasswordResetTokenHash returns the user holding the given reset
	// token hash with an expiry strictly after now.
	GetByPasswordResetTokenHash(ctx context.Context, hash PasswordResetTokenHash, now time.Time) (User, error)
	// SetPassword updates the password hash and records changedAt as the
	// moment of the change.
	SetPassword(ctx context.Context, id ID, password PasswordHash, changedAt time.Time) error
	// SetPasswordResetToken stores the reset token hash and its expiry in a
	// single write.
	SetPasswordResetToken(ctx context.Context, id ID, hash PasswordResetTokenHash, expiresAt time.Time) error
	// ClearPasswordResetToken removes both reset fields in a single write.
	ClearPasswordResetToken(ctx context.Context, id ID) error
}
