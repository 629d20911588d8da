package user

import "context"

// PasswordResetToken is the one-time secret delivered to the user out-of-band.
// Only its hash is ever persisted.
type PasswordResetToken string

func (t PasswordResetToken) String() string {
	return "***"
}

type PasswordResetTokenHash string

type PasswordResetTokenGenerator interface {
	GenerateToken() (PasswordResetToken, error)
	HashToken(token PasswordResetToken) PasswordResetTokenHash
}

type PasswordResetTokenSender interface {
	SendPasswordResetToken(ctx context.Context, u User, token PasswordResetToken) error
}
