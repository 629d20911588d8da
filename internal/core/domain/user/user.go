package user

import (
	"fmt"
	c "spendlog/internal/core/domain/common"
	e "spendlog/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID                     ID
	Email                  c.Email
	PasswordHash           PasswordHash
	Role                   Role
	CreatedAt              time.Time
	PasswordChangedAt      c.Optional[time.Time]
	PasswordResetTokenHash c.Optional[PasswordResetTokenHash]
	PasswordResetExpiresAt c.Optional[time.Time]
}

func (u *User) Validate() error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	if !u.Role.IsValid() {
		return e.NewInvalidStateError(fmt.Sprintf("invalid role %q for user %d", u.Role, u.ID))
	}
	if u.PasswordResetTokenHash.IsPresent != u.PasswordResetExpiresAt.IsPresent {
		return e.NewInvalidStateError(
			fmt.Sprintf("password reset token hash and expiry must be set together for user %d", u.ID),
		)
	}
	return nil
}

// ChangedPasswordAfter reports whether the password was changed after the
// given moment. Comparison is truncated to whole seconds because JWT issue
// times carry second precision only.
func (u *User) ChangedPasswordAfter(t time.Time) bool {
	if !u.PasswordChangedAt.IsPresent {
		return false
	}
	return u.PasswordChangedAt.Value.Unix() > t.Unix()
}
