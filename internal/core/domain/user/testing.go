package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	c "spendlog/internal/core/domain/common"
	"strconv"
	"strings"
	"sync"
	"time"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
		Role:         input.Role,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by id %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.ID == id {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByPasswordResetTokenHash(
	ctx context.Context,
	hash PasswordResetTokenHash,
	now time.Time,
) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by password reset token hash")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.PasswordResetTokenHash.IsPresent &&
			existing.PasswordResetTokenHash.Value == hash &&
			existing.PasswordResetExpiresAt.IsPresent &&
			existing.PasswordResetExpiresAt.Value.After(now) {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(
	ctx context.Context,
	id ID,
	password PasswordHash,
	changedAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].PasswordHash = password
			r.Users[ix].PasswordChangedAt = c.NewOptional(changedAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPasswordResetToken(
	ctx context.Context,
	id ID,
	hash PasswordResetTokenHash,
	expiresAt time.Time,
) error {
	if r.ReturnError {
		return fmt.Errorf("could not set password reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].PasswordResetTokenHash = c.NewOptional(hash, true)
			r.Users[ix].PasswordResetExpiresAt = c.NewOptional(expiresAt, true)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) ClearPasswordResetToken(ctx context.Context, id ID) error {
	if r.ReturnError {
		return fmt.Errorf("could not clear password reset token for user %d", id)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Users {
		if r.Users[ix].ID == id {
			r.Users[ix].PasswordResetTokenHash = c.Optional[PasswordResetTokenHash]{}
			r.Users[ix].PasswordResetExpiresAt = c.Optional[time.Time]{}
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

// FakeSessionTokenCodec issues transparent tokens of form "token::<id>::<iat>".
type FakeSessionTokenCodec struct{}

func NewFakeSessionTokenCodec() *FakeSessionTokenCodec {
	return &FakeSessionTokenCodec{}
}

func (c *FakeSessionTokenCodec) IssueToken(userID ID, issuedAt time.Time) (SessionToken, error) {
	return SessionToken(fmt.Sprintf("token::%d::%d", userID, issuedAt.Unix())), nil
}

func (c *FakeSessionTokenCodec) VerifyToken(token SessionToken) (claims SessionTokenClaims, err error) {
	parts := strings.Split(string(token), "::")
	if len(parts) != 3 || parts[0] != "token" {
		return claims, ErrInvalidSessionToken
	}
	userID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return claims, ErrInvalidSessionToken
	}
	issuedAt, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return claims, ErrInvalidSessionToken
	}
	return SessionTokenClaims{UserID: ID(userID), IssuedAt: time.Unix(issuedAt, 0).UTC()}, nil
}

type FakePasswordResetTokenGenerator struct {
	Token PasswordResetToken
}

func NewFakePasswordResetTokenGenerator(token string) *FakePasswordResetTokenGenerator {
	return &FakePasswordResetTokenGenerator{Token: PasswordResetToken(token)}
}

func (g *FakePasswordResetTokenGenerator) GenerateToken() (PasswordResetToken, error) {
	return g.Token, nil
}

func (g *FakePasswordResetTokenGenerator) HashToken(token PasswordResetToken) PasswordResetTokenHash {
	return PasswordResetTokenHash("hash::" + string(token))
}

type FakePasswordResetTokenSender struct {
	Sent        []User
	SentTokens  []PasswordResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	u User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token for user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, u)
	s.SentTokens = append(s.SentTokens, token)
	return nil
}

func (s *FakePasswordResetTokenSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakePasswordResetTokenSender) LastSentTo() User {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
