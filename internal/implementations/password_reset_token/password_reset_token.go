package passwordresettoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"spendlog/internal/core/domain/user"
)

const TOKEN_BYTE_COUNT = 32

// Generator creates one-time password reset secrets. The raw token is sent
// to the user, only its SHA-256 digest is stored.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() (user.PasswordResetToken, error) {
	b := make([]byte, TOKEN_BYTE_COUNT)
	if _, err := rand.Read(b); err != nil {
		return user.PasswordResetToken(""), err
	}
	return user.PasswordResetToken(hex.EncodeToString(b)), nil
}

func (g *Generator) HashToken(token user.PasswordResetToken) user.PasswordResetTokenHash {
	digest := sha256.Sum256([]byte(token))
	return user.PasswordResetTokenHash(hex.EncodeToString(digest[:]))
}
