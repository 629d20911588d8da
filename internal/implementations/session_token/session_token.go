package sessiontoken

import (
	"fmt"
	"spendlog/internal/core/domain/user"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTCodec struct {
	signingKey []byte
	tokenTTL   time.Duration
}

func NewJWTCodec(signingKey []byte, tokenTTL time.Duration) *JWTCodec {
	return &JWTCodec{signingKey: signingKey, tokenTTL: tokenTTL}
}

func (c *JWTCodec) IssueToken(userID user.ID, issuedAt time.Time) (user.SessionToken, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(c.tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return user.SessionToken(""), err
	}
	return user.SessionToken(signed), nil
}

func (c *JWTCodec) VerifyToken(token user.SessionToken) (claims user.SessionTokenClaims, err error) {
	parsed, err := jwt.ParseWithClaims(
		string(token),
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return c.signingKey, nil
		},
	)
	if err != nil || !parsed.Valid {
		return claims, user.ErrInvalidSessionToken
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.IssuedAt == nil {
		return claims, user.ErrInvalidSessionToken
	}
	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil {
		return claims, user.ErrInvalidSessionToken
	}
	return user.SessionTokenClaims{
		UserID:   user.ID(userID),
		IssuedAt: registered.IssuedAt.Time,
	}, nil
}
