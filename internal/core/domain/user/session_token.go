package user

import "time"

// SessionToken is a stateless signed credential; the server keeps no session
// table and a token is valid until it expires or the password changes.
type SessionToken string

type SessionTokenClaims struct {
	UserID   ID
	IssuedAt time.Time
}

type SessionTokenCodec interface {
	IssueToken(userID ID, issuedAt time.Time) (SessionToken, error)
	// VerifyToken fails with ErrInvalidSessionToken for malformed, forged and
	// expired tokens alike.
	VerifyToken(token SessionToken) (SessionTokenClaims, error)
}
