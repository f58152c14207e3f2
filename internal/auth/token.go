// Package auth implements the signed-credential codec. Tokens are HS256
// JWTs carrying the user id and role plus issued-at/expiry claims. The
// embedded role identifies the row to re-fetch; it is never used for
// authorization decisions directly.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the validity window stamped into issued tokens.
const DefaultTTL = 24 * time.Hour

var (
	// ErrTokenExpired indicates the token is past its expiry claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed indicates the signature or encoding is invalid.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrMissingSecret indicates the signing secret is absent. This is a
	// configuration error, not a request-time one.
	ErrMissingSecret = errors.New("signing secret is required")
)

// Claims are the identity assertions embedded in a token.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenClaims is the verified identity returned by Verify.
type TokenClaims struct {
	UserID int64
	Role   string
}

// Codec issues and verifies signed credentials.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a Codec for the given secret. An empty secret is a fatal
// configuration error. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token asserting the given user id and role, valid for the
// codec's window starting now.
func (c *Codec) Issue(userID int64, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Role: role,
	})
	return token.SignedString(c.secret)
}

// Verify checks the signature and expiry and returns the embedded claims.
// It performs no I/O.
func (c *Codec) Verify(tokenString string) (*TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	return &TokenClaims{UserID: userID, Role: claims.Role}, nil
}
