// Package auth issues and verifies anonymous client tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is written into every token.
const Issuer = "zodiac"

// Claims identify an anonymous client. The client id is the subject.
type Claims struct {
	jwt.RegisteredClaims
}

// ClientID returns the token subject.
func (c Claims) ClientID() string { return c.Subject }

// JWT signs HS256 tokens.
type JWT struct {
	Secret   []byte
	TokenTTL time.Duration
}

// Issue creates a new client id and a token for it.
func (j JWT) Issue() (clientID, token string, expiresAt time.Time, err error) {
	clientID = uuid.NewString()
	token, expiresAt, err = j.Sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: clientID}})
	return clientID, token, expiresAt, err
}

func (j JWT) Sign(claims Claims) (token string, expiresAt time.Time, err error) {
	now := time.Now().UTC()
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.NotBefore == nil {
		claims.NotBefore = jwt.NewNumericDate(now.Add(-5 * time.Second))
	}
	if claims.ExpiresAt == nil {
		expiresAt = now.Add(j.TokenTTL)
		claims.ExpiresAt = jwt.NewNumericDate(expiresAt)
	} else {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.Issuer == "" {
		claims.Issuer = Issuer
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(j.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s, expiresAt, nil
}

func (j JWT) Verify(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil {
		return Claims{}, err
	}
	c, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	if c.Subject == "" {
		return Claims{}, errors.New("token has no subject")
	}
	return *c, nil
}
