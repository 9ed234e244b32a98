package server

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sngm3741/unikz/api/internal/config"
)

var errInvalidToken = errors.New("invalid access token")

type authClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// tokenIssuer signs and verifies HS256 session tokens.
type tokenIssuer struct {
	cfg config.JWTConfig
	now func() time.Time
}

func newTokenIssuer(cfg config.JWTConfig) *tokenIssuer {
	return &tokenIssuer{cfg: cfg, now: time.Now}
}

// Sign issues a token for the account. It matches publicapp.TokenSigner.
func (t *tokenIssuer) Sign(userID, email, displayName string) (string, time.Time, error) {
	if len(t.cfg.Secret) == 0 {
		return "", time.Time{}, fmt.Errorf("jwt secret is not configured")
	}
	now := t.now().UTC()
	expiresAt := now.Add(t.cfg.TTL)
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    t.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Email: email,
		Name:  displayName,
	}
	if t.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{t.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.cfg.Secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies signature, expiry, issuer and audience and requires a
// subject.
func (t *tokenIssuer) Parse(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return t.cfg.Secret, nil
	}, jwt.WithLeeway(30*time.Second), jwt.WithTimeFunc(t.now))
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	if t.cfg.Issuer != "" && claims.Issuer != t.cfg.Issuer {
		return nil, errInvalidToken
	}
	if t.cfg.Audience != "" && !slices.Contains(claims.Audience, t.cfg.Audience) {
		return nil, errInvalidToken
	}
	if claims.Subject == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}
