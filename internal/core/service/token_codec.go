package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fpdual/dual-admin/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenCodec signs and verifies the session tokens handed out at login.
// Claims are {id, role, exp}; verification is a pure function of the
// token and the configured secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity.
func (tc *TokenCodec) Issue(userID int64, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(tc.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(tc.secret)
}

// Verify checks signature and expiry and decodes the claims. Any failure
// (malformed input, signature mismatch, wrong algorithm, expired token,
// missing claims) collapses to domain.ErrInvalidToken.
func (tc *TokenCodec) Verify(token string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	id, ok := claims["id"].(float64)
	role, _ := claims["role"].(string)
	if !ok || !domain.ValidRole(role) {
		return domain.Claims{}, domain.ErrInvalidToken
	}

	return domain.Claims{UserID: int64(id), Role: role}, nil
}
