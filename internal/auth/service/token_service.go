package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/zongzewu23/employee-management-system/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/zongzewu23/employee-management-system/internal/errors"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenGenerator interface {
	Generate(username string) (accessToken string, refreshToken string, expiresAt time.Time, err error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

// TokenService signs and verifies the service's bearer tokens. A single
// symmetric key covers both token types; the token_type claim tells them
// apart, so a refresh token can never pass as an access token unnoticed.
//
// Refresh tokens are not rotated or blacklisted on use: a stolen refresh
// token stays valid until it expires. Known trade-off of the stateless
// design.
type TokenService struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

func NewTokenService(secret string, accessMinutes, refreshMinutes int) *TokenService {
	return &TokenService{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshMinutes) * time.Minute,
	}
}

// Generate mints a fresh access/refresh pair bound to username. The returned
// time is the access token's expiry.
func (ts *TokenService) Generate(username string) (string, string, time.Time, error) {
	now := time.Now()
	accessExpiry := now.Add(ts.AccessTokenExpiry)

	accessToken, err := ts.Issue(username, TokenTypeAccess, ts.AccessTokenExpiry)
	if err != nil {
		return "", "", time.Time{}, err
	}

	refreshToken, err := ts.Issue(username, TokenTypeRefresh, ts.RefreshTokenExpiry)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return accessToken, refreshToken, accessExpiry, nil
}

// Issue signs a single token of the given type with an explicit ttl.
func (ts *TokenService) Issue(username string, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses tokenString and checks its signature and expiry. The
// signature is checked before any claim is returned. Failures are
// classified so the caller can tell a garbled token (ErrTokenMalformed)
// from a tampered one (ErrBadSignature) from a stale one (ErrTokenExpired);
// an expired token is rejected even when its signature is valid.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	if strings.Count(tokenString, ".") != 2 {
		return nil, autherror.ErrTokenMalformed
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, autherror.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, autherror.ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, autherror.ErrTokenExpired
		default:
			return nil, autherror.ErrInvalidToken
		}
	}

	if !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

// IsRefreshToken reports whether the already-verified claims belong to a
// refresh token.
func (ts *TokenService) IsRefreshToken(claims *JWTCustomClaims) bool {
	return claims != nil && claims.TokenType == TokenTypeRefresh
}
