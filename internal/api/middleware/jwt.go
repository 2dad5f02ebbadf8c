package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/design-review/pkg/types"
)

var (
	jwtKey    []byte
	jwtIssuer string
)

var ErrTokenDisabled = errors.New("bearer tokens are not configured")

// Init sets the JWT signing key. An empty secret disables bearer tokens.
func Init(secret, issuer string) {
	jwtKey = []byte(secret)
	jwtIssuer = issuer
}

// GenerateToken issues a signed token naming userID as the caller.
func GenerateToken(userID, name string, expireDuration time.Duration) (string, error) {
	if len(jwtKey) == 0 {
		return "", ErrTokenDisabled
	}
	claims := &types.Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    jwtIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	if len(jwtKey) == 0 {
		return nil, ErrTokenDisabled
	}
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
