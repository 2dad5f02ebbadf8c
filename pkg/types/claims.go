package types

import "github.com/golang-jwt/jwt/v5"

// Claims carries the caller identity in a bearer token. Only the user id is
// consumed; no permission decisions are made from it.
type Claims struct {
	UserID string `json:"uid"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
