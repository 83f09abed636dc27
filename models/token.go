package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSessionToken is returned by SessionToken accessors when the token
// string is empty, i.e. no user session exists.
var ErrNoSessionToken = errors.New("no session token")

// SessionToken wraps the JWT session token issued by the management API on
// login. The token is treated as a bearer credential: claims are read
// without signature verification because only the server holds the signing
// key — the client merely needs the identity fields embedded in it.
type SessionToken struct {
	// SignedString is the compact JWS representation of the token as
	// received from the API.
	SignedString string `json:"-"`
}

type sessionClaims struct {
	jwt.RegisteredClaims

	// UserID is the numeric account identifier.
	UserID int64 `json:"id"`

	// Username is the account login.
	Username string `json:"username"`
}

// UserID extracts the numeric user identifier from the token's claims.
// Returns ErrNoSessionToken when the token is empty.
func (t SessionToken) UserID() (int64, error) {
	claims, err := t.claims()
	if err != nil {
		return 0, err
	}
	if claims.UserID <= 0 {
		return 0, errors.New("session token carries no user id")
	}
	return claims.UserID, nil
}

// Username extracts the account login from the token's claims.
// Returns ErrNoSessionToken when the token is empty.
func (t SessionToken) Username() (string, error) {
	claims, err := t.claims()
	if err != nil {
		return "", err
	}
	if claims.Username == "" {
		return "", errors.New("session token carries no username")
	}
	return claims.Username, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t SessionToken) String() string {
	return t.SignedString
}

func (t SessionToken) claims() (*sessionClaims, error) {
	if t.SignedString == "" {
		return nil, ErrNoSessionToken
	}

	claims := new(sessionClaims)
	if _, _, err := jwt.NewParser().ParseUnverified(t.SignedString, claims); err != nil {
		return nil, fmt.Errorf("error parsing session token: %w", err)
	}

	return claims, nil
}
