// Package staff implements the shared-credential staff gate: one static
// password for the whole counter, exchanged for a short-lived token that
// admits the order board and revenue views. There are no per-user accounts.
package staff

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCredentials = errors.New("wrong staff password")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	passwordHash []byte
	jwtSecret    []byte
	tokenTTL     time.Duration
}

func NewAuthenticator(passwordHash, jwtSecret string) *Authenticator {
	return &Authenticator{
		passwordHash: []byte(passwordHash),
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     12 * time.Hour,
	}
}

// HashPassword is used by deployment tooling to produce STAFF_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Login checks the shared password and issues a staff token.
func (a *Authenticator) Login(password string) (string, error) {
	if len(a.jwtSecret) == 0 {
		return "", errors.New("JWT secret is not configured")
	}
	if bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) != nil {
		return "", ErrBadCredentials
	}

	claims := Claims{
		Role: "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ParseToken validates a staff token and returns its claims.
func (a *Authenticator) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return a.jwtSecret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
