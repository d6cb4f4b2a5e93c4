package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"warsztat/internal/shared/authorization"
)

// SessionClaims identify a logged-in account. The role is embedded for
// convenience only; admin-gated routes look the role up fresh on every call.
type SessionClaims struct {
	Login string             `json:"login"`
	Role  authorization.Role `json:"role"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secret   []byte
	expHours int
}

func NewSessionTokenService(secret string, expHours int) *SessionTokenService {
	if expHours <= 0 {
		expHours = 12
	}
	return &SessionTokenService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

func (s *SessionTokenService) Generate(login string, role authorization.Role) (string, error) {
	now := time.Now()

	claims := &SessionClaims{
		Login: login,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// MaxAgeSeconds reports the cookie lifetime matching the token expiry.
func (s *SessionTokenService) MaxAgeSeconds() int {
	return s.expHours * 3600
}
