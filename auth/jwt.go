package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager issues and verifies HS256 tokens bound to a user identity.
// The signing secret is process-wide configuration, loaded once at startup.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret string) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &JWTManager{
		secret: []byte(secret),
		issuer: "bloglist",
		ttl:    24 * time.Hour,
	}, nil
}

// Sign issues a token carrying the user's id and username.
func (m *JWTManager) Sign(userID, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       userID,
		"username": username,
		"iss":      m.issuer,
		"exp":      time.Now().Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks the signature and expiry and returns the user id the token
// is bound to. Pure verification, no side effects.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	id, _ := claims["id"].(string)
	if id == "" {
		return "", fmt.Errorf("token missing id claim")
	}

	return id, nil
}
