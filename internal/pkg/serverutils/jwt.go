// FILE: internal/pkg/serverutils/jwt.go
package serverutils

import (
	"time"

	"ai-chat-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenConfig holds the signing parameters shared by token generation and
// the middleware that validates incoming tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// GenerateToken signs an HS256 token carrying the user's identity. Issuer,
// audience and expiry come from config so validation stays symmetric.
func GenerateToken(cfg TokenConfig, user *entity.User) (string, error) {
	expiry := cfg.Expiry
	if expiry == 0 {
		expiry = time.Hour * 24
	}

	claims := jwt.MapClaims{
		"sub":   user.Id.String(),
		"email": user.Email,
		"name":  user.Name,
		"iss":   cfg.Issuer,
		"aud":   cfg.Audience,
		"exp":   time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}
