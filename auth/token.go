package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/surampallyshivasai/Wearsy/models"
)

// tokenTTL is the fixed session lifetime.
const tokenTTL = 24 * time.Hour

// IssueToken signs an HS256 session token for the given user. Admin tokens
// additionally carry an is_admin claim that the admin middleware asserts.
func IssueToken(user models.User, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	if isAdmin {
		claims["is_admin"] = true
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
