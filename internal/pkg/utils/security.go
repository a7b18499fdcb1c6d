package utils

import (
	"campushub-service/internal/pkg/constvars"
	"campushub-service/internal/pkg/exceptions"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateAccessJWT signs a short-lived access token carrying the session
// id, user id and role. The session itself lives in Redis.
func GenerateAccessJWT(sessionID, userID, role, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"user_id":    userID,
		"role":       role,
		"exp":        time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return tokenString, nil
}

type AccessClaims struct {
	SessionID string
	UserID    string
	Role      string
}

func ParseAccessJWT(tokenString, secret string) (*AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	parsed := &AccessClaims{}
	parsed.SessionID, _ = claims["session_id"].(string)
	parsed.UserID, _ = claims["user_id"].(string)
	parsed.Role, _ = claims["role"].(string)
	if parsed.UserID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return parsed, nil
}

// GenerateRefreshToken returns the opaque token handed to the client and
// its SHA-256 hex digest, which is the only form ever persisted.
func GenerateRefreshToken() (token string, tokenHash string, err error) {
	raw := make([]byte, 40)
	if _, err = rand.Read(raw); err != nil {
		return "", "", err
	}
	token = hex.EncodeToString(raw)
	return token, HashRefreshToken(token), nil
}

func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
