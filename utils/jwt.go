package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"mentorly/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateToken creates a signed JWT with the given subject (an expert or
// learner account ID) and role claim. Tokens are normally minted by the
// identity provider; this exists for local development and tests.
func GenerateToken(subject, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken extracts the subject and role from a valid JWT
// token string.
func ExtractClaimsFromToken(tokenString string) (subject string, role string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	r, _ := claims["role"].(string)

	return sub, r, nil
}

// IsTokenRevoked checks the auth cache's revocation list for the token's
// hash. A missing auth cache client means no revocation list is configured
// and every structurally valid token is accepted.
func IsTokenRevoked(ctx context.Context, tokenString string) bool {
	if AuthCacheClient == nil {
		return false
	}
	exists, err := AuthCacheClient.Exists(ctx, RevokedTokenPrefix+HashToken(tokenString)).Result()
	if err != nil {
		// Fail open: the token already passed signature validation.
		return false
	}
	return exists > 0
}
