package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingSecret means no signing key was configured. Token issuance
	// must fail loudly in that case rather than sign with an empty key.
	ErrMissingSecret = errors.New("jwt signing secret is not configured")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
)

var (
	mu        sync.RWMutex
	jwtSecret []byte
	tokenTTL  = time.Hour
)

// Configure injects the signing secret and token lifetime at startup.
func Configure(secret []byte, ttl time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	jwtSecret = secret
	if ttl != 0 {
		tokenTTL = ttl
	}
}

// GenerateToken signs a token carrying the user id and an absolute expiry.
func GenerateToken(userID string) (string, error) {
	mu.RLock()
	secret, ttl := jwtSecret, tokenTTL
	mu.RUnlock()

	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyToken validates the signature and expiry and returns the user id.
// Expired and otherwise-invalid tokens come back as distinct errors; the
// HTTP layer collapses them into one response so callers cannot tell which
// check failed.
func VerifyToken(tokenStr string) (string, error) {
	mu.RLock()
	secret := jwtSecret
	mu.RUnlock()

	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
