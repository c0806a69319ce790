package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ebill-api/internal/model"
)

// tokenClaims is the wire form of a bearer token's payload.
type tokenClaims struct {
	UserID    string  `json:"user_id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HMAC-signed bearer tokens. The
// signing secret is process-wide, loaded once at startup, and tokens
// expire after a fixed TTL; expiry is the only invalidation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs the user's identity claims into a token expiring after
// the configured TTL.
func (s *TokenService) Issue(user model.User) (string, error) {
	issuedAt := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiration and returns the embedded
// identity claims. Malformed, tampered, and expired tokens all fail
// with model.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*model.Claims, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, model.ErrInvalidToken
	}

	return &model.Claims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
