package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"ebill-api/internal/model"
)

type tokenVerifier interface {
	Verify(tokenString string) (*model.Claims, error)
}

type contextKey string

const authClaimsContextKey contextKey = "auth_claims"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth authenticates the request with a bearer token from the
// Authorization header and stores the verified claims in the request
// context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := stripBearer(r.Header.Get("Authorization"))
		if token == "" {
			writeUnauthorized(w, "Unauthorized: No token provided")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			writeUnauthorized(w, "Unauthorized: Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAPIKey gates machine-to-machine endpoints behind a static
// shared key in the x-api-key header. The key may carry a "Bearer "
// prefix; the comparison is plain equality against configuration.
func RequireAPIKey(configuredKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("x-api-key")
			if strings.TrimSpace(header) == "" {
				writeUnauthorized(w, "Unauthorized: No API key provided")
				return
			}

			if stripBearer(header) != configuredKey {
				writeUnauthorized(w, "Unauthorized: Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ClaimsFromContext(ctx context.Context) (*model.Claims, bool) {
	claims, ok := ctx.Value(authClaimsContextKey).(*model.Claims)
	return claims, ok
}

func stripBearer(header string) string {
	header = strings.TrimSpace(header)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return header
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Message: message})
}
