package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebill-api/internal/model"
)

type stubVerifier struct {
	claims *model.Claims
	err    error
}

func (v stubVerifier) Verify(string) (*model.Claims, error) {
	return v.claims, v.err
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	claims := &model.Claims{UserID: "u-1", Username: "student1"}

	tests := []struct {
		name        string
		header      string
		verifier    stubVerifier
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			verifier:    stubVerifier{claims: claims},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized: No token provided",
		},
		{
			name:        "invalid token",
			header:      "Bearer bad-token",
			verifier:    stubVerifier{err: model.ErrInvalidToken},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid token",
		},
		{
			name:       "valid bearer token",
			header:     "Bearer good-token",
			verifier:   stubVerifier{claims: claims},
			wantStatus: http.StatusOK,
		},
		{
			name:       "raw token without scheme",
			header:     "good-token",
			verifier:   stubVerifier{claims: claims},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *model.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users/profile/u-1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewAuthMiddleware(tt.verifier).RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			} else {
				assert.Equal(t, claims, gotClaims)
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setHeader   bool
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized: No API key provided",
		},
		{
			name:        "empty header",
			setHeader:   true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized: No API key provided",
		},
		{
			name:        "wrong key",
			header:      "nope",
			setHeader:   true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized: Invalid API key",
		},
		{
			name:       "raw key",
			header:     "secret-key",
			setHeader:  true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "bearer-prefixed key",
			header:     "Bearer secret-key",
			setHeader:  true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/api/users/profile/u-1", nil)
			if tt.setHeader {
				req.Header.Set("x-api-key", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAPIKey("secret-key")(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}
