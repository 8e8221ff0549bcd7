package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/crosspayhq/wallet-core/internal/jwt"
	"github.com/crosspayhq/wallet-core/internal/middlewares"
)

// newAuthedRequest builds a request carrying authenticated claims, the way
// AuthMiddleware leaves it for downstream handlers.
func newAuthedRequest(t *testing.T, method, target string, body any, claims *jwt.Claims) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if claims != nil {
		req = req.WithContext(middlewares.ContextWithClaims(req.Context(), claims))
	}
	return req
}

func userClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{UserID: userID}
}

func adminClaims(userID uuid.UUID) *jwt.Claims {
	return &jwt.Claims{UserID: userID, IsAdmin: true}
}
