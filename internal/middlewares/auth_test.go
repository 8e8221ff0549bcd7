package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/crosspayhq/wallet-core/internal/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		setupMocks         func(mockTokener *MockTokener)
		expectedStatusCode int
		expectClaims       bool
	}{
		{
			name: "valid token stores claims in context",
			setupMocks: func(mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectClaims:       true,
		},
		{
			name: "missing token",
			setupMocks: func(mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no authorization header"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setupMocks: func(mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad-token", nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), "bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockTokener)

			var gotClaims *jwt.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
			rec := httptest.NewRecorder()

			AuthMiddleware(mockTokener)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatusCode, rec.Code)
			if tt.expectClaims {
				assert.NotNil(t, gotClaims)
				assert.Equal(t, userID, gotClaims.UserID)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}

func TestClaimsFromContext_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, ClaimsFromContext(req.Context()))
}
