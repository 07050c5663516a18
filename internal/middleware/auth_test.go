package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cadastro_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubTokenService struct {
	validToken string
	userID     uuid.UUID
}

func (s *stubTokenService) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	return s.validToken, time.Now().Add(time.Hour), nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*shared.Claims, error) {
	if tokenString != s.validToken {
		return nil, errors.New("signature is invalid")
	}
	return &shared.Claims{UserID: s.userID}, nil
}

func newAuthTestRouter(tokens shared.TokenService) (*gin.Engine, *uuid.UUID) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var seenID uuid.UUID
	router.GET("/protected", AuthMiddleware(tokens, zap.NewNop()), func(c *gin.Context) {
		seenID = GetUserIDFromContext(c)
		c.Status(http.StatusNoContent)
	})
	return router, &seenID
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	tokens := &stubTokenService{validToken: "good-token", userID: userID}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token não encontrado"}`,
		},
		{
			name:       "header without separator",
			header:     "good-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token invalido"}`,
		},
		{
			name:       "rejected token",
			header:     "Bearer tampered-token",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token invalido"}`,
		},
		{
			name:       "valid token",
			header:     "Bearer good-token",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "scheme is not inspected",
			header:     "Whatever good-token",
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, seenID := newAuthTestRouter(tokens)
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(AuthorizationHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, userID, *seenID, "the claims' user ID is placed on the context")
			}
		})
	}
}

func TestGetUserIDFromContext_absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	require.Equal(t, uuid.Nil, GetUserIDFromContext(c))

	c.Set(UserIDKey, "not-a-uuid")
	assert.Equal(t, uuid.Nil, GetUserIDFromContext(c), "wrong type falls back to Nil")
}
