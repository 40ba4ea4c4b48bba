package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/quillbox/quillbox-server/internal/tokens"
)

// fakeVerifier implements Verifier
type fakeVerifier struct{}

func (f *fakeVerifier) Verify(ctx context.Context, raw string) (*tokens.Identity, error) {
	if raw == "goodtoken" {
		return &tokens.Identity{ID: "64f000000000000000000000", Username: "admin"}, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func serve(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	g := gin.New()
	g.GET("/", AuthMiddleware(&fakeVerifier{}), func(c *gin.Context) {
		ident, ok := IdentityFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": ident.Username})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rw := httptest.NewRecorder()
	g.ServeHTTP(rw, req)
	return rw
}

func TestAuthMiddleware_NoHeader(t *testing.T) {
	rw := serve(t, "")
	require.Equal(t, http.StatusUnauthorized, rw.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &body))
	require.Contains(t, body, "message")
}

func TestAuthMiddleware_InvalidHeader(t *testing.T) {
	rw := serve(t, "BadHeader")
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuthMiddleware_EmptyBearer(t *testing.T) {
	rw := serve(t, "Bearer ")
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rw := serve(t, "Bearer badtoken")
	require.Equal(t, http.StatusUnauthorized, rw.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	rw := serve(t, "Bearer goodtoken")
	require.Equal(t, http.StatusOK, rw.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &got))
	require.Equal(t, "admin", got["username"])
}
