package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourism_backend/internal/service"
	"tourism_backend/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// --- Mock AuthService ---

type mockAuthService struct {
	authorizeFn func(ctx context.Context, token string) (*session.Session, error)
}

func (m *mockAuthService) Signup(ctx context.Context, input service.SignupInput) error { return nil }
func (m *mockAuthService) Login(ctx context.Context, username, password string) (*service.LoginResult, error) {
	return nil, nil
}
func (m *mockAuthService) Logout(ctx context.Context, token string) error { return nil }
func (m *mockAuthService) ResetPassword(ctx context.Context, username, newPassword string) error {
	return nil
}
func (m *mockAuthService) Authorize(ctx context.Context, token string) (*session.Session, error) {
	return m.authorizeFn(ctx, token)
}

func guardedRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", SessionAuthMiddleware(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint(CtxUserID),
			"username": c.GetString(CtxUsername),
		})
	})
	return r
}

// --- Tests ---

func TestSessionAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, token string) (*session.Session, error) {
			assert.Equal(t, "tok-123", token)
			return &session.Session{UserID: 7, Username: "mukesh"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	w := httptest.NewRecorder()
	guardedRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"mukesh"`)
}

func TestSessionAuthMiddleware_BareTokenAccepted(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, token string) (*session.Session, error) {
			assert.Equal(t, "tok-123", token)
			return &session.Session{UserID: 7, Username: "mukesh"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "tok-123") // No Bearer prefix
	w := httptest.NewRecorder()
	guardedRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionAuthMiddleware_MissingHeader(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, token string) (*session.Session, error) {
			t.Fatal("registry must not be consulted without a token")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	guardedRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthMiddleware_StoreOutage(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, token string) (*session.Session, error) {
			return nil, errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	w := httptest.NewRecorder()
	guardedRouter(auth).ServeHTTP(w, req)

	// A store failure is 503, never a 401 telling a valid token to re-login
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "6379")
}

func TestSessionAuthMiddleware_RevokedToken(t *testing.T) {
	auth := &mockAuthService{
		authorizeFn: func(ctx context.Context, token string) (*session.Session, error) {
			return nil, service.ErrUnauthenticated
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer revoked")
	w := httptest.NewRecorder()
	guardedRouter(auth).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
