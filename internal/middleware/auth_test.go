package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/docspot/booking-api/internal/model"
	"github.com/docspot/booking-api/internal/repository"
	"github.com/docspot/booking-api/pkg/auth"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestRouter(t *testing.T, users *mockUserRepo, admin bool) (*gin.Engine, auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	mw := NewAuthMiddleware(jwtSvc, users)

	r := gin.New()
	handlers := []gin.HandlerFunc{mw.Authenticate()}
	if admin {
		handlers = append(handlers, mw.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.String(http.StatusOK, id.String())
	})
	r.GET("/protected", handlers...)
	return r, jwtSvc
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r, _ := newTestRouter(t, new(mockUserRepo), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBadFormat(t *testing.T) {
	r, _ := newTestRouter(t, new(mockUserRepo), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	r, _ := newTestRouter(t, new(mockUserRepo), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	r, jwtSvc := newTestRouter(t, new(mockUserRepo), false)

	userID := uuid.New()
	token, err := jwtSvc.GenerateToken(userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestRequireAdminRejectsPatient(t *testing.T) {
	users := new(mockUserRepo)
	r, jwtSvc := newTestRouter(t, users, true)

	userID := uuid.New()
	users.On("Get", mock.Anything, userID).Return(&model.User{
		Base: model.Base{ID: userID},
		Role: model.RolePatient,
	}, nil)

	token, err := jwtSvc.GenerateToken(userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminDeletedAccount(t *testing.T) {
	users := new(mockUserRepo)
	r, jwtSvc := newTestRouter(t, users, true)

	userID := uuid.New()
	users.On("Get", mock.Anything, userID).Return(nil, repository.ErrNotFound)

	token, err := jwtSvc.GenerateToken(userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	users := new(mockUserRepo)
	r, jwtSvc := newTestRouter(t, users, true)

	userID := uuid.New()
	users.On("Get", mock.Anything, userID).Return(&model.User{
		Base: model.Base{ID: userID},
		Role: model.RoleAdmin,
	}, nil)

	token, err := jwtSvc.GenerateToken(userID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
