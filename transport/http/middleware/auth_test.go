package middleware_test

import (
	"drivent/config"
	"drivent/infras/jwt"
	jwtMocks "drivent/infras/jwt/mocks"
	"drivent/infras/otel/mocks"
	"drivent/permissions"
	"drivent/shared/constant"
	"drivent/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*jwtMocks.MockJWT, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
			{Path: "/v1/booking", Method: http.MethodGet, Permissions: []string{constant.RoleUser}},
			{Path: "/v1/admin", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
		},
	}

	mw := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), perms, cfg)

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(constant.ContextKeyUserID).(int)
		sessionID, _ := r.Context().Value(constant.ContextKeySessionID).(string)

		w.Header().Set("X-User", strconv.Itoa(userID))
		w.Header().Set("X-Session", sessionID)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Use(mw.APIKey, mw.Auth, mw.RBAC)
	router.Post("/v1/auth/login", echoUser)
	router.Get("/v1/booking", echoUser)
	router.Get("/v1/admin", echoUser)

	return mockJWT, router
}

func TestAuth(t *testing.T) {
	t.Run("skipped route", func(t *testing.T) {
		_, router := newAuthRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		_, router := newAuthRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/booking", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		_, router := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Token abc")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked session", func(t *testing.T) {
		mockJWT, router := newAuthRouter(t)
		mockJWT.EXPECT().ValidateToken(gomock.Any(), "abc", jwt.AccessToken).Return(nil, jwt.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer abc")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Session not found")
	})

	t.Run("empty claims", func(t *testing.T) {
		mockJWT, router := newAuthRouter(t)
		mockJWT.EXPECT().ValidateToken(gomock.Any(), "abc", jwt.AccessToken).Return(&jwt.Claims{Role: constant.RoleUser}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer abc")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		mockJWT, router := newAuthRouter(t)
		mockJWT.EXPECT().ValidateToken(gomock.Any(), "abc", jwt.AccessToken).Return(&jwt.Claims{
			UserID:    7,
			Email:     "a@b.com",
			Role:      constant.RoleUser,
			SessionID: "session-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer abc")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", rec.Header().Get("X-User"))
		assert.Equal(t, "session-1", rec.Header().Get("X-Session"))
	})
}

func TestRBAC(t *testing.T) {
	mockJWT, router := newAuthRouter(t)
	mockJWT.EXPECT().ValidateToken(gomock.Any(), "abc", jwt.AccessToken).Return(&jwt.Claims{
		UserID: 7,
		Email:  "a@b.com",
		Role:   constant.RoleUser,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer abc")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPIKey(t *testing.T) {
	t.Run("internal key skips auth", func(t *testing.T) {
		_, router := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "internal-key")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, router := newAuthRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/booking", nil)
		req.Header.Set(constant.RequestHeaderAPIKey, "nope")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
