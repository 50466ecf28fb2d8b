package http_test

import (
	"context"
	"drivent/config"
	jwtMocks "drivent/infras/jwt/mocks"
	kafkaMocks "drivent/infras/kafka/mocks"
	"drivent/infras/otel/mocks"
	"drivent/infras/postgres"
	"drivent/permissions"
	cacheMocks "drivent/shared/cache/mocks"
	transport "drivent/transport/http"
	"drivent/transport/http/middleware"
	"drivent/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	return newServerWith(t, gomock.NewController(t), nil, nil)
}

func newServerWith(t *testing.T, ctrl *gomock.Controller, producer *kafkaMocks.MockClient, db *postgres.Connection) *transport.HTTP {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut}

	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl))
	authMiddleware := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), mocks.NewOtel(), permissions.Get(), cfg)

	if producer == nil {
		return transport.New(cfg, router.New(router.DomainHandlers{}), appMiddleware, authMiddleware, nil, db)
	}

	return transport.New(cfg, router.New(router.DomainHandlers{}), appMiddleware, authMiddleware, producer, db)
}

func TestHTTP_Health(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_ProtectedRoute(t *testing.T) {
	server := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/booking", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_CORSPreflight(t *testing.T) {
	server := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/booking", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_ShutdownReleasesResources(t *testing.T) {
	ctrl := gomock.NewController(t)

	db, err := sqlx.Open("postgres", postgres.Descriptor("drivent", "secret", "localhost", "5432", "drivent_test", "disable"))
	assert.NoError(t, err)

	producer := kafkaMocks.NewMockClient(ctrl)
	producer.EXPECT().Close().Return(nil).Times(1)

	server := newServerWith(t, ctrl, producer, &postgres.Connection{Read: db, Write: db})

	server.Shutdown(context.Background())
	server.Shutdown(context.Background())

	assert.ErrorContains(t, db.Ping(), "database is closed")
}
