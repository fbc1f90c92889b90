package handler_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/svce/hostel-management/internal/config"
	"github.com/svce/hostel-management/internal/database"
	"github.com/svce/hostel-management/internal/handler"
	"github.com/svce/hostel-management/internal/middleware"
	"github.com/svce/hostel-management/internal/repository"
	"github.com/svce/hostel-management/internal/router"
)

// testCfg mirrors the defaults the server runs with in development.
func testCfg() config.Config {
	return config.Config{
		Env:           "test",
		AdminUsername: "svce",
		AdminPassword: "1234",
		AuthMode:      "trust-all",
		TokenBytes:    16,
		AccessTTLMin:  60,
	}
}

// newTestServer builds the full Echo application against a fresh temp-file
// database, with the given config and Authenticator.  The rate limiter is
// the disabled pass-through.
func newTestServer(t *testing.T, cfg config.Config, authn middleware.Authenticator) (*echo.Echo, *sql.DB) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.InitSchema(context.Background(), db))

	roomRepo := repository.NewRoomRepo(db)
	memberRepo := repository.NewMemberRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	adminRepo := repository.NewAdminRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	limiter := middleware.NewTokenBucket(config.RateLimitConfig{}, nil)
	router.RegisterAPI(e,
		handler.NewAuthHandler(cfg, adminRepo),
		handler.NewRoomHandler(roomRepo),
		handler.NewMemberHandler(memberRepo),
		handler.NewPaymentHandler(cfg, paymentRepo, memberRepo),
		handler.NewReportHandler(roomRepo),
		authn, limiter)
	return e, db
}

// newTrustAllServer is the common case: default config, trust-all auth.
func newTrustAllServer(t *testing.T) (*echo.Echo, *sql.DB) {
	t.Helper()
	cfg := testCfg()
	return newTestServer(t, cfg, middleware.TrustAll{Username: cfg.AdminUsername})
}

// doJSON performs a request against the test server with a JSON body.
func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// doJSONWithAuth is doJSON with an Authorization header.
func doJSONWithAuth(e *echo.Echo, method, path, body, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", auth)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// decodeList unmarshals a JSON array response body.
func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
