package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotedesk/backend/internal/app/config"
	apphttp "quotedesk/backend/internal/app/http"
)

func testConfig() config.Config {
	return config.Config{
		CORSAllowOrigin: "*",
		TotalPeriod:     "auto",
		Tier1Amount:     "199",
	}
}

func TestHealth(t *testing.T) {
	router := apphttp.NewRouter(testConfig())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestInternalAuth(t *testing.T) {
	cfg := testConfig()
	cfg.InternalToken = "secret"
	router := apphttp.NewRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", strings.NewReader(`{}`))
	req.Header.Set("X-Internal-Token", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthDisabledWithoutToken(t *testing.T) {
	router := apphttp.NewRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := apphttp.NewRouter(testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/v1/quotes/preview", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
