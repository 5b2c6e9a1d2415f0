package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func callHealth(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(req, rec)))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthReportsLLMMode(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	code, body := callHealth(t, NewHealthCtrl(db, false))
	assert.Equal(t, http.StatusOK, code)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "mock", checks["llm"].(map[string]any)["mode"])
	assert.Equal(t, true, checks["database"].(map[string]any)["ok"])

	code, body = callHealth(t, NewHealthCtrl(db, true))
	assert.Equal(t, http.StatusOK, code)
	checks = body["checks"].(map[string]any)
	assert.Equal(t, "openai", checks["llm"].(map[string]any)["mode"])
}

func TestHealthFailsWithoutDatabase(t *testing.T) {
	code, body := callHealth(t, NewHealthCtrl(nil, false))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	checks := body["checks"].(map[string]any)
	dbCheck := checks["database"].(map[string]any)
	assert.Equal(t, false, dbCheck["ok"])
	assert.NotEmpty(t, dbCheck["err"])
}
