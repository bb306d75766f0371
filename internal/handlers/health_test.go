package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vdms/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performGet(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestHealthHandler(t *testing.T) {
	rec := performGet(t, HealthHandler("1.0.0"), "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.WithinDuration(t, time.Now().UTC(), resp.Timestamp, 5*time.Second)
}

func TestDBHealthHandler_NoDatabase(t *testing.T) {
	rec := performGet(t, DBHealthHandler(nil), "/healthz/db")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp models.DBHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.False(t, resp.Connected)
	assert.Contains(t, resp.Error, "not initialized")
}

func TestDBHealthHandler_Healthy(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectPing()
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	db := sqlx.NewDb(mockDB, "sqlmock")
	rec := performGet(t, DBHealthHandler(db), "/healthz/db")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.DBHealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.Connected)
}

func TestRootHandler(t *testing.T) {
	rec := performGet(t, RootHandler("1.0.0"), "/api/")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Vendor Dispute Management API", resp["service"])
	assert.Equal(t, "running", resp["status"])
}
