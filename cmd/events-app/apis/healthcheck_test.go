package apis

import (
	"events-app-backend/cmd/events-app/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func healthz(e *echo.Echo) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	return rec
}

func TestHealthCheckAPI(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&model.Event{}, &model.Guest{}))

	e := echo.New()
	NewHealthCheckAPI(db).Setup(e.Group(""))

	rec := healthz(e)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"msg":"healthy"}`, rec.Body.String())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec = healthz(e)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthCheckAPI_SchemaNotMigrated(t *testing.T) {
	db := openSQLite(t)

	e := echo.New()
	NewHealthCheckAPI(db).Setup(e.Group(""))

	rec := healthz(e)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"msg":"table events is missing, run migrate"}`, rec.Body.String())
}

func TestHealthCheckAPI_JoinTableMissing(t *testing.T) {
	db := openSQLite(t)
	require.NoError(t, db.AutoMigrate(&model.Event{}, &model.Guest{}))
	require.NoError(t, db.Migrator().DropTable("event_guests"))

	e := echo.New()
	NewHealthCheckAPI(db).Setup(e.Group(""))

	rec := healthz(e)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"msg":"table event_guests is missing, run migrate"}`, rec.Body.String())
}
