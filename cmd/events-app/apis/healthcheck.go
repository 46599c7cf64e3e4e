package apis

import (
	"events-app-backend/cmd/events-app/model"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// schemaTables must exist before the event and RSVP routes can work.
var schemaTables = []string{
	(&model.Event{}).TableName(),
	(&model.Guest{}).TableName(),
	"event_guests",
}

type HealthCheckAPI struct {
	db *gorm.DB
}

func NewHealthCheckAPI(db *gorm.DB) *HealthCheckAPI {
	return &HealthCheckAPI{
		db: db,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/healthz", a.healthCheck)
}

// healthCheck reports 503 until the database answers and the schema has
// been migrated.
func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	ctx := c.Request().Context()

	db, err := a.db.DB()
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	migrator := a.db.WithContext(ctx).Migrator()
	for _, table := range schemaTables {
		if migrator.HasTable(table) {
			continue
		}

		return c.JSON(
			http.StatusServiceUnavailable,
			model.BaseResponse{
				Message: fmt.Sprintf("table %s is missing, run migrate", table),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "healthy",
		},
	)
}
