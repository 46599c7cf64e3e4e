package apis

import (
	"context"
	"events-app-backend/cmd/events-app/metrics"
	"events-app-backend/cmd/events-app/model"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type IHolidayClient interface {
	MonthHolidays(ctx context.Context, year int, month time.Month) ([]model.Holiday, error)
}

type HolidayAPI struct {
	client IHolidayClient
	logger zerolog.Logger
	now    func() time.Time
}

func NewHolidayAPI(client IHolidayClient, logger zerolog.Logger) *HolidayAPI {

	return &HolidayAPI{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func (a *HolidayAPI) Setup(g *echo.Group) {
	g.GET("/holidays", a.listHolidays)
}

// listHolidays returns the holidays of the current month.
func (a *HolidayAPI) listHolidays(c echo.Context) error {

	ctx := c.Request().Context()

	today := a.now()

	holidays, err := a.client.MonthHolidays(ctx, today.Year(), today.Month())
	metrics.HolidayRequestsTotal.WithLabelValues(metrics.Status(err)).Inc()

	if err != nil {
		a.logger.Error().
			Err(err).
			Int("year", today.Year()).
			Str("month", today.Month().String()).
			Msg("holiday lookup failed")

		return c.JSON(
			http.StatusBadGateway,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data: model.HolidayData{
				Holidays: holidays,
				Month:    today.Month().String(),
			},
		},
	)
}
