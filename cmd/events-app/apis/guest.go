package apis

import (
	"context"
	"events-app-backend/cmd/events-app/metrics"
	"events-app-backend/cmd/events-app/model"
	"events-app-backend/cmd/events-app/sanitize"
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type IGuestRepo interface {
	AddGuest(ctx context.Context, eventID string, guest model.Guest) (*model.Event, error)
	ListGuests(ctx context.Context, eventID string) ([]model.Guest, error)
}

type GuestAPI struct {
	guestRepo IGuestRepo
	eventRepo IEventLister
	logger    zerolog.Logger
	debug     bool
}

// NewGuestAPI wires the RSVP endpoints. With debug set every RSVP dumps
// the event's guest collection to stdout.
func NewGuestAPI(guestRepo IGuestRepo, eventRepo IEventLister, logger zerolog.Logger, debug bool) *GuestAPI {

	return &GuestAPI{
		guestRepo: guestRepo,
		eventRepo: eventRepo,
		logger:    logger,
		debug:     debug,
	}
}

func (a *GuestAPI) Setup(g *echo.Group) {
	g.GET("/guests", a.listEvents)
	g.POST("/guests", a.rsvp)
	g.GET("/events/:id/guests.csv", a.exportGuests)
}

func (a *GuestAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	views, err := listEventViews(ctx, a.eventRepo)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data: views,
		},
	)
}

func (a *GuestAPI) rsvp(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := uuid.NewV7()
	if err != nil {
		return errorJSON(c, err)
	}

	now := time.Now()
	guest := model.Guest{
		ID:         id.String(),
		Name:       sanitize.Text(c.FormValue("name")),
		Email:      sanitize.Text(c.FormValue("email")),
		Phone:      sanitize.Text(c.FormValue("phone")),
		PlusOne:    model.ParsePlusOne(c.FormValue("plus-one")),
		CreateDate: now,
		UpdateDate: now,
	}

	eventID := c.FormValue("event_id")

	event, err := a.guestRepo.AddGuest(ctx, eventID, guest)
	if err != nil {
		return errorJSON(c, err)
	}

	metrics.RSVPsTotal.Inc()

	a.logger.Debug().
		Str("event_id", event.ID).
		Str("guest_id", guest.ID).
		Int("guests", len(event.Guests)).
		Msg("guest added")

	if a.debug {
		godump.Dump(event.Guests)
	}

	views, err := listEventViews(ctx, a.eventRepo)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgGuestAdded,
			Data:    views,
		},
	)
}

func (a *GuestAPI) exportGuests(c echo.Context) error {

	ctx := c.Request().Context()

	eventID := c.Param("id")

	guests, err := a.guestRepo.ListGuests(ctx, eventID)
	if err != nil {
		return errorJSON(c, err)
	}

	rows := make([]model.GuestCSV, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, g.CSV())
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return errorJSON(c, err)
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="guests-%s.csv"`, eventID),
	)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", out)
}
