package apis

import (
	"context"
	"errors"
	"events-app-backend/cmd/events-app/metrics"
	"events-app-backend/cmd/events-app/model"
	"events-app-backend/cmd/events-app/sanitize"
	"fmt"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type IEventLister interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type IEventRepo interface {
	IEventLister
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, event model.Event) error
	CreateEvents(ctx context.Context, events []model.Event) error
	UpdateEvent(ctx context.Context, event model.Event) error
	DeleteEvent(ctx context.Context, id string) error
}

type EventAPI struct {
	eventRepo IEventRepo
}

func NewEventAPI(eventRepo IEventRepo) *EventAPI {

	return &EventAPI{
		eventRepo: eventRepo,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.GET("/events", a.listEvents)
	g.GET("/events/:id", a.getEvent)
	g.GET("/rsvp", a.listEvents)
	g.POST("/add-event", a.createEvent)
	g.POST("/edit-event/:id", a.editEvent)
	g.POST("/delete-event/:id", a.deleteEvent)
	g.POST("/import-events", a.importEvents)
}

func (a *EventAPI) listEvents(c echo.Context) error {

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

func (a *EventAPI) getEvent(c echo.Context) error {

	ctx := c.Request().Context()

	event, err := a.eventRepo.GetEvent(ctx, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Data: event,
		},
	)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, err := uuid.NewV7()
	if err != nil {
		return errorJSON(c, err)
	}

	now := time.Now()
	event := model.Event{
		ID:         id.String(),
		Guests:     []model.Guest{},
		CreateDate: now,
		UpdateDate: now,
	}

	err = eventForm(c).Apply(&event)
	if err != nil {
		return errorJSON(c, err)
	}

	err = a.eventRepo.CreateEvent(
		ctx,
		event,
	)

	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgEventAdded,
			Data:    event,
		},
	)
}

func (a *EventAPI) editEvent(c echo.Context) error {

	ctx := c.Request().Context()

	event := model.Event{
		ID:         c.Param("id"),
		UpdateDate: time.Now(),
	}

	err := eventForm(c).Apply(&event)
	if err != nil {
		return errorJSON(c, err)
	}

	err = a.eventRepo.UpdateEvent(ctx, event)
	if err != nil {
		return errorJSON(c, err)
	}

	updated, err := a.eventRepo.GetEvent(ctx, event.ID)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgEventUpdated,
			Data:    updated,
		},
	)
}

func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	err := a.eventRepo.DeleteEvent(ctx, c.Param("id"))
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgEventDeleted,
		},
	)
}

// importEvents creates one event per row of the uploaded csvfile. The file
// is rejected as a whole when any row fails to parse.
func (a *EventAPI) importEvents(c echo.Context) error {

	ctx := c.Request().Context()

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	defer cf.Close()

	var forms []model.EventForm
	err = gocsv.Unmarshal(cf, &forms)
	if err != nil {
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	now := time.Now()
	events := make([]model.Event, 0, len(forms))
	for i, form := range forms {
		id, err := uuid.NewV7()
		if err != nil {
			return errorJSON(c, err)
		}

		event := model.Event{
			ID:         id.String(),
			Guests:     []model.Guest{},
			CreateDate: now,
			UpdateDate: now,
		}

		err = sanitizeForm(form).Apply(&event)
		if err != nil {
			return c.JSON(
				http.StatusBadRequest,
				model.BaseResponse{
					Message: fmt.Sprintf("row %d: %s", i+1, model.MsgInvalidForm),
				},
			)
		}

		events = append(events, event)
	}

	err = a.eventRepo.CreateEvents(ctx, events)
	if err != nil {
		return errorJSON(c, err)
	}

	metrics.EventsImportedTotal.Add(float64(len(events)))

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgEventsImported,
			Data:    events,
		},
	)
}

func listEventViews(ctx context.Context, repo IEventLister) ([]model.EventView, error) {

	events, err := repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	return model.Views(events), nil
}

func eventForm(c echo.Context) model.EventForm {
	return sanitizeForm(model.EventForm{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Date:        c.FormValue("date"),
		Time:        c.FormValue("time"),
	})
}

func sanitizeForm(form model.EventForm) model.EventForm {
	form.Title = sanitize.Text(form.Title)
	form.Description = sanitize.HTML(form.Description)
	return form
}

// errorJSON maps err onto a status code and a {"msg"} body.
func errorJSON(c echo.Context, err error) error {

	switch {
	case errors.Is(err, model.ErrEventNotFound):
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: model.MsgEventNotFound,
			},
		)
	case errors.Is(err, model.ErrInvalidEventForm):
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: model.MsgInvalidForm,
			},
		)
	}

	return c.JSON(
		http.StatusInternalServerError,
		model.BaseResponse{
			Message: err.Error(),
		},
	)
}
