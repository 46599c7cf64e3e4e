package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the MM-DD-YYYY layout used for form input and listings.
	DateLayout = "01-02-2006"
	// TimeLayout is the 24h HH:MM layout used for form input and listings.
	TimeLayout = "15:04"
)

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidEventForm = errors.New("invalid event form")
)

type Event struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Date        time.Time `gorm:"column:date" json:"date"`
	Time        string    `gorm:"column:time;size:5" json:"time"`
	Guests      []Guest   `gorm:"many2many:event_guests;" json:"guests"`
	CreateDate  time.Time `gorm:"column:create_date" json:"create_date"`
	UpdateDate  time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *Event) TableName() string {
	return "events"
}

// MarshalJSON writes date in DateLayout, the same layout listings and
// forms use.
func (m Event) MarshalJSON() ([]byte, error) {
	type alias Event
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(m),
		Date:  m.Date.Format(DateLayout),
	})
}

func (m *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	aux := struct {
		*alias
		Date string `json:"date"`
	}{
		alias: (*alias)(m),
	}

	err := json.Unmarshal(data, &aux)
	if err != nil {
		return err
	}

	if aux.Date == "" {
		m.Date = time.Time{}
		return nil
	}

	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		return fmt.Errorf("event date %q: %w", aux.Date, err)
	}
	m.Date = date

	return nil
}

// EventView is the listing shape of an event.
type EventView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (m Event) View() EventView {
	return EventView{
		ID:          m.ID,
		Name:        m.Title,
		Description: m.Description,
		Date:        m.Date.Format(DateLayout),
		Time:        m.Time,
	}
}

// Views never returns nil so an empty listing encodes as [].
func Views(events []Event) []EventView {
	views := make([]EventView, 0, len(events))
	for _, e := range events {
		views = append(views, e.View())
	}
	return views
}

// EventForm carries the form fields shared by create and edit.
type EventForm struct {
	Title       string `csv:"title"`
	Description string `csv:"description"`
	Date        string `csv:"date"`
	Time        string `csv:"time"`
}

// Apply parses the date and time of f and overwrites all four mutable
// fields of event. On error event is left untouched.
func (f EventForm) Apply(event *Event) error {
	date, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return fmt.Errorf("%w: date %q: %v", ErrInvalidEventForm, f.Date, err)
	}

	clock, err := time.Parse(TimeLayout, f.Time)
	if err != nil {
		return fmt.Errorf("%w: time %q: %v", ErrInvalidEventForm, f.Time, err)
	}

	event.Title = f.Title
	event.Description = f.Description
	event.Date = date
	event.Time = clock.Format(TimeLayout)

	return nil
}
