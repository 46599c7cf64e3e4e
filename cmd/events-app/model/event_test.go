package model

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_TableName(t *testing.T) {
	event := Event{}
	assert.Equal(t, "events", event.TableName())
}

func TestGuest_TableName(t *testing.T) {
	guest := Guest{}
	assert.Equal(t, "guests", guest.TableName())
}

func TestEventForm_Apply_Success(t *testing.T) {
	var event Event
	form := EventForm{
		Title:       "Holiday Party",
		Description: "Bring snacks",
		Date:        "12-25-2024",
		Time:        "18:30",
	}

	err := form.Apply(&event)

	require.NoError(t, err)
	assert.Equal(t, "Holiday Party", event.Title)
	assert.Equal(t, "Bring snacks", event.Description)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), event.Date)
	assert.Equal(t, "18:30", event.Time)
}

func TestEventForm_Apply_NormalizesTime(t *testing.T) {
	var event Event
	form := EventForm{Date: "01-05-2025", Time: "9:05"}

	err := form.Apply(&event)

	require.NoError(t, err)
	assert.Equal(t, "09:05", event.Time)
}

func TestEventForm_Apply_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		form EventForm
	}{
		{name: "Not a date", form: EventForm{Date: "not-a-date", Time: "18:30"}},
		{name: "ISO date", form: EventForm{Date: "2024-12-25", Time: "18:30"}},
		{name: "Month out of range", form: EventForm{Date: "13-25-2024", Time: "18:30"}},
		{name: "Empty date", form: EventForm{Date: "", Time: "18:30"}},
		{name: "Invalid time", form: EventForm{Date: "12-25-2024", Time: "25:99"}},
		{name: "Time with seconds", form: EventForm{Date: "12-25-2024", Time: "18:30:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := Event{Title: "Unchanged", Time: "07:00"}
			event := original

			err := tt.form.Apply(&event)

			assert.ErrorIs(t, err, ErrInvalidEventForm)
			assert.Equal(t, original, event)
		})
	}
}

func TestEventForm_Apply_FullOverwrite(t *testing.T) {
	event := Event{
		ID:          "event-1",
		Title:       "Old title",
		Description: "Old description",
		Date:        time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		Time:        "10:00",
	}

	err := EventForm{Date: "02-14-2025", Time: "20:00"}.Apply(&event)

	require.NoError(t, err)
	assert.Equal(t, "event-1", event.ID)
	assert.Empty(t, event.Title)
	assert.Empty(t, event.Description)
	assert.Equal(t, "02-14-2025", event.Date.Format(DateLayout))
	assert.Equal(t, "20:00", event.Time)
}

func TestEvent_View(t *testing.T) {
	event := Event{
		ID:          "event-1",
		Title:       "Holiday Party",
		Description: "Bring snacks",
		Date:        time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		Time:        "18:30",
	}

	view := event.View()

	assert.Equal(t, EventView{
		ID:          "event-1",
		Name:        "Holiday Party",
		Description: "Bring snacks",
		Date:        "12-25-2024",
		Time:        "18:30",
	}, view)
}

func TestViews_EmptyEncodesAsArray(t *testing.T) {
	jsonData, err := json.Marshal(BaseResponse{Data: Views(nil)})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(jsonData))
}

func TestEvent_JSONSerialization(t *testing.T) {
	event := Event{
		ID:     "test-id",
		Title:  "Test Event",
		Time:   "18:30",
		Guests: []Guest{},
	}

	jsonData, err := json.Marshal(event)
	assert.NoError(t, err)
	assert.Contains(t, string(jsonData), `"id":"test-id"`)
	assert.Contains(t, string(jsonData), `"title":"Test Event"`)
	assert.Contains(t, string(jsonData), `"time":"18:30"`)
	assert.Contains(t, string(jsonData), `"guests":[]`)
}

func TestEvent_JSONDateUsesListingLayout(t *testing.T) {
	event := Event{
		ID:     "event-1",
		Title:  "Holiday Party",
		Date:   time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		Time:   "18:30",
		Guests: []Guest{{ID: "guest-1", Name: "Ada"}},
	}

	jsonData, err := json.Marshal(BaseResponse{Data: event})
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"date":"12-25-2024"`)
	assert.NotContains(t, string(jsonData), "2024-12-25T")
	assert.Equal(t, event.View().Date, "12-25-2024")

	var response struct {
		Data Event `json:"data"`
	}
	require.NoError(t, json.Unmarshal(jsonData, &response))

	decoded := response.Data
	assert.Equal(t, "event-1", decoded.ID)
	assert.Equal(t, "Holiday Party", decoded.Title)
	assert.True(t, event.Date.Equal(decoded.Date))
	assert.Equal(t, "Ada", decoded.Guests[0].Name)
}

func TestEvent_UnmarshalJSONRejectsOtherDateLayouts(t *testing.T) {
	var event Event
	err := json.Unmarshal([]byte(`{"id":"event-1","date":"2024-12-25T00:00:00Z"}`), &event)
	assert.Error(t, err)
}

func TestEventForm_CSVUnmarshaling(t *testing.T) {
	csvContent := `title,description,date,time
Holiday Party,Bring snacks,12-25-2024,18:30
Book Club,"Chapter 3, 4",01-08-2025,19:00`

	var forms []EventForm
	err := gocsv.Unmarshal(strings.NewReader(csvContent), &forms)

	assert.NoError(t, err)
	assert.Len(t, forms, 2)
	assert.Equal(t, "Holiday Party", forms[0].Title)
	assert.Equal(t, "12-25-2024", forms[0].Date)
	assert.Equal(t, "Chapter 3, 4", forms[1].Description)
	assert.Equal(t, "19:00", forms[1].Time)
}

func TestParsePlusOne(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"on", true},
		{"true", true},
		{"Yes", true},
		{"1", true},
		{"", false},
		{"off", false},
		{"false", false},
		{"no", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePlusOne(tt.input))
		})
	}
}

func TestGuest_CSVMarshaling(t *testing.T) {
	guests := []GuestCSV{
		Guest{Name: "Ada", Email: "ada@example.com", Phone: "555-0100", PlusOne: true}.CSV(),
	}

	content, err := gocsv.MarshalString(&guests)

	assert.NoError(t, err)
	assert.Contains(t, content, "name,email,phone,plus_one")
	assert.Contains(t, content, "Ada,ada@example.com,555-0100,true")
}
