package holiday

import (
	"bytes"
	"encoding/json"
	"events-app-backend/cmd/events-app/model"
	"fmt"
	"net/http"
)

// Response is the envelope returned by the Calendarific holidays endpoint.
type Response struct {
	Meta     Meta    `json:"meta"`
	Response Payload `json:"response"`
}

type Meta struct {
	Code        int    `json:"code"`
	ErrorType   string `json:"error_type,omitempty"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

type Payload struct {
	Holidays []Entry `json:"holidays"`
}

// UnmarshalJSON accepts the empty array Calendarific sends in place of
// the object when a month has no holidays.
func (p *Payload) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		p.Holidays = nil
		return nil
	}

	type payload Payload
	var raw payload
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Payload(raw)
	return nil
}

type Entry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        Date     `json:"date"`
	Type        []string `json:"type"`
}

type Date struct {
	ISO string `json:"iso"`
}

// Decode parses a raw holidays response and rejects API-level errors.
func Decode(body []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return Response{}, fmt.Errorf("decode response: %w", err)
	}

	if resp.Meta.Code != http.StatusOK {
		if resp.Meta.ErrorDetail != "" {
			return Response{}, fmt.Errorf("calendarific error (%d): %s", resp.Meta.Code, resp.Meta.ErrorDetail)
		}
		return Response{}, fmt.Errorf("calendarific error (%d)", resp.Meta.Code)
	}

	return resp, nil
}

// Transform reduces a response to name, description, day and types,
// keeping API order. Calendarific repeats a holiday once per observing
// region; repeats of the same name and day are dropped.
func Transform(resp Response) []model.Holiday {
	holidays := make([]model.Holiday, 0, len(resp.Response.Holidays))
	seen := make(map[string]struct{}, len(resp.Response.Holidays))

	for _, entry := range resp.Response.Holidays {
		day := entry.Date.ISO
		if len(day) > len("2006-01-02") {
			day = day[:len("2006-01-02")]
		}

		key := entry.Name + "|" + day
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		holidays = append(holidays, model.Holiday{
			Name:        entry.Name,
			Description: entry.Description,
			Date:        day,
			Types:       entry.Type,
		})
	}

	return holidays
}
