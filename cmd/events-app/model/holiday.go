package model

type Holiday struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Types       []string `json:"types,omitempty"`
}

type HolidayData struct {
	Holidays []Holiday `json:"holidays"`
	Month    string    `json:"month"`
}
