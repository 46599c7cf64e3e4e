package model

import (
	"strings"
	"time"
)

type Guest struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	Name       string    `gorm:"column:name" json:"name"`
	Email      string    `gorm:"column:email" json:"email"`
	Phone      string    `gorm:"column:phone" json:"phone"`
	PlusOne    bool      `gorm:"column:plus_one" json:"plus_one"`
	Events     []Event   `gorm:"many2many:event_guests;" json:"events,omitempty"`
	CreateDate time.Time `gorm:"column:create_date" json:"create_date"`
	UpdateDate time.Time `gorm:"column:update_date" json:"update_date"`
}

func (m *Guest) TableName() string {
	return "guests"
}

type GuestCSV struct {
	Name    string `csv:"name"`
	Email   string `csv:"email"`
	Phone   string `csv:"phone"`
	PlusOne bool   `csv:"plus_one"`
}

func (m Guest) CSV() GuestCSV {
	return GuestCSV{
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		PlusOne: m.PlusOne,
	}
}

// ParsePlusOne reads the plus-one form value. Checkboxes post "on".
func ParsePlusOne(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "y", "1":
		return true
	}
	return false
}
