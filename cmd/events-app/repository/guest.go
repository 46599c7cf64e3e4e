package repository

import (
	"context"
	"errors"
	"events-app-backend/cmd/events-app/model"

	"gorm.io/gorm"
)

type GuestRepo struct {
	db *gorm.DB
}

func NewGuestRepo(db *gorm.DB) *GuestRepo {
	return &GuestRepo{
		db: db,
	}
}

// AddGuest stores guest and attaches it to the event with eventID. The
// returned event has its full guest collection loaded.
func (r *GuestRepo) AddGuest(ctx context.Context, eventID string, guest model.Guest) (*model.Event, error) {

	var event model.Event

	err := r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			err := tx.Where("id = ?", eventID).First(&event).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrEventNotFound
			}
			if err != nil {
				return err
			}

			if err := tx.Omit("Events").Create(&guest).Error; err != nil {
				return err
			}

			if err := tx.Model(&event).Association("Guests").Append(&guest); err != nil {
				return err
			}

			return tx.Model(&event).Association("Guests").Find(&event.Guests)
		})

	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (r *GuestRepo) ListGuests(ctx context.Context, eventID string) ([]model.Guest, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		Preload("Guests").
		Where("id = ?", eventID).
		First(&event)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, model.ErrEventNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return event.Guests, nil
}

// Migrate creates or updates the events, guests and event_guests tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.
		WithContext(ctx).
		AutoMigrate(&model.Event{}, &model.Guest{})
}
