package repository

import (
	"context"
	"errors"
	"events-app-backend/cmd/events-app/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	db *gorm.DB
}

func NewEventRepo(db *gorm.DB) *EventRepo {
	return &EventRepo{
		db: db,
	}
}

func (r *EventRepo) ListEvents(ctx context.Context) ([]model.Event, error) {

	var events []model.Event

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Order("create_date").
		Find(&events)

	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// GetEvent loads one event with its guests.
func (r *EventRepo) GetEvent(ctx context.Context, id string) (*model.Event, error) {

	var event model.Event

	result := r.db.
		WithContext(ctx).
		Preload("Guests").
		Where("id = ?", id).
		First(&event)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, model.ErrEventNotFound
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

func (r *EventRepo) CreateEvent(ctx context.Context, event model.Event) error {

	result := r.db.
		WithContext(ctx).
		Omit("Guests").
		Create(&event)

	if result.Error != nil {
		return result.Error
	}

	return nil
}

// CreateEvents inserts all events in one transaction.
func (r *EventRepo) CreateEvents(ctx context.Context, events []model.Event) error {

	if len(events) == 0 {
		return nil
	}

	return r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			return tx.
				Omit("Guests").
				CreateInBatches(&events, 100).
				Error
		})
}

// UpdateEvent overwrites title, description, date and time of an existing event.
func (r *EventRepo) UpdateEvent(ctx context.Context, event model.Event) error {

	result := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"time":        event.Time,
			"update_date": event.UpdateDate,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrEventNotFound
	}

	return nil
}

// DeleteEvent removes the event and its guest links. Guests stay.
func (r *EventRepo) DeleteEvent(ctx context.Context, id string) error {

	return r.db.
		WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			var event model.Event
			err := tx.Where("id = ?", id).First(&event).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ErrEventNotFound
			}
			if err != nil {
				return err
			}

			if err := tx.Model(&event).Association("Guests").Clear(); err != nil {
				return err
			}

			return tx.Delete(&event).Error
		})
}
