package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campBuzz/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{
		DB: db,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return domain.Event{}, fmt.Errorf("context error: %w", err)
	}

	var event domain.Event

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, errors.New("event not found")
		}
		return domain.Event{}, fmt.Errorf("failed to find event: %w", err)
	}

	return event, nil
}

// FindAll returns the catalog in stable insertion order so that relevance
// ties keep the same position between calls.
func (r *EventRepository) FindAll(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.Event
	if err := r.DB.WithContext(ctx).Order("created_at, id").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to find events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) FindBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.Event
	err := r.DB.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events in range: %w", err)
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existingEvent domain.Event
	if err := r.DB.WithContext(ctx).Where("id = ?", event.ID).First(&existingEvent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("event not found")
		}
		return fmt.Errorf("failed to find event: %w", err)
	}

	updateData := map[string]interface{}{
		"title":         event.Title,
		"description":   event.Description,
		"date":          event.Date,
		"time_slot":     event.TimeSlot,
		"location":      event.Location,
		"category":      event.Category,
		"club":          event.Club,
		"attendees":     event.Attendees,
		"max_attendees": event.MaxAttendees,
		"tags":          event.Tags,
		"difficulty":    event.Difficulty,
		"duration":      event.Duration,
		"image":         event.Image,
		"rating":        event.Rating,
		"reviews":       event.Reviews,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Event{}).Where("id = ?", event.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("event not found or already deleted")
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&domain.Event{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("event not found or already deleted")
	}

	return nil
}
