package event

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"

	"github.com/google/uuid"
)

// EventRepository contract interface
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id string) (domain.Event, error)
	FindAll(ctx context.Context) ([]domain.Event, error)
	FindBetween(ctx context.Context, from, to time.Time) ([]domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id string) error
}

type eventService struct {
	eventRepo EventRepository

	// Attendance ratio above which an event counts as trending.
	trendingThreshold float64
}

func NewEventService(eventRepo EventRepository) *eventService {
	return &eventService{
		eventRepo:         eventRepo,
		trendingThreshold: 0.7,
	}
}

func (s *eventService) GetAllEvents(ctx context.Context) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all events")
		return nil, fmt.Errorf("context error: %w", err)
	}

	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all events", err)
		return nil, err
	}

	return events, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	if id == "" {
		logger.Error("invalid event id")
		return nil, errors.New("invalid event id")
	}

	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find event by id", err)
		return nil, err
	}

	return &event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create event")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if event.Title == "" {
		logger.Error("Invalid event data: title is required")
		return nil, errors.New("event title is required")
	}

	if event.Category == "" {
		logger.Error("Invalid event data: category is required")
		return nil, errors.New("event category is required")
	}

	if event.Date.IsZero() {
		logger.Error("Invalid event data: date is required")
		return nil, errors.New("event date is required")
	}

	if event.MaxAttendees < 0 || event.Attendees < 0 {
		logger.Error("Invalid event data: attendance cannot be negative")
		return nil, errors.New("attendance cannot be negative")
	}

	if event.Difficulty != "" && !domain.ValidDifficulty(event.Difficulty) {
		logger.Error("Invalid event data: unknown difficulty", string(event.Difficulty))
		return nil, errors.New("unknown difficulty")
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Error("failed to create new event", err)
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.Info("event created successfully", "event_id", event.ID)

	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating event")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if event.ID == "" {
		logger.Error("Invalid event data: ID is required")
		return nil, errors.New("event ID is required")
	}

	if event.Title == "" {
		logger.Error("Invalid event data: title is required")
		return nil, errors.New("event title is required")
	}

	if event.Difficulty != "" && !domain.ValidDifficulty(event.Difficulty) {
		logger.Error("Invalid event data: unknown difficulty", string(event.Difficulty))
		return nil, errors.New("unknown difficulty")
	}

	// Verify event exists
	if _, err := s.eventRepo.FindByID(ctx, event.ID); err != nil {
		logger.Error("event not found", err)
		return nil, errors.New("event not found")
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		logger.Error("failed to update event", err)
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	updatedEvent, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		logger.Error("failed to fetch updated event", err)
		return nil, fmt.Errorf("failed to fetch updated event: %w", err)
	}

	logger.Info("event updated success")

	return &updatedEvent, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		logger.Error("Invalid event id when deleting event")
		return errors.New("invalid event id")
	}

	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		logger.Error("event not found", err)
		return errors.New("event not found")
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete event", err)
		return fmt.Errorf("failed to delete event: %w", err)
	}

	logger.Info("event deleted success")

	return nil
}

// GetUpcomingEvents returns events dated at or after now, nearest first.
func (s *eventService) GetUpcomingEvents(ctx context.Context, now time.Time) ([]domain.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find events", err)
		return nil, err
	}

	upcoming := make([]domain.Event, 0, len(events))
	for _, ev := range events {
		if !ev.Date.Before(now) {
			upcoming = append(upcoming, ev)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return upcoming, nil
}

// GetTrendingEvents returns events whose attendance ratio exceeds the
// trending threshold. Events without a capacity never qualify.
func (s *eventService) GetTrendingEvents(ctx context.Context) ([]domain.Event, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find events", err)
		return nil, err
	}

	trending := make([]domain.Event, 0)
	for _, ev := range events {
		if ev.MaxAttendees > 0 && ev.AttendanceRate() > s.trendingThreshold {
			trending = append(trending, ev)
		}
	}

	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].AttendanceRate() > trending[j].AttendanceRate()
	})

	return trending, nil
}

// GetCategories lists the distinct categories present in the catalog, sorted.
func (s *eventService) GetCategories(ctx context.Context) ([]string, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find events", err)
		return nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, ev := range events {
		if ev.Category == "" || seen[ev.Category] {
			continue
		}
		seen[ev.Category] = true
		categories = append(categories, ev.Category)
	}
	sort.Strings(categories)

	return categories, nil
}

// GetCalendarMonth groups a month's events by day of month. Days without
// events are absent from the map.
func (s *eventService) GetCalendarMonth(ctx context.Context, year int, month time.Month) (map[int][]domain.Event, error) {
	if month < time.January || month > time.December {
		return nil, errors.New("invalid month")
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, err := s.eventRepo.FindBetween(ctx, from, to)
	if err != nil {
		logger.Error("Failed to find events for month", err)
		return nil, err
	}

	byDay := make(map[int][]domain.Event)
	for _, ev := range events {
		day := ev.Date.Day()
		byDay[day] = append(byDay[day], ev)
	}

	for day := range byDay {
		sort.SliceStable(byDay[day], func(i, j int) bool {
			return byDay[day][i].Date.Before(byDay[day][j].Date)
		})
	}

	return byDay, nil
}
