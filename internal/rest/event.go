package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type (
	EventHandler struct {
		validate     *validator.Validate
		eventService EventService
		timeout      time.Duration
	}

	EventService interface {
		GetAllEvents(ctx context.Context) ([]domain.Event, error)
		GetEventByID(ctx context.Context, id string) (*domain.Event, error)
		CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
		UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
		DeleteEvent(ctx context.Context, id string) error
		GetUpcomingEvents(ctx context.Context, now time.Time) ([]domain.Event, error)
		GetTrendingEvents(ctx context.Context) ([]domain.Event, error)
		GetCategories(ctx context.Context) ([]string, error)
		GetCalendarMonth(ctx context.Context, year int, month time.Month) (map[int][]domain.Event, error)
	}

	EventInput struct {
		Title        string   `json:"title" validate:"required"`
		Description  string   `json:"description"`
		Date         string   `json:"date" validate:"required"`
		Time         string   `json:"time"`
		Location     string   `json:"location"`
		Category     string   `json:"category" validate:"required"`
		Club         string   `json:"club"`
		Attendees    int      `json:"attendees" validate:"gte=0"`
		MaxAttendees int      `json:"max_attendees" validate:"gte=0"`
		Tags         []string `json:"tags"`
		Difficulty   string   `json:"difficulty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
		Duration     string   `json:"duration"`
		Image        string   `json:"image"`
		Rating       *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
		Reviews      int      `json:"reviews" validate:"gte=0"`
	}
)

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{
		validate:     validator.New(),
		eventService: eventService,
		timeout:      10 * time.Second,
	}
}

func (h *EventHandler) GetAllEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.eventService.GetAllEvents(ctx)
	if err != nil {
		logger.Error("Failed to get all events", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func (h *EventHandler) GetEventByID(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	event, err := h.eventService.GetEventByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get event by id", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(event))
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	var request EventInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation event input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event, err := eventFromInput(request)
	if err != nil {
		logger.Error("Invalid event date", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.eventService.CreateEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to create event", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id := c.Param("id")

	var request EventInput

	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation event input", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event, err := eventFromInput(request)
	if err != nil {
		logger.Error("Invalid event date", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	event.ID = id

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.eventService.UpdateEvent(ctx, event)
	if err != nil {
		logger.Error("Failed to update event", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id := c.Param("id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err := h.eventService.DeleteEvent(ctx, id)
	if err != nil {
		logger.Error("Failed to delete event", err)
		if strings.Contains(err.Error(), "not found") {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Event deleted successfully"))
}

func (h *EventHandler) GetUpcomingEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.eventService.GetUpcomingEvents(ctx, time.Now())
	if err != nil {
		logger.Error("Failed to get upcoming events", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func (h *EventHandler) GetTrendingEvents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	events, err := h.eventService.GetTrendingEvents(ctx)
	if err != nil {
		logger.Error("Failed to get trending events", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

func (h *EventHandler) GetCategories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	categories, err := h.eventService.GetCategories(ctx)
	if err != nil {
		logger.Error("Failed to get event categories", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(categories))
}

// GetCalendarMonth returns events for one month grouped by day of month.
func (h *EventHandler) GetCalendarMonth(c echo.Context) error {
	now := time.Now()

	year := now.Year()
	if y := c.QueryParam("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid year"})
		}
		year = parsed
	}

	month := now.Month()
	if m := c.QueryParam("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid month"})
		}
		month = time.Month(parsed)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	calendar, err := h.eventService.GetCalendarMonth(ctx, year, month)
	if err != nil {
		logger.Error("Failed to get calendar month", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"year":  year,
		"month": int(month),
		"days":  calendar,
	}))
}

func eventFromInput(request EventInput) (*domain.Event, error) {
	date, err := time.Parse(time.RFC3339, request.Date)
	if err != nil {
		// catalog imports use plain dates
		date, err = time.Parse("2006-01-02", request.Date)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Event{
		Title:        request.Title,
		Description:  request.Description,
		Date:         date,
		TimeSlot:     request.Time,
		Location:     request.Location,
		Category:     request.Category,
		Club:         request.Club,
		Attendees:    request.Attendees,
		MaxAttendees: request.MaxAttendees,
		Tags:         datatypes.NewJSONSlice(request.Tags),
		Difficulty:   domain.Difficulty(request.Difficulty),
		Duration:     request.Duration,
		Image:        request.Image,
		Rating:       request.Rating,
		Reviews:      request.Reviews,
	}, nil
}
