package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"campBuzz/business/recommendation"
	"campBuzz/domain"
	"campBuzz/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		recService RecommendationService
		timeout    time.Duration
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID uint, opts recommendation.ListOptions) ([]domain.ScoredEvent, error)
		ScoreEvent(ctx context.Context, userID uint, event domain.Event) (domain.RecommendationScore, error)
	}
)

func NewRecommendationHandler(recService RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recService: recService,
		timeout:    10 * time.Second,
	}
}

// GetRecommendations builds a personalized event list for the logged-in user.
// Filters and ordering come from query parameters: search, category,
// difficulty, sort, limit, min_score.
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		logger.Error("Failed to get user_id from context")
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	opts := recommendation.ListOptions{
		SearchText: c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		Difficulty: c.QueryParam("difficulty"),
		SortKey:    c.QueryParam("sort"),
	}

	if limit := c.QueryParam("limit"); limit != "" {
		parsed, err := strconv.Atoi(limit)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		opts.Limit = parsed
	}

	if minScore := c.QueryParam("min_score"); minScore != "" {
		parsed, err := strconv.Atoi(minScore)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid min_score"})
		}
		opts.MinScore = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.recService.Recommend(ctx, userID, opts)
	if err != nil {
		if errors.Is(err, recommendation.ErrInvalidConfiguration) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to build recommendations", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
