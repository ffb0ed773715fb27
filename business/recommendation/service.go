package recommendation

import (
	"context"
	"fmt"
	"time"

	"campBuzz/domain"
	"campBuzz/pkg/logger"
	"campBuzz/pkg/metrics"
)

// EventRepository contract interface
type EventRepository interface {
	FindAll(ctx context.Context) ([]domain.Event, error)
}

// PreferenceRepository contract interface
type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uint) (domain.UserPreferences, error)
}

type Service struct {
	engine   *Engine
	events   EventRepository
	prefs    PreferenceRepository
	defaultN int
}

func NewService(events EventRepository, prefs PreferenceRepository, w Weights) *Service {
	return &Service{
		engine:   NewEngine(w),
		events:   events,
		prefs:    prefs,
		defaultN: 10,
	}
}

// Recommend scores the current catalog snapshot against the user's profile
// and returns the ordered list. A missing profile degrades to empty
// preferences; no signal fires and every event scores zero.
func (s *Service) Recommend(ctx context.Context, userID uint, opts ListOptions) ([]domain.ScoredEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RecommendLatency.Observe(time.Since(start).Seconds())
	}()

	if opts.Limit <= 0 {
		opts.Limit = s.defaultN
	}

	events, err := s.events.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load event catalog", err)
		return nil, fmt.Errorf("load events: %w", err)
	}
	if len(events) == 0 {
		return []domain.ScoredEvent{}, nil
	}

	prefs, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		logger.Warn("No preference profile, using empty preferences", "user_id", userID)
		prefs = domain.UserPreferences{UserID: userID}
	}

	out, err := s.engine.BuildList(events, prefs, opts)
	if err != nil {
		return nil, err
	}

	metrics.RecommendRequests.Inc()
	return out, nil
}

// ScoreEvent exposes a single-event score, used by the event detail endpoint.
func (s *Service) ScoreEvent(ctx context.Context, userID uint, event domain.Event) (domain.RecommendationScore, error) {
	if err := ctx.Err(); err != nil {
		return domain.RecommendationScore{}, fmt.Errorf("context error: %w", err)
	}

	prefs, err := s.prefs.FindByUserID(ctx, userID)
	if err != nil {
		prefs = domain.UserPreferences{UserID: userID}
	}

	return s.engine.Score(event, prefs), nil
}
