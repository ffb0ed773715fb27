//go:build !integration

package recommendation

import (
	"context"
	"errors"
	"testing"

	"campBuzz/domain"
)

type fakeEventRepo struct {
	events []domain.Event
	err    error
}

func (f *fakeEventRepo) FindAll(ctx context.Context) ([]domain.Event, error) {
	return f.events, f.err
}

type fakePrefRepo struct {
	prefs domain.UserPreferences
	err   error
}

func (f *fakePrefRepo) FindByUserID(ctx context.Context, userID uint) (domain.UserPreferences, error) {
	if f.err != nil {
		return domain.UserPreferences{}, f.err
	}
	return f.prefs, nil
}

func TestRecommendOrdersByScore(t *testing.T) {
	svc := NewService(
		&fakeEventRepo{events: testCatalog()},
		&fakePrefRepo{prefs: testPrefs()},
		DefaultWeights(),
	)

	got, err := svc.Recommend(context.Background(), 1, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("no recommendations")
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score.Score > got[i-1].Score.Score {
			t.Errorf("position %d breaks descending order: %d after %d", i, got[i].Score.Score, got[i-1].Score.Score)
		}
	}
}

func TestRecommendMissingProfile(t *testing.T) {
	svc := NewService(
		&fakeEventRepo{events: testCatalog()},
		&fakePrefRepo{err: errors.New("preferences not found")},
		DefaultWeights(),
	)

	got, err := svc.Recommend(context.Background(), 42, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(testCatalog()) {
		t.Errorf("got %d events, want full catalog for empty profile", len(got))
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	events := make([]domain.Event, 0, 15)
	for i := 0; i < 15; i++ {
		events = append(events, domain.Event{ID: string(rune('a' + i)), Title: "Event"})
	}

	svc := NewService(&fakeEventRepo{events: events}, &fakePrefRepo{}, DefaultWeights())

	got, err := svc.Recommend(context.Background(), 1, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Errorf("got %d events, want default limit 10", len(got))
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	svc := NewService(&fakeEventRepo{}, &fakePrefRepo{}, DefaultWeights())

	got, err := svc.Recommend(context.Background(), 1, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestRecommendRepositoryError(t *testing.T) {
	svc := NewService(&fakeEventRepo{err: errors.New("db down")}, &fakePrefRepo{}, DefaultWeights())

	if _, err := svc.Recommend(context.Background(), 1, ListOptions{}); err == nil {
		t.Error("expected error when catalog load fails")
	}
}

func TestRecommendInvalidOptions(t *testing.T) {
	svc := NewService(&fakeEventRepo{events: testCatalog()}, &fakePrefRepo{}, DefaultWeights())

	_, err := svc.Recommend(context.Background(), 1, ListOptions{SortKey: "magic"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	svc := NewService(&fakeEventRepo{events: testCatalog()}, &fakePrefRepo{}, DefaultWeights())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Recommend(ctx, 1, ListOptions{}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestScoreEventUsesProfile(t *testing.T) {
	svc := NewService(
		&fakeEventRepo{},
		&fakePrefRepo{prefs: domain.UserPreferences{PreferredCategories: []string{"Technology"}}},
		DefaultWeights(),
	)

	got, err := svc.ScoreEvent(context.Background(), 1, domain.Event{ID: "x", Category: "Technology"})
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != defaultCategoryScore {
		t.Errorf("score = %d, want %d", got.Score, defaultCategoryScore)
	}
}
