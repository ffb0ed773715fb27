//go:build !integration

package recommendation

import (
	"reflect"
	"testing"

	"campBuzz/domain"
)

func testPrefs() domain.UserPreferences {
	return domain.UserPreferences{
		UserID:              1,
		Interests:           []string{"React", "Machine Learning"},
		Skills:              []string{"Python", "Public Speaking"},
		PreferredCategories: []string{"Technology", "Career"},
		PreferredDifficulty: []string{"Intermediate"},
		PastEvents:          []string{"Hackathon 2025", "AI Workshop"},
	}
}

func TestScoreFullMatch(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	event := domain.Event{
		ID:           "ev-1",
		Title:        "React Workshop",
		Category:     "Technology",
		Tags:         []string{"React", "Web"},
		Difficulty:   domain.DifficultyAdvanced,
		Attendees:    45,
		MaxAttendees: 60,
	}

	got := engine.Score(event, testPrefs())

	// category 40 + interests 25 + popularity 5
	if got.Score != 70 {
		t.Errorf("score = %d, want 70", got.Score)
	}
	// category 30 + interests 25 + popularity 5
	if got.Confidence != 60 {
		t.Errorf("confidence = %d, want 60", got.Confidence)
	}

	wantReasons := []string{
		"Matches your preferred category: Technology",
		"Matches your interests: React",
		"Trending event with high attendance",
	}
	if !reflect.DeepEqual(got.Reasons, wantReasons) {
		t.Errorf("reasons = %v, want %v", got.Reasons, wantReasons)
	}
}

func TestScoreNoMatch(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	event := domain.Event{
		ID:       "ev-2",
		Title:    "Pottery Basics",
		Category: "Arts",
		Tags:     []string{"clay"},
	}

	got := engine.Score(event, testPrefs())
	if got.Score != 0 || got.Confidence != 0 {
		t.Errorf("score/confidence = %d/%d, want 0/0", got.Score, got.Confidence)
	}
	if len(got.Reasons) != 0 {
		t.Errorf("reasons = %v, want none", got.Reasons)
	}
}

func TestScoreEmptyPreferences(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	event := domain.Event{
		ID:           "ev-3",
		Title:        "Startup Pitch Night",
		Category:     "Career",
		Attendees:    90,
		MaxAttendees: 100,
	}

	// only the popularity signal can fire for a blank profile
	got := engine.Score(event, domain.UserPreferences{UserID: 9})
	if got.Score != 5 || got.Confidence != 5 {
		t.Errorf("score/confidence = %d/%d, want 5/5", got.Score, got.Confidence)
	}
}

func TestScoreDeterministic(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := testPrefs()

	event := domain.Event{
		ID:         "ev-4",
		Title:      "AI Seminar",
		Category:   "Technology",
		Tags:       []string{"machine learning", "python"},
		Difficulty: domain.DifficultyIntermediate,
	}

	first := engine.Score(event, prefs)
	for i := 0; i < 20; i++ {
		again := engine.Score(event, prefs)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestScoreCategoryMonotonic(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := testPrefs()

	base := domain.Event{ID: "ev-5", Title: "Design Sprint", Category: "Design"}
	matching := base
	matching.Category = "Technology"

	without := engine.Score(base, prefs)
	with := engine.Score(matching, prefs)

	if with.Score != without.Score+defaultCategoryScore {
		t.Errorf("category match added %d, want %d", with.Score-without.Score, defaultCategoryScore)
	}
}

func TestScoreCategoryCaseInsensitive(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	event := domain.Event{ID: "ev-6", Title: "Tech Meetup", Category: "technology"}
	got := engine.Score(event, testPrefs())
	if got.Score != defaultCategoryScore {
		t.Errorf("score = %d, want %d", got.Score, defaultCategoryScore)
	}
}

func TestScoreZeroCapacityNoPopularity(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	event := domain.Event{
		ID:           "ev-7",
		Title:        "Open Mic",
		Category:     "Social",
		Attendees:    500,
		MaxAttendees: 0,
	}

	got := engine.Score(event, testPrefs())
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 for zero-capacity event", got.Score)
	}
}

func TestScoreAtThresholdNoPopularity(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	// exactly 0.7 must not count as trending, the ratio has to exceed it
	event := domain.Event{
		ID:           "ev-8",
		Title:        "Career Fair",
		Attendees:    70,
		MaxAttendees: 100,
	}

	got := engine.Score(event, domain.UserPreferences{})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 at exact threshold", got.Score)
	}
}

func TestScoreDuplicateTagsNoDoubleCount(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{Interests: []string{"React"}}

	single := domain.Event{ID: "a", Title: "x", Tags: []string{"React"}}
	duped := domain.Event{ID: "b", Title: "x", Tags: []string{"React", "React", "react"}}

	s1 := engine.Score(single, prefs)
	s2 := engine.Score(duped, prefs)

	if s1.Score != s2.Score {
		t.Errorf("duplicate tags changed score: %d vs %d", s1.Score, s2.Score)
	}
	if s2.Reasons[0] != "Matches your interests: React" {
		t.Errorf("reason padded by duplicates: %q", s2.Reasons[0])
	}
}

func TestScoreReasonListCapped(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{Interests: []string{"go", "rust", "zig"}}

	event := domain.Event{ID: "ev-9", Title: "Systems Night", Tags: []string{"Go", "Rust", "Zig"}}
	got := engine.Score(event, prefs)

	if len(got.Reasons) != 1 {
		t.Fatalf("reasons = %v, want one interest reason", got.Reasons)
	}
	if got.Reasons[0] != "Matches your interests: Go, Rust" {
		t.Errorf("reason = %q, want first two matches only", got.Reasons[0])
	}
}

func TestScoreHistorySimilarity(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{PastEvents: []string{"Hackathon 2025"}}

	byTitle := domain.Event{ID: "a", Title: "Spring Hackathon"}
	byTag := domain.Event{ID: "b", Title: "Build Night", Tags: []string{"hackathon"}}
	unrelated := domain.Event{ID: "c", Title: "Yoga Morning"}

	if got := engine.Score(byTitle, prefs); got.Score != defaultHistoryScore {
		t.Errorf("title similarity score = %d, want %d", got.Score, defaultHistoryScore)
	}
	if got := engine.Score(byTag, prefs); got.Score != defaultHistoryScore {
		t.Errorf("tag similarity score = %d, want %d", got.Score, defaultHistoryScore)
	}
	if got := engine.Score(unrelated, prefs); got.Score != 0 {
		t.Errorf("unrelated score = %d, want 0", got.Score)
	}
}

func TestScoreDifficultyRequiresValidLevel(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{PreferredDifficulty: []string{"Expert"}}

	event := domain.Event{ID: "ev-10", Title: "x", Difficulty: "Expert"}
	if got := engine.Score(event, prefs); got.Score != 0 {
		t.Errorf("score = %d, difficulty outside the enum must not fire", got.Score)
	}
}

func TestScoreClamped(t *testing.T) {
	w := DefaultWeights()
	w.CategoryScore = 90
	w.InterestScore = 90
	w.CategoryConfidence = 90
	w.InterestConfidence = 90
	engine := NewEngine(w)

	event := domain.Event{
		ID:       "ev-11",
		Title:    "React Conf",
		Category: "Technology",
		Tags:     []string{"React"},
	}

	got := engine.Score(event, testPrefs())
	if got.Score != 100 || got.Confidence != 100 {
		t.Errorf("score/confidence = %d/%d, want clamped to 100/100", got.Score, got.Confidence)
	}
}
