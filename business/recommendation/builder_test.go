//go:build !integration

package recommendation

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"campBuzz/domain"
)

func f64(v float64) *float64 { return &v }

func testCatalog() []domain.Event {
	base := time.Date(2026, time.March, 1, 18, 0, 0, 0, time.UTC)
	return []domain.Event{
		{
			ID:           "tech-react",
			Title:        "React Workshop",
			Description:  "Build a frontend from scratch",
			Category:     "Technology",
			Tags:         []string{"React"},
			Difficulty:   domain.DifficultyBeginner,
			Date:         base.AddDate(0, 0, 10),
			Attendees:    45,
			MaxAttendees: 60,
			Rating:       f64(4.5),
		},
		{
			ID:           "tech-ml",
			Title:        "Machine Learning Night",
			Description:  "Intro to models",
			Category:     "Technology",
			Tags:         []string{"Machine Learning"},
			Difficulty:   domain.DifficultyAdvanced,
			Date:         base.AddDate(0, 0, 2),
			Attendees:    10,
			MaxAttendees: 100,
			Rating:       f64(4.9),
		},
		{
			ID:           "career-fair",
			Title:        "Career Fair",
			Description:  "Meet recruiters",
			Category:     "Career",
			Difficulty:   domain.DifficultyBeginner,
			Date:         base.AddDate(0, 0, 5),
			Attendees:    95,
			MaxAttendees: 100,
		},
		{
			ID:          "arts-pottery",
			Title:       "Pottery Basics",
			Description: "Hands on with clay",
			Category:    "Arts",
			Difficulty:  domain.DifficultyBeginner,
			Date:        base.AddDate(0, 0, 1),
			Rating:      f64(3.2),
		},
	}
}

func TestBuildListSearchFilter(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SearchText: "recruiters"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Event.ID != "career-fair" {
		t.Errorf("search result = %v, want career-fair only", ids(got))
	}
}

func TestBuildListSearchMatchesTags(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SearchText: "machine"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Event.ID != "tech-ml" {
		t.Errorf("search result = %v, want tech-ml only", ids(got))
	}
}

func TestBuildListCategoryFilter(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{Category: "Technology"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"tech-react", "tech-ml"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("category filter = %v, want %v", ids(got), want)
	}
}

func TestBuildListFilterAllIsNoop(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{Category: FilterAll, Difficulty: FilterAll})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(testCatalog()) {
		t.Errorf("got %d events, want %d", len(got), len(testCatalog()))
	}
}

func TestBuildListDifficultyFilter(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{Difficulty: "Advanced"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Event.ID != "tech-ml" {
		t.Errorf("difficulty filter = %v, want tech-ml only", ids(got))
	}
}

func TestBuildListRelevanceOrderAndStability(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{PreferredCategories: []string{"Technology"}}

	got, err := engine.BuildList(testCatalog(), prefs, ListOptions{SortKey: SortRelevance})
	if err != nil {
		t.Fatal(err)
	}

	// tech-react scores 45 (category + attendance 0.75), tech-ml 40,
	// career-fair 5, pottery 0. Equal scores keep catalog order.
	want := []string{"tech-react", "tech-ml", "career-fair", "arts-pottery"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("relevance order = %v, want %v", ids(got), want)
	}
}

func TestBuildListTieKeepsCatalogOrder(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	// an empty profile leaves only the popularity signal: tech-react and
	// career-fair both score 5 and must keep their catalog order
	got, err := engine.BuildList(testCatalog(), domain.UserPreferences{}, ListOptions{})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"tech-react", "career-fair", "tech-ml", "arts-pottery"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestBuildListSortByDate(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SortKey: SortDate})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"arts-pottery", "tech-ml", "career-fair", "tech-react"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("date order = %v, want %v", ids(got), want)
	}
}

func TestBuildListSortByRatingNilLast(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SortKey: SortRating})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"tech-ml", "tech-react", "arts-pottery", "career-fair"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("rating order = %v, want %v (unrated last)", ids(got), want)
	}
}

func TestBuildListSortByPopularityZeroCapacityLast(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SortKey: SortPopularity})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"career-fair", "tech-react", "tech-ml", "arts-pottery"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("popularity order = %v, want %v (zero capacity last)", ids(got), want)
	}
}

func TestBuildListLimitAppliedAfterSort(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{PreferredCategories: []string{"Technology"}}

	got, err := engine.BuildList(testCatalog(), prefs, ListOptions{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"tech-react", "tech-ml"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("limited list = %v, want top two by relevance %v", ids(got), want)
	}
}

func TestBuildListMinScore(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := domain.UserPreferences{PreferredCategories: []string{"Technology"}}

	got, err := engine.BuildList(testCatalog(), prefs, ListOptions{MinScore: 40})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"tech-react", "tech-ml"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("min score list = %v, want %v", ids(got), want)
	}
}

func TestBuildListUnknownSortKey(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	_, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{SortKey: "price"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestBuildListUnknownDifficulty(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	_, err := engine.BuildList(testCatalog(), testPrefs(), ListOptions{Difficulty: "Expert"})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("err = %v, want ErrInvalidConfiguration", err)
	}
}

func TestBuildListEmptyCatalog(t *testing.T) {
	engine := NewEngine(DefaultWeights())

	got, err := engine.BuildList(nil, testPrefs(), ListOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d events from empty catalog", len(got))
	}
}

func TestBuildListIdempotent(t *testing.T) {
	engine := NewEngine(DefaultWeights())
	prefs := testPrefs()
	opts := ListOptions{SortKey: SortRelevance, Limit: 3}

	first, err := engine.BuildList(testCatalog(), prefs, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := engine.BuildList(testCatalog(), prefs, opts)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func ids(list []domain.ScoredEvent) []string {
	out := make([]string, 0, len(list))
	for _, se := range list {
		out = append(out, se.Event.ID)
	}
	return out
}
