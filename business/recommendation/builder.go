package recommendation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"campBuzz/domain"
)

// ErrInvalidConfiguration marks a caller mistake in ListOptions (unknown sort
// key, difficulty outside the closed enum). Data-shape issues never raise it.
var ErrInvalidConfiguration = errors.New("invalid list configuration")

const (
	SortRelevance  = "relevance"
	SortDate       = "date"
	SortRating     = "rating"
	SortPopularity = "popularity"

	// FilterAll disables a category/difficulty filter.
	FilterAll = "all"
)

type ListOptions struct {
	SearchText string
	Category   string
	Difficulty string
	SortKey    string

	// Limit caps the result count after sorting. Zero means unbounded.
	Limit int

	// MinScore drops events scoring below it. Zero keeps everything.
	MinScore int
}

// BuildList filters the catalog, scores every surviving event, and orders the
// result. Calling it twice with identical arguments yields element-wise
// identical sequences; the relevance sort is stable so equal-score events keep
// their catalog order.
func (e *Engine) BuildList(events []domain.Event, prefs domain.UserPreferences, opts ListOptions) ([]domain.ScoredEvent, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	filtered := make([]domain.ScoredEvent, 0, len(events))
	for _, ev := range events {
		if !matchesFilters(ev, opts) {
			continue
		}
		sc := e.Score(ev, prefs)
		if opts.MinScore > 0 && sc.Score < opts.MinScore {
			continue
		}
		filtered = append(filtered, domain.ScoredEvent{Event: ev, Score: sc})
	}

	sortScored(filtered, opts.SortKey)

	if opts.Limit > 0 && len(filtered) > opts.Limit {
		filtered = filtered[:opts.Limit]
	}
	return filtered, nil
}

func validateOptions(opts ListOptions) error {
	switch opts.SortKey {
	case "", SortRelevance, SortDate, SortRating, SortPopularity:
	default:
		return fmt.Errorf("%w: unknown sort key %q", ErrInvalidConfiguration, opts.SortKey)
	}

	switch opts.Difficulty {
	case "", FilterAll:
	default:
		if !domain.ValidDifficulty(domain.Difficulty(opts.Difficulty)) {
			return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfiguration, opts.Difficulty)
		}
	}
	return nil
}

func matchesFilters(ev domain.Event, opts ListOptions) bool {
	if q := strings.ToLower(strings.TrimSpace(opts.SearchText)); q != "" {
		if !strings.Contains(strings.ToLower(ev.Title), q) &&
			!strings.Contains(strings.ToLower(ev.Description), q) &&
			!tagContains(ev.Tags, q) {
			return false
		}
	}
	if opts.Category != "" && opts.Category != FilterAll && ev.Category != opts.Category {
		return false
	}
	if opts.Difficulty != "" && opts.Difficulty != FilterAll && string(ev.Difficulty) != opts.Difficulty {
		return false
	}
	return true
}

func tagContains(tags []string, loweredQuery string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}

func sortScored(list []domain.ScoredEvent, sortKey string) {
	switch sortKey {
	case SortDate:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Event.Date.Before(list[j].Event.Date)
		})
	case SortRating:
		// Events without a rating sort last, not as rating 0.
		sort.SliceStable(list, func(i, j int) bool {
			ri, rj := list[i].Event.Rating, list[j].Event.Rating
			if ri == nil {
				return false
			}
			if rj == nil {
				return true
			}
			return *ri > *rj
		})
	case SortPopularity:
		// Zero-capacity events sort last.
		sort.SliceStable(list, func(i, j int) bool {
			ci, cj := list[i].Event.MaxAttendees > 0, list[j].Event.MaxAttendees > 0
			if ci != cj {
				return ci
			}
			return list[i].Event.AttendanceRate() > list[j].Event.AttendanceRate()
		})
	default: // relevance
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Score.Score > list[j].Score.Score
		})
	}
}
