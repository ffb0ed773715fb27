package recommendation

import (
	"strings"

	"campBuzz/domain"
)

// Engine scores events against a user preference profile. It holds no state
// beyond its weights, so a single instance can be shared freely.
type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	return &Engine{weights: w}
}

// Score computes the match between one event and one preference profile.
// It is a pure function of its inputs: six additive signals, each firing at
// most once, evaluated in fixed priority order (category, interests, skills,
// difficulty, history, popularity). Score and confidence are clamped to
// [0,100]. Malformed data never errors; a signal that cannot be evaluated
// simply does not fire.
func (e *Engine) Score(event domain.Event, prefs domain.UserPreferences) domain.RecommendationScore {
	var (
		score      int
		confidence int
		reasons    []string
	)

	// 1) Category match
	if containsFold(prefs.PreferredCategories, event.Category) {
		score += e.weights.CategoryScore
		confidence += e.weights.CategoryConfidence
		reasons = append(reasons, "Matches your preferred category: "+event.Category)
	}

	// 2) Interest overlap
	if matched := overlapTags(event.Tags, prefs.Interests); len(matched) > 0 {
		score += e.weights.InterestScore
		confidence += e.weights.InterestConfidence
		reasons = append(reasons, "Matches your interests: "+joinFirst(matched, e.weights.MaxReasonItems))
	}

	// 3) Skill overlap
	if matched := overlapTags(event.Tags, prefs.Skills); len(matched) > 0 {
		score += e.weights.SkillScore
		confidence += e.weights.SkillConfidence
		reasons = append(reasons, "Relevant to your skills: "+joinFirst(matched, e.weights.MaxReasonItems))
	}

	// 4) Difficulty match
	if domain.ValidDifficulty(event.Difficulty) && containsFold(prefs.PreferredDifficulty, string(event.Difficulty)) {
		score += e.weights.DifficultyScore
		confidence += e.weights.DifficultyConfidence
		reasons = append(reasons, "Matches your preferred difficulty: "+string(event.Difficulty))
	}

	// 5) History similarity
	if similarToPast(event, prefs.PastEvents) {
		score += e.weights.HistoryScore
		confidence += e.weights.HistoryConfidence
		reasons = append(reasons, "Similar to events you've attended before")
	}

	// 6) Popularity / trending. Zero capacity never awards the bonus.
	if event.MaxAttendees > 0 && event.AttendanceRate() > e.weights.TrendingThreshold {
		score += e.weights.PopularityScore
		confidence += e.weights.PopularityConfidence
		reasons = append(reasons, "Trending event with high attendance")
	}

	if score > maxScore {
		score = maxScore
	}
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return domain.RecommendationScore{
		EventID:    event.ID,
		Score:      score,
		Confidence: confidence,
		Reasons:    reasons,
	}
}

// overlapTags returns the event tags that case-insensitively contain, or are
// contained by, at least one preference entry. Duplicate tags are collapsed so
// they cannot pad the reason string.
func overlapTags(tags []string, prefs []string) []string {
	var matched []string
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		lowTag := strings.ToLower(strings.TrimSpace(tag))
		if lowTag == "" {
			continue
		}
		if _, dup := seen[lowTag]; dup {
			continue
		}
		for _, pref := range prefs {
			lowPref := strings.ToLower(strings.TrimSpace(pref))
			if lowPref == "" {
				continue
			}
			if strings.Contains(lowTag, lowPref) || strings.Contains(lowPref, lowTag) {
				seen[lowTag] = struct{}{}
				matched = append(matched, strings.TrimSpace(tag))
				break
			}
		}
	}
	return matched
}

// similarToPast reports a weak similarity to attendance history: the event
// title contains the first word of a past event label, or some event tag is a
// substring of a past event label.
func similarToPast(event domain.Event, pastEvents []string) bool {
	title := strings.ToLower(event.Title)
	for _, past := range pastEvents {
		lowPast := strings.ToLower(strings.TrimSpace(past))
		if lowPast == "" {
			continue
		}
		firstWord := strings.Fields(lowPast)[0]
		if strings.Contains(title, firstWord) {
			return true
		}
		for _, tag := range event.Tags {
			lowTag := strings.ToLower(strings.TrimSpace(tag))
			if lowTag != "" && strings.Contains(lowPast, lowTag) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(strings.TrimSpace(h), needle) {
			return true
		}
	}
	return false
}

func joinFirst(items []string, max int) string {
	if max <= 0 {
		max = defaultMaxReasonItems
	}
	if len(items) > max {
		items = items[:max]
	}
	return strings.Join(items, ", ")
}
