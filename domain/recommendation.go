package domain

// RecommendationScore is a transient scoring result. It is recomputed on every
// request and never persisted; Reasons are ordered by signal priority
// (category, interests, skills, difficulty, history, popularity).
type RecommendationScore struct {
	EventID    string   `json:"event_id"`
	Score      int      `json:"score"`
	Confidence int      `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// ScoredEvent pairs an event with its score for API responses.
type ScoredEvent struct {
	Event Event               `json:"event"`
	Score RecommendationScore `json:"score"`
}
