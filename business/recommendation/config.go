package recommendation

// Weights holds the per-signal contribution to score and confidence.
// Both totals are clamped to [0,100] after summing.
type Weights struct {
	CategoryScore      int
	CategoryConfidence int

	InterestScore      int
	InterestConfidence int

	SkillScore      int
	SkillConfidence int

	DifficultyScore      int
	DifficultyConfidence int

	HistoryScore      int
	HistoryConfidence int

	PopularityScore      int
	PopularityConfidence int

	// Attendance ratio above which an event counts as trending.
	TrendingThreshold float64

	// How many matched interests/skills are named in a reason string.
	MaxReasonItems int
}

const (
	defaultCategoryScore        = 40
	defaultCategoryConfidence   = 30
	defaultInterestScore        = 25
	defaultInterestConfidence   = 25
	defaultSkillScore           = 20
	defaultSkillConfidence      = 20
	defaultDifficultyScore      = 10
	defaultDifficultyConfidence = 15
	defaultHistoryScore         = 5
	defaultHistoryConfidence    = 10
	defaultPopularityScore      = 5
	defaultPopularityConfidence = 5
	defaultTrendingThreshold    = 0.7
	defaultMaxReasonItems       = 2

	maxScore      = 100
	maxConfidence = 100
)

func DefaultWeights() Weights {
	return Weights{
		CategoryScore:      defaultCategoryScore,
		CategoryConfidence: defaultCategoryConfidence,

		InterestScore:      defaultInterestScore,
		InterestConfidence: defaultInterestConfidence,

		SkillScore:      defaultSkillScore,
		SkillConfidence: defaultSkillConfidence,

		DifficultyScore:      defaultDifficultyScore,
		DifficultyConfidence: defaultDifficultyConfidence,

		HistoryScore:      defaultHistoryScore,
		HistoryConfidence: defaultHistoryConfidence,

		PopularityScore:      defaultPopularityScore,
		PopularityConfidence: defaultPopularityConfidence,

		TrendingThreshold: defaultTrendingThreshold,
		MaxReasonItems:    defaultMaxReasonItems,
	}
}
