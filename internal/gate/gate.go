package gate

// Recommendation is the gate's next-step advice, in priority order.
type Recommendation string

const (
	// RecommendAdvance: all four criteria pass.
	RecommendAdvance Recommendation = "advance"
	// RecommendFluencyDrill: the student knows it but isn't fluent.
	RecommendFluencyDrill Recommendation = "fluency_drill"
	// RecommendRetentionReview: accuracy is there but retention is not.
	RecommendRetentionReview Recommendation = "retention_review"
	// RecommendPractice: keep practicing.
	RecommendPractice Recommendation = "practice"
)

// SpeedTrend classifies the response-time trajectory within the window.
type SpeedTrend string

const (
	TrendImproving SpeedTrend = "improving"
	TrendFlat      SpeedTrend = "flat"
	TrendSlowing   SpeedTrend = "slowing"
)

// Criterion is the per-criterion breakdown included in every result.
type Criterion struct {
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Value  float64 `json:"value"`  // measured value (accuracy, type count, score, ratio)
	Bound  float64 `json:"bound"`  // the threshold it was compared against
	Detail string  `json:"detail"` // short human-readable explanation
}

// Result is the gate verdict for one (student, concept) pair.
type Result struct {
	Passed           bool           `json:"passed"`
	Recommendation   Recommendation `json:"recommendation"`
	Criteria         []Criterion    `json:"criteria"`
	ResponsesInWindow int           `json:"responsesInWindow"`

	// InsufficientData is true when fewer than the window size of
	// responses exist. The gate passes unconditionally in that case:
	// missing data must never block progress.
	InsufficientData bool `json:"insufficientData"`

	SpeedTrend SpeedTrend `json:"speedTrend"`
}
