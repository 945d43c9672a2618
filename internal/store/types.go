package store

import "time"

// MasteryRecord is the persisted mastery state for one (student, concept)
// pair. Version implements optimistic concurrency: every write bumps it,
// and a write against a stale version fails with ErrConflict.
type MasteryRecord struct {
	StudentID       string    `json:"studentId"`
	ConceptID       string    `json:"conceptId"`
	BKTProbability  float64   `json:"bktProbability"`
	Level           string    `json:"level"`
	PracticeCount   int       `json:"practiceCount"`
	CorrectCount    int       `json:"correctCount"`
	LastPracticedAt time.Time `json:"lastPracticedAt"`
	NextReviewAt    time.Time `json:"nextReviewAt"`
	RetentionScore  *float64  `json:"retentionScore,omitempty"`
	SpeedTrendMs    *int64    `json:"speedTrendMs,omitempty"`
	Version         int64     `json:"version"`
}

// QuestionResponse is one row of the append-only answer log.
type QuestionResponse struct {
	StudentID      string    `json:"studentId"`
	ConceptID      string    `json:"conceptId"`
	SessionID      string    `json:"sessionId,omitempty"`
	QuestionType   string    `json:"questionType"`
	IsCorrect      bool      `json:"isCorrect"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	CreatedAt      time.Time `json:"createdAt"`
}

// SessionRecord is the persisted state of one learning session.
type SessionRecord struct {
	ID                  string
	StudentID           string
	State               string
	CurrentConceptID    string
	QuestionsAnswered   int
	CorrectAnswers      int
	HintsUsed           int
	EmotionalStateStart string
	EmotionalStateEnd   string
	StartedAt           time.Time
	EndedAt             *time.Time
}

// PlanMilestone is one week's worth of concepts within a plan.
type PlanMilestone struct {
	Week       int      `json:"week"`
	ConceptIDs []string `json:"conceptIds"`
	Hours      float64  `json:"hours"`
}

// PlanAdvance is one cursor advance: the concept mastered, the hours it
// took, and when it happened. The trailing velocity is computed over the
// most recent advances.
type PlanAdvance struct {
	ConceptID string    `json:"conceptId"`
	Hours     float64   `json:"hours"`
	At        time.Time `json:"at"`
}

// PlanRecord is the persisted state of one learning plan.
type PlanRecord struct {
	ID                      string
	StudentID               string
	GoalID                  string
	Status                  string
	ConceptSequence         []string
	CurrentConceptIndex     int
	TotalEstimatedHours     float64
	HoursCompleted          float64
	VelocityHoursPerWeek    float64
	Milestones              []PlanMilestone
	AdvanceLog              []PlanAdvance
	TargetCompletionDate    *time.Time
	ProjectedCompletionDate time.Time
	CreatedAt               time.Time
}

// Plan status values.
const (
	PlanActive    = "active"
	PlanPaused    = "paused"
	PlanCompleted = "completed"
	PlanAbandoned = "abandoned"
)
