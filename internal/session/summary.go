package session

import (
	"time"

	"github.com/brightpath/tutor/internal/store"
)

// Summary is the end-of-session report returned to callers. It is
// derived purely from the persisted record, so rebuilding it for an
// already completed session yields the same result.
type Summary struct {
	SessionID           string     `json:"sessionId"`
	StudentID           string     `json:"studentId"`
	ConceptID           string     `json:"conceptId"`
	State               State      `json:"state"`
	QuestionsAnswered   int        `json:"questionsAnswered"`
	CorrectAnswers      int        `json:"correctAnswers"`
	Accuracy            float64    `json:"accuracy"`
	HintsUsed           int        `json:"hintsUsed"`
	EmotionalStateStart string     `json:"emotionalStateStart,omitempty"`
	EmotionalStateEnd   string     `json:"emotionalStateEnd,omitempty"`
	StartedAt           time.Time  `json:"startedAt"`
	EndedAt             *time.Time `json:"endedAt,omitempty"`
	DurationMinutes     float64    `json:"durationMinutes"`
}

// BuildSummary derives a Summary from a session record.
func BuildSummary(rec *store.SessionRecord) *Summary {
	s := &Summary{
		SessionID:           rec.ID,
		StudentID:           rec.StudentID,
		ConceptID:           rec.CurrentConceptID,
		State:               State(rec.State),
		QuestionsAnswered:   rec.QuestionsAnswered,
		CorrectAnswers:      rec.CorrectAnswers,
		HintsUsed:           rec.HintsUsed,
		EmotionalStateStart: rec.EmotionalStateStart,
		EmotionalStateEnd:   rec.EmotionalStateEnd,
		StartedAt:           rec.StartedAt,
		EndedAt:             rec.EndedAt,
	}
	if rec.QuestionsAnswered > 0 {
		s.Accuracy = float64(rec.CorrectAnswers) / float64(rec.QuestionsAnswered)
	}
	if rec.EndedAt != nil {
		s.DurationMinutes = rec.EndedAt.Sub(rec.StartedAt).Minutes()
	}
	return s
}
