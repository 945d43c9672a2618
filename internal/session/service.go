package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/events"
	"github.com/brightpath/tutor/internal/gate"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/planner"
	"github.com/brightpath/tutor/internal/store"
)

// ContentSource produces the narrative text shown during a session.
// Implementations must degrade to canned text rather than fail; the state
// machine never waits on content beyond a bounded timeout.
type ContentSource interface {
	Teaching(ctx context.Context, node *curriculum.ConceptNode) string
	Hint(ctx context.Context, node *curriculum.ConceptNode, wrongStreak int) string
	Celebration(ctx context.Context, node *curriculum.ConceptNode) string
	Encouragement(ctx context.Context, node *curriculum.ConceptNode) string
}

// warmer is the optional prefetch capability of a ContentSource.
type warmer interface {
	Warm(ctx context.Context, node *curriculum.ConceptNode)
}

// Service orchestrates learning sessions: it applies the state machine,
// feeds answers through the mastery model and gate, and decorates
// transitions with narrative content.
type Service struct {
	sessions   store.SessionRepo
	responses  store.ResponseRepo
	masterySvc *mastery.Service
	gateSvc    *gate.Service
	plannerSvc *planner.Service
	graph      *curriculum.Graph
	content    ContentSource
	publisher  events.Publisher
	cfg        config.SessionConfig
	log        *logging.Logger

	now func() time.Time
}

// NewService creates a session service.
func NewService(
	sessions store.SessionRepo,
	responses store.ResponseRepo,
	masterySvc *mastery.Service,
	gateSvc *gate.Service,
	plannerSvc *planner.Service,
	graph *curriculum.Graph,
	content ContentSource,
	publisher events.Publisher,
	cfg config.SessionConfig,
	log *logging.Logger,
) *Service {
	return &Service{
		sessions:   sessions,
		responses:  responses,
		masterySvc: masterySvc,
		gateSvc:    gateSvc,
		plannerSvc: plannerSvc,
		graph:      graph,
		content:    content,
		publisher:  publisher,
		cfg:        cfg,
		log:        log,
		now:        time.Now,
	}
}

// Session is the caller-facing session snapshot.
type Session struct {
	ID                  string     `json:"id"`
	StudentID           string     `json:"studentId"`
	State               State      `json:"state"`
	CurrentConceptID    string     `json:"currentConceptId"`
	QuestionsAnswered   int        `json:"questionsAnswered"`
	CorrectAnswers      int        `json:"correctAnswers"`
	HintsUsed           int        `json:"hintsUsed"`
	EmotionalStateStart string     `json:"emotionalStateStart,omitempty"`
	EmotionalStateEnd   string     `json:"emotionalStateEnd,omitempty"`
	StartedAt           time.Time  `json:"startedAt"`
	EndedAt             *time.Time `json:"endedAt,omitempty"`
}

func fromRecord(rec *store.SessionRecord) *Session {
	return &Session{
		ID:                  rec.ID,
		StudentID:           rec.StudentID,
		State:               State(rec.State),
		CurrentConceptID:    rec.CurrentConceptID,
		QuestionsAnswered:   rec.QuestionsAnswered,
		CorrectAnswers:      rec.CorrectAnswers,
		HintsUsed:           rec.HintsUsed,
		EmotionalStateStart: rec.EmotionalStateStart,
		EmotionalStateEnd:   rec.EmotionalStateEnd,
		StartedAt:           rec.StartedAt,
		EndedAt:             rec.EndedAt,
	}
}

// Start begins a session on a concept in the TEACHING state and returns
// the session plus an introduction narrative.
func (s *Service) Start(ctx context.Context, studentID, conceptID, emotionalState string) (*Session, string, error) {
	node, err := s.graph.Node(conceptID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	rec := &store.SessionRecord{
		ID:                  uuid.NewString(),
		StudentID:           studentID,
		State:               string(StateTeaching),
		CurrentConceptID:    conceptID,
		EmotionalStateStart: emotionalState,
		StartedAt:           s.now(),
	}
	if err := s.sessions.Create(ctx, rec); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}

	teaching := s.content.Teaching(ctx, &node)
	return fromRecord(rec), teaching, nil
}

// SubmitAnswerInput carries one answered question.
type SubmitAnswerInput struct {
	SessionID      string
	QuestionType   string
	IsCorrect      bool
	ResponseTimeMs int64
}

// SubmitResult reports everything one answer changed.
type SubmitResult struct {
	Session     *Session              `json:"session"`
	Mastery     *store.MasteryRecord  `json:"mastery"`
	Gate        *gate.Result          `json:"gate"`
	WrongStreak int                   `json:"wrongStreak"`
	Narrative   string                `json:"narrative,omitempty"`

	// NextConcept is the recommendation computed on entering
	// CELEBRATING. Nil means the curriculum is exhausted, which is a
	// valid outcome, not an error.
	NextConcept *curriculum.ConceptNode `json:"nextConcept,omitempty"`

	Advancements []*planner.Advancement `json:"advancements,omitempty"`
}

// SubmitAnswer feeds one answer through the engine: it appends to the
// response log, updates the mastery model, re-evaluates the gate, and
// resolves the session transition. Mastery and struggle outcomes are
// raised as internal follow-on events.
func (s *Service) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitResult, error) {
	rec, err := s.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, err
	}
	from := State(rec.State)

	// Resolve the default transition first: an answer submitted in an
	// illegal state must fail before any side effect lands.
	to, err := Next(from, EventSubmitAnswer)
	if err != nil {
		return nil, err
	}

	node, err := s.graph.Node(rec.CurrentConceptID)
	if err != nil {
		return nil, err
	}

	if err := s.responses.Append(ctx, &store.QuestionResponse{
		StudentID:      rec.StudentID,
		ConceptID:      rec.CurrentConceptID,
		SessionID:      rec.ID,
		QuestionType:   in.QuestionType,
		IsCorrect:      in.IsCorrect,
		ResponseTimeMs: in.ResponseTimeMs,
		CreatedAt:      s.now(),
	}); err != nil {
		return nil, fmt.Errorf("append response: %w", err)
	}

	mRec, err := s.masterySvc.UpdateMastery(ctx, rec.StudentID, rec.CurrentConceptID, string(node.Domain), in.IsCorrect)
	if err != nil {
		return nil, fmt.Errorf("update mastery: %w", err)
	}

	gateRes, err := s.gateSvc.Evaluate(ctx, rec.StudentID, rec.CurrentConceptID)
	if err != nil {
		return nil, fmt.Errorf("evaluate gate: %w", err)
	}

	wrongStreak, err := s.wrongStreak(ctx, rec.StudentID, rec.CurrentConceptID)
	if err != nil {
		s.log.Warn("wrong streak unavailable", "session", rec.ID, "error", err)
	}

	result := &SubmitResult{
		Mastery:     mRec,
		Gate:        gateRes,
		WrongStreak: wrongStreak,
	}

	// Follow-on events override the default landing state.
	switch {
	case gateRes.Recommendation == gate.RecommendAdvance && !gateRes.InsufficientData:
		if next, err := Next(to, EventMasteryAchieved); err == nil {
			to = next
		}
	case wrongStreak >= s.cfg.StruggleWrongStreak && mRec.BKTProbability < s.cfg.StruggleBKTThreshold:
		if next, err := Next(to, EventStruggleDetected); err == nil {
			to = next
		}
	}

	rec.QuestionsAnswered++
	if in.IsCorrect {
		rec.CorrectAnswers++
	}
	rec.State = string(to)
	if err := s.sessions.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	result.Session = fromRecord(rec)

	// Narrative and downstream effects never fail the committed
	// transition.
	switch to {
	case StateCelebrating:
		s.onCelebrating(ctx, rec, &node, result)
	case StateStruggling:
		result.Narrative = s.content.Encouragement(ctx, &node)
		s.log.Info("struggle detected",
			"session", rec.ID,
			"concept", rec.CurrentConceptID,
			"wrong_streak", wrongStreak,
			"bkt", mRec.BKTProbability,
		)
	}

	return result, nil
}

// onCelebrating runs the mastery side effects: plan advancement, the next
// concept recommendation, celebration text, and event publication.
func (s *Service) onCelebrating(ctx context.Context, rec *store.SessionRecord, node *curriculum.ConceptNode, result *SubmitResult) {
	advancements, err := s.plannerSvc.AdvanceForConcept(ctx, rec.StudentID, rec.CurrentConceptID)
	if err != nil {
		s.log.Warn("plan advancement failed", "session", rec.ID, "error", err)
	}
	result.Advancements = advancements

	if next, ok := s.nextRecommendation(ctx, rec.StudentID); ok {
		result.NextConcept = next
		if w, canWarm := s.content.(warmer); canWarm {
			w.Warm(context.WithoutCancel(ctx), next)
		}
	}

	result.Narrative = s.content.Celebration(ctx, node)

	s.publisher.Publish(events.Event{
		Type:       events.MasteryAchieved,
		StudentID:  rec.StudentID,
		OccurredAt: s.now(),
		Fields: map[string]any{
			"sessionId": rec.ID,
			"conceptId": rec.CurrentConceptID,
		},
	})
	for _, adv := range advancements {
		s.publisher.Publish(events.Event{
			Type:       events.PlanAdvanced,
			StudentID:  rec.StudentID,
			OccurredAt: s.now(),
			Fields: map[string]any{
				"planId":        adv.Plan.ID,
				"conceptId":     adv.ConceptID,
				"planCompleted": adv.PlanCompleted,
			},
		})
	}
}

// nextRecommendation walks the plan cursor first, then the branch tree.
// The false return means the curriculum is exhausted.
func (s *Service) nextRecommendation(ctx context.Context, studentID string) (*curriculum.ConceptNode, bool) {
	next, ok, err := s.plannerSvc.NextForStudent(ctx, studentID)
	if err != nil {
		s.log.Warn("plan recommendation failed", "student", studentID, "error", err)
	}
	if ok {
		return &next.Node, true
	}

	mastered, err := s.masterySvc.MasteredSet(ctx, studentID)
	if err != nil {
		s.log.Warn("branch recommendation failed", "student", studentID, "error", err)
		return nil, false
	}
	if node, ok := s.graph.NextInBranches(mastered); ok {
		return &node, true
	}
	return nil, false
}

// wrongStreak counts consecutive incorrect answers at the head of the
// response log for the pair.
func (s *Service) wrongStreak(ctx context.Context, studentID, conceptID string) (int, error) {
	recent, err := s.responses.RecentByConcept(ctx, studentID, conceptID, s.cfg.StruggleWrongStreak)
	if err != nil {
		return 0, err
	}
	streak := 0
	for _, r := range recent {
		if r.IsCorrect {
			break
		}
		streak++
	}
	return streak, nil
}

// RequestHint transitions PRACTICE to HINT_REQUESTED and returns a hint.
func (s *Service) RequestHint(ctx context.Context, sessionID string) (*Session, string, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	to, err := Next(State(rec.State), EventRequestHint)
	if err != nil {
		return nil, "", err
	}

	node, err := s.graph.Node(rec.CurrentConceptID)
	if err != nil {
		return nil, "", err
	}

	wrongStreak, err := s.wrongStreak(ctx, rec.StudentID, rec.CurrentConceptID)
	if err != nil {
		wrongStreak = 0
	}

	rec.State = string(to)
	rec.HintsUsed++
	if err := s.sessions.Update(ctx, rec); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	hint := s.content.Hint(ctx, &node, wrongStreak)
	return fromRecord(rec), hint, nil
}

// ReturnToPractice moves a session back to PRACTICE from HINT_REQUESTED
// or STRUGGLING.
func (s *Service) ReturnToPractice(ctx context.Context, sessionID string) (*Session, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	to, err := Next(State(rec.State), EventReturnToPractice)
	if err != nil {
		return nil, err
	}

	rec.State = string(to)
	if err := s.sessions.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return fromRecord(rec), nil
}

// Get returns a session snapshot.
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return fromRecord(rec), nil
}

// EndSession completes a session from any non-terminal state and returns
// its summary. Ending an already completed session is idempotent: the
// prior summary comes back unchanged.
func (s *Service) EndSession(ctx context.Context, sessionID, emotionalState string) (*Summary, error) {
	rec, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if State(rec.State) == StateCompleted {
		return BuildSummary(rec), nil
	}

	to, err := Next(State(rec.State), EventEndSession)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rec.State = string(to)
	rec.EndedAt = &now
	if emotionalState != "" {
		rec.EmotionalStateEnd = emotionalState
	}
	if err := s.sessions.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	summary := BuildSummary(rec)
	s.publisher.Publish(events.Event{
		Type:       events.SessionCompleted,
		StudentID:  rec.StudentID,
		OccurredAt: now,
		Fields: map[string]any{
			"sessionId":         rec.ID,
			"questionsAnswered": rec.QuestionsAnswered,
			"accuracy":          summary.Accuracy,
		},
	})
	return summary, nil
}
