package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/events"
	"github.com/brightpath/tutor/internal/gate"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/planner"
	"github.com/brightpath/tutor/internal/store"
)

// stubContent returns fixed narrative strings and records warm calls.
type stubContent struct {
	mu     sync.Mutex
	warmed []string
}

func (c *stubContent) Teaching(_ context.Context, n *curriculum.ConceptNode) string {
	return "teach:" + n.ID
}

func (c *stubContent) Hint(_ context.Context, n *curriculum.ConceptNode, _ int) string {
	return "hint:" + n.ID
}

func (c *stubContent) Celebration(_ context.Context, n *curriculum.ConceptNode) string {
	return "celebrate:" + n.ID
}

func (c *stubContent) Encouragement(_ context.Context, n *curriculum.ConceptNode) string {
	return "encourage:" + n.ID
}

func (c *stubContent) Warm(_ context.Context, n *curriculum.ConceptNode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warmed = append(c.warmed, n.ID)
}

// capturePublisher records published events synchronously.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(ev events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *capturePublisher) byType(t events.Type) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, ev := range p.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

type fixture struct {
	svc       *Service
	mem       *store.Memory
	content   *stubContent
	published *capturePublisher
	planSvc   *planner.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := config.Default()
	log := logging.NewNop()
	mem := store.NewMemory()
	graph := curriculum.Default()

	masterySvc := mastery.NewService(mem, cfg, log)
	gateSvc := gate.NewService(mem, mem, cfg.Gate, log)
	planSvc := planner.NewService(mem.PlanRepo(), masterySvc, mem, graph, cfg.Planner, log)

	content := &stubContent{}
	published := &capturePublisher{}

	svc := NewService(mem.SessionRepo(), mem, masterySvc, gateSvc, planSvc, graph, content, published, cfg.Session, log)
	return &fixture{svc: svc, mem: mem, content: content, published: published, planSvc: planSvc}
}

func TestStart_BeginsInTeaching(t *testing.T) {
	f := newFixture(t)

	sess, teaching, err := f.svc.Start(context.Background(), "student-1", "ns-count-100", "calm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sess.State != StateTeaching {
		t.Fatalf("expected teaching state, got %s", sess.State)
	}
	if teaching != "teach:ns-count-100" {
		t.Fatalf("unexpected teaching text: %q", teaching)
	}
	if sess.EmotionalStateStart != "calm" {
		t.Fatalf("expected emotional state recorded, got %q", sess.EmotionalStateStart)
	}
}

func TestStart_UnknownConcept(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Start(context.Background(), "student-1", "no-such-concept", "")
	if err == nil {
		t.Fatal("expected error for unknown concept")
	}
}

func TestSubmitAnswer_DefaultLandsInPractice(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "ns-count-100", "")

	res, err := f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{
		SessionID:      sess.ID,
		QuestionType:   "recall",
		IsCorrect:      true,
		ResponseTimeMs: 4000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Session.State != StatePractice {
		t.Fatalf("expected practice, got %s", res.Session.State)
	}
	if res.Session.QuestionsAnswered != 1 || res.Session.CorrectAnswers != 1 {
		t.Fatalf("counters = (%d, %d), want (1, 1)", res.Session.QuestionsAnswered, res.Session.CorrectAnswers)
	}
	if res.Mastery == nil || res.Mastery.PracticeCount != 1 {
		t.Fatal("expected mastery record updated")
	}
	if !res.Gate.InsufficientData {
		t.Fatal("expected insufficient gate data after one answer")
	}
}

// Ten varied correct answers with improving speed satisfy every gate
// criterion, so the tenth answer celebrates mastery.
func TestSubmitAnswer_TenCorrectCelebrates(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "ns-count-100", "")

	types := []string{"recall", "apply", "word_problem", "recall", "apply", "word_problem", "recall", "apply", "word_problem", "recall"}

	var last *SubmitResult
	for i := 0; i < 10; i++ {
		var err error
		last, err = f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{
			SessionID:      sess.ID,
			QuestionType:   types[i],
			IsCorrect:      true,
			ResponseTimeMs: int64(10000 - i*800), // steadily faster
		})
		if err != nil {
			t.Fatalf("answer %d: unexpected error: %v", i+1, err)
		}
	}

	if last.Session.State != StateCelebrating {
		t.Fatalf("expected celebrating after 10 correct, got %s", last.Session.State)
	}
	if last.Gate.Recommendation != gate.RecommendAdvance {
		t.Fatalf("expected advance recommendation, got %s", last.Gate.Recommendation)
	}
	if last.Narrative != "celebrate:ns-count-100" {
		t.Fatalf("unexpected narrative: %q", last.Narrative)
	}
	if got := f.published.byType(events.MasteryAchieved); len(got) != 1 {
		t.Fatalf("expected 1 mastery event, got %d", len(got))
	}
	// A next concept exists in the branch tree even without a plan.
	if last.NextConcept == nil {
		t.Fatal("expected a next concept recommendation")
	}
}

// Three consecutive wrong answers push BKT below the struggle threshold
// and land the session in STRUGGLING with encouragement.
func TestSubmitAnswer_WrongStreakStruggles(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "fr-add-unlike", "")

	var last *SubmitResult
	for i := 0; i < 3; i++ {
		var err error
		last, err = f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{
			SessionID:      sess.ID,
			QuestionType:   "apply",
			IsCorrect:      false,
			ResponseTimeMs: 20000,
		})
		if err != nil {
			t.Fatalf("answer %d: unexpected error: %v", i+1, err)
		}
	}

	if last.WrongStreak != 3 {
		t.Fatalf("expected wrong streak 3, got %d", last.WrongStreak)
	}
	if last.Mastery.BKTProbability >= 0.25 {
		t.Fatalf("expected BKT below struggle threshold, got %f", last.Mastery.BKTProbability)
	}
	if last.Session.State != StateStruggling {
		t.Fatalf("expected struggling, got %s", last.Session.State)
	}
	if last.Narrative != "encourage:fr-add-unlike" {
		t.Fatalf("unexpected narrative: %q", last.Narrative)
	}
}

func TestSubmitAnswer_InvalidFromHintRequested(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "ns-count-100", "")

	// Move to practice, then into hint_requested.
	if _, err := f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{SessionID: sess.ID, QuestionType: "recall", IsCorrect: true, ResponseTimeMs: 3000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := f.svc.RequestHint(context.Background(), sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{SessionID: sess.ID, QuestionType: "recall", IsCorrect: true, ResponseTimeMs: 3000})
	var invalid *ErrInvalidTransition
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if invalid.From != StateHintRequested {
		t.Fatalf("expected error from hint_requested, got %s", invalid.From)
	}
}

func TestHintFlow(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "ns-count-100", "")
	if _, err := f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{SessionID: sess.ID, QuestionType: "recall", IsCorrect: false, ResponseTimeMs: 3000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, hint, err := f.svc.RequestHint(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != StateHintRequested {
		t.Fatalf("expected hint_requested, got %s", got.State)
	}
	if got.HintsUsed != 1 {
		t.Fatalf("expected 1 hint used, got %d", got.HintsUsed)
	}
	if hint != "hint:ns-count-100" {
		t.Fatalf("unexpected hint: %q", hint)
	}

	back, err := f.svc.ReturnToPractice(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.State != StatePractice {
		t.Fatalf("expected practice, got %s", back.State)
	}
}

func TestEndSession_Idempotent(t *testing.T) {
	f := newFixture(t)
	sess, _, _ := f.svc.Start(context.Background(), "student-1", "ns-count-100", "")
	if _, err := f.svc.SubmitAnswer(context.Background(), SubmitAnswerInput{SessionID: sess.ID, QuestionType: "recall", IsCorrect: true, ResponseTimeMs: 3000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := f.svc.EndSession(context.Background(), sess.ID, "happy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.State != StateCompleted {
		t.Fatalf("expected completed, got %s", first.State)
	}
	if first.EmotionalStateEnd != "happy" {
		t.Fatalf("expected emotional end snapshot, got %q", first.EmotionalStateEnd)
	}
	if first.Accuracy != 1.0 {
		t.Fatalf("expected accuracy 1.0, got %f", first.Accuracy)
	}

	// Ending again returns the same summary, publishes nothing new.
	before := len(f.published.byType(events.SessionCompleted))
	second, err := f.svc.EndSession(context.Background(), sess.ID, "different")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.EmotionalStateEnd != "happy" || second.EndedAt == nil || !second.EndedAt.Equal(*first.EndedAt) {
		t.Fatal("expected identical summary on re-completion")
	}
	if after := len(f.published.byType(events.SessionCompleted)); after != before {
		t.Fatalf("expected no new completion events, got %d -> %d", before, after)
	}
}

func TestEndSession_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.EndSession(context.Background(), "missing", "")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Mastering the cursor concept of an active plan advances the plan and
// publishes a plan_advanced event.
func TestSubmitAnswer_CelebrationAdvancesPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	plan, err := f.planSvc.Generate(ctx, "goal-g3-math", "student-1", 3, nil)
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	first := plan.ConceptSequence[0]

	sess, _, _ := f.svc.Start(ctx, "student-1", first, "")
	types := []string{"recall", "apply", "word_problem"}
	var last *SubmitResult
	for i := 0; i < 10; i++ {
		last, err = f.svc.SubmitAnswer(ctx, SubmitAnswerInput{
			SessionID:      sess.ID,
			QuestionType:   types[i%3],
			IsCorrect:      true,
			ResponseTimeMs: int64(9000 - i*700),
		})
		if err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
	}

	if last.Session.State != StateCelebrating {
		t.Fatalf("expected celebrating, got %s", last.Session.State)
	}
	if len(last.Advancements) != 1 {
		t.Fatalf("expected 1 advancement, got %d", len(last.Advancements))
	}
	if last.Advancements[0].Plan.CurrentConceptIndex != 1 {
		t.Fatalf("expected cursor at 1, got %d", last.Advancements[0].Plan.CurrentConceptIndex)
	}
	if got := f.published.byType(events.PlanAdvanced); len(got) != 1 {
		t.Fatalf("expected 1 plan_advanced event, got %d", len(got))
	}
	// The recommendation follows the plan cursor.
	if last.NextConcept == nil || last.NextConcept.ID != plan.ConceptSequence[1] {
		t.Fatalf("expected next concept %q, got %+v", plan.ConceptSequence[1], last.NextConcept)
	}
	// The next concept's content was warmed for prefetch.
	f.content.mu.Lock()
	warmed := append([]string(nil), f.content.warmed...)
	f.content.mu.Unlock()
	if len(warmed) != 1 || warmed[0] != plan.ConceptSequence[1] {
		t.Fatalf("expected warm call for next concept, got %v", warmed)
	}
}
