package planner

import (
	"context"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/store"
)

// seedConceptTime logs answer time against a concept so advancement has
// elapsed hours to account.
func seedConceptTime(t *testing.T, mem *store.Memory, studentID, conceptID string, totalMs int64) {
	t.Helper()
	if err := mem.Append(context.Background(), &store.QuestionResponse{
		StudentID:      studentID,
		ConceptID:      conceptID,
		QuestionType:   "recall",
		IsCorrect:      true,
		ResponseTimeMs: totalMs,
		CreatedAt:      fixedNow,
	}); err != nil {
		t.Fatalf("append response: %v", err)
	}
}

func TestAdvanceForConcept_MovesCursor(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	first := plan.ConceptSequence[0]
	seedConceptTime(t, f.mem, "s1", first, 30*60*1000) // 30 minutes

	advs, err := f.svc.AdvanceForConcept(ctx, "s1", first)
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	if len(advs) != 1 {
		t.Fatalf("got %d advancements, want 1", len(advs))
	}
	adv := advs[0]
	if adv.ConceptID != first {
		t.Errorf("got concept %q, want %q", adv.ConceptID, first)
	}
	if adv.ElapsedHours != 0.5 {
		t.Errorf("got %g elapsed hours, want 0.5", adv.ElapsedHours)
	}
	if adv.PlanCompleted {
		t.Error("plan with remaining concepts should not be completed")
	}
	if adv.Plan.CurrentConceptIndex != 1 {
		t.Errorf("got cursor %d, want 1", adv.Plan.CurrentConceptIndex)
	}
	if adv.Plan.HoursCompleted != 0.5 {
		t.Errorf("got %g hours completed, want 0.5", adv.Plan.HoursCompleted)
	}
}

func TestAdvanceForConcept_RecomputesProjection(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	advs, err := f.svc.AdvanceForConcept(ctx, "s1", plan.ConceptSequence[0])
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	// 9 hours remain at 3 h/week: 3 weeks out.
	want := fixedNow.AddDate(0, 0, 21)
	if !advs[0].Plan.ProjectedCompletionDate.Equal(want) {
		t.Errorf("got projection %v, want %v", advs[0].Plan.ProjectedCompletionDate, want)
	}
}

func TestAdvanceForConcept_WindowedVelocity(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	f.svc.cfg.VelocityWindow = 2
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seq := plan.ConceptSequence
	seedConceptTime(t, f.mem, "s1", seq[0], 3_600_000)  // 1h
	seedConceptTime(t, f.mem, "s1", seq[1], 7_200_000)  // 2h
	seedConceptTime(t, f.mem, "s1", seq[2], 36_000_000) // 10h

	if _, err := f.svc.AdvanceForConcept(ctx, "s1", seq[0]); err != nil {
		t.Fatalf("advance %q: %v", seq[0], err)
	}

	f.svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 7) }
	advs, err := f.svc.AdvanceForConcept(ctx, "s1", seq[1])
	if err != nil {
		t.Fatalf("advance %q: %v", seq[1], err)
	}
	// Window covers both advances from plan creation: 3h over 1 week
	// measured, blended with the configured 3 h/week.
	if got := advs[0].Plan.VelocityHoursPerWeek; got != 3 {
		t.Errorf("after second advance: got velocity %g, want 3", got)
	}

	f.svc.now = func() time.Time { return fixedNow.AddDate(0, 0, 14) }
	advs, err = f.svc.AdvanceForConcept(ctx, "s1", seq[2])
	if err != nil {
		t.Fatalf("advance %q: %v", seq[2], err)
	}
	// The window drops the first advance: 12h over the 2 weeks since it,
	// measured 6, blended (3+6)/2. Pace since creation would give 4.75,
	// so the window is what kept the slow start from dragging.
	if got := advs[0].Plan.VelocityHoursPerWeek; got != 4.5 {
		t.Errorf("after third advance: got velocity %g, want 4.5", got)
	}

	rec, err := f.mem.GetPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(rec.AdvanceLog) != 3 {
		t.Errorf("got %d logged advances, want window+1 = 3", len(rec.AdvanceLog))
	}
}

func TestAdvanceForConcept_IgnoresNonCursorConcept(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	advs, err := f.svc.AdvanceForConcept(ctx, "s1", plan.ConceptSequence[2])
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	if len(advs) != 0 {
		t.Errorf("mastery of a non-cursor concept should not advance the plan, got %d advancements", len(advs))
	}

	advs, err = f.svc.AdvanceForConcept(ctx, "s1", "unknown-concept")
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	if len(advs) != 0 {
		t.Errorf("mastery outside any plan is not an error, got %d advancements", len(advs))
	}
}

func TestAdvanceForConcept_CompletesPlan(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var last *Advancement
	for _, id := range plan.ConceptSequence {
		advs, err := f.svc.AdvanceForConcept(ctx, "s1", id)
		if err != nil {
			t.Fatalf("AdvanceForConcept(%q): %v", id, err)
		}
		if len(advs) != 1 {
			t.Fatalf("AdvanceForConcept(%q): got %d advancements, want 1", id, len(advs))
		}
		last = advs[0]
	}
	if !last.PlanCompleted {
		t.Error("advancing past the final concept should complete the plan")
	}
	if last.Plan.Status != store.PlanCompleted {
		t.Errorf("got status %q, want %q", last.Plan.Status, store.PlanCompleted)
	}

	// A completed plan is no longer active and never advances again.
	advs, err := f.svc.AdvanceForConcept(ctx, "s1", plan.ConceptSequence[0])
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	if len(advs) != 0 {
		t.Error("completed plan should not advance")
	}
}

func TestNext_WalksSequence(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	next, ok, err := f.svc.Next(ctx, plan.ID)
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if next.Node.ID != plan.ConceptSequence[0] {
		t.Errorf("got %q, want %q", next.Node.ID, plan.ConceptSequence[0])
	}
	if next.Index != 0 || next.Remaining != 4 {
		t.Errorf("got index %d remaining %d, want 0 and 4", next.Index, next.Remaining)
	}

	for _, id := range plan.ConceptSequence {
		if _, err := f.svc.AdvanceForConcept(ctx, "s1", id); err != nil {
			t.Fatalf("AdvanceForConcept: %v", err)
		}
	}
	if _, ok, err := f.svc.Next(ctx, plan.ID); err != nil || ok {
		t.Errorf("finished plan: got ok=%v err=%v, want ok=false", ok, err)
	}
}

func TestNextForStudent_OldestActivePlanWins(t *testing.T) {
	f := newFixture(t, curriculum.Default())
	ctx := context.Background()

	older, err := f.svc.Generate(ctx, "goal-g3-math", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	f.svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	if _, err := f.svc.Generate(ctx, "goal-fractions", "s1", 4, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	next, ok, err := f.svc.NextForStudent(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("NextForStudent: ok=%v err=%v", ok, err)
	}
	if next.Node.ID != older.ConceptSequence[0] {
		t.Errorf("got %q, want the older plan's cursor %q", next.Node.ID, older.ConceptSequence[0])
	}
}

func TestNextForStudent_NoActivePlans(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	if _, ok, err := f.svc.NextForStudent(context.Background(), "s1"); err != nil || ok {
		t.Errorf("got ok=%v err=%v, want ok=false with no plans", ok, err)
	}
}

func TestPauseResumeAbandon(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	plan, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	paused, err := f.svc.Pause(ctx, plan.ID)
	if err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if paused.Status != store.PlanPaused {
		t.Errorf("got status %q, want %q", paused.Status, store.PlanPaused)
	}
	if _, err := f.svc.Pause(ctx, plan.ID); err == nil {
		t.Error("pausing a paused plan should fail")
	}

	// Paused plans do not advance.
	seedConceptTime(t, f.mem, "s1", plan.ConceptSequence[0], 60*1000)
	advs, err := f.svc.AdvanceForConcept(ctx, "s1", plan.ConceptSequence[0])
	if err != nil {
		t.Fatalf("AdvanceForConcept: %v", err)
	}
	if len(advs) != 0 {
		t.Error("paused plan should not advance")
	}

	resumed, err := f.svc.Resume(ctx, plan.ID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resumed.Status != store.PlanActive {
		t.Errorf("got status %q, want %q", resumed.Status, store.PlanActive)
	}

	abandoned, err := f.svc.Abandon(ctx, plan.ID)
	if err != nil {
		t.Fatalf("Abandon: %v", err)
	}
	if abandoned.Status != store.PlanAbandoned {
		t.Errorf("got status %q, want %q", abandoned.Status, store.PlanAbandoned)
	}
	if _, err := f.svc.Abandon(ctx, plan.ID); err == nil {
		t.Error("abandoning an abandoned plan should fail")
	}
	if _, err := f.svc.Resume(ctx, plan.ID); err == nil {
		t.Error("resuming an abandoned plan should fail")
	}
}
