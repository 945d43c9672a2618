package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/store"
)

var fixedNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

type fixture struct {
	svc     *Service
	mastery *mastery.Service
	mem     *store.Memory
}

func newFixture(t *testing.T, graph *curriculum.Graph) *fixture {
	t.Helper()
	cfg := config.Default()
	log := logging.NewNop()
	mem := store.NewMemory()
	masterySvc := mastery.NewService(mem, cfg, log)
	svc := NewService(mem.PlanRepo(), masterySvc, mem, graph, cfg.Planner, log)
	svc.now = func() time.Time { return fixedNow }
	return &fixture{svc: svc, mastery: masterySvc, mem: mem}
}

// flatGraph returns four independent difficulty-7 concepts (3h each) under
// a single goal, for exact schedule arithmetic.
func flatGraph(t *testing.T) *curriculum.Graph {
	t.Helper()
	nodes := []curriculum.ConceptNode{
		{ID: "w", Code: "p.w", Name: "W", Domain: curriculum.DomainArithmetic, GradeLevel: 3, Difficulty: 7},
		{ID: "x", Code: "p.x", Name: "X", Domain: curriculum.DomainArithmetic, GradeLevel: 3, Difficulty: 7},
		{ID: "y", Code: "p.y", Name: "Y", Domain: curriculum.DomainArithmetic, GradeLevel: 3, Difficulty: 7},
		{ID: "z", Code: "p.z", Name: "Z", Domain: curriculum.DomainArithmetic, GradeLevel: 3, Difficulty: 7},
	}
	goals := []curriculum.Goal{{ID: "goal-flat", Name: "Flat", ConceptIDs: []string{"w", "x", "y", "z"}}}
	g, err := curriculum.NewGraph(nodes, nil, goals)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestGenerate_ScheduleArithmetic(t *testing.T) {
	f := newFixture(t, flatGraph(t))

	plan, err := f.svc.Generate(context.Background(), "goal-flat", "s1", 3, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.TotalEstimatedHours != 12 {
		t.Errorf("got total %g hours, want 12", plan.TotalEstimatedHours)
	}
	if len(plan.Milestones) != 4 {
		t.Fatalf("got %d milestones, want 4", len(plan.Milestones))
	}
	for i, m := range plan.Milestones {
		if m.Week != i+1 {
			t.Errorf("milestone %d: got week %d, want %d", i, m.Week, i+1)
		}
		if m.Hours != 3 {
			t.Errorf("milestone %d: got %g hours, want 3", i, m.Hours)
		}
		if len(m.ConceptIDs) != 1 {
			t.Errorf("milestone %d: got %d concepts, want 1", i, len(m.ConceptIDs))
		}
	}
	wantETA := fixedNow.AddDate(0, 0, 28)
	if !plan.ProjectedCompletionDate.Equal(wantETA) {
		t.Errorf("got projected completion %v, want %v", plan.ProjectedCompletionDate, wantETA)
	}
	if plan.CurrentConceptIndex != 0 || plan.HoursCompleted != 0 {
		t.Errorf("fresh plan should start at index 0 with 0 hours completed")
	}
	if plan.Status != store.PlanActive {
		t.Errorf("got status %q, want %q", plan.Status, store.PlanActive)
	}
}

func TestGenerate_AheadOfScheduleFlag(t *testing.T) {
	f := newFixture(t, flatGraph(t))

	late := fixedNow.AddDate(0, 0, 60)
	plan, err := f.svc.Generate(context.Background(), "goal-flat", "s1", 3, &late)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.IsAheadOfSchedule == nil || !*plan.IsAheadOfSchedule {
		t.Error("projection inside the target date should report ahead of schedule")
	}

	tight := fixedNow.AddDate(0, 0, 7)
	plan2, err := f.svc.Generate(context.Background(), "goal-flat", "s2", 3, &tight)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan2.IsAheadOfSchedule == nil || *plan2.IsAheadOfSchedule {
		t.Error("projection past the target date should report behind schedule")
	}
}

func TestGenerate_DeterministicSequence(t *testing.T) {
	graph := curriculum.Default()
	f1 := newFixture(t, graph)
	f2 := newFixture(t, graph)

	p1, err := f1.svc.Generate(context.Background(), "goal-fractions", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p2, err := f2.svc.Generate(context.Background(), "goal-fractions", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(p1.ConceptSequence) != len(p2.ConceptSequence) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(p1.ConceptSequence), len(p2.ConceptSequence))
	}
	for i := range p1.ConceptSequence {
		if p1.ConceptSequence[i] != p2.ConceptSequence[i] {
			t.Fatalf("sequences diverge at %d: %q vs %q", i, p1.ConceptSequence[i], p2.ConceptSequence[i])
		}
	}
}

func TestGenerate_SequenceRespectsPrerequisites(t *testing.T) {
	graph := curriculum.Default()
	f := newFixture(t, graph)

	plan, err := f.svc.Generate(context.Background(), "goal-fractions", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pos := make(map[string]int, len(plan.ConceptSequence))
	for i, id := range plan.ConceptSequence {
		pos[id] = i
	}
	for id, i := range pos {
		node, err := graph.Node(id)
		if err != nil {
			t.Fatalf("plan references unknown concept %q", id)
		}
		for _, prereq := range node.Prerequisites {
			if j, in := pos[prereq]; in && j >= i {
				t.Errorf("prerequisite %q at %d appears after %q at %d", prereq, j, id, i)
			}
		}
	}
}

func TestGenerate_IncludesUnmasteredPrerequisites(t *testing.T) {
	graph := curriculum.Default()
	f := newFixture(t, graph)

	plan, err := f.svc.Generate(context.Background(), "goal-fractions", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	pos := make(map[string]bool, len(plan.ConceptSequence))
	for _, id := range plan.ConceptSequence {
		pos[id] = true
	}
	// fr-intro requires ar-div-intro, which the goal never names; an
	// unmastered prerequisite is remaining work and belongs in the plan.
	if !pos["ar-div-intro"] {
		t.Error("plan should include the unmastered prerequisite ar-div-intro")
	}
}

func TestGenerate_ExcludesMasteredConcepts(t *testing.T) {
	graph := curriculum.Default()
	f := newFixture(t, graph)
	ctx := context.Background()

	// Master the entire arithmetic ramp below the fractions goal.
	for _, id := range []string{"ns-count-100", "ns-place-value", "ar-add-1digit", "ar-sub-1digit",
		"ar-add-regroup", "ar-mult-intro", "ar-mult-facts", "ar-div-intro"} {
		for i := 0; i < 10; i++ {
			if _, err := f.mastery.UpdateMastery(ctx, "s1", id, "arithmetic", true); err != nil {
				t.Fatalf("UpdateMastery: %v", err)
			}
		}
	}

	plan, err := f.svc.Generate(ctx, "goal-fractions", "s1", 4, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, id := range plan.ConceptSequence {
		if id == "ar-div-intro" || id == "ns-count-100" {
			t.Errorf("mastered concept %q should not appear in the plan", id)
		}
	}
	if plan.ConceptSequence[0] != "fr-intro" {
		t.Errorf("got first concept %q, want fr-intro once its ramp is mastered", plan.ConceptSequence[0])
	}
}

func TestGenerate_UnknownGoalIsNotFound(t *testing.T) {
	f := newFixture(t, curriculum.Default())
	_, err := f.svc.Generate(context.Background(), "goal-nonexistent", "s1", 4, nil)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestGenerate_DuplicateGoalRejected(t *testing.T) {
	f := newFixture(t, curriculum.Default())
	ctx := context.Background()

	if _, err := f.svc.Generate(ctx, "goal-fractions", "s1", 4, nil); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	_, err := f.svc.Generate(ctx, "goal-fractions", "s1", 4, nil)
	if !errors.Is(err, ErrDuplicateGoal) {
		t.Errorf("got %v, want ErrDuplicateGoal", err)
	}
}

func TestGenerate_ActivePlanLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Planner.MaxActivePlans = 2
	log := logging.NewNop()
	mem := store.NewMemory()
	masterySvc := mastery.NewService(mem, cfg, log)
	svc := NewService(mem.PlanRepo(), masterySvc, mem, curriculum.Default(), cfg.Planner, log)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	if _, err := svc.Generate(ctx, "goal-g3-math", "s1", 4, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := svc.Generate(ctx, "goal-g4-math", "s1", 4, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	_, err := svc.Generate(ctx, "goal-fractions", "s1", 4, nil)
	if !errors.Is(err, ErrTooManyActivePlans) {
		t.Errorf("got %v, want ErrTooManyActivePlans", err)
	}
}

func TestGenerate_FullyMasteredGoalIsEmpty(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	ctx := context.Background()

	for _, id := range []string{"w", "x", "y", "z"} {
		for i := 0; i < 10; i++ {
			if _, err := f.mastery.UpdateMastery(ctx, "s1", id, "arithmetic", true); err != nil {
				t.Fatalf("UpdateMastery: %v", err)
			}
		}
	}

	_, err := f.svc.Generate(ctx, "goal-flat", "s1", 3, nil)
	if !errors.Is(err, ErrEmptyGoal) {
		t.Errorf("got %v, want ErrEmptyGoal", err)
	}
}

func TestGenerate_RejectsNonPositiveHours(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	if _, err := f.svc.Generate(context.Background(), "goal-flat", "s1", 0, nil); err == nil {
		t.Error("expected error for zero weekly hours")
	}
}

func TestEstimateHours_Bands(t *testing.T) {
	f := newFixture(t, flatGraph(t))
	tests := []struct {
		difficulty float64
		want       float64
	}{
		{1, 0.5},
		{2, 0.5},
		{3, 1},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 3},
		{8, 3},
		{9, 5},
		{10, 5},
		{12, 5},
	}
	for _, tt := range tests {
		if got := f.svc.EstimateHours(tt.difficulty); got != tt.want {
			t.Errorf("EstimateHours(%g): got %g, want %g", tt.difficulty, got, tt.want)
		}
	}
}

func TestPartitionMilestones_NeverSplitsConcept(t *testing.T) {
	f := newFixture(t, curriculum.Default())

	plan, err := f.svc.Generate(context.Background(), "goal-g3-math", "s1", 2, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := make(map[string]int)
	var total float64
	for _, m := range plan.Milestones {
		for _, id := range m.ConceptIDs {
			seen[id]++
		}
		total += m.Hours
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("concept %q appears in %d milestones", id, n)
		}
	}
	if len(seen) != len(plan.ConceptSequence) {
		t.Errorf("milestones cover %d concepts, sequence has %d", len(seen), len(plan.ConceptSequence))
	}
	if total != plan.TotalEstimatedHours {
		t.Errorf("milestone hours sum %g, want %g", total, plan.TotalEstimatedHours)
	}
}
