package gate

import (
	"context"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

func newTestService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	return NewService(mem, mem, config.Default().Gate, logging.NewNop()), mem
}

// seedWindow appends n responses oldest-first. The correct slice marks
// which answers were right; types and times cycle per the arguments.
func seedWindow(t *testing.T, mem *store.Memory, studentID, conceptID string, correct []bool, types []string, timesMs []int64) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, c := range correct {
		resp := &store.QuestionResponse{
			StudentID:      studentID,
			ConceptID:      conceptID,
			QuestionType:   types[i%len(types)],
			IsCorrect:      c,
			ResponseTimeMs: timesMs[i%len(timesMs)],
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := mem.Append(ctx, resp); err != nil {
			t.Fatalf("append response %d: %v", i, err)
		}
	}
}

func allCorrect(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = true
	}
	return out
}

func TestEvaluate_InsufficientDataPasses(t *testing.T) {
	svc, mem := newTestService()
	seedWindow(t, mem, "s1", "c1", allCorrect(4), []string{"recall"}, []int64{3000})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Passed {
		t.Error("gate must pass with fewer responses than the window size")
	}
	if !res.InsufficientData {
		t.Error("InsufficientData should be set")
	}
	if res.Recommendation != RecommendPractice {
		t.Errorf("got recommendation %q, want %q", res.Recommendation, RecommendPractice)
	}
	if res.ResponsesInWindow != 4 {
		t.Errorf("got %d responses in window, want 4", res.ResponsesInWindow)
	}
}

func TestEvaluate_AllCriteriaPass(t *testing.T) {
	svc, mem := newTestService()
	// 10 correct across 3 types, second half faster than the first.
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem", "visual"},
		[]int64{9000, 8500, 8000, 7500, 7000, 4000, 3500, 3000, 2800, 2500})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !res.Passed {
		t.Fatalf("expected pass, got criteria %+v", res.Criteria)
	}
	if res.Recommendation != RecommendAdvance {
		t.Errorf("got recommendation %q, want %q", res.Recommendation, RecommendAdvance)
	}
	if res.InsufficientData {
		t.Error("full window should not report insufficient data")
	}
	if res.SpeedTrend != TrendImproving {
		t.Errorf("got trend %q, want %q", res.SpeedTrend, TrendImproving)
	}
}

func TestEvaluate_AccuracyFails(t *testing.T) {
	svc, mem := newTestService()
	// 8/10 correct is below the 0.85 threshold.
	correct := allCorrect(10)
	correct[2] = false
	correct[7] = false
	seedWindow(t, mem, "s1", "c1", correct,
		[]string{"recall", "word-problem", "visual"}, []int64{3000})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Passed {
		t.Error("expected gate failure on accuracy")
	}
	if res.Recommendation != RecommendPractice {
		t.Errorf("got recommendation %q, want %q", res.Recommendation, RecommendPractice)
	}
}

func TestEvaluate_ConsistencyFails(t *testing.T) {
	svc, mem := newTestService()
	// Perfect accuracy but only 2 question types.
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem"}, []int64{3000})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Passed {
		t.Error("expected gate failure on consistency")
	}
	var consistency *Criterion
	for i := range res.Criteria {
		if res.Criteria[i].Name == "consistency" {
			consistency = &res.Criteria[i]
		}
	}
	if consistency == nil || consistency.Passed {
		t.Errorf("consistency criterion should fail: %+v", consistency)
	}
}

func TestEvaluate_SpeedSlowingRecommendsFluencyDrill(t *testing.T) {
	svc, mem := newTestService()
	// Accurate and consistent but the second half is much slower.
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem", "visual"},
		[]int64{2000, 2000, 2000, 2000, 2000, 5000, 5000, 5000, 5000, 5000})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Passed {
		t.Error("expected gate failure on speed")
	}
	if res.SpeedTrend != TrendSlowing {
		t.Errorf("got trend %q, want %q", res.SpeedTrend, TrendSlowing)
	}
	if res.Recommendation != RecommendFluencyDrill {
		t.Errorf("got recommendation %q, want %q", res.Recommendation, RecommendFluencyDrill)
	}
}

func TestEvaluate_LowRetentionRecommendsReview(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem", "visual"}, []int64{3000})

	low := 0.50
	rec := &store.MasteryRecord{StudentID: "s1", ConceptID: "c1", BKTProbability: 0.9, Level: "advanced", RetentionScore: &low}
	if err := mem.Create(ctx, rec); err != nil {
		t.Fatalf("create record: %v", err)
	}

	res, err := svc.Evaluate(ctx, "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Passed {
		t.Error("expected gate failure on retention")
	}
	if res.Recommendation != RecommendRetentionReview {
		t.Errorf("got recommendation %q, want %q", res.Recommendation, RecommendRetentionReview)
	}
}

func TestEvaluate_NoRetentionProbePasses(t *testing.T) {
	svc, mem := newTestService()
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem", "visual"}, []int64{3000})

	res, err := svc.Evaluate(context.Background(), "s1", "c1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for _, c := range res.Criteria {
		if c.Name == "retention" && !c.Passed {
			t.Error("retention should default to pass with no probe data")
		}
	}
	if !res.Passed {
		t.Errorf("expected pass, got criteria %+v", res.Criteria)
	}
}

func TestEvaluate_PersistsSpeedTrend(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()
	seedWindow(t, mem, "s1", "c1", allCorrect(10),
		[]string{"recall", "word-problem", "visual"},
		[]int64{4000, 4000, 4000, 4000, 4000, 2000, 2000, 2000, 2000, 2000})

	rec := &store.MasteryRecord{StudentID: "s1", ConceptID: "c1", BKTProbability: 0.9, Level: "advanced"}
	if err := mem.Create(ctx, rec); err != nil {
		t.Fatalf("create record: %v", err)
	}

	if _, err := svc.Evaluate(ctx, "s1", "c1"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	stored, err := mem.Get(ctx, "s1", "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.SpeedTrendMs == nil {
		t.Fatal("speedTrendMs should be written back after evaluation")
	}
	if *stored.SpeedTrendMs != 2000 {
		t.Errorf("got second-half mean %d, want 2000", *stored.SpeedTrendMs)
	}
}
