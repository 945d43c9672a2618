package engine

import (
	"context"
	"testing"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/oracle"
	"github.com/brightpath/tutor/internal/session"
	"github.com/brightpath/tutor/internal/store"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	log := logging.NewNop()
	mem := store.NewMemory()
	stores := Stores{
		Mastery:   mem,
		Responses: mem,
		Sessions:  mem.SessionRepo(),
		Plans:     mem.PlanRepo(),
	}
	// An empty mock always falls back to canned narration.
	content := oracle.NewNarrator(oracle.NewMockProvider(), oracle.DefaultNarratorConfig(), log)
	return New(cfg, stores, curriculum.Default(), content, nil, log)
}

func TestEngine_AnswerToGateRoundTrip(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	sess, _, err := eng.Sessions.Start(ctx, "s1", "ns-count-100", "focused")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	res, err := eng.Sessions.SubmitAnswer(ctx, session.SubmitAnswerInput{
		SessionID:      sess.ID,
		QuestionType:   "recall",
		IsCorrect:      true,
		ResponseTimeMs: 3000,
	})
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if res.Mastery == nil || res.Mastery.PracticeCount != 1 {
		t.Fatalf("mastery should record the answer: %+v", res.Mastery)
	}
	if res.Gate == nil || !res.Gate.InsufficientData {
		t.Errorf("one answer should leave the gate short of data: %+v", res.Gate)
	}

	gateRes, err := eng.Gate.Evaluate(ctx, "s1", "ns-count-100")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if gateRes.ResponsesInWindow != 1 {
		t.Errorf("got %d responses in window, want 1", gateRes.ResponsesInWindow)
	}
}

func TestEngine_BranchTree(t *testing.T) {
	eng := newTestEngine(t)

	tree, err := eng.BranchTree(context.Background(), "s1")
	if err != nil {
		t.Fatalf("BranchTree: %v", err)
	}
	if len(tree.Statuses) != len(eng.Graph.AllBranches()) {
		t.Errorf("got %d statuses, want %d", len(tree.Statuses), len(eng.Graph.AllBranches()))
	}
	if len(tree.GoBroader) == 0 {
		t.Error("a fresh student should have open breadth branches")
	}
}

func TestNewContentSource_MockProvider(t *testing.T) {
	cfg := config.Default()
	src, err := NewContentSource(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewContentSource: %v", err)
	}
	node, err := curriculum.Default().Node("ns-count-100")
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	text := src.Teaching(context.Background(), &node)
	if text == "" {
		t.Error("teaching content should fall back to canned text")
	}
}
