package oracle

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
)

func testNode() *curriculum.ConceptNode {
	return &curriculum.ConceptNode{
		ID:          "c-frac-add",
		Code:        "FRAC.ADD",
		Name:        "Adding Fractions",
		Description: "Add fractions with like denominators",
		GradeLevel:  4,
		Difficulty:  4,
	}
}

func narratorConfig() NarratorConfig {
	cfg := DefaultNarratorConfig()
	cfg.Wait = 50 * time.Millisecond
	return cfg
}

func TestNarrator_UsesOracleText(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"Fractions are parts of a whole."}`)},
	)
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())

	text := n.Teaching(context.Background(), testNode())
	if text != "Fractions are parts of a whole." {
		t.Fatalf("unexpected text: %q", text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 oracle call, got %d", mock.CallCount())
	}
}

func TestNarrator_FallsBackWhenUnavailable(t *testing.T) {
	// Empty mock queue returns ErrUnavailable.
	mock := NewMockProvider()
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())

	text := n.Celebration(context.Background(), testNode())
	if !strings.Contains(text, "Adding Fractions") {
		t.Fatalf("expected canned fallback mentioning the concept, got: %q", text)
	}
}

func TestNarrator_FallsBackOnEmptyText(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"   "}`)},
	)
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())

	text := n.Hint(context.Background(), testNode(), 2)
	if text == "" || strings.TrimSpace(text) == "" {
		t.Fatal("expected non-empty fallback text")
	}
}

func TestNarrator_HintIncludesStreakContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"Try a number line."}`)},
	)
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())

	_ = n.Hint(context.Background(), testNode(), 3)
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if !strings.Contains(mock.Calls[0].Prompt, "3 questions wrong") {
		t.Fatalf("expected wrong streak in prompt, got: %q", mock.Calls[0].Prompt)
	}
}
