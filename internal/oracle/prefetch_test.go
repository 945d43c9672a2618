package oracle

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/logging"
)

func TestNarrativeCache_TTLExpiry(t *testing.T) {
	c := newNarrativeCache(4)
	c.set("k", "v", 5*time.Millisecond)

	if got, ok := c.get("k"); !ok || got != "v" {
		t.Fatalf("expected fresh hit, got %q ok=%v", got, ok)
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := c.get("k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestNarrativeCache_BoundedEviction(t *testing.T) {
	c := newNarrativeCache(2)
	c.set("a", "1", time.Minute)
	c.set("b", "2", time.Minute)
	c.set("c", "3", time.Minute)

	if len(c.data) > 2 {
		t.Fatalf("expected at most 2 entries, got %d", len(c.data))
	}
	if got, ok := c.get("c"); !ok || got != "3" {
		t.Fatalf("expected newest entry to survive, got %q ok=%v", got, ok)
	}
}

func TestPrefetchNarrator_ServesWarmedText(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"warmed teaching"}`)},
		MockResponse{Content: json.RawMessage(`{"text":"warmed hint"}`)},
	)
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())
	p := NewPrefetchNarrator(n, 16, time.Minute, logging.NewNop())

	node := testNode()
	p.Warm(context.Background(), node)

	// Warm runs in the background; wait for both responses to land.
	deadline := time.Now().Add(time.Second)
	for mock.CallCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 warm calls, got %d", mock.CallCount())
	}

	// Cache hits: no further oracle calls.
	if text := p.Teaching(context.Background(), node); text != "warmed teaching" {
		t.Fatalf("unexpected teaching text: %q", text)
	}
	if text := p.Hint(context.Background(), node, 0); text != "warmed hint" {
		t.Fatalf("unexpected hint text: %q", text)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected cache hits, got %d total calls", mock.CallCount())
	}
}

func TestPrefetchNarrator_TargetedHintSkipsCache(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"targeted hint"}`)},
	)
	n := NewNarrator(mock, narratorConfig(), logging.NewNop())
	p := NewPrefetchNarrator(n, 16, time.Minute, logging.NewNop())

	text := p.Hint(context.Background(), testNode(), 2)
	if text != "targeted hint" {
		t.Fatalf("unexpected hint text: %q", text)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected oracle call for targeted hint, got %d", mock.CallCount())
	}
}
