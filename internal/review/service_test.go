package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	svc := NewService(mem, curriculum.Default(), config.Default(), logging.NewNop())
	svc.now = func() time.Time { return testNow }
	return svc, mem
}

func seedRecord(t *testing.T, mem *store.Memory, conceptID, level string, nextReview time.Time) {
	t.Helper()
	err := mem.Create(context.Background(), &store.MasteryRecord{
		StudentID:      "s1",
		ConceptID:      conceptID,
		BKTProbability: 0.9,
		Level:          level,
		NextReviewAt:   nextReview,
	})
	if err != nil {
		t.Fatalf("create record %q: %v", conceptID, err)
	}
}

func TestDueForStudent_FiltersAndSorts(t *testing.T) {
	svc, mem := newTestService()

	seedRecord(t, mem, "ns-count-100", "mastered", testNow.AddDate(0, 0, -20))
	seedRecord(t, mem, "ar-add-1digit", "proficient", testNow.AddDate(0, 0, -2))
	seedRecord(t, mem, "ge-shapes", "advanced", testNow.AddDate(0, 0, 5))

	items, err := svc.DueForStudent(context.Background(), "s1")
	if err != nil {
		t.Fatalf("DueForStudent: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (future reviews excluded)", len(items))
	}
	if items[0].ConceptID != "ns-count-100" {
		t.Errorf("got %q first, want the most overdue concept", items[0].ConceptID)
	}
	if items[0].OverdueDays != 20 {
		t.Errorf("got %g overdue days, want 20", items[0].OverdueDays)
	}
	if items[0].ConceptName != "Counting to 100" {
		t.Errorf("got name %q, want catalog name", items[0].ConceptName)
	}
}

func TestDueForStudent_StatusClassification(t *testing.T) {
	svc, mem := newTestService()

	// Mastered interval is 30 days, so the grace window is 15 days:
	// 20 days past due is overdue, 10 is merely due.
	seedRecord(t, mem, "ns-count-100", "mastered", testNow.AddDate(0, 0, -20))
	seedRecord(t, mem, "ar-add-1digit", "mastered", testNow.AddDate(0, 0, -10))

	items, err := svc.DueForStudent(context.Background(), "s1")
	if err != nil {
		t.Fatalf("DueForStudent: %v", err)
	}
	byID := map[string]Item{}
	for _, it := range items {
		byID[it.ConceptID] = it
	}
	if got := byID["ns-count-100"].Status; got != StatusOverdue {
		t.Errorf("20 days past a 30-day interval: got %q, want %q", got, StatusOverdue)
	}
	if got := byID["ar-add-1digit"].Status; got != StatusDue {
		t.Errorf("10 days past a 30-day interval: got %q, want %q", got, StatusDue)
	}
}

func TestDueForStudent_EmptyQueue(t *testing.T) {
	svc, _ := newTestService()
	items, err := svc.DueForStudent(context.Background(), "s1")
	if err != nil {
		t.Fatalf("DueForStudent: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("student with no records should have an empty queue, got %d", len(items))
	}
}

func TestRecordProbe_PassingRestartsInterval(t *testing.T) {
	svc, mem := newTestService()
	seedRecord(t, mem, "ns-count-100", "mastered", testNow.AddDate(0, 0, -20))

	rec, err := svc.RecordProbe(context.Background(), "s1", "ns-count-100", 0.85)
	if err != nil {
		t.Fatalf("RecordProbe: %v", err)
	}
	if rec.RetentionScore == nil || *rec.RetentionScore != 0.85 {
		t.Fatalf("got retention score %v, want 0.85", rec.RetentionScore)
	}
	want := testNow.AddDate(0, 0, 30)
	if !rec.NextReviewAt.Equal(want) {
		t.Errorf("got next review %v, want %v", rec.NextReviewAt, want)
	}

	stored, err := mem.Get(context.Background(), "s1", "ns-count-100")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.RetentionScore == nil || *stored.RetentionScore != 0.85 {
		t.Error("probe score should persist")
	}
}

func TestRecordProbe_FailingShortensInterval(t *testing.T) {
	svc, mem := newTestService()
	seedRecord(t, mem, "ns-count-100", "mastered", testNow.AddDate(0, 0, -20))

	rec, err := svc.RecordProbe(context.Background(), "s1", "ns-count-100", 0.4)
	if err != nil {
		t.Fatalf("RecordProbe: %v", err)
	}
	want := testNow.AddDate(0, 0, 1)
	if !rec.NextReviewAt.Equal(want) {
		t.Errorf("got next review %v, want the shortest interval %v", rec.NextReviewAt, want)
	}
}

func TestRecordProbe_RejectsOutOfRange(t *testing.T) {
	svc, mem := newTestService()
	seedRecord(t, mem, "ns-count-100", "mastered", testNow)

	for _, score := range []float64{-0.1, 1.1} {
		if _, err := svc.RecordProbe(context.Background(), "s1", "ns-count-100", score); !errors.Is(err, ErrInvalidScore) {
			t.Errorf("score %g: got %v, want ErrInvalidScore", score, err)
		}
	}
}

func TestRecordProbe_UnknownRecord(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.RecordProbe(context.Background(), "s1", "never-practiced", 0.8)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
