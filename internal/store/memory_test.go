package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

// The in-memory store must match the SQLite repos' semantics, version
// conflicts included, so tests built on it exercise the same contract.

func TestMemory_MasteryVersioning(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	rec := sampleMastery("s1", "c1")
	if err := m.Create(ctx, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Version != 1 {
		t.Fatalf("expected version 1, got %d", rec.Version)
	}
	if err := m.Create(ctx, sampleMastery("s1", "c1")); err == nil {
		t.Fatal("expected duplicate create to fail")
	}

	a, _ := m.Get(ctx, "s1", "c1")
	b, _ := m.Get(ctx, "s1", "c1")

	a.PracticeCount = 1
	if err := m.Update(ctx, a); err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Version != 2 {
		t.Fatalf("expected version 2, got %d", a.Version)
	}

	b.PracticeCount = 99
	if err := m.Update(ctx, b); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestMemory_ReturnsClones(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if err := m.Create(ctx, sampleMastery("s1", "c1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := m.Get(ctx, "s1", "c1")
	got.BKTProbability = 0.99 // mutate the copy only

	again, _ := m.Get(ctx, "s1", "c1")
	if again.BKTProbability == 0.99 {
		t.Fatal("expected stored record to be isolated from caller mutation")
	}
}

func TestMemory_RecentByConceptOrder(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 4; i++ {
		_ = m.Append(ctx, &QuestionResponse{
			StudentID:      "s1",
			ConceptID:      "c1",
			ResponseTimeMs: int64(i + 1),
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		})
	}

	recent, err := m.RecentByConcept(ctx, "s1", "c1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 || recent[0].ResponseTimeMs != 4 || recent[1].ResponseTimeMs != 3 {
		t.Fatalf("unexpected window: %+v", recent)
	}
}

func TestMemory_PlanRepoActiveOrder(t *testing.T) {
	m := NewMemory()
	repo := m.PlanRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	_ = repo.Create(ctx, &PlanRecord{ID: "p2", StudentID: "s1", Status: PlanActive, CreatedAt: now})
	_ = repo.Create(ctx, &PlanRecord{ID: "p1", StudentID: "s1", Status: PlanActive, CreatedAt: now.Add(-time.Hour)})
	_ = repo.Create(ctx, &PlanRecord{ID: "p3", StudentID: "s1", Status: PlanAbandoned, CreatedAt: now.Add(-2 * time.Hour)})

	active, err := repo.ActiveByStudent(ctx, "s1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 2 || active[0].ID != "p1" || active[1].ID != "p2" {
		t.Fatalf("unexpected active set: %+v", active)
	}
}
