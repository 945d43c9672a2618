package mastery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/store"
)

func newTestService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	return NewService(mem, config.Default(), logging.NewNop()), mem
}

func TestUpdateMastery_LazyCreate(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	if _, err := mem.Get(ctx, "s1", "c1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before first answer, got %v", err)
	}

	rec, err := svc.UpdateMastery(ctx, "s1", "c1", "arithmetic", true)
	if err != nil {
		t.Fatalf("UpdateMastery: %v", err)
	}
	if rec.PracticeCount != 1 || rec.CorrectCount != 1 {
		t.Errorf("got counts %d/%d, want 1/1", rec.CorrectCount, rec.PracticeCount)
	}
	if rec.BKTProbability <= 0.25 {
		t.Errorf("correct first answer should raise probability above the prior, got %v", rec.BKTProbability)
	}
	if rec.Level == "" {
		t.Error("level should be derived on create")
	}
	if rec.NextReviewAt.IsZero() {
		t.Error("next review date should be set")
	}

	stored, err := mem.Get(ctx, "s1", "c1")
	if err != nil {
		t.Fatalf("record should persist: %v", err)
	}
	if stored.Version != 1 {
		t.Errorf("got version %d, want 1", stored.Version)
	}
}

func TestUpdateMastery_IncrementsExisting(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.UpdateMastery(ctx, "s1", "c1", "arithmetic", i != 1); err != nil {
			t.Fatalf("answer %d: %v", i+1, err)
		}
	}

	rec, err := mem.Get(ctx, "s1", "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.PracticeCount != 3 {
		t.Errorf("got practice count %d, want 3", rec.PracticeCount)
	}
	if rec.CorrectCount != 2 {
		t.Errorf("got correct count %d, want 2", rec.CorrectCount)
	}
	if rec.Version != 3 {
		t.Errorf("got version %d, want 3", rec.Version)
	}
}

func TestUpdateMastery_ConcurrentSamePair(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.UpdateMastery(ctx, "s1", "c1", "arithmetic", true); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}

	rec, err := mem.Get(ctx, "s1", "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.PracticeCount != n {
		t.Errorf("got practice count %d, want %d", rec.PracticeCount, n)
	}
}

func TestMasteredSet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if _, err := svc.UpdateMastery(ctx, "s1", "c-done", "arithmetic", true); err != nil {
			t.Fatalf("UpdateMastery: %v", err)
		}
	}
	if _, err := svc.UpdateMastery(ctx, "s1", "c-started", "arithmetic", false); err != nil {
		t.Fatalf("UpdateMastery: %v", err)
	}

	set, err := svc.MasteredSet(ctx, "s1")
	if err != nil {
		t.Fatalf("MasteredSet: %v", err)
	}
	if !set["c-done"] {
		t.Error("c-done should be in the mastered set after 10 correct answers")
	}
	if set["c-started"] {
		t.Error("c-started is not mastered and should be excluded")
	}
}

func TestUpdateMastery_DomainOverride(t *testing.T) {
	cfg := config.Default()
	cfg.BKT.PerDomain = map[string]config.BKTParams{
		"fractions": {PInit: 0.10, PLearn: 0.10, PGuess: 0.25, PSlip: 0.15},
	}
	svc := NewService(store.NewMemory(), cfg, logging.NewNop())
	ctx := context.Background()

	fr, err := svc.UpdateMastery(ctx, "s1", "c-frac", "fractions", true)
	if err != nil {
		t.Fatalf("UpdateMastery: %v", err)
	}
	ar, err := svc.UpdateMastery(ctx, "s1", "c-arith", "arithmetic", true)
	if err != nil {
		t.Fatalf("UpdateMastery: %v", err)
	}
	if fr.BKTProbability >= ar.BKTProbability {
		t.Errorf("harder fraction calibration should yield a lower estimate: %v vs %v",
			fr.BKTProbability, ar.BKTProbability)
	}
}
