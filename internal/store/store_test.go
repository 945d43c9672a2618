package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func sampleMastery(studentID, conceptID string) *MasteryRecord {
	return &MasteryRecord{
		StudentID:       studentID,
		ConceptID:       conceptID,
		BKTProbability:  0.25,
		Level:           "novice",
		LastPracticedAt: time.Now().UTC(),
		NextReviewAt:    time.Now().UTC().AddDate(0, 0, 1),
	}
}

func TestMasteryRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx, "s1", "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	rec := sampleMastery("s1", "c1")
	require.NoError(t, repo.Create(ctx, rec))
	assert.Equal(t, int64(1), rec.Version, "version after create")

	got, err := repo.Get(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 0.25, got.BKTProbability)
	assert.Equal(t, "novice", got.Level)

	got.BKTProbability = 0.5
	got.Level = "developing"
	got.PracticeCount = 1
	require.NoError(t, repo.Update(ctx, got))
	assert.Equal(t, int64(2), got.Version, "version after update")
}

func TestMasteryRepo_StaleVersionConflicts(t *testing.T) {
	s := openTestStore(t)
	repo := s.MasteryRepo()
	ctx := context.Background()

	rec := sampleMastery("s1", "c1")
	require.NoError(t, repo.Create(ctx, rec))

	a, err := repo.Get(ctx, "s1", "c1")
	require.NoError(t, err)
	b, err := repo.Get(ctx, "s1", "c1")
	require.NoError(t, err)

	a.PracticeCount = 1
	require.NoError(t, repo.Update(ctx, a))

	// b still carries the old version.
	b.PracticeCount = 99
	assert.ErrorIs(t, repo.Update(ctx, b), ErrConflict)
}

func TestResponseRepo_RecentOrderAndTotal(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResponseRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Append(ctx, &QuestionResponse{
			StudentID:      "s1",
			ConceptID:      "c1",
			QuestionType:   "recall",
			IsCorrect:      i%2 == 0,
			ResponseTimeMs: int64(1000 * (i + 1)),
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}), "append %d", i)
	}

	recent, err := repo.RecentByConcept(ctx, "s1", "c1", 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	// Most recent first.
	assert.Equal(t, int64(5000), recent[0].ResponseTimeMs)
	assert.Equal(t, int64(3000), recent[2].ResponseTimeMs)

	total, err := repo.TotalTimeMs(ctx, "s1", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), total)
}

func TestSessionRepo_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	rec := &SessionRecord{
		ID:               "sess-1",
		StudentID:        "s1",
		State:            "teaching",
		CurrentConceptID: "c1",
		StartedAt:        time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "teaching", got.State)

	ended := time.Now().UTC()
	got.State = "completed"
	got.QuestionsAnswered = 4
	got.EndedAt = &ended
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", again.State)
	assert.NotNil(t, again.EndedAt)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_ActiveFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.PlanRepo()
	ctx := context.Background()

	mk := func(id, status string, created time.Time) *PlanRecord {
		return &PlanRecord{
			ID:                      id,
			StudentID:               "s1",
			GoalID:                  "g-" + id,
			Status:                  status,
			ConceptSequence:         []string{"c1", "c2"},
			TotalEstimatedHours:     3,
			VelocityHoursPerWeek:    3,
			Milestones:              []PlanMilestone{{Week: 1, ConceptIDs: []string{"c1", "c2"}, Hours: 3}},
			ProjectedCompletionDate: created.AddDate(0, 0, 7),
			CreatedAt:               created,
		}
	}

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, mk("p1", PlanActive, now.Add(-2*time.Hour))))
	require.NoError(t, repo.Create(ctx, mk("p2", PlanPaused, now.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, mk("p3", PlanActive, now)))

	active, err := repo.ActiveByStudent(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, active, 2)
	// Oldest first.
	assert.Equal(t, "p1", active[0].ID)
	assert.Equal(t, "p3", active[1].ID)
	require.Len(t, active[0].Milestones, 1)
	assert.Equal(t, 3.0, active[0].Milestones[0].Hours)
}
