package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory implementation of all repositories. It mirrors
// the SQLite-backed semantics, including version-checked mastery updates,
// and is used by tests and as a zero-setup backing store.
type Memory struct {
	mu        sync.Mutex
	mastery   map[string]*MasteryRecord // key: studentID + "\x00" + conceptID
	responses []*QuestionResponse
	sessions  map[string]*SessionRecord
	plans     map[string]*PlanRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		mastery:  make(map[string]*MasteryRecord),
		sessions: make(map[string]*SessionRecord),
		plans:    make(map[string]*PlanRecord),
	}
}

func masteryKey(studentID, conceptID string) string {
	return studentID + "\x00" + conceptID
}

func cloneMastery(r *MasteryRecord) *MasteryRecord {
	cp := *r
	if r.RetentionScore != nil {
		v := *r.RetentionScore
		cp.RetentionScore = &v
	}
	if r.SpeedTrendMs != nil {
		v := *r.SpeedTrendMs
		cp.SpeedTrendMs = &v
	}
	return &cp
}

func (m *Memory) Get(ctx context.Context, studentID, conceptID string) (*MasteryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.mastery[masteryKey(studentID, conceptID)]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMastery(rec), nil
}

func (m *Memory) GetByStudent(ctx context.Context, studentID string) ([]*MasteryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*MasteryRecord
	for _, rec := range m.mastery {
		if rec.StudentID == studentID {
			out = append(out, cloneMastery(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConceptID < out[j].ConceptID })
	return out, nil
}

func (m *Memory) Create(ctx context.Context, rec *MasteryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := masteryKey(rec.StudentID, rec.ConceptID)
	if _, exists := m.mastery[key]; exists {
		return ErrConflict
	}
	rec.Version = 1
	m.mastery[key] = cloneMastery(rec)
	return nil
}

func (m *Memory) Update(ctx context.Context, rec *MasteryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := masteryKey(rec.StudentID, rec.ConceptID)
	stored, ok := m.mastery[key]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != rec.Version {
		return ErrConflict
	}
	rec.Version++
	m.mastery[key] = cloneMastery(rec)
	return nil
}

func (m *Memory) Append(ctx context.Context, resp *QuestionResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *resp
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	m.responses = append(m.responses, &cp)
	return nil
}

func (m *Memory) RecentByConcept(ctx context.Context, studentID, conceptID string, lastN int) ([]*QuestionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*QuestionResponse
	// Scan newest first; append order breaks CreatedAt ties.
	for i := len(m.responses) - 1; i >= 0 && len(out) < lastN; i-- {
		r := m.responses[i]
		if r.StudentID == studentID && r.ConceptID == conceptID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *Memory) TotalTimeMs(ctx context.Context, studentID, conceptID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum int64
	for _, r := range m.responses {
		if r.StudentID == studentID && r.ConceptID == conceptID {
			sum += r.ResponseTimeMs
		}
	}
	return sum, nil
}

func cloneSession(r *SessionRecord) *SessionRecord {
	cp := *r
	if r.EndedAt != nil {
		v := *r.EndedAt
		cp.EndedAt = &v
	}
	return &cp
}

func (m *Memory) CreateSession(ctx context.Context, rec *SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[rec.ID] = cloneSession(rec)
	return nil
}

func (m *Memory) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSession(rec), nil
}

func (m *Memory) UpdateSession(ctx context.Context, rec *SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[rec.ID]; !ok {
		return ErrNotFound
	}
	m.sessions[rec.ID] = cloneSession(rec)
	return nil
}

func clonePlan(r *PlanRecord) *PlanRecord {
	cp := *r
	cp.ConceptSequence = append([]string(nil), r.ConceptSequence...)
	cp.Milestones = append([]PlanMilestone(nil), r.Milestones...)
	cp.AdvanceLog = append([]PlanAdvance(nil), r.AdvanceLog...)
	if r.TargetCompletionDate != nil {
		v := *r.TargetCompletionDate
		cp.TargetCompletionDate = &v
	}
	return &cp
}

func (m *Memory) CreatePlan(ctx context.Context, rec *PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.plans[rec.ID] = clonePlan(rec)
	return nil
}

func (m *Memory) GetPlan(ctx context.Context, id string) (*PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clonePlan(rec), nil
}

func (m *Memory) ActivePlansByStudent(ctx context.Context, studentID string) ([]*PlanRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*PlanRecord
	for _, rec := range m.plans {
		if rec.StudentID == studentID && rec.Status == PlanActive {
			out = append(out, clonePlan(rec))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *Memory) UpdatePlan(ctx context.Context, rec *PlanRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[rec.ID]; !ok {
		return ErrNotFound
	}
	existing := m.plans[rec.ID]
	rec.CreatedAt = existing.CreatedAt
	m.plans[rec.ID] = clonePlan(rec)
	return nil
}

// memSessionRepo, memPlanRepo adapt Memory's methods to the repo interfaces
// (the mastery and response methods already match MasteryRepo/ResponseRepo).

type memSessionRepo struct{ m *Memory }

func (r memSessionRepo) Create(ctx context.Context, rec *SessionRecord) error {
	return r.m.CreateSession(ctx, rec)
}
func (r memSessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	return r.m.GetSession(ctx, id)
}
func (r memSessionRepo) Update(ctx context.Context, rec *SessionRecord) error {
	return r.m.UpdateSession(ctx, rec)
}

type memPlanRepo struct{ m *Memory }

func (r memPlanRepo) Create(ctx context.Context, rec *PlanRecord) error {
	return r.m.CreatePlan(ctx, rec)
}
func (r memPlanRepo) Get(ctx context.Context, id string) (*PlanRecord, error) {
	return r.m.GetPlan(ctx, id)
}
func (r memPlanRepo) ActiveByStudent(ctx context.Context, studentID string) ([]*PlanRecord, error) {
	return r.m.ActivePlansByStudent(ctx, studentID)
}
func (r memPlanRepo) Update(ctx context.Context, rec *PlanRecord) error {
	return r.m.UpdatePlan(ctx, rec)
}

// SessionRepo returns the Memory-backed SessionRepo.
func (m *Memory) SessionRepo() SessionRepo { return memSessionRepo{m} }

// PlanRepo returns the Memory-backed PlanRepo.
func (m *Memory) PlanRepo() PlanRepo { return memPlanRepo{m} }
