package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/brightpath/tutor/internal/config"
	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
	"github.com/brightpath/tutor/internal/mastery"
	"github.com/brightpath/tutor/internal/store"
)

// ErrTooManyActivePlans is returned when plan creation would exceed the
// per-student active plan limit.
var ErrTooManyActivePlans = errors.New("active plan limit reached")

// ErrDuplicateGoal is returned when the student already has an active plan
// for the goal.
var ErrDuplicateGoal = errors.New("student already has an active plan for this goal")

// ErrEmptyGoal marks a goal whose required concepts all resolve away: a
// data-integrity fault, never an empty plan.
var ErrEmptyGoal = errors.New("goal has no resolvable unmastered concepts")

// Service generates and advances learning plans.
type Service struct {
	plans     store.PlanRepo
	mastery   *mastery.Service
	responses store.ResponseRepo
	graph     *curriculum.Graph
	cfg       config.PlannerConfig
	log       *logging.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a planner service.
func NewService(plans store.PlanRepo, masterySvc *mastery.Service, responses store.ResponseRepo, graph *curriculum.Graph, cfg config.PlannerConfig, log *logging.Logger) *Service {
	return &Service{
		plans:     plans,
		mastery:   masterySvc,
		responses: responses,
		graph:     graph,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Generate builds and persists a plan toward goalID for the student.
// The plan tracks only remaining work: concepts already mastered are
// excluded. Generation either fully succeeds or fails atomically.
func (s *Service) Generate(ctx context.Context, goalID, studentID string, weeklyHours float64, targetDate *time.Time) (*Plan, error) {
	if weeklyHours <= 0 {
		return nil, fmt.Errorf("weeklyHours must be positive, got %g", weeklyHours)
	}

	goal, err := s.graph.Goal(goalID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	active, err := s.plans.ActiveByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load active plans: %w", err)
	}
	if len(active) >= s.cfg.MaxActivePlans {
		return nil, ErrTooManyActivePlans
	}
	for _, p := range active {
		if p.GoalID == goalID {
			return nil, ErrDuplicateGoal
		}
	}

	mastered, err := s.mastery.MasteredSet(ctx, studentID)
	if err != nil {
		return nil, err
	}

	sequence, err := s.orderConcepts(goal, mastered)
	if err != nil {
		return nil, err
	}
	if len(sequence) == 0 {
		s.log.Error("goal resolved to empty plan", "goalId", goalID, "studentId", studentID)
		return nil, ErrEmptyGoal
	}

	totalHours := 0.0
	hoursByConcept := make(map[string]float64, len(sequence))
	for _, n := range sequence {
		h := s.EstimateHours(n.Difficulty)
		hoursByConcept[n.ID] = h
		totalHours += h
	}

	milestones := s.partitionMilestones(sequence, hoursByConcept, weeklyHours)

	now := s.now()
	ids := make([]string, len(sequence))
	for i, n := range sequence {
		ids[i] = n.ID
	}

	rec := &store.PlanRecord{
		ID:                      uuid.NewString(),
		StudentID:               studentID,
		GoalID:                  goalID,
		Status:                  store.PlanActive,
		ConceptSequence:         ids,
		CurrentConceptIndex:     0,
		TotalEstimatedHours:     totalHours,
		HoursCompleted:          0,
		VelocityHoursPerWeek:    weeklyHours,
		Milestones:              milestones,
		TargetCompletionDate:    targetDate,
		ProjectedCompletionDate: projectCompletion(now, totalHours, weeklyHours),
		CreatedAt:               now,
	}

	if err := s.plans.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	return fromRecord(rec), nil
}

// orderConcepts resolves the goal's required set, drops mastered concepts,
// and topologically sorts the remainder. Ties break on (grade level asc,
// difficulty asc, code asc) so that regeneration with unchanged mastery
// yields an identical sequence.
//
// Prerequisites outside the goal set are honored for ordering but included
// in the plan only when unmastered: mastering a concept's prerequisites is
// part of the remaining work toward the goal.
func (s *Service) orderConcepts(goal curriculum.Goal, mastered map[string]bool) ([]curriculum.ConceptNode, error) {
	// Expand the goal set with unmastered transitive prerequisites.
	include := make(map[string]bool)
	var visit func(id string) error
	visit = func(id string) error {
		if include[id] || mastered[id] {
			return nil
		}
		node, err := s.graph.Node(id)
		if err != nil {
			return fmt.Errorf("%w: %v", store.ErrNotFound, err)
		}
		include[id] = true
		for _, prereq := range node.Prerequisites {
			if err := visit(prereq); err != nil {
				return err
			}
		}
		return nil
	}
	for _, id := range goal.ConceptIDs {
		if err := visit(id); err != nil {
			return nil, err
		}
	}

	// Kahn's algorithm over the induced subgraph. Edges from mastered
	// prerequisites are already satisfied and do not constrain ordering.
	indegree := make(map[string]int, len(include))
	dependents := make(map[string][]string)
	for id := range include {
		node, _ := s.graph.Node(id)
		for _, prereq := range node.Prerequisites {
			if include[prereq] {
				indegree[id]++
				dependents[prereq] = append(dependents[prereq], id)
			}
		}
	}

	ready := make([]curriculum.ConceptNode, 0, len(include))
	for id := range include {
		if indegree[id] == 0 {
			n, _ := s.graph.Node(id)
			ready = append(ready, n)
		}
	}

	var out []curriculum.ConceptNode
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return conceptLess(ready[i], ready[j]) })
		n := ready[0]
		ready = ready[1:]
		out = append(out, n)

		for _, depID := range dependents[n.ID] {
			indegree[depID]--
			if indegree[depID] == 0 {
				dep, _ := s.graph.Node(depID)
				ready = append(ready, dep)
			}
		}
	}

	if len(out) < len(include) {
		var stuck []string
		for id := range include {
			if indegree[id] > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		s.log.Error("prerequisite cycle reachable from goal", "goalId", goal.ID, "concepts", stuck)
		return nil, &curriculum.ErrIntegrity{
			Problems: []string{fmt.Sprintf("prerequisite cycle reachable from goal %q: %v", goal.ID, stuck)},
		}
	}

	return out, nil
}

// conceptLess is the deterministic tie-break ordering.
func conceptLess(a, b curriculum.ConceptNode) bool {
	if a.GradeLevel != b.GradeLevel {
		return a.GradeLevel < b.GradeLevel
	}
	if a.Difficulty != b.Difficulty {
		return a.Difficulty < b.Difficulty
	}
	return a.Code < b.Code
}

// EstimateHours maps a difficulty score to estimated study hours using the
// configured step function: the first band whose ceiling covers the
// difficulty wins.
func (s *Service) EstimateHours(difficulty float64) float64 {
	ceilings := s.cfg.HourBandCeilings()
	for _, c := range ceilings {
		if difficulty <= c {
			return s.cfg.HourBands[c]
		}
	}
	// Above every ceiling: use the largest band.
	return s.cfg.HourBands[ceilings[len(ceilings)-1]]
}

// partitionMilestones groups the ordered sequence into weekly milestones of
// roughly weeklyHours each. A milestone boundary never splits a concept: a
// concept that overflows the current week closes it and starts the next.
func (s *Service) partitionMilestones(sequence []curriculum.ConceptNode, hours map[string]float64, weeklyHours float64) []store.PlanMilestone {
	var milestones []store.PlanMilestone
	current := store.PlanMilestone{Week: 1}

	for _, n := range sequence {
		h := hours[n.ID]
		if len(current.ConceptIDs) > 0 && current.Hours+h > weeklyHours {
			milestones = append(milestones, current)
			current = store.PlanMilestone{Week: current.Week + 1}
		}
		current.ConceptIDs = append(current.ConceptIDs, n.ID)
		current.Hours += h
	}
	if len(current.ConceptIDs) > 0 {
		milestones = append(milestones, current)
	}
	return milestones
}

// projectCompletion computes now + remaining study time at the given
// weekly velocity, rounded up to whole days.
func projectCompletion(now time.Time, remainingHours, weeklyHours float64) time.Time {
	weeks := remainingHours / weeklyHours
	days := int(math.Ceil(weeks * 7))
	return now.AddDate(0, 0, days)
}
