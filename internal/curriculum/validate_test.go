package curriculum

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateNodes_DetectsCycle(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"b"}},
		{ID: "b", Code: "t.b", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"a"}},
		{ID: "root", Code: "t.root", Domain: DomainArithmetic, Difficulty: 1},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error for cycle, got nil")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention cycle, got: %v", err)
	}
}

func TestValidateNodes_DetectsDanglingPrereq(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1},
		{ID: "b", Code: "t.b", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"nonexistent"}},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error for dangling prerequisite, got nil")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention the missing ID, got: %v", err)
	}
}

func TestValidateNodes_DetectsDuplicateID(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1},
		{ID: "a", Code: "t.a2", Domain: DomainArithmetic, Difficulty: 1},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error for duplicate ID, got nil")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateNodes_DifficultyRange(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 11},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error for out-of-range difficulty, got nil")
	}
	if !strings.Contains(err.Error(), "difficulty") {
		t.Errorf("error should mention difficulty, got: %v", err)
	}
}

func TestValidateNodes_RequiresRoot(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"b"}},
		{ID: "b", Code: "t.b", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"a"}},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error should mention missing root, got: %v", err)
	}
}

func TestValidateNodes_ReportsAllProblems(t *testing.T) {
	nodes := []ConceptNode{
		{ID: "a", Code: "", Domain: DomainArithmetic, Difficulty: 0},
		{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1, Prerequisites: []string{"missing"}},
	}
	err := validateNodes(nodes)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var integrity *ErrIntegrity
	if !errors.As(err, &integrity) {
		t.Fatalf("expected *ErrIntegrity, got %T", err)
	}
	if len(integrity.Problems) < 3 {
		t.Errorf("got %d problems, want at least 3: %v", len(integrity.Problems), integrity.Problems)
	}
}

func TestValidateBranches_DanglingConcept(t *testing.T) {
	nodes := []ConceptNode{{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1}}
	branches := []TopicBranch{{ID: "br-x", ConceptIDs: []string{"a", "missing"}}}
	err := validateBranches(nodes, branches)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should mention the missing concept, got: %v", err)
	}
}

func TestValidateBranches_SelfPrerequisite(t *testing.T) {
	nodes := []ConceptNode{{ID: "a", Code: "t.a", Domain: DomainArithmetic, Difficulty: 1}}
	branches := []TopicBranch{{ID: "br-x", ConceptIDs: []string{"a"}, PrerequisiteBranchIDs: []string{"br-x"}}}
	err := validateBranches(nodes, branches)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "itself") {
		t.Errorf("error should mention self-reference, got: %v", err)
	}
}

func TestValidateBranches_EmptyBranch(t *testing.T) {
	err := validateBranches(nil, []TopicBranch{{ID: "br-x"}})
	if err == nil {
		t.Fatal("expected error for branch with no concepts, got nil")
	}
}
