package curriculum

import (
	"testing"
)

func testNodes() []ConceptNode {
	return []ConceptNode{
		{ID: "a", Code: "t.a", Name: "A", Domain: DomainArithmetic, GradeLevel: 1, Difficulty: 1},
		{ID: "b", Code: "t.b", Name: "B", Domain: DomainArithmetic, GradeLevel: 2, Difficulty: 2, Prerequisites: []string{"a"}},
		{ID: "c", Code: "t.c", Name: "C", Domain: DomainFractions, GradeLevel: 2, Difficulty: 3, Prerequisites: []string{"a"}},
		{ID: "d", Code: "t.d", Name: "D", Domain: DomainFractions, GradeLevel: 3, Difficulty: 4, Prerequisites: []string{"b", "c"}},
	}
}

func mustGraph(t *testing.T, nodes []ConceptNode, branches []TopicBranch, goals []Goal) *Graph {
	t.Helper()
	g, err := NewGraph(nodes, branches, goals)
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}
	return g
}

func TestNode_Exists(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	n, err := g.Node("b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Code != "t.b" {
		t.Errorf("got code %q, want %q", n.Code, "t.b")
	}
}

func TestNode_NotFound(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	if _, err := g.Node("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent concept, got nil")
	}
}

func TestNodeByCode(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	n, err := g.NodeByCode("t.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID != "c" {
		t.Errorf("got id %q, want %q", n.ID, "c")
	}
}

func TestTopoOrder_PrereqsFirst(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	order := g.TopoOrder()
	if len(order) != 4 {
		t.Fatalf("got %d nodes, want 4", len(order))
	}
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n.ID] = i
	}
	for _, n := range testNodes() {
		for _, p := range n.Prerequisites {
			if pos[p] >= pos[n.ID] {
				t.Errorf("prerequisite %q at %d appears after %q at %d", p, pos[p], n.ID, pos[n.ID])
			}
		}
	}
}

func TestTopoOrder_TiesBreakByID(t *testing.T) {
	// b and c both unlock after a; with equal in-degree the smaller ID wins.
	g := mustGraph(t, testNodes(), nil, nil)
	order := g.TopoOrder()
	if order[1].ID != "b" || order[2].ID != "c" {
		t.Errorf("got order %q, %q at positions 1-2, want b, c", order[1].ID, order[2].ID)
	}
}

func TestRoots(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	roots := g.Roots()
	if len(roots) != 1 || roots[0].ID != "a" {
		t.Errorf("got roots %v, want [a]", roots)
	}
}

func TestDependents(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	deps := g.Dependents("a")
	if len(deps) != 2 {
		t.Fatalf("got %d dependents, want 2", len(deps))
	}
}

func TestIsUnlocked(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	tests := []struct {
		id       string
		mastered map[string]bool
		want     bool
	}{
		{"a", nil, true},
		{"b", nil, false},
		{"b", map[string]bool{"a": true}, true},
		{"d", map[string]bool{"a": true, "b": true}, false},
		{"d", map[string]bool{"a": true, "b": true, "c": true}, true},
		{"nonexistent", nil, false},
	}
	for _, tt := range tests {
		if got := g.IsUnlocked(tt.id, tt.mastered); got != tt.want {
			t.Errorf("IsUnlocked(%q, %v): got %v, want %v", tt.id, tt.mastered, got, tt.want)
		}
	}
}

func TestAvailableNodes_ExcludesMasteredAndLocked(t *testing.T) {
	g := mustGraph(t, testNodes(), nil, nil)
	avail := g.AvailableNodes(map[string]bool{"a": true})
	if len(avail) != 2 {
		t.Fatalf("got %d available nodes, want 2", len(avail))
	}
	if avail[0].ID != "b" || avail[1].ID != "c" {
		t.Errorf("got %q, %q, want b, c", avail[0].ID, avail[1].ID)
	}
}

func TestByDomain_SortedByGradeThenTopo(t *testing.T) {
	g := Default()
	for _, d := range AllDomains() {
		nodes := g.ByDomain(d)
		for i := 1; i < len(nodes); i++ {
			if nodes[i].GradeLevel < nodes[i-1].GradeLevel {
				t.Errorf("ByDomain(%q): %q (grade %d) appears after %q (grade %d)",
					d, nodes[i].ID, nodes[i].GradeLevel, nodes[i-1].ID, nodes[i-1].GradeLevel)
			}
		}
	}
}

func TestDefault_SeedIntegrity(t *testing.T) {
	g := Default()
	if len(g.AllNodes()) != 25 {
		t.Errorf("got %d seed concepts, want 25", len(g.AllNodes()))
	}
	if len(g.AllBranches()) != 7 {
		t.Errorf("got %d seed branches, want 7", len(g.AllBranches()))
	}
	if len(g.AllGoals()) != 3 {
		t.Errorf("got %d seed goals, want 3", len(g.AllGoals()))
	}
	for _, goal := range g.AllGoals() {
		for _, cid := range goal.ConceptIDs {
			if _, err := g.Node(cid); err != nil {
				t.Errorf("goal %q references unknown concept %q", goal.ID, cid)
			}
		}
	}
	for _, b := range g.AllBranches() {
		for _, cid := range b.ConceptIDs {
			if _, err := g.Node(cid); err != nil {
				t.Errorf("branch %q references unknown concept %q", b.ID, cid)
			}
		}
	}
}

func TestGoal_NotFound(t *testing.T) {
	g := Default()
	if _, err := g.Goal("goal-nonexistent"); err == nil {
		t.Fatal("expected error for unknown goal, got nil")
	}
}
