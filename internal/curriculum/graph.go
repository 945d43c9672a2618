package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// Graph holds the concept DAG with precomputed indices.
// A Graph is immutable after construction and safe for concurrent reads.
type Graph struct {
	nodes      []ConceptNode
	byID       map[string]*ConceptNode
	byCode     map[string]*ConceptNode
	byDomain   map[Domain][]ConceptNode
	byGrade    map[int][]ConceptNode
	roots      []ConceptNode
	dependents map[string][]string
	topoOrder  []ConceptNode
	topoIndex  map[string]int
	branches   []TopicBranch
	branchByID map[string]*TopicBranch
	goals      []Goal
	goalByID   map[string]*Goal
}

// NewGraph constructs a Graph from a slice of nodes, branches, and goals.
// It validates structure (duplicate ids, dangling prerequisites, cycles)
// and builds all indices including topological order (Kahn's algorithm).
func NewGraph(nodes []ConceptNode, branches []TopicBranch, goals []Goal) (*Graph, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}
	if err := validateBranches(nodes, branches); err != nil {
		return nil, err
	}

	g := &Graph{
		nodes:      nodes,
		byID:       make(map[string]*ConceptNode, len(nodes)),
		byCode:     make(map[string]*ConceptNode, len(nodes)),
		byDomain:   make(map[Domain][]ConceptNode),
		byGrade:    make(map[int][]ConceptNode),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(nodes)),
		branches:   branches,
		branchByID: make(map[string]*TopicBranch, len(branches)),
		goals:      goals,
		goalByID:   make(map[string]*Goal, len(goals)),
	}

	for i := range g.nodes {
		g.byID[g.nodes[i].ID] = &g.nodes[i]
		g.byCode[g.nodes[i].Code] = &g.nodes[i]
	}
	for i := range g.branches {
		g.branchByID[g.branches[i].ID] = &g.branches[i]
	}
	for i := range g.goals {
		g.goalByID[g.goals[i].ID] = &g.goals[i]
	}

	// Reverse edges (dependents)
	for i := range g.nodes {
		for _, prereqID := range g.nodes[i].Prerequisites {
			g.dependents[prereqID] = append(g.dependents[prereqID], g.nodes[i].ID)
		}
	}

	// Topological sort (Kahn's algorithm)
	inDegree := make(map[string]int, len(nodes))
	for i := range nodes {
		inDegree[nodes[i].ID] = len(nodes[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering
	sort.Strings(queue)

	var topoOrder []ConceptNode
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		node := g.byID[id]
		topoOrder = append(topoOrder, *node)

		deps := g.dependents[id]
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, depID := range sorted {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	g.topoOrder = topoOrder
	for i, n := range g.topoOrder {
		g.topoIndex[n.ID] = i
	}

	for i := range g.nodes {
		if len(g.nodes[i].Prerequisites) == 0 {
			g.roots = append(g.roots, g.nodes[i])
		}
	}

	// Group by domain, sorted by grade asc then topo index
	for i := range g.nodes {
		n := g.nodes[i]
		g.byDomain[n.Domain] = append(g.byDomain[n.Domain], n)
	}
	for domain, nodes := range g.byDomain {
		sorted := make([]ConceptNode, len(nodes))
		copy(sorted, nodes)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].GradeLevel != sorted[j].GradeLevel {
				return sorted[i].GradeLevel < sorted[j].GradeLevel
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byDomain[domain] = sorted
	}

	// Group by grade, sorted by domain order then topo index
	domainOrder := AllDomains()
	domainIdx := make(map[Domain]int, len(domainOrder))
	for i, d := range domainOrder {
		domainIdx[d] = i
	}
	for i := range g.nodes {
		n := g.nodes[i]
		g.byGrade[n.GradeLevel] = append(g.byGrade[n.GradeLevel], n)
	}
	for grade, nodes := range g.byGrade {
		sorted := make([]ConceptNode, len(nodes))
		copy(sorted, nodes)
		sort.Slice(sorted, func(i, j int) bool {
			di := domainIdx[sorted[i].Domain]
			dj := domainIdx[sorted[j].Domain]
			if di != dj {
				return di < dj
			}
			return g.topoIndex[sorted[i].ID] < g.topoIndex[sorted[j].ID]
		})
		g.byGrade[grade] = sorted
	}

	return g, nil
}

// Node returns a concept node by ID, or an error if not found.
func (g *Graph) Node(id string) (ConceptNode, error) {
	n, ok := g.byID[id]
	if !ok {
		return ConceptNode{}, fmt.Errorf("concept not found: %q", id)
	}
	return *n, nil
}

// NodeByCode returns a concept node by its stable code.
func (g *Graph) NodeByCode(code string) (ConceptNode, error) {
	n, ok := g.byCode[code]
	if !ok {
		return ConceptNode{}, fmt.Errorf("concept not found: code %q", code)
	}
	return *n, nil
}

// Goal returns a goal by ID, or an error if not found.
func (g *Graph) Goal(id string) (Goal, error) {
	goal, ok := g.goalByID[id]
	if !ok {
		return Goal{}, fmt.Errorf("goal not found: %q", id)
	}
	return *goal, nil
}

// AllNodes returns all concept nodes in the graph.
func (g *Graph) AllNodes() []ConceptNode {
	return slices.Clone(g.nodes)
}

// AllGoals returns all learning goals in authored order.
func (g *Graph) AllGoals() []Goal {
	return slices.Clone(g.goals)
}

// ByDomain returns all nodes in a domain, ordered by grade then topological position.
func (g *Graph) ByDomain(d Domain) []ConceptNode {
	return slices.Clone(g.byDomain[d])
}

// ByGrade returns all nodes for a grade level, ordered by domain then topological position.
func (g *Graph) ByGrade(grade int) []ConceptNode {
	return slices.Clone(g.byGrade[grade])
}

// Roots returns all nodes with no prerequisites.
func (g *Graph) Roots() []ConceptNode {
	return slices.Clone(g.roots)
}

// TopoOrder returns all nodes in topological order.
func (g *Graph) TopoOrder() []ConceptNode {
	return slices.Clone(g.topoOrder)
}

// TopoIndex returns a node's position in the topological order.
// The second return is false if the node is unknown.
func (g *Graph) TopoIndex(id string) (int, bool) {
	i, ok := g.topoIndex[id]
	return i, ok
}

// Prerequisites returns the direct prerequisite nodes for a concept.
func (g *Graph) Prerequisites(id string) []ConceptNode {
	n, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]ConceptNode, 0, len(n.Prerequisites))
	for _, prereqID := range n.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns nodes that directly depend on the given concept.
func (g *Graph) Dependents(id string) []ConceptNode {
	depIDs := g.dependents[id]
	result := make([]ConceptNode, 0, len(depIDs))
	for _, depID := range depIDs {
		if n, ok := g.byID[depID]; ok {
			result = append(result, *n)
		}
	}
	return result
}

// IsUnlocked returns true if every prerequisite of the concept is in the mastered set.
func (g *Graph) IsUnlocked(id string, mastered map[string]bool) bool {
	n, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range n.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// AvailableNodes returns all nodes that are unlocked but not yet mastered,
// in topological order.
func (g *Graph) AvailableNodes(mastered map[string]bool) []ConceptNode {
	var result []ConceptNode
	for _, n := range g.topoOrder {
		if !mastered[n.ID] && g.IsUnlocked(n.ID, mastered) {
			result = append(result, n)
		}
	}
	return result
}
