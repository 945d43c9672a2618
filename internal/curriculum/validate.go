package curriculum

import (
	"fmt"
	"strings"
)

// ErrIntegrity marks a structural fault in the authored curriculum data:
// duplicate ids, dangling references, or prerequisite cycles. These are
// authoring bugs, not runtime conditions, and must fail loudly.
type ErrIntegrity struct {
	Problems []string
}

func (e *ErrIntegrity) Error() string {
	return fmt.Sprintf("curriculum integrity check failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateNodes performs all structural checks on the concept set.
// Returns a combined *ErrIntegrity describing all problems found, or nil.
func validateNodes(nodes []ConceptNode) error {
	var errs []string

	idSet := make(map[string]bool, len(nodes))
	codeSet := make(map[string]bool, len(nodes))

	for _, n := range nodes {
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate concept ID: %q", n.ID))
		}
		idSet[n.ID] = true
		if n.Code == "" {
			errs = append(errs, fmt.Sprintf("concept %q has empty code", n.ID))
		} else if codeSet[n.Code] {
			errs = append(errs, fmt.Sprintf("duplicate concept code: %q", n.Code))
		}
		codeSet[n.Code] = true
		if n.Difficulty < 1 || n.Difficulty > 10 {
			errs = append(errs, fmt.Sprintf("concept %q difficulty must be in [1, 10], got %g", n.ID, n.Difficulty))
		}
	}

	// Dangling prerequisites
	for _, n := range nodes {
		for _, prereqID := range n.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("concept %q references nonexistent prerequisite %q", n.ID, prereqID))
			}
		}
	}

	// Cycle check (Kahn's algorithm)
	if cycle := findCycle(nodes); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("prerequisite cycle involving concepts: %s", strings.Join(cycle, ", ")))
	}

	hasRoot := false
	for _, n := range nodes {
		if len(n.Prerequisites) == 0 {
			hasRoot = true
			break
		}
	}
	if len(nodes) > 0 && !hasRoot {
		errs = append(errs, "no root concepts found (at least one concept must have no prerequisites)")
	}

	if len(errs) > 0 {
		return &ErrIntegrity{Problems: errs}
	}
	return nil
}

// findCycle returns the ids of nodes participating in a prerequisite cycle,
// or nil if the graph is acyclic. Uses Kahn's algorithm: nodes left with
// nonzero in-degree after peeling are on or downstream of a cycle.
func findCycle(nodes []ConceptNode) []string {
	inDegree := make(map[string]int, len(nodes))
	adjList := make(map[string][]string)
	for _, n := range nodes {
		inDegree[n.ID] = len(n.Prerequisites)
		for _, prereqID := range n.Prerequisites {
			adjList[prereqID] = append(adjList[prereqID], n.ID)
		}
	}

	var queue []string
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited == len(nodes) {
		return nil
	}
	var cycle []string
	for _, n := range nodes {
		if inDegree[n.ID] > 0 {
			cycle = append(cycle, n.ID)
		}
	}
	return cycle
}

// validateBranches checks branch member/prerequisite references and
// branch-level cycles.
func validateBranches(nodes []ConceptNode, branches []TopicBranch) error {
	var errs []string

	nodeIDs := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		nodeIDs[n.ID] = true
	}

	branchIDs := make(map[string]bool, len(branches))
	for _, b := range branches {
		if branchIDs[b.ID] {
			errs = append(errs, fmt.Sprintf("duplicate branch ID: %q", b.ID))
		}
		branchIDs[b.ID] = true
	}

	for _, b := range branches {
		if len(b.ConceptIDs) == 0 {
			errs = append(errs, fmt.Sprintf("branch %q has no member concepts", b.ID))
		}
		for _, cid := range b.ConceptIDs {
			if !nodeIDs[cid] {
				errs = append(errs, fmt.Sprintf("branch %q references nonexistent concept %q", b.ID, cid))
			}
		}
		for _, pid := range b.PrerequisiteBranchIDs {
			if !branchIDs[pid] {
				errs = append(errs, fmt.Sprintf("branch %q references nonexistent prerequisite branch %q", b.ID, pid))
			}
			if pid == b.ID {
				errs = append(errs, fmt.Sprintf("branch %q lists itself as a prerequisite", b.ID))
			}
		}
	}

	if len(errs) > 0 {
		return &ErrIntegrity{Problems: errs}
	}
	return nil
}
