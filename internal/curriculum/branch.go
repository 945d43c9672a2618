package curriculum

// TopicBranch is a curated group of related concepts with its own unlock
// prerequisites, used for curriculum navigation. Unlock and completion are
// derived from mastery on read; nothing is stored per student.
type TopicBranch struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Domain                Domain   `json:"domain"`
	GradeLevel            int      `json:"gradeLevel"`
	ConceptIDs            []string `json:"conceptIds"` // ordered member concepts
	PrerequisiteBranchIDs []string `json:"prerequisiteBranchIds,omitempty"`
	IsAdvanced            bool     `json:"isAdvanced"`
}

// BranchStatus is a derived per-student view of one branch.
type BranchStatus struct {
	Branch         TopicBranch `json:"branch"`
	Unlocked       bool        `json:"unlocked"`
	Completed      bool        `json:"completed"`
	MasteredCount  int         `json:"masteredCount"`
	ConceptCount   int         `json:"conceptCount"`
	NewlyAvailable bool        `json:"newlyAvailable"` // unlocked and not yet started (no member mastered)
}

// BranchTree is the per-student view over all branches, with the choice
// points surfaced when several branches are open at once.
type BranchTree struct {
	Statuses []BranchStatus `json:"statuses"`

	// GoDeeper lists unlocked, incomplete advanced branches; GoBroader
	// lists unlocked, incomplete non-advanced branches. When both are
	// non-empty the student has an explicit depth-vs-breadth choice.
	GoDeeper  []TopicBranch `json:"goDeeper,omitempty"`
	GoBroader []TopicBranch `json:"goBroader,omitempty"`
}

// Branch returns a branch by ID. The second return is false if unknown.
func (g *Graph) Branch(id string) (TopicBranch, bool) {
	b, ok := g.branchByID[id]
	if !ok {
		return TopicBranch{}, false
	}
	return *b, true
}

// AllBranches returns all branches in authored order.
func (g *Graph) AllBranches() []TopicBranch {
	out := make([]TopicBranch, len(g.branches))
	copy(out, g.branches)
	return out
}

// BranchCompleted reports whether every member concept of the branch is in
// the mastered set.
func (g *Graph) BranchCompleted(id string, mastered map[string]bool) bool {
	b, ok := g.branchByID[id]
	if !ok {
		return false
	}
	for _, cid := range b.ConceptIDs {
		if !mastered[cid] {
			return false
		}
	}
	return true
}

// BranchUnlocked reports whether every prerequisite branch is completed.
// Branches with no prerequisites are unlocked by default.
func (g *Graph) BranchUnlocked(id string, mastered map[string]bool) bool {
	b, ok := g.branchByID[id]
	if !ok {
		return false
	}
	for _, pid := range b.PrerequisiteBranchIDs {
		if !g.BranchCompleted(pid, mastered) {
			return false
		}
	}
	return true
}

// BranchTreeFor computes the full derived branch view for a student's
// mastered set.
func (g *Graph) BranchTreeFor(mastered map[string]bool) BranchTree {
	tree := BranchTree{Statuses: make([]BranchStatus, 0, len(g.branches))}

	for _, b := range g.branches {
		unlocked := g.BranchUnlocked(b.ID, mastered)
		masteredCount := 0
		for _, cid := range b.ConceptIDs {
			if mastered[cid] {
				masteredCount++
			}
		}
		// Completion matches BranchCompleted: all members mastered, even
		// when the branch was worked out of unlock order. Anything else
		// would complete dependents' prerequisites while showing this
		// branch as unfinished.
		completed := masteredCount == len(b.ConceptIDs)

		st := BranchStatus{
			Branch:         b,
			Unlocked:       unlocked,
			Completed:      completed,
			MasteredCount:  masteredCount,
			ConceptCount:   len(b.ConceptIDs),
			NewlyAvailable: unlocked && masteredCount == 0,
		}
		tree.Statuses = append(tree.Statuses, st)

		if unlocked && !completed {
			if b.IsAdvanced {
				tree.GoDeeper = append(tree.GoDeeper, b)
			} else {
				tree.GoBroader = append(tree.GoBroader, b)
			}
		}
	}

	return tree
}

// NextInBranches returns the first unmastered, prerequisite-satisfied
// concept among unlocked branches, in authored branch order. The second
// return is false when the curriculum is exhausted for this student.
func (g *Graph) NextInBranches(mastered map[string]bool) (ConceptNode, bool) {
	for _, b := range g.branches {
		if !g.BranchUnlocked(b.ID, mastered) {
			continue
		}
		for _, cid := range b.ConceptIDs {
			if mastered[cid] {
				continue
			}
			if g.IsUnlocked(cid, mastered) {
				if n, ok := g.byID[cid]; ok {
					return *n, true
				}
			}
		}
	}
	return ConceptNode{}, false
}
