package curriculum

import (
	"testing"
)

func masteredSet(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func TestBranchUnlocked_NoPrereqsDefaultOpen(t *testing.T) {
	g := Default()
	if !g.BranchUnlocked("br-counting", nil) {
		t.Error("br-counting has no prerequisite branches and should be unlocked")
	}
	if g.BranchUnlocked("br-mult-div", nil) {
		t.Error("br-mult-div requires br-add-sub completed and should be locked")
	}
}

func TestBranchUnlocked_AfterPrereqCompleted(t *testing.T) {
	g := Default()
	addSub := masteredSet("ar-add-1digit", "ar-sub-1digit", "ar-add-regroup", "ar-sub-regroup", "ar-add-3digit")
	if !g.BranchCompleted("br-add-sub", addSub) {
		t.Fatal("br-add-sub should be completed with all members mastered")
	}
	if !g.BranchUnlocked("br-mult-div", addSub) {
		t.Error("br-mult-div should unlock once br-add-sub is completed")
	}
	if !g.BranchUnlocked("br-geometry", addSub) {
		t.Error("br-geometry should unlock once br-add-sub is completed")
	}
	if g.BranchUnlocked("br-fractions", addSub) {
		t.Error("br-fractions still requires br-mult-div completed")
	}
}

func TestBranchCompleted_PartialMastery(t *testing.T) {
	g := Default()
	if g.BranchCompleted("br-measurement", masteredSet("me-time")) {
		t.Error("branch with one of two members mastered is not completed")
	}
	if !g.BranchCompleted("br-measurement", masteredSet("me-time", "me-units")) {
		t.Error("branch with all members mastered should be completed")
	}
}

func TestBranchTreeFor_StatusFields(t *testing.T) {
	g := Default()
	mastered := masteredSet("ns-count-100", "ns-place-value")
	tree := g.BranchTreeFor(mastered)

	if len(tree.Statuses) != len(g.AllBranches()) {
		t.Fatalf("got %d statuses, want %d", len(tree.Statuses), len(g.AllBranches()))
	}

	byID := make(map[string]BranchStatus, len(tree.Statuses))
	for _, st := range tree.Statuses {
		byID[st.Branch.ID] = st
	}

	counting := byID["br-counting"]
	if !counting.Unlocked || counting.Completed {
		t.Errorf("br-counting: unlocked=%v completed=%v, want unlocked incomplete", counting.Unlocked, counting.Completed)
	}
	if counting.MasteredCount != 2 || counting.ConceptCount != 4 {
		t.Errorf("br-counting: got %d/%d, want 2/4", counting.MasteredCount, counting.ConceptCount)
	}
	if counting.NewlyAvailable {
		t.Error("br-counting has mastered members and is not newly available")
	}

	addSub := byID["br-add-sub"]
	if !addSub.NewlyAvailable {
		t.Error("br-add-sub is unlocked with no members mastered and should be newly available")
	}

	multDiv := byID["br-mult-div"]
	if multDiv.Unlocked {
		t.Error("br-mult-div should stay locked")
	}
}

func TestBranchTreeFor_DeeperVsBroaderChoice(t *testing.T) {
	g := Default()
	// Everything through br-fractions mastered: the advanced fractions
	// branch opens alongside remaining breadth branches.
	mastered := masteredSet(
		"ns-count-100", "ns-place-value", "ns-compare", "ns-rounding",
		"ar-add-1digit", "ar-sub-1digit", "ar-add-regroup", "ar-sub-regroup", "ar-add-3digit",
		"ar-mult-intro", "ar-mult-facts", "ar-div-intro", "ar-mult-2digit", "ar-long-div",
		"fr-intro", "fr-equivalent", "fr-compare", "fr-add-like",
	)
	tree := g.BranchTreeFor(mastered)

	foundDeeper := false
	for _, b := range tree.GoDeeper {
		if b.ID == "br-fractions-adv" {
			foundDeeper = true
		}
		if !b.IsAdvanced {
			t.Errorf("GoDeeper contains non-advanced branch %q", b.ID)
		}
	}
	if !foundDeeper {
		t.Error("GoDeeper should contain br-fractions-adv")
	}
	if len(tree.GoBroader) == 0 {
		t.Error("GoBroader should list remaining non-advanced branches")
	}
	for _, b := range tree.GoBroader {
		if b.IsAdvanced {
			t.Errorf("GoBroader contains advanced branch %q", b.ID)
		}
	}
}

func TestBranchTreeFor_CompletedOutOfUnlockOrder(t *testing.T) {
	// br-2 is mastered in full before its prerequisite branch: the tree
	// must still read it as completed, matching BranchCompleted so the
	// status view agrees with what unlocks br-3.
	branches := []TopicBranch{
		{ID: "br-1", Name: "One", Domain: DomainArithmetic, ConceptIDs: []string{"a"}},
		{ID: "br-2", Name: "Two", Domain: DomainArithmetic, ConceptIDs: []string{"b"}, PrerequisiteBranchIDs: []string{"br-1"}},
		{ID: "br-3", Name: "Three", Domain: DomainArithmetic, ConceptIDs: []string{"d"}, PrerequisiteBranchIDs: []string{"br-2"}},
	}
	g := mustGraph(t, testNodes(), branches, nil)

	tree := g.BranchTreeFor(masteredSet("b"))
	var br2 BranchStatus
	for _, st := range tree.Statuses {
		if st.Branch.ID == "br-2" {
			br2 = st
		}
	}
	if br2.Unlocked {
		t.Error("br-2's prerequisite branch is incomplete, expected locked")
	}
	if !br2.Completed {
		t.Error("fully mastered branch should read completed regardless of unlock state")
	}
	if !g.BranchCompleted("br-2", masteredSet("b")) {
		t.Error("BranchCompleted should agree with the tree view")
	}
	if !g.BranchUnlocked("br-3", masteredSet("b")) {
		t.Error("br-3 should unlock off br-2's completion")
	}
}

func TestNextInBranches_FirstUnlockedUnmastered(t *testing.T) {
	g := Default()
	next, ok := g.NextInBranches(nil)
	if !ok {
		t.Fatal("fresh student should have a next concept")
	}
	if next.ID != "ns-count-100" {
		t.Errorf("got %q, want ns-count-100 (first member of first unlocked branch)", next.ID)
	}

	next, ok = g.NextInBranches(masteredSet("ns-count-100"))
	if !ok {
		t.Fatal("expected a next concept")
	}
	if next.ID != "ns-place-value" {
		t.Errorf("got %q, want ns-place-value", next.ID)
	}
}

func TestNextInBranches_AdvancesToNextBranch(t *testing.T) {
	g := Default()
	next, ok := g.NextInBranches(masteredSet("ns-count-100", "ns-place-value", "ns-compare", "ns-rounding"))
	if !ok {
		t.Fatal("expected a next concept")
	}
	if next.ID != "ar-add-1digit" {
		t.Errorf("got %q, want ar-add-1digit from the next unlocked branch", next.ID)
	}
}

func TestNextInBranches_SkipsLockedMembers(t *testing.T) {
	// A branch authored with a locked concept ahead of an unlocked one:
	// the walk must skip d (prereqs b, c unmet) and return b.
	branches := []TopicBranch{{ID: "br-t", Name: "T", Domain: DomainArithmetic, ConceptIDs: []string{"d", "b"}}}
	g := mustGraph(t, testNodes(), branches, nil)

	next, ok := g.NextInBranches(masteredSet("a"))
	if !ok {
		t.Fatal("expected a next concept")
	}
	if next.ID != "b" {
		t.Errorf("got %q, want b", next.ID)
	}
}

func TestNextInBranches_Exhausted(t *testing.T) {
	g := Default()
	all := make(map[string]bool)
	for _, n := range g.AllNodes() {
		all[n.ID] = true
	}
	if _, ok := g.NextInBranches(all); ok {
		t.Error("fully mastered catalog should report exhaustion")
	}
}

func TestBranch_Lookup(t *testing.T) {
	g := Default()
	b, ok := g.Branch("br-fractions")
	if !ok {
		t.Fatal("br-fractions should exist")
	}
	if b.Domain != DomainFractions {
		t.Errorf("got domain %q, want %q", b.Domain, DomainFractions)
	}
	if _, ok := g.Branch("br-nonexistent"); ok {
		t.Error("unknown branch should return ok=false")
	}
}
