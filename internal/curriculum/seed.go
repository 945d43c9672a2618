package curriculum

import "sync"

var (
	defaultOnce  sync.Once
	defaultGraph *Graph
)

// Default returns the built-in K-5 math catalog. The seed is validated at
// first use; a broken seed is a programming error and panics.
func Default() *Graph {
	defaultOnce.Do(func() {
		g, err := NewGraph(seedNodes(), seedBranches(), seedGoals())
		if err != nil {
			panic(err)
		}
		defaultGraph = g
	})
	return defaultGraph
}

func seedNodes() []ConceptNode {
	return []ConceptNode{
		// Number sense
		{ID: "ns-count-100", Code: "ns.count.100", Name: "Counting to 100", Domain: DomainNumberSense, GradeLevel: 1, Difficulty: 1},
		{ID: "ns-place-value", Code: "ns.place.value", Name: "Place Value to 1,000", Domain: DomainNumberSense, GradeLevel: 2, Difficulty: 2,
			Prerequisites: []string{"ns-count-100"}},
		{ID: "ns-compare", Code: "ns.compare", Name: "Comparing and Ordering Numbers", Domain: DomainNumberSense, GradeLevel: 2, Difficulty: 2,
			Prerequisites: []string{"ns-place-value"}},
		{ID: "ns-rounding", Code: "ns.rounding", Name: "Rounding to Tens and Hundreds", Domain: DomainNumberSense, GradeLevel: 3, Difficulty: 3,
			Prerequisites: []string{"ns-compare"}},

		// Arithmetic
		{ID: "ar-add-1digit", Code: "ar.add.1digit", Name: "Single-Digit Addition", Domain: DomainArithmetic, GradeLevel: 1, Difficulty: 1,
			Prerequisites: []string{"ns-count-100"}},
		{ID: "ar-sub-1digit", Code: "ar.sub.1digit", Name: "Single-Digit Subtraction", Domain: DomainArithmetic, GradeLevel: 1, Difficulty: 2,
			Prerequisites: []string{"ar-add-1digit"}},
		{ID: "ar-add-regroup", Code: "ar.add.regroup", Name: "Addition with Regrouping", Domain: DomainArithmetic, GradeLevel: 2, Difficulty: 3,
			Prerequisites: []string{"ar-add-1digit", "ns-place-value"}},
		{ID: "ar-sub-regroup", Code: "ar.sub.regroup", Name: "Subtraction with Regrouping", Domain: DomainArithmetic, GradeLevel: 2, Difficulty: 4,
			Prerequisites: []string{"ar-sub-1digit", "ar-add-regroup"}},
		{ID: "ar-add-3digit", Code: "ar.add.3digit", Name: "3-Digit Addition", Domain: DomainArithmetic, GradeLevel: 3, Difficulty: 4,
			Prerequisites: []string{"ar-add-regroup"}},
		{ID: "ar-mult-intro", Code: "ar.mult.intro", Name: "Multiplication as Repeated Addition", Domain: DomainArithmetic, GradeLevel: 3, Difficulty: 4,
			Prerequisites: []string{"ar-add-regroup"}},
		{ID: "ar-mult-facts", Code: "ar.mult.facts", Name: "Multiplication Facts to 12", Domain: DomainArithmetic, GradeLevel: 3, Difficulty: 5,
			Prerequisites: []string{"ar-mult-intro"}},
		{ID: "ar-div-intro", Code: "ar.div.intro", Name: "Division as Sharing", Domain: DomainArithmetic, GradeLevel: 3, Difficulty: 5,
			Prerequisites: []string{"ar-mult-facts"}},
		{ID: "ar-mult-2digit", Code: "ar.mult.2digit", Name: "2-Digit Multiplication", Domain: DomainArithmetic, GradeLevel: 4, Difficulty: 6,
			Prerequisites: []string{"ar-mult-facts", "ar-add-3digit"}},
		{ID: "ar-long-div", Code: "ar.div.long", Name: "Long Division", Domain: DomainArithmetic, GradeLevel: 4, Difficulty: 7,
			Prerequisites: []string{"ar-div-intro", "ar-mult-2digit"}},

		// Fractions
		{ID: "fr-intro", Code: "fr.intro", Name: "Fractions as Parts of a Whole", Domain: DomainFractions, GradeLevel: 3, Difficulty: 4,
			Prerequisites: []string{"ar-div-intro"}},
		{ID: "fr-equivalent", Code: "fr.equivalent", Name: "Equivalent Fractions", Domain: DomainFractions, GradeLevel: 4, Difficulty: 5,
			Prerequisites: []string{"fr-intro"}},
		{ID: "fr-compare", Code: "fr.compare", Name: "Comparing Fractions", Domain: DomainFractions, GradeLevel: 4, Difficulty: 6,
			Prerequisites: []string{"fr-equivalent"}},
		{ID: "fr-add-like", Code: "fr.add.like", Name: "Adding Like Fractions", Domain: DomainFractions, GradeLevel: 4, Difficulty: 6,
			Prerequisites: []string{"fr-intro", "ar-add-regroup"}},
		{ID: "fr-add-unlike", Code: "fr.add.unlike", Name: "Adding Unlike Fractions", Domain: DomainFractions, GradeLevel: 5, Difficulty: 8,
			Prerequisites: []string{"fr-add-like", "fr-equivalent"}},
		{ID: "fr-mult", Code: "fr.mult", Name: "Multiplying Fractions", Domain: DomainFractions, GradeLevel: 5, Difficulty: 8,
			Prerequisites: []string{"fr-equivalent", "ar-mult-facts"}},

		// Geometry
		{ID: "ge-shapes", Code: "ge.shapes", Name: "Identifying 2D Shapes", Domain: DomainGeometry, GradeLevel: 1, Difficulty: 1},
		{ID: "ge-perimeter", Code: "ge.perimeter", Name: "Perimeter", Domain: DomainGeometry, GradeLevel: 3, Difficulty: 4,
			Prerequisites: []string{"ge-shapes", "ar-add-regroup"}},
		{ID: "ge-area", Code: "ge.area", Name: "Area of Rectangles", Domain: DomainGeometry, GradeLevel: 4, Difficulty: 5,
			Prerequisites: []string{"ge-perimeter", "ar-mult-facts"}},

		// Measurement
		{ID: "me-time", Code: "me.time", Name: "Telling Time", Domain: DomainMeasurement, GradeLevel: 2, Difficulty: 3,
			Prerequisites: []string{"ns-count-100"}},
		{ID: "me-units", Code: "me.units", Name: "Units of Length and Weight", Domain: DomainMeasurement, GradeLevel: 3, Difficulty: 4,
			Prerequisites: []string{"ns-place-value"}},
	}
}

func seedBranches() []TopicBranch {
	return []TopicBranch{
		{ID: "br-counting", Name: "Counting & Place Value", Domain: DomainNumberSense, GradeLevel: 1,
			ConceptIDs: []string{"ns-count-100", "ns-place-value", "ns-compare", "ns-rounding"}},
		{ID: "br-add-sub", Name: "Addition & Subtraction", Domain: DomainArithmetic, GradeLevel: 2,
			ConceptIDs: []string{"ar-add-1digit", "ar-sub-1digit", "ar-add-regroup", "ar-sub-regroup", "ar-add-3digit"}},
		{ID: "br-mult-div", Name: "Multiplication & Division", Domain: DomainArithmetic, GradeLevel: 3,
			ConceptIDs:            []string{"ar-mult-intro", "ar-mult-facts", "ar-div-intro", "ar-mult-2digit", "ar-long-div"},
			PrerequisiteBranchIDs: []string{"br-add-sub"}},
		{ID: "br-fractions", Name: "Fractions", Domain: DomainFractions, GradeLevel: 4,
			ConceptIDs:            []string{"fr-intro", "fr-equivalent", "fr-compare", "fr-add-like"},
			PrerequisiteBranchIDs: []string{"br-mult-div"}},
		{ID: "br-fractions-adv", Name: "Advanced Fractions", Domain: DomainFractions, GradeLevel: 5, IsAdvanced: true,
			ConceptIDs:            []string{"fr-add-unlike", "fr-mult"},
			PrerequisiteBranchIDs: []string{"br-fractions"}},
		{ID: "br-geometry", Name: "Shapes & Space", Domain: DomainGeometry, GradeLevel: 3,
			ConceptIDs:            []string{"ge-shapes", "ge-perimeter", "ge-area"},
			PrerequisiteBranchIDs: []string{"br-add-sub"}},
		{ID: "br-measurement", Name: "Measurement", Domain: DomainMeasurement, GradeLevel: 2,
			ConceptIDs: []string{"me-time", "me-units"}},
	}
}

func seedGoals() []Goal {
	return []Goal{
		{ID: "goal-g3-math", Name: "Grade 3 Math Proficiency", ConceptIDs: []string{
			"ns-rounding", "ar-add-3digit", "ar-mult-intro", "ar-mult-facts", "ar-div-intro",
			"fr-intro", "ge-perimeter", "me-units",
		}},
		{ID: "goal-g4-math", Name: "Grade 4 Math Proficiency", ConceptIDs: []string{
			"ar-mult-2digit", "ar-long-div", "fr-equivalent", "fr-compare", "fr-add-like", "ge-area",
		}},
		{ID: "goal-fractions", Name: "Fraction Fluency", ConceptIDs: []string{
			"fr-intro", "fr-equivalent", "fr-compare", "fr-add-like", "fr-add-unlike", "fr-mult",
		}},
	}
}
