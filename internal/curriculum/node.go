package curriculum

// Domain represents a curriculum content domain.
type Domain string

const (
	DomainNumberSense Domain = "number-sense"
	DomainArithmetic  Domain = "arithmetic"
	DomainFractions   Domain = "fractions"
	DomainGeometry    Domain = "geometry"
	DomainMeasurement Domain = "measurement"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainNumberSense,
		DomainArithmetic,
		DomainFractions,
		DomainGeometry,
		DomainMeasurement,
	}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainNumberSense:
		return "Number Sense"
	case DomainArithmetic:
		return "Arithmetic"
	case DomainFractions:
		return "Fractions"
	case DomainGeometry:
		return "Geometry"
	case DomainMeasurement:
		return "Measurement"
	default:
		return string(d)
	}
}

// ConceptNode is a single atomic curriculum unit in the knowledge graph.
// Nodes are immutable after authoring; prerequisites form a DAG.
type ConceptNode struct {
	ID            string   `json:"id"`
	Code          string   `json:"code"` // stable human-readable key, e.g. "ar.add.3digit"
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Domain        Domain   `json:"domain"`
	GradeLevel    int      `json:"gradeLevel"`
	Difficulty    float64  `json:"difficulty"` // 1 (trivial) .. 10 (hardest)
	Prerequisites []string `json:"prerequisites,omitempty"`
}

// Goal is a named bundle of required concepts, e.g. "Grade 5 Math Proficiency".
// The concept set is unordered; the planner derives the sequence.
type Goal struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ConceptIDs []string `json:"conceptIds"`
}
