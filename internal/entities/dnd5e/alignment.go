package dnd5e

// Alignment is one of the nine alignments
type Alignment string

// Alignment constants
const (
	AlignmentLawfulGood     Alignment = "LG"
	AlignmentNeutralGood    Alignment = "NG"
	AlignmentChaoticGood    Alignment = "CG"
	AlignmentLawfulNeutral  Alignment = "LN"
	AlignmentNeutral        Alignment = "N"
	AlignmentChaoticNeutral Alignment = "CN"
	AlignmentLawfulEvil     Alignment = "LE"
	AlignmentNeutralEvil    Alignment = "NE"
	AlignmentChaoticEvil    Alignment = "CE"
)

// Alignments lists all nine alignments
var Alignments = []Alignment{
	AlignmentLawfulGood,
	AlignmentNeutralGood,
	AlignmentChaoticGood,
	AlignmentLawfulNeutral,
	AlignmentNeutral,
	AlignmentChaoticNeutral,
	AlignmentLawfulEvil,
	AlignmentNeutralEvil,
	AlignmentChaoticEvil,
}

// Lawfulness is the law/chaos axis: 1 lawful, 0 neutral, -1 chaotic
func (a Alignment) Lawfulness() int {
	switch a {
	case AlignmentLawfulGood, AlignmentLawfulNeutral, AlignmentLawfulEvil:
		return 1
	case AlignmentChaoticGood, AlignmentChaoticNeutral, AlignmentChaoticEvil:
		return -1
	default:
		return 0
	}
}

// Morality is the good/evil axis: 1 good, 0 neutral, -1 evil
func (a Alignment) Morality() int {
	switch a {
	case AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood:
		return 1
	case AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil:
		return -1
	default:
		return 0
	}
}

// IsEvil reports whether the alignment sits on the evil side
func (a Alignment) IsEvil() bool {
	return a.Morality() < 0
}

// Distance is the number of steps between two alignments on the grid
func (a Alignment) Distance(b Alignment) int {
	return abs(a.Lawfulness()-b.Lawfulness()) + abs(a.Morality()-b.Morality())
}

// Valid reports whether a is one of the nine alignments
func (a Alignment) Valid() bool {
	for _, v := range Alignments {
		if v == a {
			return true
		}
	}
	return false
}

var alignmentNames = map[Alignment]string{
	AlignmentLawfulGood:     "Lawful Good",
	AlignmentNeutralGood:    "Neutral Good",
	AlignmentChaoticGood:    "Chaotic Good",
	AlignmentLawfulNeutral:  "Lawful Neutral",
	AlignmentNeutral:        "Neutral",
	AlignmentChaoticNeutral: "Chaotic Neutral",
	AlignmentLawfulEvil:     "Lawful Evil",
	AlignmentNeutralEvil:    "Neutral Evil",
	AlignmentChaoticEvil:    "Chaotic Evil",
}

// Name returns the display name
func (a Alignment) Name() string {
	if n, ok := alignmentNames[a]; ok {
		return n
	}
	return string(a)
}

// IdealTag is the alignment hint printed after a background ideal,
// e.g. "(Lawful)" or "(Any)"
type IdealTag string

// IdealTag constants
const (
	IdealAny     IdealTag = "any"
	IdealLawful  IdealTag = "lawful"
	IdealChaotic IdealTag = "chaotic"
	IdealGood    IdealTag = "good"
	IdealEvil    IdealTag = "evil"
	IdealNeutral IdealTag = "neutral"
)

// Matches counts the axes of a that agree with the tag. "any" never matches,
// "neutral" matches each neutral axis.
func (t IdealTag) Matches(a Alignment) int {
	switch t {
	case IdealLawful:
		return boolInt(a.Lawfulness() == 1)
	case IdealChaotic:
		return boolInt(a.Lawfulness() == -1)
	case IdealGood:
		return boolInt(a.Morality() == 1)
	case IdealEvil:
		return boolInt(a.Morality() == -1)
	case IdealNeutral:
		return boolInt(a.Lawfulness() == 0) + boolInt(a.Morality() == 0)
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
