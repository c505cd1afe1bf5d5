package taxonomy

import "strings"

// SOLOLevel is one of five ordered tiers describing the structural
// sophistication of a student's answer.
type SOLOLevel string

const (
	SOLOPrestructural    SOLOLevel = "prestructural"
	SOLOUnistructural    SOLOLevel = "unistructural"
	SOLOMultistructural  SOLOLevel = "multistructural"
	SOLORelational       SOLOLevel = "relational"
	SOLOExtendedAbstract SOLOLevel = "extended-abstract"
)

// DefaultSOLO is the level assumed when none is known.
const DefaultSOLO = SOLOUnistructural

// SOLOLadder lists all SOLO levels in ascending sophistication.
var SOLOLadder = []SOLOLevel{
	SOLOPrestructural,
	SOLOUnistructural,
	SOLOMultistructural,
	SOLORelational,
	SOLOExtendedAbstract,
}

// ParseSOLO extracts a SOLO level from free text by substring match
// over the lowercased input. "extended abstract" with a space is also
// accepted. Returns DefaultSOLO when no level is found.
func ParseSOLO(s string) SOLOLevel {
	lowered := strings.ToLower(s)
	// Check longer names first so "multistructural" is not shadowed.
	if strings.Contains(lowered, "extended-abstract") || strings.Contains(lowered, "extended abstract") {
		return SOLOExtendedAbstract
	}
	if strings.Contains(lowered, "multistructural") {
		return SOLOMultistructural
	}
	if strings.Contains(lowered, "unistructural") {
		return SOLOUnistructural
	}
	if strings.Contains(lowered, "prestructural") {
		return SOLOPrestructural
	}
	if strings.Contains(lowered, "relational") {
		return SOLORelational
	}
	return DefaultSOLO
}

// ValidSOLO reports whether l is a recognized SOLO level.
func ValidSOLO(l SOLOLevel) bool {
	for _, lvl := range SOLOLadder {
		if lvl == l {
			return true
		}
	}
	return false
}
