// Package taxonomy defines the ordered cognitive ladders used to
// classify questions and answers: Bloom levels for cognitive demand
// and SOLO levels for structural sophistication.
package taxonomy

import "strings"

// BloomLevel is one of six ordered cognitive-demand tiers.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// DefaultBloom is the level assumed when none is known.
const DefaultBloom = BloomUnderstand

// BloomLadder lists all Bloom levels in ascending cognitive demand.
var BloomLadder = []BloomLevel{
	BloomRemember,
	BloomUnderstand,
	BloomApply,
	BloomAnalyze,
	BloomEvaluate,
	BloomCreate,
}

// BloomIndex returns the ladder position of l, or the index of
// DefaultBloom when l is unrecognized.
func BloomIndex(l BloomLevel) int {
	for i, lvl := range BloomLadder {
		if lvl == l {
			return i
		}
	}
	return 1 // understand
}

// BloomAt returns the level at ladder index i, clamped to the ends.
func BloomAt(i int) BloomLevel {
	if i < 0 {
		i = 0
	}
	if i >= len(BloomLadder) {
		i = len(BloomLadder) - 1
	}
	return BloomLadder[i]
}

// ParseBloom extracts a Bloom level from free text. Model output often
// wraps the level in prose ("The level is: apply"), so matching is by
// substring over the lowercased input. Returns DefaultBloom when no
// level is found.
func ParseBloom(s string) BloomLevel {
	lowered := strings.ToLower(s)
	for _, lvl := range BloomLadder {
		if strings.Contains(lowered, string(lvl)) {
			return lvl
		}
	}
	return DefaultBloom
}

// ValidBloom reports whether l is a recognized Bloom level.
func ValidBloom(l BloomLevel) bool {
	for _, lvl := range BloomLadder {
		if lvl == l {
			return true
		}
	}
	return false
}
