// Package plan computes the next Bloom level and difficulty tier for a
// session from the latest observed score. All functions are pure.
package plan

import (
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// Mode selects the advancement thresholds for Bloom planning.
type Mode string

const (
	ModeExam       Mode = "exam"
	ModeDiagnostic Mode = "diagnostic"
)

// ParseMode returns the Mode for s, defaulting to diagnostic.
func ParseMode(s string) Mode {
	if s == string(ModeExam) {
		return ModeExam
	}
	return ModeDiagnostic
}

// Difficulty is one of three ordered tiers.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultDifficulty is the tier assumed when none is known.
const DefaultDifficulty = DifficultyMedium

var difficultyLadder = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Per-mode Bloom thresholds. Diagnostic mode moves earlier in both
// directions so it can probe the range faster.
const (
	examAdvance       = 0.8
	examRetreat       = 0.4
	diagnosticAdvance = 0.7
	diagnosticRetreat = 0.3

	difficultyAdvance = 0.75
	difficultyRetreat = 0.35
)

// NextBloom returns the Bloom level to target after observing score in
// the given mode. Movement is one step at a time and never leaves the
// ladder. An unrecognized current level is treated as understand.
func NextBloom(current taxonomy.BloomLevel, score float64, mode Mode) taxonomy.BloomLevel {
	advance, retreat := examAdvance, examRetreat
	if mode == ModeDiagnostic {
		advance, retreat = diagnosticAdvance, diagnosticRetreat
	}

	idx := taxonomy.BloomIndex(current)
	switch {
	case score >= advance:
		idx++
	case score < retreat:
		idx--
	}
	return taxonomy.BloomAt(idx)
}

// NextDifficulty returns the difficulty tier to target after observing
// score. Thresholds are the same in both modes. An unrecognized
// current tier is treated as medium.
func NextDifficulty(current Difficulty, score float64) Difficulty {
	idx := difficultyIndex(current)
	switch {
	case score >= difficultyAdvance:
		idx++
	case score < difficultyRetreat:
		idx--
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(difficultyLadder) {
		idx = len(difficultyLadder) - 1
	}
	return difficultyLadder[idx]
}

func difficultyIndex(d Difficulty) int {
	for i, tier := range difficultyLadder {
		if tier == d {
			return i
		}
	}
	return 1 // medium
}
