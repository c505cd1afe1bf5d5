package plan

import (
	"testing"

	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

func TestNextBloom_ExamThresholds(t *testing.T) {
	tests := []struct {
		name    string
		current taxonomy.BloomLevel
		score   float64
		want    taxonomy.BloomLevel
	}{
		{"exactly 0.8 advances", taxonomy.BloomUnderstand, 0.8, taxonomy.BloomApply},
		{"just below 0.8 holds", taxonomy.BloomUnderstand, 0.7999, taxonomy.BloomUnderstand},
		{"exactly 0.4 holds", taxonomy.BloomUnderstand, 0.4, taxonomy.BloomUnderstand},
		{"just below 0.4 retreats", taxonomy.BloomUnderstand, 0.3999, taxonomy.BloomRemember},
		{"top level never advances past create", taxonomy.BloomCreate, 1.0, taxonomy.BloomCreate},
		{"bottom level never retreats past remember", taxonomy.BloomRemember, 0.0, taxonomy.BloomRemember},
		{"unrecognized level treated as understand", "guess", 0.9, taxonomy.BloomApply},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextBloom(tt.current, tt.score, ModeExam); got != tt.want {
				t.Errorf("NextBloom(%q, %v, exam) = %q, want %q", tt.current, tt.score, got, tt.want)
			}
		})
	}
}

func TestNextBloom_DiagnosticThresholds(t *testing.T) {
	tests := []struct {
		name    string
		current taxonomy.BloomLevel
		score   float64
		want    taxonomy.BloomLevel
	}{
		{"0.7 advances", taxonomy.BloomApply, 0.7, taxonomy.BloomAnalyze},
		{"0.75 advances", taxonomy.BloomApply, 0.75, taxonomy.BloomAnalyze},
		{"0.69 holds", taxonomy.BloomApply, 0.69, taxonomy.BloomApply},
		{"0.3 holds", taxonomy.BloomApply, 0.3, taxonomy.BloomApply},
		{"0.29 retreats", taxonomy.BloomApply, 0.29, taxonomy.BloomUnderstand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextBloom(tt.current, tt.score, ModeDiagnostic); got != tt.want {
				t.Errorf("NextBloom(%q, %v, diagnostic) = %q, want %q", tt.current, tt.score, got, tt.want)
			}
		})
	}
}

func TestNextBloom_MovesAtMostOneStep(t *testing.T) {
	for _, lvl := range taxonomy.BloomLadder {
		for _, score := range []float64{0.0, 0.39, 0.4, 0.6, 0.8, 1.0} {
			got := NextBloom(lvl, score, ModeExam)
			from := taxonomy.BloomIndex(lvl)
			to := taxonomy.BloomIndex(got)
			if to < from-1 || to > from+1 {
				t.Errorf("NextBloom(%q, %v) jumped from %d to %d", lvl, score, from, to)
			}
		}
	}
}

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		current Difficulty
		score   float64
		want    Difficulty
	}{
		{"exactly 0.75 advances", DifficultyMedium, 0.75, DifficultyHard},
		{"just below 0.75 holds", DifficultyMedium, 0.7499, DifficultyMedium},
		{"exactly 0.35 holds", DifficultyMedium, 0.35, DifficultyMedium},
		{"just below 0.35 retreats", DifficultyMedium, 0.3499, DifficultyEasy},
		{"hard never advances past hard", DifficultyHard, 1.0, DifficultyHard},
		{"easy never retreats past easy", DifficultyEasy, 0.0, DifficultyEasy},
		{"unrecognized tier treated as medium", "extreme", 0.9, DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextDifficulty(tt.current, tt.score); got != tt.want {
				t.Errorf("NextDifficulty(%q, %v) = %q, want %q", tt.current, tt.score, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("exam") != ModeExam {
		t.Error("expected exam")
	}
	if ParseMode("diagnostic") != ModeDiagnostic {
		t.Error("expected diagnostic")
	}
	if ParseMode("") != ModeDiagnostic {
		t.Error("expected default diagnostic")
	}
}
