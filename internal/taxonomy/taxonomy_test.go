package taxonomy

import "testing"

func TestParseBloom(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want BloomLevel
	}{
		{"exact", "apply", BloomApply},
		{"uppercase", "ANALYZE", BloomAnalyze},
		{"embedded in prose", "The cognitive level is: evaluate.", BloomEvaluate},
		{"first ladder match wins", "remember and create", BloomRemember},
		{"unrecognized", "synthesize", DefaultBloom},
		{"empty", "", DefaultBloom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBloom(tt.in); got != tt.want {
				t.Errorf("ParseBloom(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSOLO(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SOLOLevel
	}{
		{"exact", "relational", SOLORelational},
		{"hyphenated", "extended-abstract", SOLOExtendedAbstract},
		{"spaced variant", "Extended Abstract reasoning", SOLOExtendedAbstract},
		{"multi not shadowed by uni", "multistructural", SOLOMultistructural},
		{"prestructural", "the answer is prestructural", SOLOPrestructural},
		{"unrecognized", "holistic", DefaultSOLO},
		{"empty", "", DefaultSOLO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSOLO(tt.in); got != tt.want {
				t.Errorf("ParseSOLO(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBloomIndex_Unrecognized(t *testing.T) {
	if got := BloomIndex("guess"); got != 1 {
		t.Errorf("BloomIndex(unrecognized) = %d, want 1", got)
	}
}

func TestBloomAt_Clamps(t *testing.T) {
	if got := BloomAt(-3); got != BloomRemember {
		t.Errorf("BloomAt(-3) = %q, want remember", got)
	}
	if got := BloomAt(99); got != BloomCreate {
		t.Errorf("BloomAt(99) = %q, want create", got)
	}
}

func TestLaddersAreOrdered(t *testing.T) {
	if len(BloomLadder) != 6 {
		t.Fatalf("expected 6 Bloom levels, got %d", len(BloomLadder))
	}
	if len(SOLOLadder) != 5 {
		t.Fatalf("expected 5 SOLO levels, got %d", len(SOLOLadder))
	}
	if BloomLadder[0] != BloomRemember || BloomLadder[5] != BloomCreate {
		t.Error("Bloom ladder endpoints wrong")
	}
	if SOLOLadder[0] != SOLOPrestructural || SOLOLadder[4] != SOLOExtendedAbstract {
		t.Error("SOLO ladder endpoints wrong")
	}
}
