package scoring

import "testing"

func TestNextDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected int
	}{
		{"fresh chapter", 0.0, 1},
		{"partial mastery", 1.5, 2},
		{"mid mastery", 2.0, 3},
		{"near max", 4.5, 5},
		{"max score", 5.0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NextDifficulty(tc.score)
			if got != tc.expected {
				t.Errorf("NextDifficulty(%v) = %d, want %d", tc.score, got, tc.expected)
			}
		})
	}
}

func TestNextDifficulty_MonotoneAndBounded(t *testing.T) {
	prev := 0
	for s := 0.0; s <= 5.0; s += 0.25 {
		d := NextDifficulty(s)
		if d < MinDifficulty || d > MaxDifficulty {
			t.Fatalf("NextDifficulty(%v) = %d, out of [1,5]", s, d)
		}
		if d < prev {
			t.Fatalf("NextDifficulty(%v) = %d, decreased from %d", s, d, prev)
		}
		prev = d
	}
}

func TestUpdateChapterScore(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		correct    bool
		difficulty int
		expected   float64
	}{
		{"correct clamps at max", 2.0, true, 3, 5.0},
		{"correct within range", 1.0, true, 2, 3.0},
		{"incorrect clamps at zero", 1.0, false, 3, 0.0},
		{"incorrect within range", 4.0, false, 2, 2.0},
		{"correct at max stays", 5.0, true, 5, 5.0},
		{"incorrect at zero stays", 0.0, false, 1, 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := UpdateChapterScore(tc.current, tc.correct, tc.difficulty)
			if got != tc.expected {
				t.Errorf("UpdateChapterScore(%v, %v, %d) = %v, want %v",
					tc.current, tc.correct, tc.difficulty, got, tc.expected)
			}
		})
	}
}

func TestUpdateChapterScore_Bounds(t *testing.T) {
	for c := 0.0; c <= 5.0; c += 0.5 {
		for d := MinDifficulty; d <= MaxDifficulty; d++ {
			up := UpdateChapterScore(c, true, d)
			if up < c || up > MaxScore {
				t.Fatalf("correct answer moved score %v (d=%d) to %v, outside [%v, 5]", c, d, up, c)
			}
			down := UpdateChapterScore(c, false, d)
			if down > c || down < MinScore {
				t.Fatalf("incorrect answer moved score %v (d=%d) to %v, outside [0, %v]", c, d, down, c)
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name     string
		scores   [6]float64
		expected float64
	}{
		{"all zero", [6]float64{}, 0.0},
		{"all equal", [6]float64{2, 2, 2, 2, 2, 2}, 2.0},
		{"mixed", [6]float64{5, 0, 5, 0, 5, 0}, 2.5},
		{"single chapter", [6]float64{3, 0, 0, 0, 0, 0}, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Aggregate(tc.scores)
			if got != tc.expected {
				t.Errorf("Aggregate(%v) = %v, want %v", tc.scores, got, tc.expected)
			}
		})
	}
}

func TestChapterColumn(t *testing.T) {
	tests := []struct {
		name    string
		chapter string
		column  string
		ok      bool
	}{
		{"exact match", "arithmetic", "score_arithmetic", true},
		{"mixed case", "Probability", "score_probability", true},
		{"upper case", "QUADRATICEQUATIONS", "score_quadratic", true},
		{"surrounding spaces", " algebraicfractions ", "score_algebra", true},
		{"growth chapter", "growthanddepricitation", "score_growthdepr", true},
		{"sequences chapter", "sequenceandseries", "score_sqnseries", true},
		{"unknown chapter", "geometry", "", false},
		{"empty", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			col, ok := ChapterColumn(tc.chapter)
			if ok != tc.ok || col != tc.column {
				t.Errorf("ChapterColumn(%q) = (%q, %v), want (%q, %v)",
					tc.chapter, col, ok, tc.column, tc.ok)
			}
		})
	}
}
