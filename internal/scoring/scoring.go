// Package scoring implements the adaptive-difficulty mastery model: one score
// per chapter, clamped to [0, 5], moved by answer outcomes and used to pick
// the difficulty of the next generated question.
package scoring

import (
	"math"
	"strings"
)

const (
	MinScore      = 0.0
	MaxScore      = 5.0
	MinDifficulty = 1
	MaxDifficulty = 5
)

// chapterColumns maps the normalized chapter name to its chapter_scores
// column. Exactly six chapters exist; anything else is a client error.
var chapterColumns = map[string]string{
	"algebraicfractions":     "score_algebra",
	"arithmetic":             "score_arithmetic",
	"probability":            "score_probability",
	"growthanddepricitation": "score_growthdepr",
	"quadraticequations":     "score_quadratic",
	"sequenceandseries":      "score_sqnseries",
}

// ChapterColumn resolves a client-supplied chapter name (case-insensitive) to
// its score column. The second return is false for unknown chapters.
func ChapterColumn(chapter string) (string, bool) {
	col, ok := chapterColumns[strings.ToLower(strings.TrimSpace(chapter))]
	return col, ok
}

// NextDifficulty derives the difficulty for the next question from the current
// chapter score: floor(score)+1, clamped to [1, 5]. A fresh chapter (score 0)
// starts at difficulty 1, a mastered one (score >= 4) stays at 5.
func NextDifficulty(score float64) int {
	d := int(math.Floor(score)) + 1
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// UpdateChapterScore applies an answer outcome to a chapter score. The change
// magnitude equals the difficulty attempted; the result is clamped to [0, 5].
func UpdateChapterScore(current float64, correct bool, difficulty int) float64 {
	if correct {
		return math.Min(MaxScore, current+float64(difficulty))
	}
	return math.Max(MinScore, current-float64(difficulty))
}

// Aggregate recomputes the overall score as the plain mean of the six chapter
// scores. It is always derived in full, never maintained incrementally.
func Aggregate(scores [6]float64) float64 {
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
