// Package progress computes dashboard aggregates from fetched progress data.
// The server ships raw daily points and recent attempts; the derived numbers
// shown to the user are always recomputed here.
package progress

import (
	"math"

	"github.com/iqranow/iqranow-cli/internal/client/models"
)

// PracticedDays counts the days in the window with at least one attempt.
func PracticedDays(daily []models.DailyPoint) int {
	n := 0
	for _, d := range daily {
		if d.Count > 0 {
			n++
		}
	}
	return n
}

// AverageScore is the arithmetic mean of all attempt scores strictly greater
// than zero, rounded to the nearest integer. It returns nil when no attempt
// qualifies, so "no score" and a literal zero are never presented as a real
// average of zero.
func AverageScore(sessions []models.SessionRecord) *int {
	var sum float64
	var n int
	for _, s := range sessions {
		if s.Score != nil && *s.Score > 0 {
			sum += *s.Score
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := int(math.Round(sum / float64(n)))
	return &avg
}

// BestScore is the maximum attempt score, floored at zero; an empty or
// unscored list yields 0 rather than an error.
func BestScore(sessions []models.SessionRecord) float64 {
	best := 0.0
	for _, s := range sessions {
		if s.Score != nil && *s.Score > best {
			best = *s.Score
		}
	}
	return best
}
