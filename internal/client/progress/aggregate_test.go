package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqranow/iqranow-cli/internal/client/models"
)

func score(v float64) *float64 { return &v }

func sessionsWithScores(scores ...*float64) []models.SessionRecord {
	out := make([]models.SessionRecord, len(scores))
	for i, s := range scores {
		out[i] = models.SessionRecord{ID: int64(i + 1), Score: s}
	}
	return out
}

func TestPracticedDays(t *testing.T) {
	tests := []struct {
		name  string
		daily []models.DailyPoint
		want  int
	}{
		{name: "empty", daily: nil, want: 0},
		{name: "no practice", daily: []models.DailyPoint{{Count: 0}, {Count: 0}}, want: 0},
		{name: "mixed", daily: []models.DailyPoint{{Count: 0}, {Count: 2}, {Count: 1}, {Count: 0}}, want: 2},
		{name: "every day", daily: []models.DailyPoint{{Count: 1}, {Count: 3}}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PracticedDays(tt.daily))
		})
	}
}

func TestAverageScore_ExcludesNullAndZero(t *testing.T) {
	got := AverageScore(sessionsWithScores(nil, score(0), score(80), score(40)))
	require.NotNil(t, got)
	assert.Equal(t, 60, *got, "null and zero scores must not drag the average down")
}

func TestAverageScore_RoundsToNearestInt(t *testing.T) {
	got := AverageScore(sessionsWithScores(score(70), score(71)))
	require.NotNil(t, got)
	assert.Equal(t, 71, *got)
}

func TestAverageScore_NoQualifyingAttempts(t *testing.T) {
	assert.Nil(t, AverageScore(nil))
	assert.Nil(t, AverageScore(sessionsWithScores(nil, nil)))
	assert.Nil(t, AverageScore(sessionsWithScores(score(0))))
}

func TestBestScore(t *testing.T) {
	tests := []struct {
		name     string
		sessions []models.SessionRecord
		want     float64
	}{
		{name: "empty list floors at zero", sessions: nil, want: 0},
		{name: "all unscored", sessions: sessionsWithScores(nil, nil), want: 0},
		{name: "picks the maximum", sessions: sessionsWithScores(score(55.5), score(91.2), score(80)), want: 91.2},
		{name: "negative scores floor at zero", sessions: sessionsWithScores(score(-5)), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestScore(tt.sessions))
		})
	}
}
