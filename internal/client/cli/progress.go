package cli

import (
	"context"
	"fmt"

	"github.com/iqranow/iqranow-cli/internal/client/models"
)

// Progress renders the 30-day activity table and the recent session list.
func (a *App) Progress(ctx context.Context) error {
	report, err := a.api.Progress(ctx)
	if err != nil {
		a.println("Could not load progress:", errMessage(err))
		return err
	}

	a.println("Last 30 days:")
	a.println("  date        sessions  avg score")
	for _, d := range report.Daily {
		if d.AvgScore != nil {
			a.printf("  %s  %8d  %9.0f\n", d.Date, d.Count, *d.AvgScore)
		} else {
			a.printf("  %s  %8d  %9s\n", d.Date, d.Count, "—")
		}
	}
	a.println()

	a.println("Recent sessions:")
	printSessions(a, report.RecentSessions, len(report.RecentSessions))
	return nil
}

// printSessions renders up to limit sessions, newest first.
func printSessions(a *App, sessions []models.SessionRecord, limit int) {
	if len(sessions) == 0 {
		a.println("  none yet — try 'recite'")
		return
	}
	if limit > len(sessions) {
		limit = len(sessions)
	}
	for _, s := range sessions[:limit] {
		when := "unknown time"
		if t := models.ParseCreatedAt(s.CreatedAt); !t.IsZero() {
			when = t.Format("Jan 2 15:04")
		}
		score := "unscored"
		if s.Score != nil {
			score = fmtScore(*s.Score)
		}
		text := s.RecognizedText
		if len([]rune(text)) > 40 {
			text = string([]rune(text)[:40]) + "…"
		}
		a.printf("  %-13s %-9s %s\n", when, score, text)
	}
}

func fmtScore(score float64) string {
	return fmt.Sprintf("%.0f", score)
}
