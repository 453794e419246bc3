package cli

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iqranow/iqranow-cli/internal/client/api"
	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/client/progress"
	"github.com/iqranow/iqranow-cli/internal/client/repositories/state"
)

// recentSessionLimit caps the session list on the dashboard.
const recentSessionLimit = 6

// sparkBars maps score levels to block characters, lowest to highest.
var sparkBars = []rune("▁▂▃▄▅▆▇█")

// Dashboard fetches the progress report and goals in parallel and renders
// a practice summary: days practiced, average and best score, the current
// goal, a 30-day activity sparkline, and the most recent sessions.
//
// Both requests share a context; the first failure cancels the other and
// aborts the render.
func (a *App) Dashboard(ctx context.Context) error {
	var (
		report *models.ProgressReport
		goals  []models.Goal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = a.api.Progress(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = a.api.Goals(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, api.ErrUnavailable) && a.renderCachedDashboard(ctx) {
			return nil
		}
		a.println("Could not load dashboard:", errMessage(err))
		return err
	}

	a.goals = goals
	a.cacheDashboard(ctx, report, goals)

	a.renderDashboard(report, goals)
	return nil
}

// dashboardCache is the locally persisted copy of the last successful fetch.
type dashboardCache struct {
	Report models.ProgressReport `json:"report"`
	Goals  []models.Goal         `json:"goals"`
}

// cacheDashboard stores the fetched data alongside its fetch time so the
// dashboard stays usable while the server is unreachable. Failures are
// logged and otherwise ignored.
func (a *App) cacheDashboard(ctx context.Context, report *models.ProgressReport, goals []models.Goal) {
	data, err := json.Marshal(dashboardCache{Report: *report, Goals: goals})
	if err != nil {
		a.log.Warn(ctx, "failed to encode dashboard cache", "error", err)
		return
	}
	err = a.repo.SetMany(ctx, map[string][]byte{
		state.KeyLastProgress:   data,
		state.KeyLastProgressAt: []byte(time.Now().UTC().Format(time.RFC3339)),
	})
	if err != nil {
		a.log.Warn(ctx, "failed to persist dashboard cache", "error", err)
	}
}

// renderCachedDashboard shows the last cached fetch, if any, marked as stale.
// It reports whether something was rendered.
func (a *App) renderCachedDashboard(ctx context.Context) bool {
	raw, err := a.repo.Get(ctx, state.KeyLastProgress)
	if err != nil || len(raw) == 0 {
		return false
	}
	var cached dashboardCache
	if err := json.Unmarshal(raw, &cached); err != nil {
		a.log.Warn(ctx, "invalid dashboard cache, ignoring", "error", err)
		return false
	}

	fetchedAt := "an earlier session"
	if at, err := a.repo.Get(ctx, state.KeyLastProgressAt); err == nil && len(at) > 0 {
		if t, perr := time.Parse(time.RFC3339, string(at)); perr == nil {
			fetchedAt = t.Local().Format("Jan 2 15:04")
		}
	}

	a.goals = cached.Goals
	a.printf("Server unavailable — showing data from %s.\n\n", fetchedAt)
	a.renderDashboard(&cached.Report, cached.Goals)
	return true
}

func (a *App) renderDashboard(report *models.ProgressReport, goals []models.Goal) {
	greeting := "Assalamu alaikum!"
	if u := a.session.User(); u != nil {
		greeting = "Assalamu alaikum, " + u.FirstName() + "!"
	}
	a.println(greeting)
	a.println()

	a.printf("Days practiced (30d): %d\n", progress.PracticedDays(report.Daily))
	if avg := progress.AverageScore(report.RecentSessions); avg != nil {
		a.printf("Average score:        %d\n", *avg)
	} else {
		a.println("Average score:        —")
	}
	a.printf("Best score:           %.0f\n", progress.BestScore(report.RecentSessions))
	a.println()

	a.println("Current goal:", formatGoal(currentGoal(goals)))
	a.println()

	a.println("Activity:", sparkline(report.Daily))
	a.println()

	a.println("Recent sessions:")
	printSessions(a, report.RecentSessions, recentSessionLimit)
}

// currentGoal returns the newest goal, or nil when none exist.
func currentGoal(goals []models.Goal) *models.Goal {
	if len(goals) == 0 {
		return nil
	}
	return &goals[0]
}

// formatGoal renders a goal's targets, e.g. "5 verses/day, 15 min/day".
func formatGoal(g *models.Goal) string {
	if g == nil {
		return "none set — try 'setgoal'"
	}
	var parts []string
	if g.DailyVerses != nil {
		parts = append(parts, plural(*g.DailyVerses, "verse")+"/day")
	}
	if g.DailyMinutes != nil {
		parts = append(parts, plural(*g.DailyMinutes, "min")+"/day")
	}
	if len(parts) == 0 {
		return "no targets"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if unit == "min" || n == 1 {
		return strconv.Itoa(n) + " " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// sparkline renders one block character per day, scaled by that day's
// average score. Days without attempts render as a dot.
func sparkline(daily []models.DailyPoint) string {
	var b strings.Builder
	for _, d := range daily {
		if d.Count == 0 || d.AvgScore == nil {
			b.WriteRune('·')
			continue
		}
		level := int(*d.AvgScore / 100 * float64(len(sparkBars)))
		if level >= len(sparkBars) {
			level = len(sparkBars) - 1
		}
		if level < 0 {
			level = 0
		}
		b.WriteRune(sparkBars[level])
	}
	return b.String()
}
