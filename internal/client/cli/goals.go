package cli

import (
	"context"

	"github.com/iqranow/iqranow-cli/internal/client/models"
)

// Goals fetches and lists the user's goals, newest first. The fetched list
// is kept so a later setgoal can update the view without a round trip.
func (a *App) Goals(ctx context.Context) error {
	goals, err := a.api.Goals(ctx)
	if err != nil {
		a.println("Could not load goals:", errMessage(err))
		return err
	}
	a.goals = goals

	if len(goals) == 0 {
		a.println("No goals yet — try 'setgoal'.")
		return nil
	}

	for i, g := range goals {
		marker := " "
		if i == 0 {
			marker = "*" // current goal
		}
		when := ""
		if t := models.ParseCreatedAt(g.CreatedAt); !t.IsZero() {
			when = t.Format("Jan 2")
		}
		a.printf("%s %-30s %s\n", marker, formatGoal(&g), when)
	}
	return nil
}

// SetGoal prompts for daily targets and creates a goal. At least one target
// must be given; blank or zero means "no target" for that field. The new
// goal is shown as current immediately, without re-fetching the list.
func (a *App) SetGoal(ctx context.Context) error {
	verses, err := GetOptionalInt(a.reader, "Daily verses target (blank for none)", a.out)
	if err != nil {
		a.println(err.Error())
		return err
	}
	minutes, err := GetOptionalInt(a.reader, "Daily minutes target (blank for none)", a.out)
	if err != nil {
		a.println(err.Error())
		return err
	}
	if verses == nil && minutes == nil {
		a.println("Set at least one target.")
		return nil
	}

	goal, err := a.api.CreateGoal(ctx, verses, minutes)
	if err != nil {
		a.println("Could not save goal:", errMessage(err))
		return err
	}
	if goal == nil {
		// Accepted but no body to show; the next 'goals' fetch will have it.
		a.println("Goal saved.")
		return nil
	}

	a.goals = append([]models.Goal{*goal}, a.goals...)
	a.println("New current goal:", formatGoal(goal))
	return nil
}
