package cli

import (
	"context"
	"math"
	"strconv"

	"github.com/iqranow/iqranow-cli/internal/client/prefs"
)

// Font shows or adjusts the text-size preference.
//
//	font        — show the current size
//	font +      — one step larger
//	font -      — one step smaller
//	font 1.2    — set an explicit scale (clamped to the allowed range)
func (a *App) Font(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printf("Text size: %d%%\n", percent(a.prefs.FontScale()))
		return nil
	}

	var (
		scale float64
		err   error
	)
	switch args[0] {
	case "+":
		scale, err = a.prefs.Increase(ctx)
	case "-":
		scale, err = a.prefs.Decrease(ctx)
	default:
		x, parseErr := strconv.ParseFloat(args[0], 64)
		if parseErr != nil {
			a.printf("Usage: font [+|-|value between %.1f and %.1f]\n", prefs.MinFontScale, prefs.MaxFontScale)
			return nil
		}
		scale, err = a.prefs.SetFontScale(ctx, x)
	}
	if err != nil {
		a.log.Warn(ctx, "failed to persist font scale", "error", err)
	}

	a.printf("Text size: %d%%\n", percent(scale))
	return nil
}

func percent(scale float64) int {
	return int(math.Round(scale * 100))
}
