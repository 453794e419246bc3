package cli

import (
	"context"
	"strings"

	"github.com/iqranow/iqranow-cli/internal/client/api"
	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/filex"
)

// Recite submits a pre-recorded recitation for recognition and scoring and
// renders the server's feedback: recognized text, score, tajweed flags, and
// the places where the recitation diverged from the expected text.
func (a *App) Recite(ctx context.Context) error {
	expected, err := getSimpleText(a.reader, "Expected text (the ayah you recited)", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(expected) == "" {
		a.println("Expected text is required.")
		return nil
	}

	audioPath, err := getSimpleText(a.reader, "Path to the audio file", a.out)
	if err != nil {
		return err
	}
	if err := filex.CheckAudioFile(audioPath); err != nil {
		a.println("Audio file problem:", err.Error())
		return err
	}

	surah, err := getSimpleText(a.reader, "Surah number (blank to skip)", a.out)
	if err != nil {
		return err
	}
	ayah, err := getSimpleText(a.reader, "Ayah number (blank to skip)", a.out)
	if err != nil {
		return err
	}

	a.println("Uploading…")
	result, err := a.api.SubmitRecitation(ctx, api.RecitationSubmission{
		AudioPath:    audioPath,
		ExpectedText: expected,
		Surah:        surah,
		Ayah:         ayah,
	})
	if err != nil {
		a.println("Submission failed:", errMessage(err))
		return err
	}

	a.println()
	a.println("Recognized:", result.RecognizedText)
	if result.Feedback.Score != nil {
		a.printf("Score: %s\n", fmtScore(*result.Feedback.Score))
	} else {
		a.println("Score: unscored")
	}

	if len(result.Feedback.TajweedFlags) > 0 {
		a.println("Tajweed notes:")
		for _, flag := range result.Feedback.TajweedFlags {
			a.println("  -", flag)
		}
	}

	printDiffs(a, result.Feedback.Diffs)
	return nil
}

// printDiffs renders the non-matching alignment segments.
func printDiffs(a *App, diffs []models.Diff) {
	shown := false
	for _, d := range diffs {
		if d.Op == "equal" {
			continue
		}
		if !shown {
			a.println("Differences:")
			shown = true
		}
		switch d.Op {
		case "replace":
			a.printf("  expected %q, heard %q\n", d.Expected, d.Actual)
		case "delete":
			a.printf("  missing %q\n", d.Expected)
		case "insert":
			a.printf("  extra %q\n", d.Actual)
		}
	}
	if !shown {
		a.println("Recitation matched the expected text.")
	}
}
