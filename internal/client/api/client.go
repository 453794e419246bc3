package api

import (
	"context"

	"github.com/iqranow/iqranow-cli/internal/client/models"
)

// TokenProvider yields the current bearer credential, or the empty string
// when no session is active. The session store satisfies this interface.
type TokenProvider interface {
	Token() string
}

// TokenProviderFunc adapts a plain function to TokenProvider.
type TokenProviderFunc func() string

func (f TokenProviderFunc) Token() string { return f() }

// RecitationSubmission is the multipart payload of POST /api/recitation.
// AudioPath points to a pre-recorded audio file; Surah and Ayah are
// optional reference coordinates.
type RecitationSubmission struct {
	AudioPath    string
	ExpectedText string
	Surah        string
	Ayah         string
}

type Client interface {
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)
	Register(ctx context.Context, name, email, password string) (string, *models.UserProfile, error)
	Me(ctx context.Context) (*models.UserProfile, error)
	Progress(ctx context.Context) (*models.ProgressReport, error)
	Goals(ctx context.Context) ([]models.Goal, error)
	CreateGoal(ctx context.Context, dailyVerses, dailyMinutes *int) (*models.Goal, error)
	SubmitRecitation(ctx context.Context, sub RecitationSubmission) (*models.RecitationResult, error)
	Ping(ctx context.Context) error
}
