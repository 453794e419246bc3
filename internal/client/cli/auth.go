package cli

import (
	"context"

	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, email, and password, creates the
// account, and signs the new user in with the returned token.
//
// The password byte slice is wiped before returning. Input and API errors
// are reported to the user and returned.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, user, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		a.println("Registration failed:", errMessage(err))
		return err
	}

	a.startSession(ctx, token, user)
	a.printf("Welcome, %s!\n", a.sessionFirstName())
	return nil
}

// Login prompts for credentials and authenticates against the server.
//
// On success the token is stored (memory plus local database) and the
// returned profile becomes the active user, which the prompt reflects
// immediately. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, user, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		a.println("Login failed:", errMessage(err))
		return err
	}

	a.startSession(ctx, token, user)
	a.printf("Welcome back, %s!\n", a.sessionFirstName())
	return nil
}

// startSession stores the token and whatever profile the auth response
// carried. The profile is optional in a token-only response; in that case it
// is fetched separately, and a fetch failure only delays the prompt's name.
func (a *App) startSession(ctx context.Context, token string, user *models.UserProfile) {
	if err := a.session.SetToken(ctx, token); err != nil {
		a.log.Warn(ctx, "failed to persist token", "error", err)
	}
	if user != nil {
		a.session.SetUser(user)
		return
	}
	if err := a.session.LoadUser(ctx); err != nil {
		a.log.Warn(ctx, "failed to load profile", "error", err)
	}
}

// sessionFirstName returns the signed-in user's first name, or a neutral
// fallback while the profile is unknown.
func (a *App) sessionFirstName() string {
	if u := a.session.User(); u != nil {
		return u.FirstName()
	}
	return "friend"
}

// Logout drops the in-memory session and removes the stored token.
func (a *App) Logout(ctx context.Context) error {
	if !a.session.LoggedIn() {
		a.println("Not signed in.")
		return nil
	}
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}

// WhoAmI prints the signed-in profile.
func (a *App) WhoAmI(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		if a.session.Initializing() {
			a.println("Profile still loading, try again in a moment.")
			return nil
		}
		user, err := a.api.Me(ctx)
		if err != nil {
			a.println("Could not load profile:", errMessage(err))
			return err
		}
		a.session.SetUser(user)
		a.printf("%s <%s> [%s]\n", user.Name, user.Email, user.Initials())
		return nil
	}
	a.printf("%s <%s> [%s]\n", user.Name, user.Email, user.Initials())
	return nil
}
