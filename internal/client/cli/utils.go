package cli

import (
	"errors"
	"fmt"

	"github.com/iqranow/iqranow-cli/internal/client/api"
)

// errMessage turns an API error into a line fit for the terminal. Sentinel
// errors get a friendly phrasing; server-provided messages pass through.
func errMessage(err error) string {
	var apiErr *api.Error
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "Server unavailable. Check your connection and try again."
	case errors.Is(err, api.ErrUnauthorized):
		return "Session expired. Please sign in again."
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
