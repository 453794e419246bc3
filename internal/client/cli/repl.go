package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	setPendingCmd(cmd string)
	takePendingCmd() string
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Progress(ctx context.Context) error
	Recite(ctx context.Context) error
	Goals(ctx context.Context) error
	SetGoal(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Font(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// protectedCmds lists commands that require an authenticated session. A
// protected command entered while signed out is remembered and replayed
// once the sign-in that it triggers succeeds. logout is deliberately not
// here: replaying it after the login it forced would sign the user straight
// back out, so the handler reports the signed-out state instead.
var protectedCmds = map[string]bool{
	"dashboard": true,
	"progress":  true,
	"recite":    true,
	"goals":     true,
	"setgoal":   true,
	"whoami":    true,
}

// runREPL starts a simple read–eval–print loop for the IqraNow CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - font           — show or adjust the text size
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — practice summary, current goal, recent sessions
//	  - progress       — 30-day activity and recent sessions
//	  - recite         — submit a recitation for feedback
//	  - goals          — list goals
//	  - setgoal        — create a new goal
//	  - whoami         — show the signed-in profile
//	  - font           — show or adjust the text size
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("iqra> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if protectedCmds[cmd] && !a.isLoggedIn() {
			printlnFn("Please sign in first.")
			a.setPendingCmd(cmd)
			_ = a.Login(ctx)
			if a.isLoggedIn() {
				if pending := a.takePendingCmd(); pending != "" {
					dispatch(ctx, a, pending, nil)
				}
			} else {
				a.takePendingCmd()
			}
			continue
		}

		dispatch(ctx, a, cmd, args)
	}
}

// dispatch routes a single command to its handler.
func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: dashboard, progress, recite, goals, setgoal, whoami, font, logout, exit")
		} else {
			printlnFn("Available commands: register, login, font, exit")
		}

	case "register":
		_ = a.Register(ctx)

	case "login":
		_ = a.Login(ctx)

	case "dashboard":
		_ = a.Dashboard(ctx)

	case "progress":
		_ = a.Progress(ctx)

	case "recite":
		_ = a.Recite(ctx)

	case "goals":
		_ = a.Goals(ctx)

	case "setgoal":
		_ = a.SetGoal(ctx)

	case "whoami":
		_ = a.WhoAmI(ctx)

	case "font":
		_ = a.Font(ctx, args)

	case "logout":
		_ = a.Logout(ctx)

	default:
		printlnFn("Unknown command:", cmd)
	}
}
