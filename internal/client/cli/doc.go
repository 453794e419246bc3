// Package cli implements the interactive IqraNow terminal client.
//
// The REPL plays the role of the routed views in the web front-end: each
// command fetches the data it needs from the API and renders it. Session
// state lives in the session.Store, consulted by the prompt, the help text,
// and the auth gate in front of protected commands.
//
// # Commands
//
//	Anonymous:  login, register, font, help, exit
//	Signed-in:  dashboard, progress, recite, goals, setgoal, whoami,
//	            font, logout, help, exit
//
// Protected commands requested while signed out route the user to the
// sign-in flow and are replayed after a successful login.
package cli
