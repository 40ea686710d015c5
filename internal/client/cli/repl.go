package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"authkit/internal/client/session"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a stub.
type execIface interface {
	Region() session.Region
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	FinishOnboarding(ctx context.Context) error
	RestartOnboarding(ctx context.Context) error
	Dismiss(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches to a. Which commands are
// available follows the admitted region, mirroring the app's route guard:
//
//	onboarding:  done, help, exit
//	auth:        login, register, dismiss, help, exit
//	app:         profile, logout, onboarding-reset, dismiss, help, exit
//
// Unknown or out-of-region commands are reported back to the user. Handler
// errors are ignored here; handlers print their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printHelp(a.Region())
			continue
		}

		if !commandAllowed(a.Region(), cmd) {
			printlnFn(fmt.Sprintf("Unknown command: %s (type 'help')", cmd))
			continue
		}

		switch cmd {
		case "done":
			_ = a.FinishOnboarding(ctx)
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		case "dismiss":
			_ = a.Dismiss(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "onboarding-reset":
			_ = a.RestartOnboarding(ctx)
		}
	}
}

// regionCommands maps each admitted region to the commands it unlocks.
var regionCommands = map[session.Region][]string{
	session.RegionOnboarding: {"done"},
	session.RegionAuth:       {"login", "register", "dismiss"},
	session.RegionApp:        {"profile", "logout", "onboarding-reset", "dismiss"},
}

func commandAllowed(r session.Region, cmd string) bool {
	for _, c := range regionCommands[r] {
		if c == cmd {
			return true
		}
	}
	return false
}

func printHelp(r session.Region) {
	cmds := append([]string{}, regionCommands[r]...)
	cmds = append(cmds, "help", "exit")
	printlnFn("Available commands: " + strings.Join(cmds, ", "))
}
