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
	notifyActivity()
	Login(ctx context.Context) error
	Whoami(ctx context.Context) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	SetStatus(ctx context.Context) error
	Remove(ctx context.Context) error
	Inbox(ctx context.Context) error
	Read(ctx context.Context) error
	ReadAll(ctx context.Context) error
	Sponsor(ctx context.Context) error
	Sponsorships(ctx context.Context) error
	Logs(ctx context.Context) error
	Rate(ctx context.Context) error
	Purge(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit". Every accepted line counts as session activity.
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — create or resume an account
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - save           — save an opportunity
//	  - list | l       — list saved opportunities
//	  - status         — update an application status
//	  - remove         — remove a saved opportunity
//	  - inbox          — show notifications
//	  - read           — mark one notification read
//	  - readall        — mark every notification read
//	  - sponsor        — post a sponsorship (providers)
//	  - sponsorships   — list own sponsorships (providers)
//	  - logs           — show the security log
//	  - rate           — record a rating prompt
//	  - whoami         — show the current account
//	  - purge          — erase all local data
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("scholar> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		a.notifyActivity()

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: save, (l)ist, status, remove, inbox, read, readall, sponsor, sponsorships, logs, rate, whoami, purge, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "save":
			_ = a.Save(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "status":
			_ = a.SetStatus(ctx)

		case "remove":
			_ = a.Remove(ctx)

		case "inbox":
			_ = a.Inbox(ctx)

		case "read":
			_ = a.Read(ctx)

		case "readall":
			_ = a.ReadAll(ctx)

		case "sponsor":
			_ = a.Sponsor(ctx)

		case "sponsorships":
			_ = a.Sponsorships(ctx)

		case "logs":
			_ = a.Logs(ctx)

		case "rate":
			_ = a.Rate(ctx)

		case "purge":
			_ = a.Purge(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
