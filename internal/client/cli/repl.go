package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(args ...any) { fmt.Println(args...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ResendVerification(ctx context.Context) error
	RefreshSession(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Listings(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Recent(ctx context.Context) error
	Favorites(ctx context.Context) error
	Fav(ctx context.Context, args []string) error
	Unfav(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the SportowyHub CLI.
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
//	Always:
//	  - help             — show available commands
//	  - listings         — list published listings
//	  - show <id>        — show a single listing
//	  - search <query>   — full-text listing search
//	  - recent           — recently used search queries
//	  - exit | quit      — leave the program
//
//	Not logged in:
//	  - register         — create an account
//	  - login            — authenticate
//	  - resend           — resend the verification email
//
//	Logged in:
//	  - whoami           — show the signed-in identity
//	  - profile          — show the profile
//	  - editprofile      — edit account fields
//	  - refresh          — refresh the session
//	  - favorites        — list favorites
//	  - fav <id>         — add a favorite
//	  - unfav <id>       — remove a favorite
//	  - logout           — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sh> %s ", statusFn()))
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

		switch cmd {
		case "help":
			printlnFn("Available commands: listings, show <id>, search <query>, recent, exit")
			if a.isLoggedIn() {
				printlnFn("Account: whoami, profile, editprofile, refresh, favorites, fav <id>, unfav <id>, logout")
			} else {
				printlnFn("Account: register, login, resend")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "resend":
			_ = a.ResendVerification(ctx)

		case "refresh":
			_ = a.RefreshSession(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "l", "listings":
			_ = a.Listings(ctx, args)

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, args)

		case "recent":
			_ = a.Recent(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <id>")
				continue
			}
			_ = a.Fav(ctx, args)

		case "unfav":
			if len(args) == 0 {
				printlnFn("Usage: unfav <id>")
				continue
			}
			_ = a.Unfav(ctx, args)

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
