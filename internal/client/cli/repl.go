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
	status() string
	isLoggedIn() bool
	isAdmin() bool
	isRestricted() bool
	printRestricted()
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Balance(ctx context.Context) error
	History(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Clients(ctx context.Context, status, term string) error
	SetClientBlacklisted(ctx context.Context, clientID string, blacklisted bool) error
}

// runREPL starts a simple read-eval-print loop for the SecureBank CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from a.status) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — sign in
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - balance        — show/hide the account balance
//	  - history        — list recent transactions
//	  - deposit        — deposit money
//	  - withdraw       — withdraw money
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
//	Admins additionally:
//	  - clients [all|active|blacklisted] [term]  — list client accounts
//	  - block <id>     — blacklist a client
//	  - unblock <id>   — remove a client from the blacklist
//
// A restricted (blacklisted) account keeps its session but every banking
// command is answered with the restriction notice.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own notices. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("sb> %s ", a.status()))
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
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "balance":
			if gateBanking(a) {
				_ = a.Balance(ctx)
			}

		case "history":
			if gateBanking(a) {
				_ = a.History(ctx)
			}

		case "deposit":
			if gateBanking(a) {
				_ = a.Deposit(ctx)
			}

		case "withdraw":
			if gateBanking(a) {
				_ = a.Withdraw(ctx)
			}

		case "clients":
			status, term := "all", ""
			if len(args) > 0 {
				status = args[0]
			}
			if len(args) > 1 {
				term = strings.Join(args[1:], " ")
			}
			_ = a.Clients(ctx, status, term)

		case "block":
			if len(args) == 0 {
				printlnFn("Usage: block <client-id>")
				continue
			}
			_ = a.SetClientBlacklisted(ctx, args[0], true)

		case "unblock":
			if len(args) == 0 {
				printlnFn("Usage: unblock <client-id>")
				continue
			}
			_ = a.SetClientBlacklisted(ctx, args[0], false)

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

func printHelp(a execIface) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, exit")
		return
	}
	if a.isAdmin() {
		printlnFn("Available commands: balance, history, deposit, withdraw, clients, block, unblock, logout, exit")
		return
	}
	printlnFn("Available commands: balance, history, deposit, withdraw, logout, exit")
}

// gateBanking reports whether a banking command may run. Anonymous users
// are told to sign in; restricted users get the restriction notice.
func gateBanking(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return false
	}
	if a.isRestricted() {
		a.printRestricted()
		return false
	}
	return true
}
