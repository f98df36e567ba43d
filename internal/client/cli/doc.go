// Package cli provides the interactive SecureBank terminal client.
//
// It wires configuration, the HTTP API client, the session manager, and an
// interactive REPL. Screens are expressed as declarative forms: a builder
// produces the field descriptors for the current state, a reducer applies
// input events, and the renderer prints the result.
//
// Key features:
//   - Sign in / register / sign out
//   - Balance (hidden by default) and transaction history
//   - Deposit and withdraw
//   - Admin: list, filter, block and unblock clients
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
