// Package cli provides the interactive scholar portal command-line client.
//
// It wires configuration, the local document store and the engine facade
// into an interactive REPL. Typical flow: resume or create a session,
// start the discovery poller and inactivity monitor in the background,
// and execute user commands.
//
// Key features:
//   - Login / Logout / Whoami
//   - Save opportunities, track application status, remove entries
//   - Notification inbox with read state
//   - Sponsorship postings for provider accounts
//   - Security log review and full data purge
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
