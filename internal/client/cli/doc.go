// Package cli provides the interactive SportowyHub command-line client.
//
// It wires configuration, the local secret store, API services, and an
// interactive REPL. Typical flow: browse listings anonymously, sign in,
// then manage favorites and the account profile.
//
// Key features:
//   - Register / Login / Logout (with email-verification resend)
//   - Session refresh and status (whoami)
//   - Browse, show and search listings
//   - Manage favorites
//   - View and edit the profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
