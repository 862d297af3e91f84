package cli

import (
	"context"
	"os"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// reportFailure prints a non-success AuthResult to the user: the message,
// then one line per field error. Cancellation prints nothing.
func reportFailure[T any](res models.AuthResult[T]) {
	if res.IsCancelled() {
		return
	}
	printlnFn(res.ErrorMessage)
	for field, msg := range res.FieldErrors {
		printlnFn("  " + field + ": " + msg)
	}
}

// Register prompts for the account fields and attempts to create a new
// account. Validation errors come back per field; on success the user still
// has to verify their email before logging in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer wipe(confirm)

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}

	res := a.auth.Register(ctx, email, string(password), string(confirm), phone)
	if !res.Ok() {
		reportFailure(res)
		return nil
	}

	printlnFn("Account created. Check your inbox for the verification email.")
	return nil
}

// Login prompts for credentials and authenticates. If the account email is
// not verified yet, the user is pointed at the resend command.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer wipe(password)

	res := a.auth.Login(ctx, email, string(password))
	if !res.Ok() {
		reportFailure(res)
		if res.ErrorCode == "EMAIL_NOT_VERIFIED" {
			printlnFn("Use 'resend' to request a new verification email.")
		}
		return nil
	}

	a.user = email
	if err := a.favorites.LoadIDs(ctx); err != nil {
		a.log.Warn(ctx, "loading favorites cache", "error", err)
	}

	printlnFn("Logged in as " + email)
	return nil
}

// ResendVerification asks the server to send the verification email again.
func (a *App) ResendVerification(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	res := a.auth.ResendVerification(ctx, email)
	if !res.Ok() {
		reportFailure(res)
		return nil
	}

	printlnFn(res.Data.Message)
	return nil
}

// RefreshSession exchanges the stored refresh token for a new session. Any
// non-cancelled failure means the service already cleared the persisted
// session, so the prompt drops the identity too.
func (a *App) RefreshSession(ctx context.Context) error {
	res := a.auth.RefreshSession(ctx)
	if !res.Ok() {
		if !res.IsCancelled() {
			a.user = ""
			a.favorites.ClearCache()
		}
		reportFailure(res)
		return nil
	}

	printlnFn("Session refreshed.")
	return nil
}

// Logout clears the session and the favorites cache.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout", "error", err)
		return err
	}
	a.user = ""
	a.favorites.ClearCache()
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the stored identity, or a hint when signed out.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "whoami", "error", err)
		return err
	}
	if user == "" {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn(user)
	return nil
}
