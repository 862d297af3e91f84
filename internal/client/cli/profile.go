package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/models"
)

// Profile fetches and prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	res := a.auth.Profile(ctx)
	if !res.Ok() {
		reportFailure(res)
		return nil
	}

	p := res.Data
	printlnFn("Email:       " + p.Email + verifiedMark(p.EmailVerified))
	if p.Phone != "" {
		printlnFn("Phone:       " + p.Phone + verifiedMark(p.PhoneVerified))
	}
	printlnFn("Trust level: " + p.TrustLevel)
	printlnFn(fmt.Sprintf("Reputation:  %d", p.ReputationScore))
	if acc := p.Account; acc != nil {
		if acc.FullName != "" {
			printlnFn("Name:        " + acc.FullName)
		}
		printlnFn(fmt.Sprintf("Balance:     %d.%02d PLN", acc.BalanceGrosze/100, acc.BalanceGrosze%100))
	}
	return nil
}

func verifiedMark(verified bool) string {
	if verified {
		return " (verified)"
	}
	return " (unverified)"
}

// EditProfile prompts for the editable account fields and submits them.
// Empty input keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.auth.Profile(ctx)
	if !current.Ok() {
		reportFailure(current)
		return nil
	}

	req := models.UpdateProfileAccountRequest{}
	if acc := current.Data.Account; acc != nil {
		req.FirstName = acc.FirstName
		req.LastName = acc.LastName
		req.NotificationsEnabled = acc.NotificationsEnabled
		req.QuietHoursStart = acc.QuietHoursStart
		req.QuietHoursEnd = acc.QuietHoursEnd
	}

	firstName, err := getSimpleText(a.reader, "First name ["+req.FirstName+"]", os.Stdout)
	if err != nil {
		return err
	}
	if firstName != "" {
		req.FirstName = firstName
	}

	lastName, err := getSimpleText(a.reader, "Last name ["+req.LastName+"]", os.Stdout)
	if err != nil {
		return err
	}
	if lastName != "" {
		req.LastName = lastName
	}

	res := a.auth.UpdateProfile(ctx, req)
	if !res.Ok() {
		reportFailure(res)
		return nil
	}

	printlnFn("Profile updated.")
	return nil
}
