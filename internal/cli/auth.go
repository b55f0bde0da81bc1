package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nuesadev/scholarengine/internal/models"
	"github.com/nuesadev/scholarengine/internal/store"
)

// getSimpleText and getConfirmation are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getConfirmation = GetConfirmation

// Login prompts for an email, a display name and a role, and creates or
// resumes the account. On success the inactivity monitor is started and
// the prompt switches to the signed-in form.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role (student/sponsor, default student)", os.Stdout)
	if err != nil {
		return err
	}

	params := store.LoginParams{Email: email, Name: name, Role: models.Role(role)}
	if params.Role == models.RoleSponsor {
		params.Title, err = getSimpleText(a.reader, "Organization title", os.Stdout)
		if err != nil {
			return err
		}
		params.ContactPerson = name
	}

	user, err := a.engine.Login(ctx, params)
	if err != nil {
		a.log.Warn(ctx, "login unsuccessful", "error", err)
		fmt.Println("Login failed:", err)
		return err
	}

	a.userName = user.Name
	a.engine.StartSessionMonitor(ctx)
	fmt.Printf("Signed in as %s (%s).\n", user.Name, user.Role)
	return nil
}

// Whoami prints the current account, or a hint when signed out.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.engine.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("Not signed in. Use 'login'.")
		return nil
	}
	fmt.Printf("%s <%s> role=%s security=%d%%\n", user.Name, user.Email, user.Role, user.SecurityScore)
	if user.Title != "" {
		fmt.Println("Organization:", user.Title)
	}
	return nil
}

// Logout ends the session, clears the persisted user and stops the
// inactivity monitor.
func (a *App) Logout(ctx context.Context) error {
	if err := a.engine.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Println("Logged out.")
	return nil
}

func (a *App) notifyActivity() {
	a.engine.NotifyActivity()
}
