package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/models"
)

// Register prompts for a new account. The role defaults to student.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return a.fail(ctx, "register", err)
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(ctx, "register", err)
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return a.fail(ctx, "register", err)
	}
	roleText, err := getSimpleText(a.reader, "Enter role (student/admin) [student]", a.out)
	if err != nil {
		return a.fail(ctx, "register", err)
	}

	role, err := models.ParseRole(roleText)
	if err != nil {
		a.say("Role must be student or admin.")
		return nil
	}

	_, err = a.accounts.Register(ctx, username, email, password, role)
	switch {
	case err == nil:
		a.say("Registration successful.")
	case errors.Is(err, common.ErrDuplicateEmail):
		a.say("Email already registered.")
	case errors.Is(err, common.ErrInvalidAccount):
		a.say("Username, email and password are required.")
	default:
		return a.fail(ctx, "register", err)
	}
	return nil
}

// Login authenticates and opens the landing page for the account's role:
// admins land on the admin panel, everyone else on the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(ctx, "login", err)
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	acc, landing, err := a.accounts.Login(ctx, email, password)
	if errors.Is(err, common.ErrInvalidCredentials) {
		a.say("Invalid login details.")
		return nil
	}
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	a.user = acc
	a.panelOpen = false
	a.say("Welcome, %s (%s).", acc.Username, roleLabel(acc.Role))

	if landing == models.LandingAdmin {
		a.panelOpen = true
		return a.renderPanel(ctx)
	}
	a.say("Dashboard: 'add' to share an experience, 'list' to browse, 'ask <n>' to ask a question.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.accounts.Logout(ctx); err != nil {
		return a.fail(ctx, "logout", err)
	}
	a.user = nil
	a.panelOpen = false
	a.pending = nil
	a.say("Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.user == nil {
		a.say("Not logged in.")
		return nil
	}
	a.say("%s <%s> (%s)", a.user.Username, a.user.Email, roleLabel(a.user.Role))
	return nil
}
