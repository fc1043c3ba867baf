package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/models"
)

// Add prompts for an interview experience and posts it to the catalog.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.say("Login required to share an experience.")
		return nil
	}

	prompts := []string{"Company", "CTC", "Rounds", "Questions asked", "Advice"}
	fields := make([]string, len(prompts))
	for i, p := range prompts {
		v, err := getSimpleText(a.reader, p, a.out)
		if err != nil {
			return a.fail(ctx, "add", err)
		}
		fields[i] = v
	}

	exp := models.NewExperience(fields[0], fields[1], fields[2], fields[3], fields[4])
	if _, err := a.catalog.Add(ctx, exp); err != nil {
		return a.fail(ctx, "add", err)
	}
	a.say("Experience shared.")
	return nil
}

// List prints every experience with its approved questions.
func (a *App) List(ctx context.Context) error {
	exps, err := a.catalog.List(ctx)
	if err != nil {
		return a.fail(ctx, "list", err)
	}
	a.experiences = exps

	if len(exps) == 0 {
		a.say("No experiences yet.")
		return nil
	}

	for i, exp := range exps {
		approved, err := a.moderation.ApprovedFor(ctx, exp.ID)
		if err != nil {
			return a.fail(ctx, "list", err)
		}
		renderExperience(a.out, i+1, exp, approved)
	}
	return nil
}

// Ask posts a question under experience number arg of the last listing.
// Blank questions are dropped before the login check.
func (a *App) Ask(ctx context.Context, arg string) error {
	if arg == "" {
		a.say("Usage: ask <n>")
		return nil
	}

	if a.experiences == nil {
		exps, err := a.catalog.List(ctx)
		if err != nil {
			return a.fail(ctx, "ask", err)
		}
		a.experiences = exps
	}
	i, ok := pick(arg, len(a.experiences))
	if !ok {
		a.say("No such experience: %s", arg)
		return nil
	}
	exp := a.experiences[i]

	text, err := getSimpleText(a.reader, "Ask a question about "+exp.Company, a.out)
	if err != nil {
		return a.fail(ctx, "ask", err)
	}

	_, err = a.moderation.Submit(ctx, a.user, exp.ID, text)
	switch {
	case err == nil:
		a.say("Question submitted for approval.")
	case errors.Is(err, common.ErrEmptyText):
		a.say("Question is empty, nothing posted.")
	case errors.Is(err, common.ErrNotAuthenticated):
		a.say("Login required to post a question.")
	case errors.Is(err, common.ErrNotFound):
		a.say("No such experience: %s", arg)
	default:
		return a.fail(ctx, "ask", err)
	}
	return nil
}
