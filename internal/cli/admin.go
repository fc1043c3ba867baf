package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/models"
)

// Pending opens the admin panel.
func (a *App) Pending(ctx context.Context) error {
	if !a.isAdmin() {
		a.say("Unauthorized access!")
		return nil
	}
	a.panelOpen = true
	return a.renderPanel(ctx)
}

// Approve publishes pending question number arg of the panel as last shown.
func (a *App) Approve(ctx context.Context, arg string) error {
	q, ok := a.selectPending(arg, "approve")
	if !ok {
		return nil
	}
	_, err := a.moderation.Approve(ctx, a.user, q.ID)
	return a.moderated(ctx, "approve", err, "Question approved.")
}

// Reject discards pending question number arg of the panel as last shown.
func (a *App) Reject(ctx context.Context, arg string) error {
	q, ok := a.selectPending(arg, "reject")
	if !ok {
		return nil
	}
	err := a.moderation.Reject(ctx, a.user, q.ID)
	return a.moderated(ctx, "reject", err, "Question rejected.")
}

// selectPending resolves a panel number against the listing last printed.
// The listing is dropped whenever the pending queue changes, so a number can
// never refer to a question it was not shown next to.
func (a *App) selectPending(arg, verb string) (models.Question, bool) {
	if !a.isAdmin() {
		a.say("Unauthorized access!")
		return models.Question{}, false
	}
	if arg == "" {
		a.say("Usage: %s <n>", verb)
		return models.Question{}, false
	}
	if a.pending == nil {
		a.say("Run 'pending' to see the current queue first.")
		return models.Question{}, false
	}
	i, ok := pick(arg, len(a.pending))
	if !ok {
		a.say("No such pending question: %s", arg)
		return models.Question{}, false
	}
	return a.pending[i], true
}

func (a *App) moderated(ctx context.Context, op string, err error, success string) error {
	switch {
	case err == nil:
		a.say(success)
	case errors.Is(err, common.ErrForbidden), errors.Is(err, common.ErrNotAuthenticated):
		a.say("Unauthorized access!")
	case errors.Is(err, common.ErrNotFound):
		a.say("That question is no longer pending.")
	default:
		return a.fail(ctx, op, err)
	}
	return nil
}

// renderPanel prints the pending queue from a fresh read and remembers it as
// the listing panel numbers refer to.
func (a *App) renderPanel(ctx context.Context) error {
	pending, err := a.moderation.ListPending(ctx)
	if err != nil {
		return a.fail(ctx, "pending", err)
	}
	a.pending = pending

	if len(pending) == 0 {
		a.say("No pending questions.")
		return nil
	}

	exps, err := a.catalog.List(ctx)
	if err != nil {
		return a.fail(ctx, "pending", err)
	}
	companies := make(map[string]string, len(exps))
	for _, e := range exps {
		companies[e.ID] = e.Company
	}

	a.say("Pending questions:")
	for i, q := range pending {
		renderPending(a.out, i+1, companies[q.ExperienceID], q)
	}
	return nil
}
