package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/config"
	"github.com/dmitrijs2005/xshare/internal/logging"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/dmitrijs2005/xshare/internal/services"
	"github.com/dmitrijs2005/xshare/internal/storage"
)

type App struct {
	store       *storage.Store
	accounts    services.AccountService
	catalog     services.CatalogService
	moderation  services.ModerationService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	unsubscribe func()

	user *models.Account

	// Listings as last printed; nil when not shown yet or invalidated.
	experiences []models.Experience
	pending     []models.Question
	panelOpen   bool

	mu      sync.Mutex
	changed map[string]bool
}

// NewApp opens the board named by c.DatabaseDSN, seeds the configured admin
// account and restores the persisted session.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	backend, err := storage.OpenBackend(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open board %s: %w", c.DatabaseDSN, err)
	}
	store := storage.NewStore(backend)

	a := &App{
		store:      store,
		accounts:   services.NewAccountService(store, logger),
		catalog:    services.NewCatalogService(store, logger),
		moderation: services.NewModerationService(store, logger),
		logger:     logger.With("component", "cli"),
		reader:     bufio.NewReader(in),
		out:        out,
		changed:    make(map[string]bool),
	}
	a.unsubscribe = store.Subscribe(a.onChange)

	created, err := a.accounts.EnsureAdmin(ctx, c.AdminUsername, c.AdminEmail, c.AdminPassword)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if created {
		a.logger.Info(ctx, "admin account created", "email", c.AdminEmail)
	}

	a.user, err = a.accounts.CurrentUser(ctx)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return a, nil
}

// Run greets the user and serves commands until EOF or exit.
func (a *App) Run(ctx context.Context) {
	a.say("Welcome to XShare (type 'help' for commands)")
	if a.user != nil {
		a.say("Logged in as %s (%s).", a.user.Username, roleLabel(a.user.Role))
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) isAdmin() bool {
	return a.user.IsAdmin()
}

func (a *App) status() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("%s, %s", a.user.Username, roleLabel(a.user.Role))
}

// onChange runs after every committed write to the store.
func (a *App) onChange(keys []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, k := range keys {
		a.changed[k] = true
	}
}

func (a *App) takeChanges() map[string]bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.changed
	a.changed = make(map[string]bool)
	return out
}

// refresh drops listings made stale by committed writes and re-renders the
// admin panel if it is open.
func (a *App) refresh(ctx context.Context) error {
	changed := a.takeChanges()

	if changed[common.KeyExperiences] {
		a.experiences = nil
	}
	if !changed[common.KeyPendingQuestions] {
		return nil
	}

	a.pending = nil
	if a.panelOpen && a.isAdmin() {
		return a.renderPanel(ctx)
	}
	return nil
}

func (a *App) say(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// fail reports an unexpected error. Known user errors are handled by the
// commands themselves.
func (a *App) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, io.EOF) {
		return err
	}
	a.logger.Error(ctx, "command failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
