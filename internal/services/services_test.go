package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/xshare/internal/logging"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/dmitrijs2005/xshare/internal/storage"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store      *storage.Store
	accounts   AccountService
	catalog    CatalogService
	moderation ModerationService
}

func newFixture(t *testing.T, b storage.Backend) *fixture {
	t.Helper()
	s := storage.NewStore(b)
	t.Cleanup(func() { _ = s.Close() })

	log := logging.Discard()
	return &fixture{
		store:      s,
		accounts:   NewAccountService(s, log),
		catalog:    NewCatalogService(s, log),
		moderation: NewModerationService(s, log),
	}
}

func newMemoryFixture(t *testing.T) *fixture {
	return newFixture(t, storage.NewMemoryBackend())
}

func newSQLiteFixture(t *testing.T) *fixture {
	t.Helper()
	b, err := storage.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "xshare.db"))
	require.NoError(t, err)
	return newFixture(t, b)
}

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func mustRegister(t *testing.T, f *fixture, username, email, password string, role models.Role) *models.Account {
	t.Helper()
	acc, err := f.accounts.Register(context.Background(), username, email, password, role)
	require.NoError(t, err)
	return acc
}

func mustAddExperience(t *testing.T, f *fixture, company string) *models.Experience {
	t.Helper()
	exp, err := f.catalog.Add(context.Background(), models.Experience{
		Company:   company,
		CTC:       "12 LPA",
		Rounds:    "3",
		Questions: "DSA, system design",
		Advice:    "practice",
	})
	require.NoError(t, err)
	return exp
}
