package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/logging"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/dmitrijs2005/xshare/internal/storage"
)

// AccountService is the account directory and the holder of the persisted
// session.
//
// Contract:
//   - Register: add an account; emails are unique (ErrDuplicateEmail).
//   - Login: exact email+password match (ErrInvalidCredentials); on success the
//     account is persisted as the current session and its landing view returned.
//   - Logout: clear the session, whether or not one exists.
//   - CurrentUser: the session account, or nil when nobody is logged in.
//   - EnsureAdmin: create a configured admin account if its email is unused.
type AccountService interface {
	Register(ctx context.Context, username, email, password string, role models.Role) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, models.Landing, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
	EnsureAdmin(ctx context.Context, username, email, password string) (bool, error)
}

type accountService struct {
	store  *storage.Store
	logger logging.Logger
}

func NewAccountService(store *storage.Store, logger logging.Logger) AccountService {
	return &accountService{store: store, logger: logger.With("component", "accounts")}
}

func (s *accountService) Register(ctx context.Context, username, email, password string, role models.Role) (*models.Account, error) {
	acc, err := models.NewAccount(username, email, password, role)
	if err != nil {
		return nil, err
	}

	err = s.store.Update(ctx, func(ctx context.Context, tx *storage.Tx) error {
		accounts, err := loadList[models.Account](ctx, tx, common.KeyAccounts)
		if err != nil {
			return err
		}
		for _, a := range accounts {
			if a.Email == acc.Email {
				return common.ErrDuplicateEmail
			}
		}
		return tx.Save(ctx, common.KeyAccounts, append(accounts, *acc))
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", email, err)
	}

	s.logger.Info(ctx, "account registered", "username", acc.Username, "role", acc.Role)
	return acc, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*models.Account, models.Landing, error) {
	accounts, err := loadList[models.Account](ctx, s.store, common.KeyAccounts)
	if err != nil {
		return nil, "", err
	}

	var found *models.Account
	for i := range accounts {
		a := &accounts[i]
		if a.Email == email && subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1 {
			found = a
			break
		}
	}
	if found == nil {
		s.logger.Warn(ctx, "login failed", "email", email)
		return nil, "", common.ErrInvalidCredentials
	}

	if err := s.store.Save(ctx, common.KeySession, found); err != nil {
		return nil, "", fmt.Errorf("save session: %w", err)
	}

	s.logger.Info(ctx, "logged in", "username", found.Username, "role", found.Role)
	return found, found.Landing(), nil
}

func (s *accountService) Logout(ctx context.Context) error {
	if err := s.store.Remove(ctx, common.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *accountService) CurrentUser(ctx context.Context) (*models.Account, error) {
	var acc models.Account
	found, err := s.store.Load(ctx, common.KeySession, &acc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &acc, nil
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	return loadList[models.Account](ctx, s.store, common.KeyAccounts)
}

// EnsureAdmin reports whether an account was created. An empty email means no
// admin is configured.
func (s *accountService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	if email == "" {
		return false, nil
	}
	if username == "" {
		username = "admin"
	}

	_, err := s.Register(ctx, username, email, password, models.RoleAdmin)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, common.ErrDuplicateEmail):
		return false, nil
	default:
		return false, err
	}
}
