package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/logging"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/dmitrijs2005/xshare/internal/storage"
)

// CatalogService is the append-only list of interview experiences.
type CatalogService interface {
	Add(ctx context.Context, exp models.Experience) (*models.Experience, error)
	List(ctx context.Context) ([]models.Experience, error)
	Get(ctx context.Context, id string) (*models.Experience, error)
}

type catalogService struct {
	store  *storage.Store
	logger logging.Logger
}

func NewCatalogService(store *storage.Store, logger logging.Logger) CatalogService {
	return &catalogService{store: store, logger: logger.With("component", "catalog")}
}

// Add appends exp with a fresh ID and creation time. Field contents are not
// checked.
func (s *catalogService) Add(ctx context.Context, exp models.Experience) (*models.Experience, error) {
	exp.ID = common.NewID()
	exp.CreatedAt = now()

	err := s.store.Update(ctx, func(ctx context.Context, tx *storage.Tx) error {
		exps, err := loadList[models.Experience](ctx, tx, common.KeyExperiences)
		if err != nil {
			return err
		}
		return tx.Save(ctx, common.KeyExperiences, append(exps, exp))
	})
	if err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}

	s.logger.Info(ctx, "experience added", "id", exp.ID, "company", exp.Company)
	return &exp, nil
}

func (s *catalogService) List(ctx context.Context) ([]models.Experience, error) {
	return loadList[models.Experience](ctx, s.store, common.KeyExperiences)
}

func (s *catalogService) Get(ctx context.Context, id string) (*models.Experience, error) {
	exps, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return findExperience(exps, id)
}

func findExperience(exps []models.Experience, id string) (*models.Experience, error) {
	for i := range exps {
		if exps[i].ID == id {
			return &exps[i], nil
		}
	}
	return nil, fmt.Errorf("experience %s: %w", id, common.ErrNotFound)
}
