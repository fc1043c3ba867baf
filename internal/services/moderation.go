package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/xshare/internal/common"
	"github.com/dmitrijs2005/xshare/internal/logging"
	"github.com/dmitrijs2005/xshare/internal/models"
	"github.com/dmitrijs2005/xshare/internal/storage"
)

// ModerationService moves questions through pending -> approved, or discards
// them on rejection. Questions are addressed by ID, so handles stay valid
// while other questions are moderated.
type ModerationService interface {
	Submit(ctx context.Context, actor *models.Account, experienceID, text string) (*models.Question, error)
	ListPending(ctx context.Context) ([]models.Question, error)
	Approve(ctx context.Context, actor *models.Account, questionID string) (*models.Question, error)
	Reject(ctx context.Context, actor *models.Account, questionID string) error
	ApprovedFor(ctx context.Context, experienceID string) ([]models.Question, error)
}

type moderationService struct {
	store  *storage.Store
	logger logging.Logger
}

func NewModerationService(store *storage.Store, logger logging.Logger) ModerationService {
	return &moderationService{store: store, logger: logger.With("component", "moderation")}
}

// Submit queues a question for review. Blank text is rejected before the
// actor is checked.
func (s *moderationService) Submit(ctx context.Context, actor *models.Account, experienceID, text string) (*models.Question, error) {
	var username string
	if actor != nil {
		username = actor.Username
	}
	q, err := models.NewQuestion(experienceID, text, username, now())
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, common.ErrNotAuthenticated
	}

	err = s.store.Update(ctx, func(ctx context.Context, tx *storage.Tx) error {
		exps, err := loadList[models.Experience](ctx, tx, common.KeyExperiences)
		if err != nil {
			return err
		}
		if _, err := findExperience(exps, experienceID); err != nil {
			return err
		}

		pending, err := loadList[models.Question](ctx, tx, common.KeyPendingQuestions)
		if err != nil {
			return err
		}
		return tx.Save(ctx, common.KeyPendingQuestions, append(pending, *q))
	})
	if err != nil {
		return nil, fmt.Errorf("submit question: %w", err)
	}

	s.logger.Info(ctx, "question submitted", "id", q.ID, "experience_id", experienceID, "asked_by", username)
	return q, nil
}

func (s *moderationService) ListPending(ctx context.Context) ([]models.Question, error) {
	return loadList[models.Question](ctx, s.store, common.KeyPendingQuestions)
}

// Approve copies the pending question into the approved list and removes it
// from the pending list in one transaction.
func (s *moderationService) Approve(ctx context.Context, actor *models.Account, questionID string) (*models.Question, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var approved models.Question
	err := s.store.Update(ctx, func(ctx context.Context, tx *storage.Tx) error {
		pending, i, err := takePending(ctx, tx, questionID)
		if err != nil {
			return err
		}

		list, err := loadList[models.Question](ctx, tx, common.KeyApprovedQuestions)
		if err != nil {
			return err
		}

		approved = pending[i].Approved(now())
		if err := tx.Save(ctx, common.KeyApprovedQuestions, append(list, approved)); err != nil {
			return err
		}
		return tx.Save(ctx, common.KeyPendingQuestions, slices.Delete(pending, i, i+1))
	})
	if err != nil {
		return nil, fmt.Errorf("approve question: %w", err)
	}

	s.logger.Info(ctx, "question approved", "id", questionID, "admin", actor.Username)
	return &approved, nil
}

// Reject discards a pending question. Nothing about it is kept.
func (s *moderationService) Reject(ctx context.Context, actor *models.Account, questionID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	err := s.store.Update(ctx, func(ctx context.Context, tx *storage.Tx) error {
		pending, i, err := takePending(ctx, tx, questionID)
		if err != nil {
			return err
		}
		return tx.Save(ctx, common.KeyPendingQuestions, slices.Delete(pending, i, i+1))
	})
	if err != nil {
		return fmt.Errorf("reject question: %w", err)
	}

	s.logger.Info(ctx, "question rejected", "id", questionID, "admin", actor.Username)
	return nil
}

func (s *moderationService) ApprovedFor(ctx context.Context, experienceID string) ([]models.Question, error) {
	all, err := loadList[models.Question](ctx, s.store, common.KeyApprovedQuestions)
	if err != nil {
		return nil, err
	}

	out := make([]models.Question, 0, len(all))
	for _, q := range all {
		if q.ExperienceID == experienceID {
			out = append(out, q)
		}
	}
	return out, nil
}

func requireAdmin(actor *models.Account) error {
	if actor == nil {
		return common.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return common.ErrForbidden
	}
	return nil
}

// takePending loads the pending list and locates questionID in it.
func takePending(ctx context.Context, tx *storage.Tx, questionID string) ([]models.Question, int, error) {
	pending, err := loadList[models.Question](ctx, tx, common.KeyPendingQuestions)
	if err != nil {
		return nil, 0, err
	}
	i := slices.IndexFunc(pending, func(q models.Question) bool { return q.ID == questionID })
	if i < 0 {
		return nil, 0, fmt.Errorf("pending question %s: %w", questionID, common.ErrNotFound)
	}
	return pending, i, nil
}
