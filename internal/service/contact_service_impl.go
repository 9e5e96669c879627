package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kellyband/site/internal/model"
	"github.com/kellyband/site/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit performs a single insert. Field presence is enforced by the store,
// not here.
func (s *contactServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	if err := s.repo.Save(ctx, sub); err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	slog.InfoContext(ctx, "contact submission recorded", "contact_id", sub.ID)
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return subs, nil
}
