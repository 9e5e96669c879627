package service

import (
	"context"

	"github.com/kellyband/site/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact submission. sub.ID and sub.SubmittedAt
	// are populated by the store.
	Submit(ctx context.Context, sub *model.ContactSubmission) error

	// List returns every contact submission, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}
