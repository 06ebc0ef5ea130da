package service

import (
	"context"

	"bookmanager/internal/domains/author/model"
)

// ServiceInterface defines author use cases. Each call is one transaction.
type ServiceInterface interface {
	// ListAll returns every author ordered by id
	ListAll(ctx context.Context) ([]model.AuthorDTO, error)

	// Add stores a validated draft and returns the created author
	Add(ctx context.Context, draft model.DraftAuthor) (model.AuthorDTO, error)

	// Update replaces name and birth date.
	// Errors: *apperror.EntityNotFoundError when the id is unknown
	Update(ctx context.Context, author model.Author) (model.AuthorDTO, error)
}
