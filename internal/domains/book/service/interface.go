package service

import (
	"context"

	"bookmanager/internal/domains/book/model"
)

// ServiceInterface defines book use cases. Each call is one transaction.
type ServiceInterface interface {
	// RetrieveByAuthorID returns the books of an author with all their authors.
	// An unknown author id gives an empty list.
	RetrieveByAuthorID(ctx context.Context, authorID string) ([]model.BookWithAuthorsDTO, error)

	// Add stores a validated draft.
	// Errors: *apperror.ValidationError when an author id does not exist
	Add(ctx context.Context, draft model.DraftBook) (model.BookWithAuthorsDTO, error)

	// Update replaces a book and its author links.
	// Errors: *apperror.EntityNotFoundError for an unknown id,
	// *apperror.ValidationError for a published -> unpublished change or unknown authors
	Update(ctx context.Context, book model.Book) (model.BookWithAuthorsDTO, error)
}
