package repository

import (
	"context"

	"bookmanager/internal/domains/book/model"
)

// RepositoryInterface defines data access for books and their author links.
// Implementations join the transaction carried by ctx, if any.
type RepositoryInterface interface {
	// FindByAuthorID returns the books linked to authorID ordered by id.
	// AuthorIDs of each book hold all of its authors, ordered by id.
	FindByAuthorID(ctx context.Context, authorID string) ([]model.Book, error)

	// FindByID returns nil, nil when no book has the id
	FindByID(ctx context.Context, id string) (*model.Book, error)

	// Add stores draft under a new id and links it to draft.AuthorIDs
	Add(ctx context.Context, draft model.DraftBook) (model.Book, error)

	// Update replaces the book row and all of its author links.
	// Returns nil, nil when no book has the id.
	Update(ctx context.Context, book model.Book) (*model.Book, error)
}
