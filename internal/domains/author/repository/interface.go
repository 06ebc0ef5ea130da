package repository

import (
	"context"

	"bookmanager/internal/domains/author/model"
)

// RepositoryInterface defines data access for authors.
// Implementations join the transaction carried by ctx, if any.
type RepositoryInterface interface {
	// FindAll returns every author ordered by id
	FindAll(ctx context.Context) ([]model.Author, error)

	// FindByIDs returns the authors whose id is in ids, ordered by id.
	// Unknown ids are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) ([]model.Author, error)

	// Add stores draft under a newly generated id
	Add(ctx context.Context, draft model.DraftAuthor) (model.Author, error)

	// Update replaces name and birth date. Returns nil, nil when no row has the id.
	Update(ctx context.Context, author model.Author) (*model.Author, error)
}
