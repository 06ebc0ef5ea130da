package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	authormodel "bookmanager/internal/domains/author/model"
	authorrepo "bookmanager/internal/domains/author/repository"
	"bookmanager/internal/domains/book/model"
	"bookmanager/internal/domains/book/repository"
	"bookmanager/internal/shared/apperror"
	"bookmanager/internal/shared/utils"
	"bookmanager/pkg/database"
)

type bookService struct {
	books   repository.RepositoryInterface
	authors authorrepo.RepositoryInterface
	tx      database.TxManager
}

func NewBookService(
	books repository.RepositoryInterface,
	authors authorrepo.RepositoryInterface,
	tx database.TxManager,
) ServiceInterface {
	return &bookService{
		books:   books,
		authors: authors,
		tx:      tx,
	}
}

func (s *bookService) RetrieveByAuthorID(ctx context.Context, authorID string) ([]model.BookWithAuthorsDTO, error) {
	return database.WithReadOnlyResult(ctx, s.tx, func(ctx context.Context) ([]model.BookWithAuthorsDTO, error) {
		books, err := s.books.FindByAuthorID(ctx, authorID)
		if err != nil {
			return nil, err
		}

		// one author lookup per book
		dtos := make([]model.BookWithAuthorsDTO, 0, len(books))
		for _, b := range books {
			authors, err := s.authors.FindByIDs(ctx, b.AuthorIDs)
			if err != nil {
				return nil, err
			}
			dtos = append(dtos, model.NewBookWithAuthors(b, authors))
		}

		return dtos, nil
	})
}

func (s *bookService) Add(ctx context.Context, draft model.DraftBook) (model.BookWithAuthorsDTO, error) {
	dto, err := database.WithTransactionResult(ctx, s.tx, func(ctx context.Context) (model.BookWithAuthorsDTO, error) {
		authors, err := s.resolveAuthors(ctx, draft.AuthorIDs)
		if err != nil {
			return model.BookWithAuthorsDTO{}, err
		}

		created, err := s.books.Add(ctx, draft)
		if err != nil {
			return model.BookWithAuthorsDTO{}, err
		}

		return model.NewBookWithAuthors(created, authors), nil
	})
	if err != nil {
		return model.BookWithAuthorsDTO{}, err
	}

	log.Info().Str("book_id", dto.ID).Int("authors", len(dto.Authors)).Msg("book created")
	return dto, nil
}

func (s *bookService) Update(ctx context.Context, book model.Book) (model.BookWithAuthorsDTO, error) {
	return database.WithTransactionResult(ctx, s.tx, func(ctx context.Context) (model.BookWithAuthorsDTO, error) {
		current, err := s.books.FindByID(ctx, book.ID)
		if err != nil {
			return model.BookWithAuthorsDTO{}, err
		}
		if current == nil {
			return model.BookWithAuthorsDTO{}, apperror.NewEntityNotFound("book", book.ID)
		}

		if !model.CanUpdate(*current, book) {
			return model.BookWithAuthorsDTO{}, apperror.NewValidation("a published book cannot be changed back to unpublished")
		}

		authors, err := s.resolveAuthors(ctx, book.AuthorIDs)
		if err != nil {
			return model.BookWithAuthorsDTO{}, err
		}

		updated, err := s.books.Update(ctx, book)
		if err != nil {
			return model.BookWithAuthorsDTO{}, err
		}
		if updated == nil {
			return model.BookWithAuthorsDTO{}, apperror.NewEntityNotFound("book", book.ID)
		}

		return model.NewBookWithAuthors(*updated, authors), nil
	})
}

// resolveAuthors loads ids and fails listing every id with no author row
func (s *bookService) resolveAuthors(ctx context.Context, ids []string) ([]authormodel.Author, error) {
	authors, err := s.authors.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[string]struct{}, len(authors))
	for _, a := range authors {
		found[a.ID] = struct{}{}
	}

	if missing := utils.Difference(ids, found); len(missing) > 0 {
		return nil, apperror.NewValidation("authors do not exist: id[%s]", strings.Join(missing, ", "))
	}

	return authors, nil
}
