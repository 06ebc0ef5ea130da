package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"bookmanager/internal/domains/author/model"
	"bookmanager/internal/domains/author/repository"
	"bookmanager/internal/shared/apperror"
	"bookmanager/pkg/cache"
	"bookmanager/pkg/database"
)

// ListCacheKey holds the full author list
const ListCacheKey = "authors:list"

type authorService struct {
	repo     repository.RepositoryInterface
	tx       database.TxManager
	cache    cache.Cache
	cacheTTL time.Duration

	// bumped by every committed write; a list read that saw it change is not cached
	listGen atomic.Uint64
}

func NewAuthorService(
	repo repository.RepositoryInterface,
	tx database.TxManager,
	c cache.Cache,
	cacheTTL time.Duration,
) ServiceInterface {
	if c == nil {
		c = cache.Nop{}
	}
	return &authorService{
		repo:     repo,
		tx:       tx,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (s *authorService) ListAll(ctx context.Context) ([]model.AuthorDTO, error) {
	var cached []model.AuthorDTO
	found, err := s.cache.Get(ctx, ListCacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("author list cache read failed")
	}
	if found {
		return cached, nil
	}

	gen := s.listGen.Load()

	dtos, err := database.WithReadOnlyResult(ctx, s.tx, func(ctx context.Context) ([]model.AuthorDTO, error) {
		authors, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return model.ToDTOs(authors), nil
	})
	if err != nil {
		return nil, err
	}

	if s.listGen.Load() != gen {
		log.Debug().Str("key", ListCacheKey).Msg("author list changed during read, not caching")
		return dtos, nil
	}

	if err := s.cache.Set(ctx, ListCacheKey, dtos, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("author list cache write failed")
	}

	return dtos, nil
}

func (s *authorService) Add(ctx context.Context, draft model.DraftAuthor) (model.AuthorDTO, error) {
	created, err := database.WithTransactionResult(ctx, s.tx, func(ctx context.Context) (model.Author, error) {
		return s.repo.Add(ctx, draft)
	})
	if err != nil {
		return model.AuthorDTO{}, err
	}

	s.invalidateList(ctx)

	log.Info().Str("author_id", created.ID).Msg("author created")
	return created.ToDTO(), nil
}

func (s *authorService) Update(ctx context.Context, author model.Author) (model.AuthorDTO, error) {
	updated, err := database.WithTransactionResult(ctx, s.tx, func(ctx context.Context) (model.Author, error) {
		a, err := s.repo.Update(ctx, author)
		if err != nil {
			return model.Author{}, err
		}
		if a == nil {
			return model.Author{}, apperror.NewEntityNotFound("author", author.ID)
		}
		return *a, nil
	})
	if err != nil {
		return model.AuthorDTO{}, err
	}

	s.invalidateList(ctx)

	return updated.ToDTO(), nil
}

// invalidateList runs after commit; a failure leaves the list stale until the TTL expires
func (s *authorService) invalidateList(ctx context.Context) {
	s.listGen.Add(1)
	if err := s.cache.Delete(ctx, ListCacheKey); err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("author list cache invalidation failed")
	}
}
