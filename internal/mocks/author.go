// Package mocks holds testify mocks of the repository, service and cache interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookmanager/internal/domains/author/model"
	"bookmanager/internal/domains/author/repository"
	"bookmanager/internal/domains/author/service"
)

type AuthorRepository struct {
	mock.Mock
}

var _ repository.RepositoryInterface = (*AuthorRepository)(nil)

func (m *AuthorRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	args := m.Called(ctx)
	authors, _ := args.Get(0).([]model.Author)
	return authors, args.Error(1)
}

func (m *AuthorRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Author, error) {
	args := m.Called(ctx, ids)
	authors, _ := args.Get(0).([]model.Author)
	return authors, args.Error(1)
}

func (m *AuthorRepository) Add(ctx context.Context, draft model.DraftAuthor) (model.Author, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.Author), args.Error(1)
}

func (m *AuthorRepository) Update(ctx context.Context, author model.Author) (*model.Author, error) {
	args := m.Called(ctx, author)
	a, _ := args.Get(0).(*model.Author)
	return a, args.Error(1)
}

type AuthorService struct {
	mock.Mock
}

var _ service.ServiceInterface = (*AuthorService)(nil)

func (m *AuthorService) ListAll(ctx context.Context) ([]model.AuthorDTO, error) {
	args := m.Called(ctx)
	dtos, _ := args.Get(0).([]model.AuthorDTO)
	return dtos, args.Error(1)
}

func (m *AuthorService) Add(ctx context.Context, draft model.DraftAuthor) (model.AuthorDTO, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.AuthorDTO), args.Error(1)
}

func (m *AuthorService) Update(ctx context.Context, author model.Author) (model.AuthorDTO, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(model.AuthorDTO), args.Error(1)
}
