package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bookmanager/internal/domains/book/model"
	"bookmanager/internal/domains/book/repository"
	"bookmanager/internal/domains/book/service"
)

type BookRepository struct {
	mock.Mock
}

var _ repository.RepositoryInterface = (*BookRepository)(nil)

func (m *BookRepository) FindByAuthorID(ctx context.Context, authorID string) ([]model.Book, error) {
	args := m.Called(ctx, authorID)
	books, _ := args.Get(0).([]model.Book)
	return books, args.Error(1)
}

func (m *BookRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*model.Book)
	return b, args.Error(1)
}

func (m *BookRepository) Add(ctx context.Context, draft model.DraftBook) (model.Book, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *BookRepository) Update(ctx context.Context, book model.Book) (*model.Book, error) {
	args := m.Called(ctx, book)
	b, _ := args.Get(0).(*model.Book)
	return b, args.Error(1)
}

type BookService struct {
	mock.Mock
}

var _ service.ServiceInterface = (*BookService)(nil)

func (m *BookService) RetrieveByAuthorID(ctx context.Context, authorID string) ([]model.BookWithAuthorsDTO, error) {
	args := m.Called(ctx, authorID)
	dtos, _ := args.Get(0).([]model.BookWithAuthorsDTO)
	return dtos, args.Error(1)
}

func (m *BookService) Add(ctx context.Context, draft model.DraftBook) (model.BookWithAuthorsDTO, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(model.BookWithAuthorsDTO), args.Error(1)
}

func (m *BookService) Update(ctx context.Context, book model.Book) (model.BookWithAuthorsDTO, error) {
	args := m.Called(ctx, book)
	return args.Get(0).(model.BookWithAuthorsDTO), args.Error(1)
}
