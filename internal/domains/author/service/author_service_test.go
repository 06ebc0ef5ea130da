package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookmanager/internal/domains/author/model"
	"bookmanager/internal/domains/author/service"
	"bookmanager/internal/mocks"
	"bookmanager/internal/shared/apperror"
	"bookmanager/internal/testutil"
	"bookmanager/pkg/cache"
)

const ttl = 5 * time.Minute

var birth = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)

func TestAuthorService_ListAll(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	tx := &testutil.TxManager{}
	svc := service.NewAuthorService(repo, tx, cache.Nop{}, ttl)

	repo.On("FindAll", mock.Anything).Return([]model.Author{
		{ID: "1", Name: "A", BirthDate: birth},
		{ID: "2", Name: "B", BirthDate: birth},
	}, nil)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.AuthorDTO{
		{ID: "1", Name: "A", BirthDate: "1990-01-01"},
		{ID: "2", Name: "B", BirthDate: "1990-01-01"},
	}, got)
	assert.Equal(t, 1, tx.ReadOnly)
	assert.Equal(t, 0, tx.Writes)
	repo.AssertExpectations(t)
}

func TestAuthorService_ListAllFromCache(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, c, ttl)

	cached := []model.AuthorDTO{{ID: "1", Name: "A", BirthDate: "1990-01-01"}}
	c.On("Get", mock.Anything, service.ListCacheKey, mock.Anything).Return(func(dest interface{}) {
		*dest.(*[]model.AuthorDTO) = cached
	}, nil)

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, got)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestAuthorService_ListAllCacheMissFillsCache(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, c, ttl)

	repo.On("FindAll", mock.Anything).Return([]model.Author{{ID: "1", Name: "A", BirthDate: birth}}, nil)
	c.On("Get", mock.Anything, service.ListCacheKey, mock.Anything).Return(false, errors.New("redis down"))
	c.On("Set", mock.Anything, service.ListCacheKey, []model.AuthorDTO{{ID: "1", Name: "A", BirthDate: "1990-01-01"}}, ttl).
		Return(errors.New("redis down"))

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	c.AssertExpectations(t)
}

func TestAuthorService_ListAllRepositoryError(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, nil, ttl)

	repo.On("FindAll", mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.ListAll(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestAuthorService_ListAllSkipsCacheWhenWrittenDuringRead(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, c, ttl)

	draft := model.DraftAuthor{Name: "B", BirthDate: birth}

	c.On("Get", mock.Anything, service.ListCacheKey, mock.Anything).Return(false, nil)
	c.On("Delete", mock.Anything, []string{service.ListCacheKey}).Return(nil)
	repo.On("Add", mock.Anything, draft).Return(model.Author{ID: "2", Name: "B", BirthDate: birth}, nil)
	// an author is added after the list query ran but before it is cached
	repo.On("FindAll", mock.Anything).Return([]model.Author{{ID: "1", Name: "A", BirthDate: birth}}, nil).
		Run(func(mock.Arguments) {
			_, err := svc.Add(context.Background(), draft)
			require.NoError(t, err)
		})

	got, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	c.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	c.AssertCalled(t, "Delete", mock.Anything, []string{service.ListCacheKey})
}

func TestAuthorService_Add(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	tx := &testutil.TxManager{}
	svc := service.NewAuthorService(repo, tx, c, ttl)

	draft := model.DraftAuthor{Name: "A", BirthDate: birth}
	repo.On("Add", mock.Anything, draft).Return(model.Author{ID: "new-id", Name: "A", BirthDate: birth}, nil)
	c.On("Delete", mock.Anything, []string{service.ListCacheKey}).Return(nil)

	got, err := svc.Add(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, model.AuthorDTO{ID: "new-id", Name: "A", BirthDate: "1990-01-01"}, got)
	assert.Equal(t, 1, tx.Writes)
	c.AssertExpectations(t)
}

func TestAuthorService_AddErrorKeepsCache(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, c, ttl)

	draft := model.DraftAuthor{Name: "A", BirthDate: birth}
	repo.On("Add", mock.Anything, draft).Return(model.Author{}, errors.New("insert failed"))

	_, err := svc.Add(context.Background(), draft)
	assert.Error(t, err)
	c.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAuthorService_Update(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	c := new(mocks.Cache)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, c, ttl)

	author := model.Author{ID: "1", Name: "A2", BirthDate: birth}
	repo.On("Update", mock.Anything, author).Return(&author, nil)
	c.On("Delete", mock.Anything, []string{service.ListCacheKey}).Return(nil)

	got, err := svc.Update(context.Background(), author)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	c.AssertExpectations(t)
}

func TestAuthorService_UpdateUnknownID(t *testing.T) {
	repo := new(mocks.AuthorRepository)
	svc := service.NewAuthorService(repo, &testutil.TxManager{}, cache.Nop{}, ttl)

	author := model.Author{ID: "missing", Name: "A", BirthDate: birth}
	repo.On("Update", mock.Anything, author).Return(nil, nil)

	_, err := svc.Update(context.Background(), author)
	require.Error(t, err)
	assert.True(t, apperror.IsEntityNotFound(err))
	assert.Equal(t, "author not found. id: missing", err.Error())
}
