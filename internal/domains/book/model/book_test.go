package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookmanager/internal/shared/apperror"
)

func TestValidateBook(t *testing.T) {
	tests := []struct {
		name      string
		price     int
		authorIDs []string
		wantMsg   string
	}{
		{"zero price", 0, []string{"a"}, ""},
		{"positive price", 100, []string{"a", "b"}, ""},
		{"negative price", -1, []string{"a"}, "price must be 0 or greater"},
		{"very negative price", -100000, []string{"a"}, "price must be 0 or greater"},
		{"no authors", 100, []string{}, "at least one author is required"},
		{"nil authors", 0, nil, "at least one author is required"},
		{"price checked first", -1, nil, "price must be 0 or greater"},
		{"largest price", MaxPrice, []string{"a"}, ""},
		{"price above column range", MaxPrice + 1, []string{"a"}, "price must be 2147483647 or less"},
		{"huge price", 3000000000, []string{"a"}, "price must be 2147483647 or less"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBook(tt.price, tt.authorIDs)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCanUpdate(t *testing.T) {
	tests := []struct {
		current, proposed PublishingStatus
		want              bool
	}{
		{StatusUnpublished, StatusUnpublished, true},
		{StatusUnpublished, StatusPublished, true},
		{StatusPublished, StatusPublished, true},
		{StatusPublished, StatusUnpublished, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+string(tt.proposed), func(t *testing.T) {
			got := CanUpdate(Book{PublishingStatus: tt.current}, Book{PublishingStatus: tt.proposed})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDraftBookDeduplicatesAuthors(t *testing.T) {
	draft, err := NewDraftBook("T", 100, []string{"b", "a", "b"}, StatusUnpublished)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, draft.AuthorIDs)
}

func TestNewBook(t *testing.T) {
	b, err := NewBook("book-1", "T", 0, []string{"a"}, StatusPublished)
	require.NoError(t, err)
	assert.Equal(t, Book{ID: "book-1", Title: "T", Price: 0, AuthorIDs: []string{"a"}, PublishingStatus: StatusPublished}, b)

	_, err = NewBook("book-1", "T", -5, []string{"a"}, StatusPublished)
	assert.True(t, apperror.IsValidation(err))
}

func TestPublishingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusPublished.IsValid())
	assert.True(t, StatusUnpublished.IsValid())
	assert.False(t, PublishingStatus("DRAFT").IsValid())
	assert.False(t, PublishingStatus("").IsValid())
}

func intPtr(v int) *int { return &v }

func TestCreateBookRequest_ToDraft(t *testing.T) {
	draft, err := CreateBookRequest{
		Title: "T", Price: intPtr(100), AuthorIDs: []string{"a"}, PublishingStatus: "UNPUBLISHED",
	}.ToDraft()
	require.NoError(t, err)
	assert.Equal(t, DraftBook{Title: "T", Price: 100, AuthorIDs: []string{"a"}, PublishingStatus: StatusUnpublished}, draft)

	tests := []struct {
		name    string
		req     CreateBookRequest
		wantMsg string
	}{
		{"missing price", CreateBookRequest{AuthorIDs: []string{"a"}, PublishingStatus: "PUBLISHED"}, "price: is required."},
		{"missing authors", CreateBookRequest{Price: intPtr(1), PublishingStatus: "PUBLISHED"}, "authorIds: is required."},
		{"empty authors", CreateBookRequest{Price: intPtr(1), AuthorIDs: []string{}, PublishingStatus: "PUBLISHED"}, "at least one author is required"},
		{"unknown status", CreateBookRequest{Price: intPtr(1), AuthorIDs: []string{"a"}, PublishingStatus: "DRAFT"}, "publishingStatus: must be UNPUBLISHED or PUBLISHED."},
		{"negative price", CreateBookRequest{Price: intPtr(-1), AuthorIDs: []string{"a"}, PublishingStatus: "PUBLISHED"}, "price must be 0 or greater"},
		{"price out of range", CreateBookRequest{Price: intPtr(3000000000), AuthorIDs: []string{"a"}, PublishingStatus: "PUBLISHED"}, "price must be 2147483647 or less"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToDraft()
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestUpdateBookRequest_ToBook(t *testing.T) {
	b, err := UpdateBookRequest{
		ID: "book-1", Title: "T", Price: intPtr(0), AuthorIDs: []string{"a", "a"}, PublishingStatus: "PUBLISHED",
	}.ToBook()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, b.AuthorIDs)

	_, err = UpdateBookRequest{Title: "T", Price: intPtr(0), AuthorIDs: []string{"a"}, PublishingStatus: "PUBLISHED"}.ToBook()
	require.Error(t, err)
	assert.Equal(t, "id: cannot be blank.", err.Error())
}
