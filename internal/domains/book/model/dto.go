package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	authormodel "bookmanager/internal/domains/author/model"
	"bookmanager/internal/shared/apperror"
)

// ================================================
// RESPONSE DTOs
// ================================================

// BookWithAuthorsDTO is a book joined with its resolved authors, ordered by id
type BookWithAuthorsDTO struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Price            int                     `json:"price"`
	Authors          []authormodel.AuthorDTO `json:"authors"`
	PublishingStatus PublishingStatus        `json:"publishingStatus"`
}

func NewBookWithAuthors(b Book, authors []authormodel.Author) BookWithAuthorsDTO {
	return BookWithAuthorsDTO{
		ID:               b.ID,
		Title:            b.Title,
		Price:            b.Price,
		Authors:          authormodel.ToDTOs(authors),
		PublishingStatus: b.PublishingStatus,
	}
}

type BookListResponse struct {
	Books []BookWithAuthorsDTO `json:"books"`
}

// ================================================
// REQUEST DTOs
// ================================================

var publishingStatuses = []interface{}{string(StatusUnpublished), string(StatusPublished)}

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title            string   `json:"title"`
	Price            *int     `json:"price"`
	AuthorIDs        []string `json:"authorIds"`
	PublishingStatus string   `json:"publishingStatus"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Price, validation.NotNil),
		validation.Field(&r.AuthorIDs, validation.NotNil),
		validation.Field(&r.PublishingStatus,
			validation.Required,
			validation.In(publishingStatuses...).Error("must be UNPUBLISHED or PUBLISHED"),
		),
	)
}

func (r CreateBookRequest) ToDraft() (DraftBook, error) {
	if err := apperror.FromValidation(r.Validate()); err != nil {
		return DraftBook{}, err
	}
	return NewDraftBook(r.Title, *r.Price, r.AuthorIDs, PublishingStatus(r.PublishingStatus))
}

// UpdateBookRequest - PUT /books
type UpdateBookRequest struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Price            *int     `json:"price"`
	AuthorIDs        []string `json:"authorIds"`
	PublishingStatus string   `json:"publishingStatus"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.Price, validation.NotNil),
		validation.Field(&r.AuthorIDs, validation.NotNil),
		validation.Field(&r.PublishingStatus,
			validation.Required,
			validation.In(publishingStatuses...).Error("must be UNPUBLISHED or PUBLISHED"),
		),
	)
}

func (r UpdateBookRequest) ToBook() (Book, error) {
	if err := apperror.FromValidation(r.Validate()); err != nil {
		return Book{}, err
	}
	return NewBook(r.ID, r.Title, *r.Price, r.AuthorIDs, PublishingStatus(r.PublishingStatus))
}
