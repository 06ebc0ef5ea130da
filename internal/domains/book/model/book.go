package model

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookmanager/internal/shared/apperror"
	"bookmanager/internal/shared/utils"
)

// PublishingStatus is stored and serialized as its literal name
type PublishingStatus string

const (
	StatusUnpublished PublishingStatus = "UNPUBLISHED"
	StatusPublished   PublishingStatus = "PUBLISHED"
)

func (s PublishingStatus) IsValid() bool {
	return s == StatusUnpublished || s == StatusPublished
}

// Book is a persisted book. AuthorIDs has no duplicates and is never empty.
type Book struct {
	ID               string
	Title            string
	Price            int
	AuthorIDs        []string
	PublishingStatus PublishingStatus
}

// DraftBook is a book that has not been stored yet and has no id
type DraftBook struct {
	Title            string
	Price            int
	AuthorIDs        []string
	PublishingStatus PublishingStatus
}

// MaxPrice is the largest price the books.price integer column holds
const MaxPrice = math.MaxInt32

// ValidateBook checks price first, then that at least one author is given.
// Whether the authors exist is checked by the service.
func ValidateBook(price int, authorIDs []string) error {
	err := validation.Validate(price,
		validation.Min(0).Error("price must be 0 or greater"),
		validation.Max(MaxPrice).Error("price must be 2147483647 or less"),
	)
	if err != nil {
		return apperror.FromValidation(err)
	}

	err = validation.Validate(authorIDs, validation.Required.Error("at least one author is required"))
	return apperror.FromValidation(err)
}

// CanUpdate reports whether current may be replaced by proposed.
// A published book cannot go back to unpublished.
func CanUpdate(current, proposed Book) bool {
	return !(current.PublishingStatus == StatusPublished && proposed.PublishingStatus == StatusUnpublished)
}

func NewDraftBook(title string, price int, authorIDs []string, status PublishingStatus) (DraftBook, error) {
	authorIDs = utils.UniqueStrings(authorIDs)
	if err := ValidateBook(price, authorIDs); err != nil {
		return DraftBook{}, err
	}
	return DraftBook{
		Title:            title,
		Price:            price,
		AuthorIDs:        authorIDs,
		PublishingStatus: status,
	}, nil
}

func NewBook(id, title string, price int, authorIDs []string, status PublishingStatus) (Book, error) {
	authorIDs = utils.UniqueStrings(authorIDs)
	if err := ValidateBook(price, authorIDs); err != nil {
		return Book{}, err
	}
	return Book{
		ID:               id,
		Title:            title,
		Price:            price,
		AuthorIDs:        authorIDs,
		PublishingStatus: status,
	}, nil
}
