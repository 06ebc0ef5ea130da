package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookmanager/internal/shared/apperror"
	"bookmanager/internal/shared/utils"
)

// ================================================
// RESPONSE DTOs
// ================================================

type AuthorDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

type AuthorListResponse struct {
	Authors []AuthorDTO `json:"authors"`
}

// ================================================
// REQUEST DTOs
// ================================================

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BirthDate,
			validation.Required,
			validation.Date(utils.DateLayout).Error("must be a date in YYYY-MM-DD format"),
		),
	)
}

// ToDraft validates the request and builds the draft checked against now
func (r CreateAuthorRequest) ToDraft(now time.Time) (DraftAuthor, error) {
	if err := apperror.FromValidation(r.Validate()); err != nil {
		return DraftAuthor{}, err
	}

	birthDate, err := utils.ParseDate(r.BirthDate)
	if err != nil {
		return DraftAuthor{}, apperror.NewValidation("birthDate must be a date in YYYY-MM-DD format")
	}

	return NewDraftAuthor(r.Name, birthDate, now)
}

// UpdateAuthorRequest - PUT /authors
type UpdateAuthorRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
		validation.Field(&r.BirthDate,
			validation.Required,
			validation.Date(utils.DateLayout).Error("must be a date in YYYY-MM-DD format"),
		),
	)
}

func (r UpdateAuthorRequest) ToAuthor(now time.Time) (Author, error) {
	if err := apperror.FromValidation(r.Validate()); err != nil {
		return Author{}, err
	}

	birthDate, err := utils.ParseDate(r.BirthDate)
	if err != nil {
		return Author{}, apperror.NewValidation("birthDate must be a date in YYYY-MM-DD format")
	}

	return NewAuthor(r.ID, r.Name, birthDate, now)
}
