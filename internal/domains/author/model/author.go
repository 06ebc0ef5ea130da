package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookmanager/internal/shared/apperror"
	"bookmanager/internal/shared/utils"
)

// Author is a persisted author. BirthDate is a calendar date at UTC midnight.
type Author struct {
	ID        string
	Name      string
	BirthDate time.Time
}

// DraftAuthor is an author that has not been stored yet and has no id
type DraftAuthor struct {
	Name      string
	BirthDate time.Time
}

// ValidateAuthor requires birthDate to be strictly before the calendar day of now,
// taken in now's location.
func ValidateAuthor(birthDate, now time.Time) error {
	today := utils.DateOf(now)

	err := validation.Validate(
		utils.DateOf(birthDate),
		validation.Max(today).Exclusive().Error("birth date must be in the past"),
	)
	return apperror.FromValidation(err)
}

func NewDraftAuthor(name string, birthDate, now time.Time) (DraftAuthor, error) {
	if err := ValidateAuthor(birthDate, now); err != nil {
		return DraftAuthor{}, err
	}
	return DraftAuthor{Name: name, BirthDate: utils.DateOf(birthDate)}, nil
}

func NewAuthor(id, name string, birthDate, now time.Time) (Author, error) {
	if err := ValidateAuthor(birthDate, now); err != nil {
		return Author{}, err
	}
	return Author{ID: id, Name: name, BirthDate: utils.DateOf(birthDate)}, nil
}

// ToDTO converts Author to its JSON shape
func (a Author) ToDTO() AuthorDTO {
	return AuthorDTO{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: utils.FormatDate(a.BirthDate),
	}
}

// ToDTOs keeps the order of authors
func ToDTOs(authors []Author) []AuthorDTO {
	dtos := make([]AuthorDTO, len(authors))
	for i, a := range authors {
		dtos[i] = a.ToDTO()
	}
	return dtos
}
