// Package idgen produces the opaque string identifiers assigned to new rows.
package idgen

import "github.com/google/uuid"

// Generator returns a new unique id on every call
type Generator interface {
	Generate() string
}

// UUIDv7 ids are time ordered, so ORDER BY id follows insertion order.
type UUIDv7 struct{}

func NewUUIDv7() Generator {
	return UUIDv7{}
}

func (UUIDv7) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source fails
		return uuid.NewString()
	}
	return id.String()
}

// Func adapts a plain function, handy in tests.
type Func func() string

func (f Func) Generate() string { return f() }
