package database

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

// Dialect builds postgres statements with $n placeholders
var Dialect = goqu.Dialect("postgres")

// Builder is the surface of goqu datasets that render to SQL
type Builder interface {
	ToSQL() (string, []interface{}, error)
}

// Build renders b and wraps rendering failures
func Build(b Builder) (string, []any, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build query: %w", err)
	}
	return sql, args, nil
}
