package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"bookmanager/internal/domains/author/model"
	"bookmanager/pkg/database"
	"bookmanager/pkg/idgen"
)

const (
	tableAuthors = "authors"
	colID        = "id"
	colName      = "name"
	colBirthDate = "birth_date"
)

type postgresRepository struct {
	db  database.DBTX // pool, used when ctx carries no transaction
	ids idgen.Generator
}

func NewPostgresRepository(db database.DBTX, ids idgen.Generator) RepositoryInterface {
	return &postgresRepository{
		db:  db,
		ids: ids,
	}
}

func (r *postgresRepository) FindAll(ctx context.Context) ([]model.Author, error) {
	query := `
		SELECT id, name, birth_date
		FROM authors
		ORDER BY id
	`

	rows, err := database.Querier(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find all authors: %w", err)
	}

	return scanAuthors(rows)
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []string) ([]model.Author, error) {
	if len(ids) == 0 {
		return []model.Author{}, nil
	}

	query, args, err := database.Build(
		database.Dialect.From(tableAuthors).
			Prepared(true).
			Select(colID, colName, colBirthDate).
			Where(goqu.C(colID).In(ids)).
			Order(goqu.C(colID).Asc()),
	)
	if err != nil {
		return nil, err
	}

	rows, err := database.Querier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find authors by ids: %w", err)
	}

	return scanAuthors(rows)
}

func (r *postgresRepository) Add(ctx context.Context, draft model.DraftAuthor) (model.Author, error) {
	query := `
		INSERT INTO authors (id, name, birth_date)
		VALUES ($1, $2, $3)
		RETURNING id, name, birth_date
	`

	var a model.Author
	err := database.Querier(ctx, r.db).
		QueryRow(ctx, query, r.ids.Generate(), draft.Name, draft.BirthDate).
		Scan(&a.ID, &a.Name, &a.BirthDate)
	if err != nil {
		return model.Author{}, fmt.Errorf("insert author: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Update(ctx context.Context, author model.Author) (*model.Author, error) {
	query := `
		UPDATE authors
		SET name = $2, birth_date = $3
		WHERE id = $1
		RETURNING id, name, birth_date
	`

	var a model.Author
	err := database.Querier(ctx, r.db).
		QueryRow(ctx, query, author.ID, author.Name, author.BirthDate).
		Scan(&a.ID, &a.Name, &a.BirthDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update author %s: %w", author.ID, err)
	}

	return &a, nil
}

func scanAuthors(rows pgx.Rows) ([]model.Author, error) {
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.BirthDate); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate authors: %w", err)
	}

	return authors, nil
}
