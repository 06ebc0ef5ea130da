package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"bookmanager/internal/domains/book/model"
	"bookmanager/pkg/database"
	"bookmanager/pkg/idgen"
)

const (
	tableBookAuthors = "book_authors"
	colBookID        = "book_id"
	colAuthorID      = "author_id"
)

// author ids are aggregated as text so pq.Array can parse them whatever
// wire format pgx picks for the column
const selectBookWithAuthorIDs = `
	SELECT b.id, b.title, b.price, b.publishing_status,
	       array_agg(ba.author_id ORDER BY ba.author_id)::text
	FROM books b
	JOIN book_authors ba ON ba.book_id = b.id
`

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

func (r *postgresRepository) FindByAuthorID(ctx context.Context, authorID string) ([]model.Book, error) {
	query := selectBookWithAuthorIDs + `
	WHERE b.id IN (SELECT book_id FROM book_authors WHERE author_id = $1)
	GROUP BY b.id
	ORDER BY b.id
	`

	rows, err := database.Querier(ctx, r.db).Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("find books by author %s: %w", authorID, err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Book, error) {
	query := selectBookWithAuthorIDs + `
	WHERE b.id = $1
	GROUP BY b.id
	`

	b, err := scanBook(database.Querier(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *postgresRepository) Add(ctx context.Context, draft model.DraftBook) (model.Book, error) {
	query := `
		INSERT INTO books (id, title, price, publishing_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, price, publishing_status
	`

	q := database.Querier(ctx, r.db)

	var b model.Book
	err := q.QueryRow(ctx, query, r.ids.Generate(), draft.Title, draft.Price, draft.PublishingStatus).
		Scan(&b.ID, &b.Title, &b.Price, &b.PublishingStatus)
	if err != nil {
		return model.Book{}, fmt.Errorf("insert book: %w", err)
	}

	if err := insertAuthorLinks(ctx, q, b.ID, draft.AuthorIDs); err != nil {
		return model.Book{}, err
	}

	b.AuthorIDs = draft.AuthorIDs
	return b, nil
}

// Update rewrites the author links wholesale. Two concurrent updates of the
// same book can interleave here and the last link set to commit wins.
func (r *postgresRepository) Update(ctx context.Context, book model.Book) (*model.Book, error) {
	query := `
		UPDATE books
		SET title = $2, price = $3, publishing_status = $4
		WHERE id = $1
		RETURNING id, title, price, publishing_status
	`

	q := database.Querier(ctx, r.db)

	var b model.Book
	err := q.QueryRow(ctx, query, book.ID, book.Title, book.Price, book.PublishingStatus).
		Scan(&b.ID, &b.Title, &b.Price, &b.PublishingStatus)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update book %s: %w", book.ID, err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM book_authors WHERE book_id = $1`, book.ID); err != nil {
		return nil, fmt.Errorf("delete author links of book %s: %w", book.ID, err)
	}

	if err := insertAuthorLinks(ctx, q, book.ID, book.AuthorIDs); err != nil {
		return nil, err
	}

	b.AuthorIDs = book.AuthorIDs
	return &b, nil
}

func insertAuthorLinks(ctx context.Context, q database.DBTX, bookID string, authorIDs []string) error {
	if len(authorIDs) == 0 {
		return nil
	}

	records := make([]interface{}, len(authorIDs))
	for i, authorID := range authorIDs {
		records[i] = goqu.Record{colBookID: bookID, colAuthorID: authorID}
	}

	query, args, err := database.Build(
		database.Dialect.Insert(tableBookAuthors).Prepared(true).Rows(records...),
	)
	if err != nil {
		return err
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert author links of book %s: %w", bookID, err)
	}

	return nil
}

func scanBook(row pgx.Row) (model.Book, error) {
	var (
		b         model.Book
		authorIDs []string
	)

	err := row.Scan(&b.ID, &b.Title, &b.Price, &b.PublishingStatus, pq.Array(&authorIDs))
	if err != nil {
		return model.Book{}, fmt.Errorf("scan book: %w", err)
	}

	b.AuthorIDs = authorIDs
	return b, nil
}
