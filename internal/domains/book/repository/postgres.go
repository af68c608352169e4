package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-api/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a book.Repository backed by Postgres.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Exists(ctx context.Context, isbn string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`, isbn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check book existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Add(ctx context.Context, b *book.Book) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO books (isbn, title, author, short_description, page_count, release_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		b.ISBN, b.Title, b.Author, b.ShortDescription, b.PageCount, b.ReleaseDate)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 is unique_violation on the isbn primary key.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return book.ErrISBNAlreadyExists
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var b book.Book
	err := r.pool.QueryRow(ctx,
		`SELECT isbn, title, author, short_description, page_count, release_date
		 FROM books WHERE isbn = $1`, isbn).
		Scan(&b.ISBN, &b.Title, &b.Author, &b.ShortDescription, &b.PageCount, &b.ReleaseDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*book.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT isbn, title, author, short_description, page_count, release_date
		 FROM books ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) SearchByTitle(ctx context.Context, term string) ([]*book.Book, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT isbn, title, author, short_description, page_count, release_date
		 FROM books WHERE title ILIKE '%' || $1 || '%' ORDER BY title`, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	defer rows.Close()

	return scanBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books
		 SET title = $2, author = $3, short_description = $4, page_count = $5, release_date = $6
		 WHERE isbn = $1`,
		b.ISBN, b.Title, b.Author, b.ShortDescription, b.PageCount, b.ReleaseDate)
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, isbn string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE isbn = $1`, isbn)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]*book.Book, error) {
	books := make([]*book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.ISBN, &b.Title, &b.Author,
			&b.ShortDescription, &b.PageCount, &b.ReleaseDate); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read book rows: %w", err)
	}
	return books, nil
}
