package book

import "context"

// Repository is the persistence boundary for books.
type Repository interface {
	Exists(ctx context.Context, isbn string) (bool, error)
	Add(ctx context.Context, b *Book) error
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	GetAll(ctx context.Context) ([]*Book, error)
	SearchByTitle(ctx context.Context, term string) ([]*Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, isbn string) error
}
