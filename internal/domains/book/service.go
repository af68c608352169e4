package book

import "context"

// Service carries the catalog's business rules: validation, ISBN
// assignment, and existence checks around every mutation.
type Service interface {
	Create(ctx context.Context, req *CreateBookReq) (*Book, error)
	GetByISBN(ctx context.Context, isbn string) (*Book, error)
	// Search returns books whose title contains term, ignoring case.
	// A blank term returns the whole catalog.
	Search(ctx context.Context, term string) ([]*Book, error)
	Update(ctx context.Context, isbn string, req *UpdateBookReq) (*Book, error)
	Delete(ctx context.Context, isbn string) error
}
