package service

import (
	"context"
	"strings"

	"library-api/internal/domains/book"
	"library-api/internal/shared/isbn"
	"library-api/pkg/logger"
)

type bookService struct {
	repo      book.Repository
	validator book.Validator
}

func NewBookService(repo book.Repository, validator book.Validator) book.Service {
	return &bookService{repo: repo, validator: validator}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookReq) (*book.Book, error) {
	b := req.ToBook()

	// The catalog assigns an identifier when the caller omits one.
	if b.ISBN == "" {
		b.ISBN = isbn.Generate()
	}

	if err := s.validator.Validate(b); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, b.ISBN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, book.ErrISBNAlreadyExists
	}

	// Add can still report a duplicate: the storage constraint wins
	// when two creates race past the existence check.
	if err := s.repo.Add(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{"isbn": b.ISBN})
	return b, nil
}

func (s *bookService) GetByISBN(ctx context.Context, bookISBN string) (*book.Book, error) {
	return s.repo.GetByISBN(ctx, bookISBN)
}

func (s *bookService) Search(ctx context.Context, term string) ([]*book.Book, error) {
	if strings.TrimSpace(term) == "" {
		return s.repo.GetAll(ctx)
	}
	return s.repo.SearchByTitle(ctx, term)
}

func (s *bookService) Update(ctx context.Context, bookISBN string, req *book.UpdateBookReq) (*book.Book, error) {
	b := req.ToBook(bookISBN)

	if err := s.validator.Validate(b); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, bookISBN)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, book.ErrBookNotFound
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("book updated", map[string]interface{}{"isbn": b.ISBN})
	return b, nil
}

func (s *bookService) Delete(ctx context.Context, bookISBN string) error {
	if _, err := s.repo.GetByISBN(ctx, bookISBN); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, bookISBN); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{"isbn": bookISBN})
	return nil
}
