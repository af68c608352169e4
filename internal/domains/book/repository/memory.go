package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"library-api/internal/domains/book"
)

type memoryRepository struct {
	mu    sync.RWMutex
	books map[string]book.Book
}

// NewMemoryRepository returns an in-memory book.Repository. It backs
// tests and local runs without a database.
func NewMemoryRepository() book.Repository {
	return &memoryRepository{books: make(map[string]book.Book)}
}

func (r *memoryRepository) Exists(_ context.Context, isbn string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.books[isbn]
	return ok, nil
}

func (r *memoryRepository) Add(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ISBN]; ok {
		return book.ErrISBNAlreadyExists
	}
	r.books[b.ISBN] = *b
	return nil
}

func (r *memoryRepository) GetByISBN(_ context.Context, isbn string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.books[isbn]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

func (r *memoryRepository) GetAll(_ context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(book.Book) bool { return true }), nil
}

func (r *memoryRepository) SearchByTitle(_ context.Context, term string) ([]*book.Book, error) {
	needle := strings.ToLower(term)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(b book.Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}), nil
}

func (r *memoryRepository) Update(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[b.ISBN]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ISBN] = *b
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, isbn string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[isbn]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, isbn)
	return nil
}

// collect copies matching books sorted by title, matching the order
// the database repository returns. Callers hold at least a read lock.
func (r *memoryRepository) collect(match func(book.Book) bool) []*book.Book {
	books := make([]*book.Book, 0)
	for _, b := range r.books {
		if match(b) {
			copied := b
			books = append(books, &copied)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books
}
