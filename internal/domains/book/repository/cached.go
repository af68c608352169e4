package repository

import (
	"context"
	"fmt"
	"time"

	"library-api/internal/domains/book"
	"library-api/pkg/cache"
	"library-api/pkg/logger"
)

const bookCacheTTL = 5 * time.Minute

type cachedRepository struct {
	inner book.Repository
	cache cache.Cache
}

// NewCachedRepository wraps a repository with a read-through cache on
// single-book lookups. Cache failures degrade to the inner repository
// rather than failing the request.
func NewCachedRepository(inner book.Repository, c cache.Cache) book.Repository {
	return &cachedRepository{inner: inner, cache: c}
}

func bookKey(isbn string) string {
	return fmt.Sprintf("book:%s", isbn)
}

func (r *cachedRepository) Exists(ctx context.Context, isbn string) (bool, error) {
	return r.inner.Exists(ctx, isbn)
}

func (r *cachedRepository) Add(ctx context.Context, b *book.Book) error {
	if err := r.inner.Add(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, b.ISBN)
	return nil
}

func (r *cachedRepository) GetByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	var cached book.Book
	hit, err := r.cache.Get(ctx, bookKey(isbn), &cached)
	if err != nil {
		logger.Warn("cache get failed", err)
	} else if hit {
		logger.Debug("book cache hit " + isbn)
		return &cached, nil
	}

	b, err := r.inner.GetByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, bookKey(isbn), b, bookCacheTTL); err != nil {
		logger.Warn("cache set failed", err)
	}
	return b, nil
}

func (r *cachedRepository) GetAll(ctx context.Context) ([]*book.Book, error) {
	return r.inner.GetAll(ctx)
}

func (r *cachedRepository) SearchByTitle(ctx context.Context, term string) ([]*book.Book, error) {
	return r.inner.SearchByTitle(ctx, term)
}

func (r *cachedRepository) Update(ctx context.Context, b *book.Book) error {
	if err := r.inner.Update(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, b.ISBN)
	return nil
}

func (r *cachedRepository) Delete(ctx context.Context, isbn string) error {
	if err := r.inner.Delete(ctx, isbn); err != nil {
		return err
	}
	r.invalidate(ctx, isbn)
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context, isbn string) {
	if err := r.cache.Delete(ctx, bookKey(isbn)); err != nil {
		logger.Warn("cache invalidation failed", err)
	}
}
