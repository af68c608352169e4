package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
)

func TestMemoryRepositoryRejectsDuplicateAdd(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, testBook()))

	// Two writers can both pass the service's existence check. The
	// storage layer itself must reject the second insert and keep the
	// first record untouched.
	second := testBook()
	second.Title = "Impostor"
	assert.ErrorIs(t, repo.Add(ctx, second), book.ErrISBNAlreadyExists)

	got, err := repo.GetByISBN(ctx, "9780306406157")
	require.NoError(t, err)
	assert.Equal(t, "The dirty Coder", got.Title)
}

func TestMemoryRepositoryConcurrentAddSingleWinner(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	const writers = 8
	errs := make(chan error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Add(ctx, testBook())
		}()
	}
	wg.Wait()
	close(errs)

	var created, rejected int
	for err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, book.ErrISBNAlreadyExists):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, writers-1, rejected)
}

func TestMemoryRepositoryUpdateAndDeleteUnknownISBN(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Update(ctx, testBook()), book.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "9780306406157"), book.ErrBookNotFound)
}
