package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/auth"
	"library-api/internal/domains/book"
	"library-api/internal/domains/book/repository"
	"library-api/internal/domains/book/service"
	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
)

const apiKey = "VerySecret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(service.NewBookService(
		repository.NewMemoryRepository(), book.NewValidator()))

	router := gin.New()
	books := router.Group("/api/v1/books")
	books.Use(middleware.APIKey(auth.NewCredentialChecker(apiKey)))
	{
		books.POST("", h.Create)
		books.GET("", h.List)
		books.GET("/:isbn", h.GetByISBN)
		books.PUT("/:isbn", h.Update)
		books.DELETE("/:isbn", h.Delete)
	}
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}, key string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set("Authorization", key)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeBook(t *testing.T, w *httptest.ResponseRecorder) book.Book {
	t.Helper()
	var resp struct {
		Success bool      `json:"success"`
		Data    book.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func testBookBody() map[string]interface{} {
	return map[string]interface{}{
		"isbn":             "9780306406157",
		"title":            "The dirty Coder",
		"author":           "Rob C. Martini",
		"shortDescription": "Confessions of a dirty coder.",
		"pageCount":        220,
	}
}

func TestBooksRequireAPIKey(t *testing.T) {
	router := newTestRouter()

	for _, key := range []string{"", "WrongKey", "Bearer " + apiKey} {
		w := do(t, router, http.MethodGet, "/api/v1/books", nil, key)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		resp := decode(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "Invalid API Key", resp.Error.Message)
	}
}

func TestCreateBook(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBook(t, w)
	assert.Equal(t, "9780306406157", created.ISBN)
	assert.Equal(t, "The dirty Coder", created.Title)
}

func TestCreateBookGeneratesISBN(t *testing.T) {
	router := newTestRouter()

	body := testBookBody()
	delete(body, "isbn")

	w := do(t, router, http.MethodPost, "/api/v1/books", body, apiKey)

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBook(t, w)
	assert.Len(t, created.ISBN, 13)
}

func TestCreateBookValidationFailure(t *testing.T) {
	router := newTestRouter()

	body := testBookBody()
	body["isbn"] = "123"
	body["title"] = ""
	body["pageCount"] = 0

	w := do(t, router, http.MethodPost, "/api/v1/books", body, apiKey)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Details []book.Violation `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	want := []book.Violation{
		{Field: "isbn", Message: "ISBN should contain 13 digits"},
		{Field: "title", Message: "Title is required"},
		{Field: "pageCount", Message: "PageCount is required"},
	}
	assert.Equal(t, want, resp.Error.Details)
}

func TestCreateBookDuplicateISBN(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)
	require.Equal(t, http.StatusCreated, w.Code)

	second := testBookBody()
	second["title"] = "Impostor"

	w = do(t, router, http.MethodPost, "/api/v1/books", second, apiKey)
	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "A book with this ISBN-13 already exists.", resp.Error.Message)

	// The rejected create must not touch the stored record.
	w = do(t, router, http.MethodGet, "/api/v1/books/9780306406157", nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The dirty Coder", decodeBook(t, w).Title)
}

func TestGetBookByISBN(t *testing.T) {
	router := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	w := do(t, router, http.MethodGet, "/api/v1/books/9780306406157", nil, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The dirty Coder", decodeBook(t, w).Title)
}

func TestGetBookNotFound(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodGet, "/api/v1/books/9780306406157", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAndSearchBooks(t *testing.T) {
	router := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	other := testBookBody()
	other["isbn"] = "9781566199094"
	other["title"] = "Clean Architecture"
	do(t, router, http.MethodPost, "/api/v1/books", other, apiKey)

	var resp struct {
		Data []book.Book `json:"data"`
	}

	w := do(t, router, http.MethodGet, "/api/v1/books", nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	w = do(t, router, http.MethodGet, "/api/v1/books?searchTerm=oder", nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "The dirty Coder", resp.Data[0].Title)

	w = do(t, router, http.MethodGet, "/api/v1/books?searchTerm=%20%20", nil, apiKey)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestUpdateBook(t *testing.T) {
	router := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	body := testBookBody()
	delete(body, "isbn")
	body["pageCount"] = 250

	w := do(t, router, http.MethodPut, "/api/v1/books/9780306406157", body, apiKey)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 250, decodeBook(t, w).PageCount)
}

func TestUpdateBookValidationFailure(t *testing.T) {
	router := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	body := testBookBody()
	delete(body, "isbn")
	body["pageCount"] = 0

	w := do(t, router, http.MethodPut, "/api/v1/books/9780306406157", body, apiKey)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Details []book.Violation `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	want := []book.Violation{
		{Field: "pageCount", Message: "PageCount is required"},
	}
	assert.Equal(t, want, resp.Error.Details)
}

func TestUpdateBookNotFound(t *testing.T) {
	router := newTestRouter()

	body := testBookBody()
	delete(body, "isbn")

	w := do(t, router, http.MethodPut, "/api/v1/books/9780306406157", body, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBook(t *testing.T) {
	router := newTestRouter()
	do(t, router, http.MethodPost, "/api/v1/books", testBookBody(), apiKey)

	w := do(t, router, http.MethodDelete, "/api/v1/books/9780306406157", nil, apiKey)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = do(t, router, http.MethodGet, "/api/v1/books/9780306406157", nil, apiKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBookNotFound(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodDelete, "/api/v1/books/9780306406157", nil, apiKey)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
