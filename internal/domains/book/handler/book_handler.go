package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domains/book"
	"library-api/internal/shared/response"
	"library-api/pkg/logger"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /books.
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "BOOK_001", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// GetByISBN handles GET /books/:isbn.
func (h *BookHandler) GetByISBN(c *gin.Context) {
	b, err := h.service.GetByISBN(c.Request.Context(), c.Param("isbn"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b)
}

// List handles GET /books, with an optional searchTerm query filter.
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// Update handles PUT /books/:isbn.
func (h *BookHandler) Update(c *gin.Context) {
	var req book.UpdateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "BOOK_001", "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("isbn"), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /books/:isbn.
func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("isbn")); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErr *book.ValidationError
	if errors.As(err, &vErr) {
		response.ErrorWithDetails(c, http.StatusBadRequest,
			"BOOK_002", "Validation failed", vErr.Violations)
		return
	}

	status := book.GetHTTPStatusCode(err)
	switch status {
	case http.StatusNotFound:
		response.NotFound(c, "BOOK_003", "Book not found")
	case http.StatusConflict:
		response.Conflict(c, "BOOK_004", book.ErrISBNAlreadyExists.Error())
	default:
		logger.Error("book handler error", err)
		response.InternalServerError(c, "SYS_001", "Internal server error")
	}
}
