package book

import "time"

// Book is the catalog entity, keyed by ISBN-13.
type Book struct {
	ISBN             string    `json:"isbn"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	ShortDescription string    `json:"shortDescription"`
	PageCount        int       `json:"pageCount"`
	ReleaseDate      time.Time `json:"releaseDate"`
}

// CreateBookReq is the POST /books payload. ISBN may be omitted, in
// which case the service assigns a generated one.
type CreateBookReq struct {
	ISBN             string    `json:"isbn"`
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	ShortDescription string    `json:"shortDescription"`
	PageCount        int       `json:"pageCount"`
	ReleaseDate      time.Time `json:"releaseDate"`
}

// UpdateBookReq is the PUT /books/:isbn payload. The ISBN comes from
// the path, never the body.
type UpdateBookReq struct {
	Title            string    `json:"title"`
	Author           string    `json:"author"`
	ShortDescription string    `json:"shortDescription"`
	PageCount        int       `json:"pageCount"`
	ReleaseDate      time.Time `json:"releaseDate"`
}

func (r *CreateBookReq) ToBook() *Book {
	return &Book{
		ISBN:             r.ISBN,
		Title:            r.Title,
		Author:           r.Author,
		ShortDescription: r.ShortDescription,
		PageCount:        r.PageCount,
		ReleaseDate:      r.ReleaseDate,
	}
}

func (r *UpdateBookReq) ToBook(isbn string) *Book {
	return &Book{
		ISBN:             isbn,
		Title:            r.Title,
		Author:           r.Author,
		ShortDescription: r.ShortDescription,
		PageCount:        r.PageCount,
		ReleaseDate:      r.ReleaseDate,
	}
}
