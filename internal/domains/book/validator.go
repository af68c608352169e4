package book

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var isbnPattern = regexp.MustCompile(`^[0-9]{13}$`)

// Validator checks that a book satisfies the catalog's field rules.
// It inspects shape only; the checksum lives in the isbn package.
type Validator interface {
	Validate(b *Book) error
}

type validator struct{}

func NewValidator() Validator {
	return &validator{}
}

// Validate evaluates every field rule and reports all failures at
// once, in field declaration order.
func (v *validator) Validate(b *Book) error {
	checks := []struct {
		field string
		value interface{}
		rules []validation.Rule
	}{
		{"isbn", b.ISBN, []validation.Rule{
			// Required first: Match skips empty strings.
			validation.Required.Error("ISBN should contain 13 digits"),
			validation.Match(isbnPattern).Error("ISBN should contain 13 digits"),
		}},
		{"title", strings.TrimSpace(b.Title), []validation.Rule{
			validation.Required.Error("Title is required"),
		}},
		{"author", strings.TrimSpace(b.Author), []validation.Rule{
			validation.Required.Error("Author is required"),
		}},
		{"shortDescription", strings.TrimSpace(b.ShortDescription), []validation.Rule{
			validation.Required.Error("ShortDescription is required"),
		}},
		{"pageCount", b.PageCount, []validation.Rule{
			// Required catches zero, which Min alone would skip as an
			// empty value.
			validation.Required.Error("PageCount is required"),
			validation.Min(1).Error("PageCount is required"),
		}},
	}

	var violations []Violation
	for _, check := range checks {
		if err := validation.Validate(check.value, check.rules...); err != nil {
			violations = append(violations, Violation{
				Field:   check.field,
				Message: err.Error(),
			})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
