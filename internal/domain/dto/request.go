// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"unicode/utf8"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/i18n"
)

// MaxTitleLength bounds the length of a single title, in characters.
const MaxTitleLength = 200

// QuoteRequest is the body of POST /api/quote.
//
// Every entry of Books is one copy of the named title; repeating a title adds
// another copy. At most model.MaxDistinctTitles different titles are accepted.
//
// @Description Books to price, one entry per copy
// @Example {"books": ["I", "II", "III", "IV", "V", "I", "II", "III"]}
type QuoteRequest struct {
	Books []string `json:"books" binding:"required,min=1,maxdistinct=5,dive,required,max=200" example:"I,II,III,IV,V,I,II,III"`
} // @name QuoteRequest

// ValidationError is a request validation failure with the i18n key of its message.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoBooks is returned for a missing or empty book list.
	ErrNoBooks = &ValidationError{Field: "books", Message: "at least one book is required", Key: i18n.ErrKeyValidationBooks}
	// ErrInvalidTitle is returned for an empty or overlong title.
	ErrInvalidTitle = &ValidationError{Field: "books", Message: "titles must be between 1 and 200 characters", Key: i18n.ErrKeyValidationTitle}
	// ErrTooManyTitles is returned when the cart holds more titles than the discount table.
	ErrTooManyTitles = &ValidationError{Field: "books", Message: "at most 5 different titles can be priced together", Key: i18n.ErrKeyValidationDistinctTitles}
)

// Validate checks the request independently of the binding tags.
func (r *QuoteRequest) Validate() error {
	if len(r.Books) == 0 {
		return ErrNoBooks
	}

	for _, title := range r.Books {
		if title == "" || utf8.RuneCountInString(title) > MaxTitleLength {
			return ErrInvalidTitle
		}
	}

	if DistinctTitles(r.Books) > model.MaxDistinctTitles {
		return ErrTooManyTitles
	}
	return nil
}

// DistinctTitles counts the different titles in books.
func DistinctTitles(books []string) int {
	seen := make(map[string]struct{}, len(books))
	for _, title := range books {
		seen[title] = struct{}{}
	}
	return len(seen)
}

// AuditLogQuery holds the query parameters of GET /api/audit-logs.
type AuditLogQuery struct {
	RequestID  string `form:"request_id"`
	Level      string `form:"level" binding:"omitempty,oneof=debug info warn error"`
	ActionType string `form:"action_type" binding:"omitempty,oneof=quote quote_rejected http_request"`
	Subject    string `form:"subject"`
	Limit      int    `form:"limit,default=50" binding:"min=1,max=500"`
	Skip       int    `form:"skip" binding:"min=0"`
} // @name AuditLogQuery

// Options converts the query into logging service options.
func (q AuditLogQuery) Options() model.LogQueryOptions {
	return model.LogQueryOptions{
		RequestID:  q.RequestID,
		Level:      q.Level,
		ActionType: q.ActionType,
		Subject:    q.Subject,
		Limit:      q.Limit,
		Skip:       q.Skip,
	}
}
