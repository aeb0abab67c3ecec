package http

import (
	"errors"
	"reflect"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding rules to gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("maxdistinct", maxDistinct)
	})
}

// maxDistinct reports whether a string slice holds at most param different values.
func maxDistinct(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	seen := make(map[string]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		item := field.Index(i)
		if item.Kind() != reflect.String {
			return false
		}
		seen[item.String()] = struct{}{}
		if len(seen) > limit {
			return false
		}
	}
	return true
}

// quoteValidationError maps a binding failure of dto.QuoteRequest to its
// validation error, or nil when err is not a field validation failure.
func quoteValidationError(err error) *dto.ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}

	fe := verrs[0]
	if fe.Field() != "Books" {
		return dto.ErrInvalidTitle
	}
	switch fe.Tag() {
	case "maxdistinct":
		return dto.ErrTooManyTitles
	case "required", "min":
		return dto.ErrNoBooks
	default:
		return dto.ErrInvalidTitle
	}
}
