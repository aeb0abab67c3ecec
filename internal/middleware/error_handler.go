package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the gin context
// and writes a 500 response if the handler did not write one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("errors", len(c.Errors)).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID).
				WithTraceID(GetTraceID(c)))
		}
	}
}
