package http

import (
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/i18n"
	"github.com/guttosm/book-pricing-service/internal/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// UnmarshalFromReader unmarshals JSON from an io.Reader into the provided type.
func UnmarshalFromReader[T any](reader io.Reader) (*T, error) {
	var v T
	if err := json.NewDecoder(reader).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// UnmarshalFromBytes unmarshals JSON bytes into the provided type.
func UnmarshalFromBytes[T any](data []byte) (*T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// ResponseBuilder writes the standard success and error envelopes.
// Envelopes come from a sync.Pool; gin serializes synchronously, so they are
// returned to the pool as soon as the body is written.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a successful response with the given data and translated message.
// An empty messageKey omits the message.
func (b *ResponseBuilder) Success(statusCode int, messageKey string, data interface{}) {
	resp := getSuccessResponse()
	defer putSuccessResponse(resp)

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()
	if messageKey != "" {
		resp.Message = i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	}

	b.c.JSON(statusCode, resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(messageKey string, data interface{}) {
	b.Success(http.StatusOK, messageKey, data)
}

// Error sends an error response with the given status code and message key.
// err, when not nil, is attached to the context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c)), nil, err)
}

// ValidationError sends a 400 response naming the offending field.
func (b *ResponseBuilder) ValidationError(verr *dto.ValidationError) {
	message := i18n.GetTranslator().Translate(verr.Key, i18n.GetLocale(b.c))
	b.abort(http.StatusBadRequest, message, map[string]string{verr.Field: message}, nil)
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	defer putErrorResponse(resp)

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.TraceID = middleware.GetTraceID(b.c)
	resp.Timestamp = time.Now().UTC()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
}
