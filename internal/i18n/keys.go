package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"

	// ErrKeyValidationBooks covers a missing or empty book list.
	ErrKeyValidationBooks = "error.validation.books"
	// ErrKeyValidationTitle covers empty or overlong titles.
	ErrKeyValidationTitle = "error.validation.title"
	// ErrKeyValidationDistinctTitles covers carts with more titles than the discount table.
	ErrKeyValidationDistinctTitles = "error.validation.distinct_titles"
	// ErrKeyValidationQuery covers malformed audit log query parameters.
	ErrKeyValidationQuery = "error.validation.query"
)

// Success message translation keys.
const (
	SuccessKeyQuoteCalculated = "success.quote_calculated"
	SuccessKeyDiscountTable   = "success.discount_table"
	SuccessKeyAuditLogs       = "success.audit_logs"
)
