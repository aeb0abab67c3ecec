// Package i18n translates user facing messages for the book pricing service.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale returns the first supported language of the Accept-Language
// header, or DefaultLocale.
func GetLocale(c *gin.Context) string {
	return ParseLocale(c.GetHeader(AcceptLanguageHeader))
}

// ParseLocale picks the first supported base language from an
// Accept-Language value such as "fr-CA,pt;q=0.8".
func ParseLocale(acceptLang string) string {
	if acceptLang == "" {
		return DefaultLocale
	}

	messages := GetTranslator().messages
	for _, part := range strings.Split(acceptLang, ",") {
		lang := strings.TrimSpace(strings.Split(part, ";")[0])
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		lang = strings.ToLower(lang)
		if _, ok := messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// SupportedLocales lists the locales with a message table.
func SupportedLocales() []string {
	return []string{"en", "pt", "nl"}
}

func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":            "Invalid request",
			"error.invalid_request_body":       "Invalid request body",
			"error.internal_error":             "An unexpected error occurred",
			"error.unauthorized":               "Unauthorized",
			"error.api_key_required":           "API key is required",
			"error.invalid_api_key":            "Invalid API key",
			"error.invalid_token":              "Invalid or expired token",
			"error.token_required":             "Authentication token is required",
			"error.not_found":                  "Not found",
			"error.rate_limit_exceeded":        "Too many requests, please try again later",
			"error.conflict":                   "A request with this idempotency key is already in progress",
			"error.timeout":                    "The request took too long to complete",
			"error.service_unavailable":        "Service temporarily unavailable",
			"error.validation.books":           "books: at least one book is required",
			"error.validation.title":           "books: titles must be between 1 and 200 characters",
			"error.validation.distinct_titles": "books: at most 5 different titles can be priced together",
			"error.validation.query":           "Invalid query parameters",

			"success.quote_calculated": "Cart priced successfully",
			"success.discount_table":   "Discount table",
			"success.audit_logs":       "Audit log entries",
		},
		"pt": {
			"error.invalid_request":            "Requisição inválida",
			"error.invalid_request_body":       "Corpo da requisição inválido",
			"error.internal_error":             "Ocorreu um erro inesperado",
			"error.unauthorized":               "Não autorizado",
			"error.api_key_required":           "Chave de API é obrigatória",
			"error.invalid_api_key":            "Chave de API inválida",
			"error.invalid_token":              "Token inválido ou expirado",
			"error.token_required":             "Token de autenticação é obrigatório",
			"error.not_found":                  "Não encontrado",
			"error.rate_limit_exceeded":        "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                   "Uma requisição com esta chave de idempotência já está em andamento",
			"error.timeout":                    "A requisição demorou demais para ser concluída",
			"error.service_unavailable":        "Serviço temporariamente indisponível",
			"error.validation.books":           "books: pelo menos um livro é obrigatório",
			"error.validation.title":           "books: os títulos devem ter entre 1 e 200 caracteres",
			"error.validation.distinct_titles": "books: no máximo 5 títulos diferentes podem ser precificados juntos",
			"error.validation.query":           "Parâmetros de consulta inválidos",

			"success.quote_calculated": "Carrinho precificado com sucesso",
			"success.discount_table":   "Tabela de descontos",
			"success.audit_logs":       "Registros de auditoria",
		},
		"nl": {
			"error.invalid_request":            "Ongeldig verzoek",
			"error.invalid_request_body":       "Ongeldige aanvraag body",
			"error.internal_error":             "Er is een onverwachte fout opgetreden",
			"error.unauthorized":               "Niet geautoriseerd",
			"error.api_key_required":           "API-sleutel is vereist",
			"error.invalid_api_key":            "Ongeldige API-sleutel",
			"error.invalid_token":              "Ongeldig of verlopen token",
			"error.token_required":             "Authenticatietoken is vereist",
			"error.not_found":                  "Niet gevonden",
			"error.rate_limit_exceeded":        "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                   "Er loopt al een verzoek met deze idempotentiesleutel",
			"error.timeout":                    "Het verzoek duurde te lang",
			"error.service_unavailable":        "Dienst tijdelijk niet beschikbaar",
			"error.validation.books":           "books: minstens één boek is vereist",
			"error.validation.title":           "books: titels moeten tussen 1 en 200 tekens lang zijn",
			"error.validation.distinct_titles": "books: maximaal 5 verschillende titels kunnen samen geprijsd worden",
			"error.validation.query":           "Ongeldige queryparameters",

			"success.quote_calculated": "Winkelwagen succesvol geprijsd",
			"success.discount_table":   "Kortingstabel",
			"success.audit_logs":       "Auditlogboek",
		},
	}
}
