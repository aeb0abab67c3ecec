//go:build !integration

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/book-pricing-service/internal/domain/dto"
	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/mocks"
	"github.com/guttosm/book-pricing-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	handler := NewHandler(service.NewPriceCalculatorService())
	return NewRouter(handler, NewHealthHandler(), DefaultRouterConfig())
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockPriceCalculator) {
	mockCalc := mocks.NewMockPriceCalculator(t)
	handler := NewHandler(mockCalc)
	return NewRouter(handler, NewHealthHandler(), DefaultRouterConfig()), mockCalc
}

func postQuote(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeQuote(t *testing.T, w *httptest.ResponseRecorder) (dto.SuccessResponse, model.PriceQuote) {
	t.Helper()

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var quote model.PriceQuote
	require.NoError(t, json.Unmarshal(data, &quote))
	return resp, quote
}

func TestQuote(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedTotal  float64
		expectedBooks  int
		expectedGroups []model.BookGroup
	}{
		{
			name:           "single book",
			body:           `{"books": ["I"]}`,
			expectedTotal:  8,
			expectedBooks:  1,
			expectedGroups: []model.BookGroup{{Size: 1, Quantity: 1, Discount: 0, Price: 8}},
		},
		{
			name:           "two copies of one title get no discount",
			body:           `{"books": ["I", "I"]}`,
			expectedTotal:  16,
			expectedBooks:  2,
			expectedGroups: []model.BookGroup{{Size: 1, Quantity: 2, Discount: 0, Price: 8}},
		},
		{
			name:           "full series",
			body:           `{"books": ["I", "II", "III", "IV", "V"]}`,
			expectedTotal:  30,
			expectedBooks:  5,
			expectedGroups: []model.BookGroup{{Size: 5, Quantity: 1, Discount: 0.25, Price: 30}},
		},
		{
			name:          "greedy peel of two, two, two, one, one",
			body:          `{"books": ["I", "I", "II", "II", "III", "III", "IV", "V"]}`,
			expectedTotal: 51.6,
			expectedBooks: 8,
			expectedGroups: []model.BookGroup{
				{Size: 5, Quantity: 1, Discount: 0.25, Price: 30},
				{Size: 3, Quantity: 1, Discount: 0.1, Price: 21.6},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postQuote(router, tt.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			resp, quote := decodeQuote(t, w)
			assert.NotEmpty(t, resp.RequestID)
			assert.NotZero(t, resp.Timestamp)
			assert.Equal(t, "Cart priced successfully", resp.Message)
			assert.InDelta(t, tt.expectedTotal, quote.Total, 1e-9)
			assert.Equal(t, tt.expectedBooks, quote.TotalBooks)
			assert.Equal(t, tt.expectedGroups, quote.Groups)
		})
	}
}

func TestQuote_EchoesCartLinesInOrder(t *testing.T) {
	w := postQuote(setupRouter(), `{"books": ["III", "I", "III"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	_, quote := decodeQuote(t, w)
	require.Len(t, quote.Lines, 2)
	assert.Equal(t, "III", quote.Lines[0].Book.Title)
	assert.Equal(t, 2, quote.Lines[0].Count)
	assert.Equal(t, "I", quote.Lines[1].Book.Title)
	assert.Equal(t, 2, quote.DistinctTitles)
	assert.InDelta(t, 23.2, quote.Total, 1e-9)
}

func TestQuote_ValidationErrors(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name            string
		body            string
		language        string
		expectedMessage string
		expectedDetail  bool
	}{
		{
			name:            "missing books",
			body:            `{}`,
			expectedMessage: "books: at least one book is required",
			expectedDetail:  true,
		},
		{
			name:            "empty list",
			body:            `{"books": []}`,
			expectedMessage: "books: at least one book is required",
			expectedDetail:  true,
		},
		{
			name:            "empty title",
			body:            `{"books": ["I", ""]}`,
			expectedMessage: "books: titles must be between 1 and 200 characters",
			expectedDetail:  true,
		},
		{
			name:            "overlong title",
			body:            `{"books": ["` + strings.Repeat("x", dto.MaxTitleLength+1) + `"]}`,
			expectedMessage: "books: titles must be between 1 and 200 characters",
			expectedDetail:  true,
		},
		{
			name:            "six different titles",
			body:            `{"books": ["I", "II", "III", "IV", "V", "VI"]}`,
			expectedMessage: "books: at most 5 different titles can be priced together",
			expectedDetail:  true,
		},
		{
			name:            "translated message",
			body:            `{"books": []}`,
			language:        "nl",
			expectedMessage: "books: minstens één boek is vereist",
			expectedDetail:  true,
		},
		{
			name:            "malformed json",
			body:            `{"books": `,
			expectedMessage: "Invalid request body",
		},
		{
			name:            "wrong type",
			body:            `{"books": 5}`,
			expectedMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/quote", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.NotEmpty(t, resp.RequestID)
			if tt.expectedDetail {
				assert.Equal(t, tt.expectedMessage, resp.Details["books"])
			} else {
				assert.Empty(t, resp.Details)
			}
		})
	}
}

func TestQuote_RepeatedTitlesCountOnceTowardsLimit(t *testing.T) {
	body := `{"books": ["I", "II", "III", "IV", "V", "I", "II", "III", "IV", "V", "I"]}`
	w := postQuote(setupRouter(), body)

	require.Equal(t, http.StatusOK, w.Code)
	_, quote := decodeQuote(t, w)
	assert.InDelta(t, 68, quote.Total, 1e-9)
}

func TestQuote_UsesCalculator(t *testing.T) {
	router, mockCalc := setupRouterWithMock(t)

	expected := model.PriceQuote{
		TotalBooks:     2,
		DistinctTitles: 2,
		Lines:          []model.CartLine{{Book: model.NewBook("I"), Count: 1}, {Book: model.NewBook("II"), Count: 1}},
		Groups:         []model.BookGroup{{Size: 2, Quantity: 1, Discount: 0.05, Price: 15.2}},
		FullPrice:      16,
		Total:          15.2,
		Savings:        0.8,
	}
	mockCalc.On("CalculateTitles", mock.Anything, []string{"I", "II"}).Return(expected).Once()

	w := postQuote(router, `{"books": ["I", "II"]}`)

	require.Equal(t, http.StatusOK, w.Code)
	_, quote := decodeQuote(t, w)
	assert.Equal(t, expected, quote)
}

func TestQuote_RejectedCartDoesNotReachCalculator(t *testing.T) {
	router, _ := setupRouterWithMock(t)

	w := postQuote(router, `{"books": ["I", "II", "III", "IV", "V", "VI"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscounts(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/discounts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Discount table", resp.Message)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var table []model.BookGroup
	require.NoError(t, json.Unmarshal(data, &table))

	assert.Equal(t, []model.BookGroup{
		{Size: 1, Quantity: 1, Discount: 0, Price: 8},
		{Size: 2, Quantity: 1, Discount: 0.05, Price: 15.2},
		{Size: 3, Quantity: 1, Discount: 0.1, Price: 21.6},
		{Size: 4, Quantity: 1, Discount: 0.2, Price: 25.6},
		{Size: 5, Quantity: 1, Discount: 0.25, Price: 30},
	}, table)
}
