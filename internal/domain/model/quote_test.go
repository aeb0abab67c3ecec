package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookGroup(t *testing.T) {
	tests := []struct {
		name             string
		group            BookGroup
		expectedBooks    int
		expectedSubtotal float64
	}{
		{
			name:             "single set of five",
			group:            BookGroup{Size: 5, Quantity: 1, Discount: 0.25, Price: 30},
			expectedBooks:    5,
			expectedSubtotal: 30,
		},
		{
			name:             "two sets of two",
			group:            BookGroup{Size: 2, Quantity: 2, Discount: 0.05, Price: 15.2},
			expectedBooks:    4,
			expectedSubtotal: 30.4,
		},
		{
			name:             "loose copies",
			group:            BookGroup{Size: 1, Quantity: 4, Price: 8},
			expectedBooks:    4,
			expectedSubtotal: 32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedBooks, tt.group.Books())
			assert.InDelta(t, tt.expectedSubtotal, tt.group.Subtotal(), 1e-9)
		})
	}
}

func TestEmptyQuote(t *testing.T) {
	q := EmptyQuote()

	assert.Zero(t, q.TotalBooks)
	assert.Zero(t, q.Total)
	assert.NotNil(t, q.Lines)
	assert.NotNil(t, q.Groups)
	assert.Empty(t, q.Groups)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 21.6, RoundCents(8*3*0.9))
	assert.Equal(t, 105.2, RoundCents(30+21.6+21.6+32))
	assert.Equal(t, 0.0, RoundCents(0))
}
