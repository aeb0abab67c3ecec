// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
)

type MockPriceCalculator struct {
	mock.Mock
}

// NewMockPriceCalculator creates a MockPriceCalculator that asserts its
// expectations when the test ends.
func NewMockPriceCalculator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPriceCalculator {
	m := &MockPriceCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPriceCalculator) Calculate(ctx context.Context, cart *model.Cart) model.PriceQuote {
	args := m.Called(ctx, cart)
	return args.Get(0).(model.PriceQuote)
}

func (m *MockPriceCalculator) CalculateTitles(ctx context.Context, titles []string) model.PriceQuote {
	args := m.Called(ctx, titles)
	return args.Get(0).(model.PriceQuote)
}

func (m *MockPriceCalculator) DiscountTable() []model.BookGroup {
	args := m.Called()
	return args.Get(0).([]model.BookGroup)
}

func (m *MockPriceCalculator) InvalidateCache(ctx context.Context) {
	m.Called(ctx)
}
