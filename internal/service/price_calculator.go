// Package service contains the business logic for the book pricing service.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/guttosm/book-pricing-service/internal/domain/model"
	"github.com/guttosm/book-pricing-service/internal/metrics"
	"github.com/guttosm/book-pricing-service/internal/service/cache"
)

// ErrInvariant reports a cart state the discount engine cannot price.
// It is only ever raised through panic.
var ErrInvariant = errors.New("pricing invariant violated")

// discountFactors is indexed by group size, the number of distinct titles in a group.
var discountFactors = [model.MaxDistinctTitles + 1]float64{0, 1.00, 0.95, 0.90, 0.80, 0.75}

// DiscountFactor returns the multiplier applied to a group of size distinct titles.
func DiscountFactor(size int) float64 {
	if size < 1 || size > model.MaxDistinctTitles {
		panic(fmt.Errorf("%w: no discount for a group of %d titles", ErrInvariant, size))
	}
	return discountFactors[size]
}

// GroupPrice returns the price of one group of size distinct titles.
func GroupPrice(size int) float64 {
	return model.UnitPrice * float64(size) * DiscountFactor(size)
}

// CalculatePrice returns the discounted price of cart.
//
// Copies are repeatedly peeled off as one group made of every title still
// present, each group charged at GroupPrice. Once a single title remains its
// copies are charged at the unit price. The cart is not modified.
//
// CalculatePrice panics with ErrInvariant if the cart holds more distinct
// titles than the discount table covers.
func CalculatePrice(cart *model.Cart) float64 {
	if cart == nil {
		return 0
	}
	return peel(cart.Counts(), func(int, int) {})
}

// peel consumes counts and returns the total price, calling visit once per
// charge with the group size and how many copies of the group were charged.
func peel(counts []int, visit func(size, quantity int)) float64 {
	remaining := compact(counts)
	total := 0.0

	for {
		distinct := len(remaining)
		switch {
		case distinct == 0:
			return total
		case distinct == 1:
			total += model.UnitPrice * float64(remaining[0])
			visit(1, remaining[0])
			return total
		case distinct > model.MaxDistinctTitles:
			panic(fmt.Errorf("%w: %d distinct titles, at most %d supported",
				ErrInvariant, distinct, model.MaxDistinctTitles))
		}

		total += GroupPrice(distinct)
		visit(distinct, 1)
		remaining = decrement(remaining)
	}
}

// compact drops zero counts in place.
func compact(counts []int) []int {
	out := counts[:0]
	for _, n := range counts {
		if n < 0 {
			panic(fmt.Errorf("%w: negative copy count %d", ErrInvariant, n))
		}
		if n > 0 {
			out = append(out, n)
		}
	}
	return out
}

// decrement takes one copy of every title and drops exhausted titles.
func decrement(counts []int) []int {
	for i := range counts {
		if counts[i] <= 0 {
			panic(fmt.Errorf("%w: title with %d copies in a group", ErrInvariant, counts[i]))
		}
		counts[i]--
	}
	return compact(counts)
}

// PriceCalculator defines the pricing operations exposed to handlers.
type PriceCalculator interface {
	Calculate(ctx context.Context, cart *model.Cart) model.PriceQuote
	CalculateTitles(ctx context.Context, titles []string) model.PriceQuote
	DiscountTable() []model.BookGroup
	// InvalidateCache drops all cached quotes
	InvalidateCache(ctx context.Context)
}

// Option configures a PriceCalculatorService.
type Option func(*PriceCalculatorService)

// PriceCalculatorService implements PriceCalculator on top of CalculatePrice's
// greedy peel, optionally caching quotes by cart signature.
type PriceCalculatorService struct {
	cache cache.Cache
}

// NewPriceCalculatorService creates a new PriceCalculatorService with the given options.
func NewPriceCalculatorService(opts ...Option) *PriceCalculatorService {
	s := &PriceCalculatorService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithCache enables in-process quote caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PriceCalculatorService) {
		if capacity > 0 {
			s.cache = NewLRUCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PriceCalculatorService) {
		s.cache = c
	}
}

// Calculate prices cart and returns the full breakdown.
// Carts with the same signature share a cached breakdown; the cart lines and
// totals of the returned quote always describe cart itself.
func (s *PriceCalculatorService) Calculate(ctx context.Context, cart *model.Cart) model.PriceQuote {
	ctx, span := otel.Tracer("service.PriceCalculator").Start(ctx, "PriceCalculator.Calculate")
	defer span.End()

	if cart == nil || cart.Len() == 0 {
		return model.EmptyQuote()
	}

	start := time.Now()
	key := cart.Signature()
	source := "computed"

	quote, ok := s.lookup(ctx, key)
	if ok {
		source = "cache"
	} else {
		quote = buildQuote(cart.Counts())
		if s.cache != nil {
			s.cache.Set(ctx, key, quote)
		}
	}

	quote.Lines = cart.Lines()
	quote.TotalBooks = cart.TotalCopies()
	quote.DistinctTitles = cart.Len()

	metrics.RecordPriceCalculation(time.Since(start), quote.TotalBooks, source)
	span.SetAttributes(
		attribute.String("cart.signature", key),
		attribute.Int("cart.books", quote.TotalBooks),
		attribute.Float64("quote.total", quote.Total),
		attribute.Bool("cache.hit", ok),
	)

	return quote
}

// CalculateTitles builds a cart by adding one copy per title, in order, and prices it.
func (s *PriceCalculatorService) CalculateTitles(ctx context.Context, titles []string) model.PriceQuote {
	cart := model.NewCart()
	for _, title := range titles {
		cart.Add(model.NewBook(title))
	}
	return s.Calculate(ctx, cart)
}

// DiscountTable lists the price of a single group for every supported size.
func (s *PriceCalculatorService) DiscountTable() []model.BookGroup {
	table := make([]model.BookGroup, 0, model.MaxDistinctTitles)
	for size := 1; size <= model.MaxDistinctTitles; size++ {
		table = append(table, newGroup(size, 1))
	}
	return table
}

// InvalidateCache clears the quote cache.
func (s *PriceCalculatorService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Clear(ctx)
	}
}

func (s *PriceCalculatorService) lookup(ctx context.Context, key string) (model.PriceQuote, bool) {
	if s.cache == nil {
		return model.PriceQuote{}, false
	}
	return s.cache.Get(ctx, key)
}

// buildQuote runs the peel over counts and records every charge.
// Consecutive charges of the same size are merged into one row.
func buildQuote(counts []int) model.PriceQuote {
	copies := 0
	for _, n := range counts {
		copies += n
	}

	quote := model.EmptyQuote()
	total := peel(counts, func(size, quantity int) {
		if n := len(quote.Groups); n > 0 && quote.Groups[n-1].Size == size {
			quote.Groups[n-1].Quantity += quantity
			return
		}
		quote.Groups = append(quote.Groups, newGroup(size, quantity))
	})

	fullPrice := model.UnitPrice * float64(copies)
	quote.FullPrice = model.RoundCents(fullPrice)
	quote.Total = model.RoundCents(total)
	quote.Savings = model.RoundCents(fullPrice - total)
	return quote
}

func newGroup(size, quantity int) model.BookGroup {
	return model.BookGroup{
		Size:     size,
		Quantity: quantity,
		Discount: model.RoundCents(1 - DiscountFactor(size)),
		Price:    model.RoundCents(GroupPrice(size)),
	}
}
