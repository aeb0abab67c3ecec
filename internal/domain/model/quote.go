package model

import "math"

// BookGroup is one row of a price breakdown: Quantity groups of Size distinct
// titles, each charged Price.
//
// @Description Group of distinct titles charged together
// @Example {"size": 5, "quantity": 1, "discount": 0.25, "price": 30}
type BookGroup struct {
	// Size is the number of distinct titles in the group
	Size int `json:"size" example:"5"`
	// Quantity is how many times the group was charged
	Quantity int `json:"quantity" example:"1"`
	// Discount is the fraction taken off the full price of the group
	Discount float64 `json:"discount" example:"0.25"`
	// Price is the discounted price of a single group
	Price float64 `json:"price" example:"30"`
}

// Books returns the number of copies covered by the row.
func (g BookGroup) Books() int {
	return g.Size * g.Quantity
}

// Subtotal returns the price of all groups in the row.
func (g BookGroup) Subtotal() float64 {
	return g.Price * float64(g.Quantity)
}

// PriceQuote is the complete result of pricing a cart.
//
// @Description Price of a cart with its discount breakdown
type PriceQuote struct {
	// TotalBooks is the number of copies in the cart
	TotalBooks int `json:"total_books" example:"8"`
	// DistinctTitles is the number of different titles in the cart
	DistinctTitles int `json:"distinct_titles" example:"5"`
	// Lines echoes the cart in insertion order
	Lines []CartLine `json:"lines"`
	// Groups lists the discount groups, largest first
	Groups []BookGroup `json:"groups"`
	// FullPrice is the undiscounted price of all copies
	FullPrice float64 `json:"full_price" example:"64"`
	// Total is the price to pay, rounded to cents
	Total float64 `json:"total" example:"51.2"`
	// Savings is FullPrice minus Total
	Savings float64 `json:"savings" example:"12.8"`
}

// EmptyQuote returns the quote of an empty cart.
func EmptyQuote() PriceQuote {
	return PriceQuote{
		Lines:  []CartLine{},
		Groups: []BookGroup{},
	}
}

// RoundCents rounds v to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
