// Package model defines the core domain entities for the book pricing service.
package model

const (
	// UnitPrice is the price of a single copy of any title in the series.
	UnitPrice = 8.0
	// MaxDistinctTitles is the largest set size covered by the discount table.
	MaxDistinctTitles = 5
)

// Book is a title of the series sold at the fixed unit price.
//
// @Description A book title and its unit price
type Book struct {
	// Title identifies the book within the series
	Title string `json:"title" example:"I"`
	// Price is the unit price of one copy
	Price float64 `json:"price" example:"8"`
}

// NewBook returns the book with the given title at the fixed unit price.
func NewBook(title string) Book {
	return Book{
		Title: title,
		Price: UnitPrice,
	}
}

// Equal reports whether two books share both title and price.
func (b Book) Equal(other Book) bool {
	return b.Title == other.Title && b.Price == other.Price
}
