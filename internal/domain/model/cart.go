package model

import (
	"sort"
	"strconv"
	"strings"
)

// CartLine holds one title of the cart together with the number of copies added.
//
// @Description Cart line with the number of copies of one title
type CartLine struct {
	Book  Book `json:"book"`
	Count int  `json:"count" example:"2"`
}

// Cart is an ordered collection of cart lines, unique by book.
// Lines keep the order in which their title was first added.
//
// A Cart is meant to be owned by a single goroutine; it performs no locking.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts one copy of book in the cart. An existing line for an equal book
// is incremented, otherwise a new line with a count of one is appended.
func (c *Cart) Add(book Book) {
	for i := range c.lines {
		if c.lines[i].Book.Equal(book) {
			c.lines[i].Count++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Book: book, Count: 1})
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of distinct books in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// TotalCopies returns the number of copies added to the cart.
func (c *Cart) TotalCopies() int {
	total := 0
	for _, line := range c.lines {
		total += line.Count
	}
	return total
}

// Counts returns a working copy of the per-line copy counts, in line order.
// Callers may consume the returned slice freely.
func (c *Cart) Counts() []int {
	counts := make([]int, len(c.lines))
	for i, line := range c.lines {
		counts[i] = line.Count
	}
	return counts
}

// Signature identifies the price class of the cart: its copy counts sorted in
// descending order, e.g. "3,2,1". Carts with equal signatures cost the same.
func (c *Cart) Signature() string {
	counts := c.Counts()
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	var b strings.Builder
	for i, n := range counts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
