package cart

import "github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"

// Line is one cart entry: a product and how many of it are being bought.
// Quantity is always at least 1; a line whose quantity would drop to zero
// is removed instead.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-progress order for the active session. Lines keep the
// order the products were first added in, one line per product id.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product in the cart, incrementing the existing
// line if the product is already there. Stock is not checked here;
// overselling is reconciled when the sale is committed to inventory.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove takes one unit of the product out of the cart, deleting the line
// when its last unit goes. Removing an id that is not in the cart is a
// no-op.
func (c *Cart) Remove(id string) {
	for i := range c.lines {
		if c.lines[i].Product.ID != id {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
		} else {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		}
		return
	}
}

// Total recomputes the running total from the current lines.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear resets the cart; used after a sale is finalized and on logout.
func (c *Cart) Clear() {
	c.lines = nil
}
