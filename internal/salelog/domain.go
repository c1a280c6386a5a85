package salelog

import (
	"time"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
)

// Item is the snapshot of one cart line at confirmation time.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Sale represents one finalized order. Sales are immutable once recorded.
type Sale struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Items []Item    `json:"items"`
	Total float64   `json:"total"`
}

// Summary carries the aggregates the admin view derives on demand; it is
// never stored.
type Summary struct {
	Count   int     `json:"count"`
	Total   float64 `json:"total_amount"`
	Average float64 `json:"average"`
}

func snapshotLines(lines []cart.Line) []Item {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ID:       l.Product.ID,
			Name:     l.Product.Name,
			Price:    l.Product.Price,
			Quantity: l.Quantity,
		})
	}
	return items
}
