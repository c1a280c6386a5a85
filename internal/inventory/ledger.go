package inventory

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
)

// ErrNotFound is returned when a product id has no inventory entry.
var ErrNotFound = errors.New("inventory entry not found")

// Seeding bounds for a first run: stock in [10,59], capacity 50.
const (
	seedMinStock  = 10
	seedStockSpan = 50
	maxStock      = 50
)

// Entry tracks the stock on hand for one product.
type Entry struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MaxStock int    `json:"maxStock"`
}

// Level classifies how full this entry is, for the admin stock view.
func (e Entry) Level() string {
	switch {
	case e.Stock == 0:
		return "out"
	case e.Stock*2 <= e.MaxStock:
		return "low"
	default:
		return "ok"
	}
}

// Ledger is the persisted stock count per product. It is loaded once at
// startup and rewritten in full after every mutation; in-memory state only
// changes after the rewrite succeeds.
type Ledger struct {
	entries []Entry
	index   map[string]int
	store   Store
	logger  *zap.Logger
}

// Open loads the persisted ledger from the store, seeding one entry per
// catalog product on first run. An existing ledger is loaded verbatim and
// never reseeded, so stock counts survive across sessions.
func Open(store Store, products []catalog.Product, logger *zap.Logger) (*Ledger, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, ok, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if !ok {
		entries = seed(products)
		if err := store.Save(entries); err != nil {
			return nil, fmt.Errorf("persist seeded inventory: %w", err)
		}
		logger.Info("inventory seeded", zap.Int("products", len(entries)))
	}

	l := &Ledger{
		entries: entries,
		index:   make(map[string]int, len(entries)),
		store:   store,
		logger:  logger,
	}
	for i, e := range entries {
		l.index[e.ID] = i
	}
	return l, nil
}

func seed(products []catalog.Product) []Entry {
	entries := make([]Entry, 0, len(products))
	for _, p := range products {
		entries = append(entries, Entry{
			ID:       p.ID,
			Name:     p.Name,
			Stock:    rand.Intn(seedStockSpan) + seedMinStock,
			MaxStock: maxStock,
		})
	}
	return entries
}

// ApplySale decrements stock for every sold line, floored at zero.
// Overselling is not an error; it depletes the entry. Lines whose product
// has no inventory entry are skipped. Nothing changes in memory unless the
// rewritten document is persisted first.
func (l *Ledger) ApplySale(lines []cart.Line) error {
	updated := l.snapshot()
	for _, line := range lines {
		i, ok := l.index[line.Product.ID]
		if !ok {
			continue
		}
		updated[i].Stock -= line.Quantity
		if updated[i].Stock < 0 {
			updated[i].Stock = 0
		}
	}

	if err := l.store.Save(updated); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	l.entries = updated

	l.logger.Info("inventory updated for sale", zap.Int("lines", len(lines)))
	return nil
}

// Restock adds stock to an entry, capped at its MaxStock. Restocking a
// full entry is a safe no-op.
func (l *Ledger) Restock(id string, amount int) (Entry, error) {
	i, ok := l.index[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	if amount <= 0 || l.entries[i].Stock >= l.entries[i].MaxStock {
		return l.entries[i], nil
	}

	updated := l.snapshot()
	updated[i].Stock += amount
	if updated[i].Stock > updated[i].MaxStock {
		updated[i].Stock = updated[i].MaxStock
	}

	if err := l.store.Save(updated); err != nil {
		return Entry{}, fmt.Errorf("persist inventory: %w", err)
	}
	l.entries = updated

	l.logger.Info("item restocked",
		zap.String("product_id", id),
		zap.Int("amount", amount),
		zap.Int("stock", updated[i].Stock),
	)
	return updated[i], nil
}

// Get returns the entry for a product id.
func (l *Ledger) Get(id string) (Entry, bool) {
	i, ok := l.index[id]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

// Entries returns a copy of every ledger entry, in catalog order.
func (l *Ledger) Entries() []Entry {
	return l.snapshot()
}

// Snapshot captures the current entries so a failed multi-write commit can
// roll the ledger back.
func (l *Ledger) Snapshot() []Entry {
	return l.snapshot()
}

// Restore rewrites the ledger back to a previously captured snapshot.
func (l *Ledger) Restore(entries []Entry) error {
	if err := l.store.Save(entries); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	l.entries = entries
	l.index = make(map[string]int, len(entries))
	for i, e := range entries {
		l.index[e.ID] = i
	}
	return nil
}

func (l *Ledger) snapshot() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}
