package salelog

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
)

// Log is the append-only history of finalized sales. Past entries are
// never edited or removed; every append rewrites the persisted document.
type Log struct {
	sales  []Sale
	store  Store
	logger *zap.Logger
}

// Open loads the persisted sale log; an absent document yields an empty
// log.
func Open(store Store, logger *zap.Logger) (*Log, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sales, _, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load sale log: %w", err)
	}
	return &Log{sales: sales, store: store, logger: logger}, nil
}

// Record appends a new sale with a fresh id and the current time, then
// persists the full log. If the persist fails the append is undone, so the
// log never holds a sale that was not made durable.
func (l *Log) Record(lines []cart.Line, total float64) (Sale, error) {
	sale := Sale{
		ID:    uuid.NewString(),
		Date:  time.Now(),
		Items: snapshotLines(lines),
		Total: total,
	}

	l.sales = append(l.sales, sale)
	if err := l.store.Save(l.sales); err != nil {
		l.sales = l.sales[:len(l.sales)-1]
		return Sale{}, fmt.Errorf("persist sale log: %w", err)
	}

	l.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Float64("total", sale.Total),
		zap.Int("items", len(sale.Items)),
	)
	return sale, nil
}

// Sales returns a copy of every recorded sale, oldest first.
func (l *Log) Sales() []Sale {
	out := make([]Sale, len(l.sales))
	copy(out, l.sales)
	return out
}

// Summarize derives the admin aggregates from the current log.
func (l *Log) Summarize() Summary {
	s := Summary{Count: len(l.sales)}
	for _, sale := range l.sales {
		s.Total += sale.Total
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}
