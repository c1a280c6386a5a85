package salelog

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/cart"
	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
)

// failingStore refuses every save, for exercising the undo path.
type failingStore struct{}

func (failingStore) Load() ([]Sale, bool, error) { return nil, false, nil }
func (failingStore) Save([]Sale) error           { return errors.New("disk full") }

func line(t *testing.T, id string, qty int) cart.Line {
	t.Helper()
	p, ok := catalog.Lookup(id)
	if !ok {
		t.Fatalf("product %q not in catalog", id)
	}
	return cart.Line{Product: p, Quantity: qty}
}

func TestRecordAppendsAndPersists(t *testing.T) {
	store := NewMemoryStore()
	l, err := Open(store, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	lines := []cart.Line{line(t, "vainilla", 2), line(t, "concha", 1)}
	sale, err := l.Record(lines, 175)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if sale.ID == "" {
		t.Error("expected a generated sale id")
	}
	if sale.Date.IsZero() {
		t.Error("expected a timestamp on the sale")
	}
	if len(sale.Items) != 2 || sale.Items[0].ID != "vainilla" || sale.Items[0].Quantity != 2 {
		t.Errorf("unexpected item snapshot: %+v", sale.Items)
	}
	if sale.Total != 175 {
		t.Errorf("expected total 175, got %v", sale.Total)
	}

	if got := len(store.Sales()); got != 1 {
		t.Errorf("expected 1 persisted sale, got %d", got)
	}
}

func TestRecordUndoneWhenPersistFails(t *testing.T) {
	l, err := Open(failingStore{}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := l.Record([]cart.Line{line(t, "vainilla", 1)}, 65); err == nil {
		t.Fatal("expected an error when the store refuses the save")
	}
	if got := len(l.Sales()); got != 0 {
		t.Errorf("log holds %d undurable sales", got)
	}
}

func TestSalesAreAppendOnly(t *testing.T) {
	l, err := Open(NewMemoryStore(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	first, _ := l.Record([]cart.Line{line(t, "vainilla", 1)}, 65)
	second, _ := l.Record([]cart.Line{line(t, "concha", 1)}, 45)

	sales := l.Sales()
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].ID != first.ID || sales[1].ID != second.ID {
		t.Error("sales not in append order")
	}
	if first.ID == second.ID {
		t.Error("sale ids must be distinct")
	}

	// Mutating the returned slice must not touch the log.
	sales[0].Total = 999
	if l.Sales()[0].Total != 65 {
		t.Error("caller mutation leaked into the log")
	}
}

func TestSummarize(t *testing.T) {
	l, err := Open(NewMemoryStore(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if s := l.Summarize(); s.Count != 0 || s.Total != 0 || s.Average != 0 {
		t.Errorf("empty log summary should be zero, got %+v", s)
	}

	l.Record([]cart.Line{line(t, "vainilla", 1)}, 65)
	l.Record([]cart.Line{line(t, "concha", 3)}, 135)

	s := l.Summarize()
	if s.Count != 2 {
		t.Errorf("expected count 2, got %d", s.Count)
	}
	if s.Total != 200 {
		t.Errorf("expected total 200, got %v", s.Total)
	}
	if s.Average != 100 {
		t.Errorf("expected average 100, got %v", s.Average)
	}
}
