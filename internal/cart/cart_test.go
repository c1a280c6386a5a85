package cart

import (
	"testing"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"
)

func mustLookup(t *testing.T, id string) catalog.Product {
	t.Helper()
	p, ok := catalog.Lookup(id)
	if !ok {
		t.Fatalf("product %q not in catalog", id)
	}
	return p
}

func TestAddIncrementsExistingLine(t *testing.T) {
	c := New()
	vainilla := mustLookup(t, "vainilla")

	c.Add(vainilla)
	c.Add(vainilla)

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := New()
	c.Add(mustLookup(t, "concha"))
	c.Add(mustLookup(t, "vainilla"))
	c.Add(mustLookup(t, "concha"))

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.ID != "concha" || lines[1].Product.ID != "vainilla" {
		t.Errorf("lines out of insertion order: %q, %q", lines[0].Product.ID, lines[1].Product.ID)
	}
}

func TestRemoveDecrementsThenDeletes(t *testing.T) {
	c := New()
	moka := mustLookup(t, "moka")
	c.Add(moka)
	c.Add(moka)

	c.Remove("moka")
	if lines := c.Lines(); len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected single line with quantity 1, got %+v", lines)
	}

	c.Remove("moka")
	if !c.Empty() {
		t.Error("expected cart to be empty after removing last unit")
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	c := New()
	c.Add(mustLookup(t, "chai"))

	c.Remove("no-such-product")

	if len(c.Lines()) != 1 {
		t.Error("removing an unknown id changed the cart")
	}
}

func TestQuantitiesStayPositiveAndIDsUnique(t *testing.T) {
	c := New()
	ids := []string{"vainilla", "moka", "vainilla", "concha", "moka", "vainilla"}
	for _, id := range ids {
		c.Add(mustLookup(t, id))
	}
	c.Remove("moka")
	c.Remove("concha")
	c.Remove("concha") // already gone

	seen := map[string]bool{}
	for _, l := range c.Lines() {
		if l.Quantity <= 0 {
			t.Errorf("line %q has non-positive quantity %d", l.Product.ID, l.Quantity)
		}
		if seen[l.Product.ID] {
			t.Errorf("duplicate line for product %q", l.Product.ID)
		}
		seen[l.Product.ID] = true
	}
}

func TestTotalRecomputed(t *testing.T) {
	c := New()
	vainilla := mustLookup(t, "vainilla") // 65
	concha := mustLookup(t, "concha")     // 45

	c.Add(vainilla)
	c.Add(vainilla)
	c.Add(concha)
	if got := c.Total(); got != 175 {
		t.Errorf("expected total 175, got %v", got)
	}

	c.Remove("vainilla")
	if got := c.Total(); got != 110 {
		t.Errorf("expected total 110 after removal, got %v", got)
	}

	c.Clear()
	if got := c.Total(); got != 0 {
		t.Errorf("expected total 0 after clear, got %v", got)
	}
}
