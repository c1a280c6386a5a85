package catalog

import "testing"

func TestAllProductsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range All() {
		if seen[p.ID] {
			t.Errorf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Price < 0 {
			t.Errorf("product %q has negative price", p.ID)
		}
	}
}

func TestBlendedIncludesEveryFlavor(t *testing.T) {
	blended := map[string]bool{}
	for _, p := range Items(SectionBlended) {
		blended[p.ID] = true
	}
	for _, p := range Items(SectionColdDrinks) {
		if !blended[p.ID] {
			t.Errorf("flavor %q missing from blended menu", p.ID)
		}
	}
	if len(blended) <= len(Items(SectionColdDrinks)) {
		t.Error("blended menu should add items beyond the shared flavors")
	}
}

func TestSectionCategories(t *testing.T) {
	for _, s := range []Section{SectionColdDrinks, SectionHotDrinks, SectionBlended} {
		for _, p := range Items(s) {
			if p.Category != CategoryDrinks {
				t.Errorf("product %q in section %q is not a drink", p.ID, s)
			}
		}
	}
	for _, s := range []Section{SectionDesserts, SectionSavory} {
		for _, p := range Items(s) {
			if p.Category != CategoryFood {
				t.Errorf("product %q in section %q is not food", p.ID, s)
			}
		}
	}
}

func TestUnknownSectionIsEmpty(t *testing.T) {
	if items := Items(Section("helados")); items != nil {
		t.Errorf("expected nil for unknown section, got %d items", len(items))
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("vainilla")
	if !ok {
		t.Fatal("vainilla should be in the catalog")
	}
	if p.Price != 65 || p.Category != CategoryDrinks {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, ok := Lookup("no-such-id"); ok {
		t.Error("lookup of unknown id should fail")
	}
}
