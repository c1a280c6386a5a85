package orderflow

import "github.com/MiguelRM25/v0-cafeteria-system-interface/internal/catalog"

// View is the screen the operator is currently navigating. Main branches
// into the two category hubs, each hub into its leaf menu sections.
type View string

const (
	ViewMain       View = "main"
	ViewDrinks     View = "drinks"
	ViewFood       View = "food"
	ViewColdDrinks View = View(catalog.SectionColdDrinks)
	ViewHotDrinks  View = View(catalog.SectionHotDrinks)
	ViewBlended    View = View(catalog.SectionBlended)
	ViewDesserts   View = View(catalog.SectionDesserts)
	ViewSavory     View = View(catalog.SectionSavory)
)

// parent maps every view to the one "back" returns to. Main has no parent;
// back from it is a no-op.
var parent = map[View]View{
	ViewDrinks:     ViewMain,
	ViewFood:       ViewMain,
	ViewColdDrinks: ViewDrinks,
	ViewHotDrinks:  ViewDrinks,
	ViewBlended:    ViewDrinks,
	ViewDesserts:   ViewFood,
	ViewSavory:     ViewFood,
}

// ParseView validates a view name coming from the presentation layer.
func ParseView(s string) (View, bool) {
	v := View(s)
	if v == ViewMain {
		return v, true
	}
	_, ok := parent[v]
	return v, ok
}

// topCategory resolves which top-level category a view belongs to; false
// for the main screen.
func topCategory(v View) (catalog.Category, bool) {
	switch v {
	case ViewDrinks, ViewColdDrinks, ViewHotDrinks, ViewBlended:
		return catalog.CategoryDrinks, true
	case ViewFood, ViewDesserts, ViewSavory:
		return catalog.CategoryFood, true
	}
	return "", false
}

func categoryHub(c catalog.Category) View {
	if c == catalog.CategoryDrinks {
		return ViewDrinks
	}
	return ViewFood
}
