package catalog

// Category is one of the two top-level product categories.
type Category string

const (
	CategoryDrinks Category = "drinks"
	CategoryFood   Category = "food"
)

// Opposite returns the other top-level category.
func (c Category) Opposite() Category {
	if c == CategoryDrinks {
		return CategoryFood
	}
	return CategoryDrinks
}

// Section is a leaf menu screen the operator picks items from.
type Section string

const (
	SectionColdDrinks Section = "cold-drinks"
	SectionHotDrinks  Section = "hot-drinks"
	SectionBlended    Section = "blended"
	SectionDesserts   Section = "desserts"
	SectionSavory     Section = "savory"
)

// Product is an immutable catalog entry.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Category Category `json:"category"`
}

// Drink flavors are served cold, hot or blended; the blended menu adds
// the blended-only items on top of them.
var drinkFlavors = []Product{
	{ID: "vainilla", Name: "Vainilla", Price: 65, Category: CategoryDrinks},
	{ID: "moka", Name: "Moka", Price: 70, Category: CategoryDrinks},
	{ID: "cajeta", Name: "Cajeta", Price: 70, Category: CategoryDrinks},
	{ID: "tradicional", Name: "Tradicional", Price: 60, Category: CategoryDrinks},
	{ID: "chai", Name: "Chai", Price: 75, Category: CategoryDrinks},
	{ID: "matcha", Name: "Matcha", Price: 80, Category: CategoryDrinks},
	{ID: "taro", Name: "Taro", Price: 75, Category: CategoryDrinks},
}

var blendedExtras = []Product{
	{ID: "smoothie-fresa", Name: "Smoothie de Fresa", Price: 85, Category: CategoryDrinks},
	{ID: "smoothie-mango", Name: "Smoothie de Mango", Price: 85, Category: CategoryDrinks},
	{ID: "chamoyada", Name: "Chamoyada", Price: 90, Category: CategoryDrinks},
	{ID: "mazapan", Name: "Mazapán", Price: 80, Category: CategoryDrinks},
	{ID: "oreo", Name: "Oreo", Price: 85, Category: CategoryDrinks},
	{ID: "nutella", Name: "Nutella", Price: 90, Category: CategoryDrinks},
}

var desserts = []Product{
	{ID: "concha", Name: "Concha", Price: 45, Category: CategoryFood},
	{ID: "panque", Name: "Panque", Price: 55, Category: CategoryFood},
	{ID: "pay", Name: "Rebanada de Pay", Price: 70, Category: CategoryFood},
	{ID: "tartaleta", Name: "Tartaleta", Price: 65, Category: CategoryFood},
	{ID: "pastel", Name: "Rebanada de Pastel", Price: 85, Category: CategoryFood},
	{ID: "dona", Name: "Dona", Price: 50, Category: CategoryFood},
	{ID: "rol-canela-cajeta", Name: "Rol de Canela con Cajeta", Price: 60, Category: CategoryFood},
	{ID: "rol-canela-manzana", Name: "Rol de Canela con Manzana", Price: 60, Category: CategoryFood},
}

var savory = []Product{
	{ID: "sandwich-jamon", Name: "Sandwich de Jamón", Price: 75, Category: CategoryFood},
	{ID: "sandwich-pavo", Name: "Sandwich de Pavo", Price: 80, Category: CategoryFood},
	{ID: "sandwich-integral", Name: "Sandwich Integral", Price: 85, Category: CategoryFood},
	{ID: "croissant", Name: "Croissant de Jamón y Queso", Price: 90, Category: CategoryFood},
	{ID: "pizza-peperoni", Name: "Mini Pizza de Peperoni", Price: 95, Category: CategoryFood},
	{ID: "pizza-jamon", Name: "Mini Pizza de Jamón", Price: 90, Category: CategoryFood},
	{ID: "pizza-queso", Name: "Mini Pizza de Queso", Price: 85, Category: CategoryFood},
	{ID: "pizza-veggie", Name: "Mini Pizza Veggie", Price: 100, Category: CategoryFood},
}

var byID = buildIndex()

func buildIndex() map[string]Product {
	m := make(map[string]Product)
	for _, p := range All() {
		m[p.ID] = p
	}
	return m
}

// Items returns the fixed ordered product list for a menu section.
// Unknown sections yield an empty list.
func Items(s Section) []Product {
	switch s {
	case SectionColdDrinks, SectionHotDrinks:
		return clone(drinkFlavors)
	case SectionBlended:
		return append(clone(drinkFlavors), blendedExtras...)
	case SectionDesserts:
		return clone(desserts)
	case SectionSavory:
		return clone(savory)
	}
	return nil
}

// All returns every distinct product in the catalog, in menu order.
func All() []Product {
	all := make([]Product, 0, len(drinkFlavors)+len(blendedExtras)+len(desserts)+len(savory))
	all = append(all, drinkFlavors...)
	all = append(all, blendedExtras...)
	all = append(all, desserts...)
	all = append(all, savory...)
	return all
}

// Lookup finds a product by id.
func Lookup(id string) (Product, bool) {
	p, ok := byID[id]
	return p, ok
}

func clone(items []Product) []Product {
	out := make([]Product, len(items))
	copy(out, items)
	return out
}
