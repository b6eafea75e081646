// Package services provides the billing, formatting and document layout
// logic for the construction material bill calculator.
package services

// Product is a single catalog entry. Name is the unique key used by the
// form layer's quantity and price maps.
type Product struct {
	Name            string
	Unit            string
	AllowFractional bool
}

// Catalog is an ordered product list. The slice order is total and stable
// for the process lifetime; it determines both on-screen list order and
// document row order.
type Catalog struct {
	Name     string
	HasUnits bool
	Products []Product
}

// Step returns the quantity increment for a product: 0.1 when fractional
// quantities are sold, otherwise whole units.
func (c Catalog) Step(p Product) float64 {
	if p.AllowFractional {
		return 0.1
	}
	return 1
}

// Find looks up a catalog entry by product name.
func (c Catalog) Find(name string) (Product, bool) {
	for _, p := range c.Products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// DefaultCatalog is the full product line with display units and
// per-product fractional-quantity rules.
var DefaultCatalog = Catalog{
	Name:     "default",
	HasUnits: true,
	Products: []Product{
		{Name: "Cement", Unit: "bags"},
		{Name: "Maorang", Unit: "cubic feet", AllowFractional: true},
		{Name: "Gitti", Unit: "cubic feet", AllowFractional: true},
		{Name: "Sariya", Unit: "kg", AllowFractional: true},
		{Name: "Ring", Unit: "pieces"},
		{Name: "Sand", Unit: "cubic feet", AllowFractional: true},
		{Name: "Bricks", Unit: "pieces"},
		{Name: "Tiles", Unit: "sq ft", AllowFractional: true},
		{Name: "Paint", Unit: "liters", AllowFractional: true},
		{Name: "Steel Bars", Unit: "kg", AllowFractional: true},
		{Name: "Water", Unit: "liters", AllowFractional: true},
		{Name: "Wire", Unit: "kg", AllowFractional: true},
		{Name: "Pipe", Unit: "meters", AllowFractional: true},
		{Name: "Binding Wire", Unit: "kg", AllowFractional: true},
		{Name: "Wood Planks", Unit: "cubic feet", AllowFractional: true},
		{Name: "PVC Pipes", Unit: "meters", AllowFractional: true},
		{Name: "Electrical Fittings", Unit: "pieces"},
	},
}

// BasicCatalog is the minimal product line without unit metadata; all
// quantities step in whole units.
var BasicCatalog = Catalog{
	Name: "basic",
	Products: []Product{
		{Name: "Cement"},
		{Name: "Sand"},
		{Name: "Bricks"},
		{Name: "Gitti"},
		{Name: "Sariya"},
	},
}

// CatalogByName resolves a built-in catalog variant.
func CatalogByName(name string) (Catalog, bool) {
	switch name {
	case DefaultCatalog.Name:
		return DefaultCatalog, true
	case BasicCatalog.Name:
		return BasicCatalog, true
	}
	return Catalog{}, false
}
