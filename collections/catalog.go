package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase"

	"github.com/AJKakarot/construction/services"
)

// LoadCatalog reads one catalog variant back out of the products collection
// in seeded order. The returned catalog carries unit metadata only when at
// least one of its products has a unit, matching the variant shapes the
// engine supports.
func LoadCatalog(app *pocketbase.PocketBase, name string) (services.Catalog, error) {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return services.Catalog{}, fmt.Errorf("products collection not found: %w", err)
	}

	records, err := app.FindRecordsByFilter(col, "catalog = {:catalog}", "sort_order", 0, 0, map[string]any{"catalog": name})
	if err != nil {
		return services.Catalog{}, fmt.Errorf("failed to query catalog %q: %w", name, err)
	}
	if len(records) == 0 {
		return services.Catalog{}, fmt.Errorf("catalog %q has no products", name)
	}

	cat := services.Catalog{Name: name}
	for _, r := range records {
		p := services.Product{
			Name:            r.GetString("name"),
			Unit:            r.GetString("unit"),
			AllowFractional: r.GetBool("allow_fractional"),
		}
		if p.Unit != "" {
			cat.HasUnits = true
		}
		cat.Products = append(cat.Products, p)
	}
	return cat, nil
}
