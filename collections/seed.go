package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/AJKakarot/construction/services"
)

// Seed materializes the built-in catalog variants into the products
// collection. It returns early if any product records already exist, so
// repeated startups do not duplicate the catalog.
func Seed(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("products collection not found: %w", err)
	}

	// ── idempotency: skip if products already exist ──────────────────
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("failed to query products: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	seeded := 0
	for _, cat := range []services.Catalog{services.DefaultCatalog, services.BasicCatalog} {
		for i, p := range cat.Products {
			record := core.NewRecord(col)
			record.Set("name", p.Name)
			record.Set("unit", p.Unit)
			record.Set("allow_fractional", p.AllowFractional)
			record.Set("catalog", cat.Name)
			record.Set("sort_order", i+1)

			if err := app.Save(record); err != nil {
				return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
			}
			seeded++
		}
	}

	log.Printf("Seeded %d catalog products", seeded)
	return nil
}
