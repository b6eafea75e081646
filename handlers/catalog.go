package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type catalogProduct struct {
	Name            string  `json:"name"`
	Unit            string  `json:"unit,omitempty"`
	AllowFractional bool    `json:"allow_fractional"`
	Step            float64 `json:"step"`
}

type catalogResponse struct {
	Name     string           `json:"name"`
	HasUnits bool             `json:"has_units"`
	Products []catalogProduct `json:"products"`
}

// HandleCatalogList returns a handler that serves the product catalog the
// form layer renders its rows from, in invoice order. The "catalog" query
// parameter selects a variant.
func HandleCatalogList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat := resolveCatalog(app, e)

		resp := catalogResponse{
			Name:     cat.Name,
			HasUnits: cat.HasUnits,
			Products: make([]catalogProduct, 0, len(cat.Products)),
		}
		for _, p := range cat.Products {
			resp.Products = append(resp.Products, catalogProduct{
				Name:            p.Name,
				Unit:            p.Unit,
				AllowFractional: p.AllowFractional,
				Step:            cat.Step(p),
			})
		}

		return e.JSON(http.StatusOK, resp)
	}
}
