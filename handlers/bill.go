package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/AJKakarot/construction/collections"
	"github.com/AJKakarot/construction/services"
)

// snapshotFromForm reads the form layer's submission into quantity and
// price maps keyed by product name. The form posts one qty_<product> and
// one price_<product> field per catalog entry; anything missing or
// unparsable reads as zero, which the billing engine treats as an empty
// line rather than an error.
func snapshotFromForm(e *core.RequestEvent, cat services.Catalog) (map[string]float64, map[string]string) {
	quantities := make(map[string]float64, len(cat.Products))
	prices := make(map[string]string, len(cat.Products))

	for _, p := range cat.Products {
		qtyText := strings.TrimSpace(e.Request.FormValue("qty_" + p.Name))
		if qtyText != "" {
			if v, err := strconv.ParseFloat(qtyText, 64); err == nil {
				quantities[p.Name] = services.ClampQuantity(v)
			}
		}
		prices[p.Name] = e.Request.FormValue("price_" + p.Name)
	}
	return quantities, prices
}

// resolveCatalog picks the catalog variant named by the request's "catalog"
// field, defaulting to the full product line. The seeded collection is the
// source of truth; the built-in definitions cover the window before the
// first seed run.
func resolveCatalog(app *pocketbase.PocketBase, e *core.RequestEvent) services.Catalog {
	name := e.Request.FormValue("catalog")
	if name == "" {
		name = services.DefaultCatalog.Name
	}

	cat, err := collections.LoadCatalog(app, name)
	if err != nil {
		log.Printf("bill: falling back to built-in catalog: %v", err)
		if builtin, ok := services.CatalogByName(name); ok {
			return builtin
		}
		return services.DefaultCatalog
	}
	return cat
}

type billLine struct {
	Product   string `json:"product"`
	Unit      string `json:"unit,omitempty"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

type billSummary struct {
	Catalog    string     `json:"catalog"`
	Items      []billLine `json:"items"`
	GrandTotal string     `json:"grand_total"`
}

// HandleBillSummary returns a handler that computes the on-screen bill
// summary for the submitted quantities and prices. Amounts use the ₹
// two-decimal screen convention.
func HandleBillSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat := resolveCatalog(app, e)
		quantities, prices := snapshotFromForm(e, cat)
		inv := services.ComputeInvoice(cat, quantities, prices)

		resp := billSummary{
			Catalog:    cat.Name,
			Items:      []billLine{},
			GrandTotal: services.FormatINR(inv.GrandTotal),
		}
		for _, item := range inv.Items {
			resp.Items = append(resp.Items, billLine{
				Product:   item.Product.Name,
				Unit:      item.Product.Unit,
				Quantity:  services.FormatQuantity(item.Quantity, item.Product.AllowFractional),
				UnitPrice: services.FormatINR(item.UnitPrice),
				Subtotal:  services.FormatINR(item.Subtotal),
			})
		}

		return e.JSON(http.StatusOK, resp)
	}
}
