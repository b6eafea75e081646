package services

import (
	"math"
	"strconv"
	"strings"
)

// LineItem is one computed bill row.
type LineItem struct {
	Product   Product
	Quantity  float64
	UnitPrice float64
	Subtotal  float64
}

// Invoice is the computed bill for one input snapshot: the included line
// items in catalog order plus the exact grand total.
type Invoice struct {
	Items      []LineItem
	GrandTotal float64
}

// ParsePrice converts raw price text into a non-negative amount. Empty,
// unparsable or negative text contributes zero; the form never surfaces
// this as an error.
func ParsePrice(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ClampQuantity keeps a quantity non-negative.
func ClampQuantity(q float64) float64 {
	if math.IsNaN(q) || q < 0 {
		return 0
	}
	return q
}

// AdjustQuantity applies a stepper delta to a quantity, clamped at zero.
// The form layer uses the product's catalog step as the delta.
func AdjustQuantity(current, delta float64) float64 {
	return ClampQuantity(current + delta)
}

// ComputeSubtotal is the per-line amount.
func ComputeSubtotal(quantity, unitPrice float64) float64 {
	return quantity * unitPrice
}

// ComputeInvoice projects a quantities/prices snapshot onto a catalog.
// Products are visited in catalog order; a line is included when it has a
// positive quantity or a positive unit price. The grand total is the exact
// sum of the included subtotals with no intermediate rounding.
func ComputeInvoice(cat Catalog, quantities map[string]float64, prices map[string]string) Invoice {
	var inv Invoice
	for _, p := range cat.Products {
		qty := ClampQuantity(quantities[p.Name])
		price := ParsePrice(prices[p.Name])
		if qty <= 0 && price <= 0 {
			continue
		}
		sub := ComputeSubtotal(qty, price)
		inv.Items = append(inv.Items, LineItem{
			Product:   p,
			Quantity:  qty,
			UnitPrice: price,
			Subtotal:  sub,
		})
		inv.GrandTotal += sub
	}
	return inv
}
