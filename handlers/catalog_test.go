package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AJKakarot/construction/testhelpers"
)

func TestHandleCatalogList_Default(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedCatalog(t, app)
	handler := HandleCatalogList(app)

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Name     string `json:"name"`
		HasUnits bool   `json:"has_units"`
		Products []struct {
			Name string  `json:"name"`
			Unit string  `json:"unit"`
			Step float64 `json:"step"`
		} `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	if resp.Name != "default" || !resp.HasUnits {
		t.Errorf("catalog meta = %q/%v, want default with units", resp.Name, resp.HasUnits)
	}
	if len(resp.Products) != 17 {
		t.Fatalf("expected 17 products, got %d", len(resp.Products))
	}
	if resp.Products[0].Name != "Cement" || resp.Products[0].Step != 1 {
		t.Errorf("first product = %+v, want Cement with step 1", resp.Products[0])
	}
}

func TestHandleCatalogList_BasicVariant(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedCatalog(t, app)
	handler := HandleCatalogList(app)

	req := httptest.NewRequest(http.MethodGet, "/catalog?catalog=basic", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)
	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Name     string `json:"name"`
		HasUnits bool   `json:"has_units"`
		Products []any  `json:"products"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp.Name != "basic" || resp.HasUnits {
		t.Errorf("catalog meta = %q/%v, want basic without units", resp.Name, resp.HasUnits)
	}
	if len(resp.Products) != 5 {
		t.Errorf("expected 5 products, got %d", len(resp.Products))
	}
}
