package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"github.com/AJKakarot/construction/collections"
	"github.com/AJKakarot/construction/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed the catalog on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: catalog seed failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve the form layer's static assets from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/catalog", handlers.HandleCatalogList(app))

		// ── Bill computation and export ──────────────────────────
		se.Router.POST("/bill/summary", handlers.HandleBillSummary(app))
		se.Router.POST("/bill/export/pdf", handlers.HandleBillExportPDF(app))
		se.Router.POST("/bill/export/excel", handlers.HandleBillExportExcel(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
