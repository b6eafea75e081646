package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/AJKakarot/construction/services"
)

// Exported documents use fixed file names; one document per activation.
const (
	billPDFName   = "construction-material-bill.pdf"
	billExcelName = "construction-material-bill.xlsx"
)

// HandleBillExportPDF returns a handler that renders the submitted bill as
// a PDF download. Generation is a single best-effort attempt; the bytes are
// built in memory so a failure never leaves a partial file.
func HandleBillExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat := resolveCatalog(app, e)
		quantities, prices := snapshotFromForm(e, cat)
		inv := services.ComputeInvoice(cat, quantities, prices)

		pdfBytes, err := services.GenerateBillPDF(inv, cat.HasUnits, time.Now())
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, billPDFName))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleBillExportExcel returns a handler that renders the submitted bill
// as a spreadsheet download.
func HandleBillExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cat := resolveCatalog(app, e)
		quantities, prices := snapshotFromForm(e, cat)
		inv := services.ComputeInvoice(cat, quantities, prices)

		xlsxBytes, err := services.GenerateBillExcel(inv, cat.HasUnits, time.Now())
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, billExcelName))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
