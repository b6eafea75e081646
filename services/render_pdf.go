package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// RenderPDF draws a layout instruction sequence into a PDF document and
// returns the file bytes. The core fonts carry no Rupee glyph, which is
// why the layout engine emits "Rs." amounts.
func RenderPDF(ops []DrawOp, page PageSize) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: page.W, Ht: page.H},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, op := range ops {
		switch o := op.(type) {
		case FillRect:
			pdf.SetFillColor(o.Color.R, o.Color.G, o.Color.B)
			pdf.Rect(o.X, o.Y, o.W, o.H, "F")
		case DrawLine:
			pdf.SetDrawColor(o.Color.R, o.Color.G, o.Color.B)
			pdf.SetLineWidth(o.Width)
			pdf.Line(o.X1, o.Y1, o.X2, o.Y2)
		case DrawText:
			style := ""
			if o.Bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, o.Size)
			pdf.SetTextColor(o.Color.R, o.Color.G, o.Color.B)
			x := o.X
			switch o.Align {
			case AlignCenter:
				x -= pdf.GetStringWidth(o.Text) / 2
			case AlignRight:
				x -= pdf.GetStringWidth(o.Text)
			}
			pdf.Text(x, o.Y, o.Text)
		case NewPage:
			pdf.AddPage()
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateBillPDF lays out and renders an invoice as the exported bill.
func GenerateBillPDF(inv Invoice, hasUnits bool, date time.Time) ([]byte, error) {
	return RenderPDF(LayoutBill(inv, hasUnits, date, A4), A4)
}
