package services

import "time"

// PageSize is the drawable page extent in millimeters.
type PageSize struct {
	W, H float64
}

// A4 portrait.
var A4 = PageSize{W: 210, H: 297}

// Color is an RGB triple with 0-255 components.
type Color struct {
	R, G, B int
}

// Align controls horizontal anchoring of a DrawText op around its X
// coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawOp is a single drawing instruction for a renderer. The concrete
// types are FillRect, DrawLine, DrawText and NewPage; the layout engine
// emits only these, so a renderer is a plain switch over them.
type DrawOp interface {
	drawOp()
}

// FillRect fills a rectangle.
type FillRect struct {
	X, Y, W, H float64
	Color      Color
}

// DrawLine strokes a straight line.
type DrawLine struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          Color
}

// DrawText places a string relative to its X anchor at baseline Y.
type DrawText struct {
	X, Y  float64
	Text  string
	Size  float64
	Bold  bool
	Color Color
	Align Align
}

// NewPage starts a fresh page; subsequent ops draw on it.
type NewPage struct{}

func (FillRect) drawOp() {}
func (DrawLine) drawOp() {}
func (DrawText) drawOp() {}
func (NewPage) drawOp()  {}

// Bill document palette.
var (
	accentColor    = Color{R: 102, G: 126, B: 234}
	white          = Color{R: 255, G: 255, B: 255}
	black          = Color{}
	labelGray      = Color{R: 50, G: 50, B: 50}
	headerBandGray = Color{R: 240, G: 240, B: 240}
	rowFillGray    = Color{R: 250, G: 250, B: 250}
	rowRuleGray    = Color{R: 220, G: 220, B: 220}
	totalRuleGray  = Color{R: 150, G: 150, B: 150}
	footerRuleGray = Color{R: 200, G: 200, B: 200}
	footerTextGray = Color{R: 150, G: 150, B: 150}
)

// Fixed bill geometry, in page units.
const (
	pageMargin    = 15.0
	headerBandH   = 35.0
	tableHeaderY  = 50.0
	tableBodyTopY = 62.0
	rowStep       = 10.0
	pageBreakY    = 270.0
	freshPageTopY = 20.0

	colProductX  = 20.0
	colQtyX      = 75.0
	colUnitX     = 95.0
	colPriceX    = 125.0
	colSubtotalX = 155.0
)

const billTitle = "Construction Material Bill"

// LayoutBill converts an invoice into page-positioned drawing instructions
// for the exported bill. It is a pure function of its arguments; the
// vertical cursor is the only state and it is threaded locally. When a row
// would land past the break threshold the engine starts a new page and
// resets the cursor near the top.
func LayoutBill(inv Invoice, hasUnits bool, date time.Time, page PageSize) []DrawOp {
	ops := []DrawOp{
		FillRect{X: 0, Y: 0, W: page.W, H: headerBandH, Color: accentColor},
		DrawText{X: pageMargin, Y: 22, Text: billTitle, Size: 22, Bold: true, Color: white},
		DrawText{X: pageMargin, Y: 30, Text: "Date: " + date.Format("02/01/2006"), Size: 10, Color: white},
	}

	// Table header band with column labels and an accent rule beneath.
	y := tableHeaderY
	ops = append(ops, FillRect{X: pageMargin, Y: y - 8, W: page.W - 2*pageMargin, H: 10, Color: headerBandGray})
	ops = append(ops, headerLabel(colProductX, y, "Product"))
	if hasUnits {
		ops = append(ops,
			headerLabel(colQtyX, y, "Qty"),
			headerLabel(colUnitX, y, "Unit"),
		)
	} else {
		ops = append(ops, headerLabel(colQtyX, y, "Quantity"))
	}
	ops = append(ops,
		headerLabel(colPriceX, y, "Price"),
		headerLabel(colSubtotalX, y, "Subtotal"),
		DrawLine{X1: pageMargin, Y1: y + 2, X2: page.W - pageMargin, Y2: y + 2, Width: 0.8, Color: accentColor},
	)

	// Body rows in invoice order. Even visible rows get a light fill;
	// every row gets a thin rule beneath.
	y = tableBodyTopY
	for i, item := range inv.Items {
		if i%2 == 0 {
			ops = append(ops, FillRect{X: pageMargin, Y: y - 6, W: page.W - 2*pageMargin, H: 8, Color: rowFillGray})
		}
		ops = append(ops, DrawLine{X1: pageMargin, Y1: y + 2, X2: page.W - pageMargin, Y2: y + 2, Width: 0.3, Color: rowRuleGray})

		ops = append(ops,
			bodyText(colProductX, y, item.Product.Name),
			bodyText(colQtyX, y, FormatQuantity(item.Quantity, item.Product.AllowFractional)),
		)
		if hasUnits {
			ops = append(ops, bodyText(colUnitX, y, item.Product.Unit))
		}
		ops = append(ops,
			bodyText(colPriceX, y, FormatRupees(item.UnitPrice)),
			bodyText(colSubtotalX, y, FormatRupees(item.Subtotal)),
		)

		y += rowStep
		if y > pageBreakY {
			ops = append(ops, NewPage{})
			y = freshPageTopY
		}
	}

	// Grand total band.
	y += 5
	ops = append(ops, DrawLine{X1: pageMargin, Y1: y, X2: page.W - pageMargin, Y2: y, Width: 0.5, Color: totalRuleGray})
	y += 10
	ops = append(ops,
		FillRect{X: pageMargin, Y: y - 8, W: page.W - 2*pageMargin, H: 12, Color: accentColor},
		DrawText{X: 120, Y: y + 2, Text: "Grand Total:", Size: 14, Bold: true, Color: white},
		DrawText{X: page.W - 20, Y: y + 2, Text: FormatRupees(inv.GrandTotal), Size: 16, Bold: true, Color: white, Align: AlignRight},
	)

	// Footer near the bottom margin.
	footerY := page.H - 15
	ops = append(ops,
		DrawLine{X1: pageMargin, Y1: footerY, X2: page.W - pageMargin, Y2: footerY, Width: 0.5, Color: footerRuleGray},
		DrawText{X: page.W / 2, Y: footerY + 5, Text: "Thank you for your business!", Size: 8, Color: footerTextGray, Align: AlignCenter},
	)

	return ops
}

func headerLabel(x, y float64, s string) DrawText {
	return DrawText{X: x, Y: y, Text: s, Size: 10, Bold: true, Color: labelGray}
}

func bodyText(x, y float64, s string) DrawText {
	return DrawText{X: x, Y: y, Text: s, Size: 9, Color: black}
}
