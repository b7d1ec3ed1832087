package gofpdf

import (
	"bytes"
	"log"

	"github.com/jung-kurt/gofpdf"

	"quotedesk/backend/internal/domain/quote"
)

// Options mirror the export contract of the web preview: letter page,
// portrait, zero page margin. The visual padding inside the page is drawn
// by the generator itself.
type Options struct {
	PageSize string
	Margin   float64 // page margin in points
}

func DefaultOptions() Options {
	return Options{PageSize: "Letter", Margin: 0}
}

type Generator struct {
	opts Options
}

func New() *Generator { return &Generator{opts: DefaultOptions()} }

func NewWithOptions(opts Options) *Generator { return &Generator{opts: opts} }

// inner padding of the rendered sheet, on top of the page margin
const pad = 48.0

func (g *Generator) Generate(p quote.Preview) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", g.opts.PageSize, "")
	pdf.SetTitle("Quote "+p.Number, false)
	pdf.SetMargins(g.opts.Margin+pad, g.opts.Margin+pad, g.opts.Margin+pad)
	pdf.SetAutoPageBreak(true, g.opts.Margin+pad)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*(g.opts.Margin+pad)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 24, "Quote")
	pdf.Ln(30)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 14, "Quote Number: "+p.Number)
	pdf.Ln(14)
	pdf.Cell(0, 14, "Issue Date: "+p.IssueDate)
	pdf.Ln(14)
	pdf.Cell(0, 14, "Expiration Date: "+p.ExpirationDate)
	pdf.Ln(22)

	for _, line := range p.Recipient {
		pdf.Cell(0, 13, trim(line, 90))
		pdf.Ln(13)
	}
	pdf.Ln(12)

	descW := width * 0.46
	qtyW := width * 0.14
	rateW := width * 0.20
	amountW := width * 0.20

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(descW, 16, "Description")
	pdf.Cell(qtyW, 16, "QTY")
	pdf.Cell(rateW, 16, "Rate")
	pdf.Cell(amountW, 16, "Amount")
	pdf.Ln(18)

	pdf.SetFont("Helvetica", "", 10)
	if p.EmptyMessage != "" {
		pdf.Cell(width, 14, p.EmptyMessage)
		pdf.Ln(16)
	}
	for _, row := range p.Rows {
		pdf.Cell(descW, 14, trim(row.Description, 48))
		pdf.Cell(qtyW, 14, row.Quantity.Plain())
		pdf.Cell(rateW, 14, row.Rate.Plain())
		pdf.Cell(amountW, 14, row.Amount.Plain())
		pdf.Ln(14)
	}

	pdf.Ln(10)
	pdf.Cell(0, 14, "Subtotal: "+p.Subtotal.Plain())
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 15, "Total: "+p.Total.Plain())
	pdf.Ln(15)
	if p.ShowTaxNote {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 12, p.TaxNote)
		pdf.Ln(12)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
