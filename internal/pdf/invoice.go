// Package pdf renders invoices as downloadable PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/billow-app/billow/internal/models"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// RenderInvoice produces a single-page A4 document for the invoice,
// including a scannable payment-reference QR code.
func RenderInvoice(inv *models.Invoice) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Arial", "B", 22)
	doc.Cell(0, 12, "INVOICE")
	doc.Ln(16)

	doc.SetFont("Arial", "", 10)
	doc.SetTextColor(110, 110, 110)
	doc.Cell(0, 6, "Reference: "+inv.ID)
	doc.Ln(10)
	doc.SetTextColor(0, 0, 0)

	rows := [][2]string{
		{"Vendor", inv.VendorName},
		{"Amount", fmt.Sprintf("$%.2f", inv.Amount)},
		{"Due date", inv.DueDate.Format("2006-01-02")},
		{"Status", string(inv.Status(time.Now()))},
		{"Created", inv.CreatedAt.Format("2006-01-02")},
	}

	for _, row := range rows {
		doc.SetFont("Arial", "B", 11)
		doc.CellFormat(35, 8, row[0], "", 0, "L", false, 0, "")
		doc.SetFont("Arial", "", 11)
		doc.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	doc.Ln(4)
	doc.SetFont("Arial", "B", 11)
	doc.Cell(0, 8, "Description")
	doc.Ln(8)
	doc.SetFont("Arial", "", 11)
	doc.MultiCell(0, 6, inv.Description, "", "L", false)

	if err := embedPaymentQR(doc, inv); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func embedPaymentQR(doc *gofpdf.Fpdf, inv *models.Invoice) error {
	ref := fmt.Sprintf("billow:invoice:%s:%.2f", inv.ID, inv.Amount)

	png, err := qrcode.Encode(ref, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to encode payment QR: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("payment-qr", opts, bytes.NewReader(png))
	doc.ImageOptions("payment-qr", 160, 20, 30, 30, false, opts, 0, "")

	doc.SetY(-30)
	doc.SetFont("Arial", "", 8)
	doc.SetTextColor(110, 110, 110)
	doc.Cell(0, 5, "Scan the code to pay this invoice.")

	return nil
}
