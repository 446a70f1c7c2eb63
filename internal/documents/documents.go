// Package documents renders printable artifacts for fulfillment: the packing
// slip PDF produced at pack time and the collection QR handed to pickup
// customers.
package documents

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/threadcount/retailops/internal/models"
)

// SlipLine is one printed order line. Product names are resolved by the
// caller so the renderer stays free of database access.
type SlipLine struct {
	ProductName string
	SKU         string
	SizeName    string
	Quantity    int
}

// PackingSlipPDF renders an A4 packing slip for an order.
func PackingSlipPDF(order *models.Order, lines []SlipLine) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Packing Slip", "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order %s", order.OrderNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fulfillment: %s", order.FulfillmentType), "", 1, "L", false, 0, "")
	if order.DeliveryAddress != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Deliver to: %s", order.DeliveryAddress), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 7, "Product", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "SKU", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Size", "1", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range lines {
		pdf.CellFormat(80, 7, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, line.SKU, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, line.SizeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total: %.2f", order.TotalAmount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CollectionQR encodes the order's collection reference as a PNG QR code.
// Staff scan it at the pickup point before marking the order collected.
func CollectionQR(order *models.Order) ([]byte, error) {
	content := fmt.Sprintf("RETAILOPS/COLLECT/%s", order.OrderNumber)
	return qrcode.Encode(content, qrcode.Medium, 256)
}
