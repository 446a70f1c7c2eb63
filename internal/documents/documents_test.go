package documents

import (
	"bytes"
	"testing"

	"github.com/threadcount/retailops/internal/models"
)

func TestPackingSlipPDF(t *testing.T) {
	order := &models.Order{
		OrderNumber:     "ORD20250101-AB12",
		FulfillmentType: models.FulfillmentCourier,
		DeliveryAddress: "1 High Street",
		TotalAmount:     59.90,
	}
	lines := []SlipLine{
		{ProductName: "Oxford Shirt", SKU: "SH-001", SizeName: "M", Quantity: 2},
		{ProductName: "Leather Belt", SKU: "BL-004", SizeName: "", Quantity: 1},
	}

	data, err := PackingSlipPDF(order, lines)
	if err != nil {
		t.Fatalf("PackingSlipPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output should be a PDF document")
	}
}

func TestCollectionQR(t *testing.T) {
	order := &models.Order{OrderNumber: "ORD20250101-AB12"}

	data, err := CollectionQR(order)
	if err != nil {
		t.Fatalf("CollectionQR: %v", err)
	}
	// PNG signature
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("output should be a PNG image")
	}
}
