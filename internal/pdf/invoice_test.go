package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/billow-app/billow/internal/models"
)

func TestRenderInvoice(t *testing.T) {
	inv := &models.Invoice{
		ID:          "7c1a34f2-8a40-4f0e-9a6a-1f91a0a2d111",
		UserID:      "user-1",
		VendorName:  "Acme Corp",
		Amount:      1250.50,
		DueDate:     time.Now().Add(14 * 24 * time.Hour),
		Description: "Quarterly hosting services",
		Paid:        false,
		CreatedAt:   time.Now(),
	}

	out, err := RenderInvoice(inv)
	if err != nil {
		t.Fatalf("RenderInvoice() error = %v", err)
	}

	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("RenderInvoice() output does not start with %%PDF header")
	}

	if len(out) < 1000 {
		t.Errorf("RenderInvoice() output suspiciously small: %d bytes", len(out))
	}
}

func TestRenderInvoiceEmptyDescription(t *testing.T) {
	inv := &models.Invoice{
		ID:         "17d7f5e1-4c3b-4e6a-8d8a-2b91c0b3e222",
		VendorName: "Globex",
		Amount:     80,
		DueDate:    time.Now(),
		Paid:       true,
		CreatedAt:  time.Now(),
	}

	out, err := RenderInvoice(inv)
	if err != nil {
		t.Fatalf("RenderInvoice() error = %v", err)
	}
	if len(out) == 0 {
		t.Error("RenderInvoice() returned empty output")
	}
}
