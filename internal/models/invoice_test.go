package models

import (
	"testing"
	"time"
)

func TestInvoiceStatus_Paid(t *testing.T) {
	now := time.Now()
	inv := &Invoice{Paid: true, DueDate: now.Add(-48 * time.Hour)}

	// Paid wins even when the due date has passed.
	if got := inv.Status(now); got != StatusPaid {
		t.Errorf("expected PAID, got %s", got)
	}
}

func TestInvoiceStatus_Overdue(t *testing.T) {
	now := time.Now()
	inv := &Invoice{Paid: false, DueDate: now.Add(-time.Hour)}

	if got := inv.Status(now); got != StatusOverdue {
		t.Errorf("expected OVERDUE, got %s", got)
	}
}

func TestInvoiceStatus_Pending(t *testing.T) {
	now := time.Now()
	inv := &Invoice{Paid: false, DueDate: now.Add(72 * time.Hour)}

	if got := inv.Status(now); got != StatusPending {
		t.Errorf("expected PENDING, got %s", got)
	}
}
