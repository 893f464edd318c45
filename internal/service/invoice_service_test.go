package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/models"
	"github.com/billow-app/billow/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInvoice(t *testing.T, svc *InvoiceService, userID, vendor string, amount float64) *models.Invoice {
	t.Helper()
	inv, err := svc.Create(context.Background(), userID, &models.CreateInvoiceRequest{
		VendorName:  vendor,
		Amount:      amount,
		DueDate:     "2026-12-31",
		Description: "Consulting services",
	})
	require.NoError(t, err)
	return inv
}

func TestCreateThenGet_RoundTrip(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	paid := true
	created, err := svc.Create(ctx, "user-1", &models.CreateInvoiceRequest{
		VendorName:  "Acme Corp",
		Amount:      150.5,
		DueDate:     "2026-12-31",
		Description: "Consulting services",
		Paid:        &paid,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "user-1", created.UserID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := svc.Get(ctx, "user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.VendorName)
	assert.Equal(t, 150.5, got.Amount)
	assert.Equal(t, "Consulting services", got.Description)
	assert.True(t, got.Paid)
	assert.Equal(t, created.DueDate, got.DueDate)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.CreateInvoiceRequest
	}{
		{"empty vendor", models.CreateInvoiceRequest{Amount: 10, DueDate: "2026-01-01", Description: "x"}},
		{"negative amount", models.CreateInvoiceRequest{VendorName: "Acme", Amount: -1, DueDate: "2026-01-01", Description: "x"}},
		{"bad due date", models.CreateInvoiceRequest{VendorName: "Acme", Amount: 10, DueDate: "soon", Description: "x"}},
		{"empty description", models.CreateInvoiceRequest{VendorName: "Acme", Amount: 10, DueDate: "2026-01-01"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, "user-1", &tc.req)
			assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestListForUser_Pagination(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		createInvoice(t, svc, "user-1", fmt.Sprintf("Vendor %d", i), float64(i))
	}
	createInvoice(t, svc, "user-2", "Other Owner", 999)

	res, err := svc.ListForUser(ctx, "user-1", "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, res.Data, 10)
	assert.Equal(t, 25, res.Meta.Total)
	assert.Equal(t, 3, res.Meta.TotalPages)
	assert.Equal(t, 0, res.Meta.Page)
	assert.Equal(t, 10, res.Meta.Limit)

	// Last page holds the remainder.
	res, err = svc.ListForUser(ctx, "user-1", "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, res.Data, 5)

	// Past the end: empty page, same meta.
	res, err = svc.ListForUser(ctx, "user-1", "", 5, 10)
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 25, res.Meta.Total)
}

func TestListForUser_Defaults(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		createInvoice(t, svc, "user-1", "Vendor", float64(i))
	}

	// Omitted paging parameters fall back to page=0, limit=10.
	res, err := svc.ListForUser(ctx, "user-1", "", -1, 0)
	require.NoError(t, err)
	assert.Len(t, res.Data, 10)
	assert.Equal(t, 0, res.Meta.Page)
	assert.Equal(t, 10, res.Meta.Limit)
	assert.Equal(t, 2, res.Meta.TotalPages)
}

func TestListForUser_SortedByAmount(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	createInvoice(t, svc, "user-1", "First", 100)
	createInvoice(t, svc, "user-1", "Second", 50)

	res, err := svc.ListForUser(ctx, "user-1", "asc", 0, 10)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, 50.0, res.Data[0].Amount)
	assert.Equal(t, 100.0, res.Data[1].Amount)

	res, err = svc.ListForUser(ctx, "user-1", "desc", 0, 10)
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, 100.0, res.Data[0].Amount)
	assert.Equal(t, 50.0, res.Data[1].Amount)
}

func TestListForUser_SortedSameRowSet(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	ids := make(map[string]bool)
	for i := 0; i < 8; i++ {
		inv := createInvoice(t, svc, "user-1", "Vendor", float64(10*i))
		ids[inv.ID] = true
	}

	sorted, err := svc.ListForUser(ctx, "user-1", "asc", 0, 10)
	require.NoError(t, err)
	require.Len(t, sorted.Data, 8)
	for _, inv := range sorted.Data {
		assert.True(t, ids[inv.ID], "sorted listing returned unknown row %s", inv.ID)
	}

	for i := 1; i < len(sorted.Data); i++ {
		assert.LessOrEqual(t, sorted.Data[i-1].Amount, sorted.Data[i].Amount)
	}
}

func TestGet_OtherUsersInvoice(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	inv := createInvoice(t, svc, "user-1", "Acme", 100)

	_, err := svc.Get(ctx, "user-2", inv.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdate_Partial(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	inv := createInvoice(t, svc, "user-1", "Acme", 100)

	paid := true
	updated, err := svc.Update(ctx, "user-1", inv.ID, &models.UpdateInvoiceRequest{Paid: &paid})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
	assert.Equal(t, "Acme", updated.VendorName)
	assert.Equal(t, 100.0, updated.Amount)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	inv := createInvoice(t, svc, "user-1", "Acme", 100)

	badDate := "soon"
	_, err := svc.Update(ctx, "user-1", inv.ID, &models.UpdateInvoiceRequest{DueDate: &badDate})
	assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), `"soon"`)

	badAmount := -5.0
	_, err = svc.Update(ctx, "user-1", inv.ID, &models.UpdateInvoiceRequest{Amount: &badAmount})
	assert.True(t, apperr.IsValidation(err), "expected validation error, got %v", err)
	assert.Contains(t, err.Error(), "-5")
}

func TestUpdate_OtherUsersInvoice(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	inv := createInvoice(t, svc, "user-1", "Acme", 100)

	paid := true
	_, err := svc.Update(ctx, "user-2", inv.ID, &models.UpdateInvoiceRequest{Paid: &paid})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDelete_RepeatedDeleteFails(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	inv := createInvoice(t, svc, "user-1", "Acme", 100)

	require.NoError(t, svc.Delete(ctx, "user-1", inv.ID))

	err := svc.Delete(ctx, "user-1", inv.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListAll_Unscoped(t *testing.T) {
	svc := NewInvoiceService(storage.NewMemoryInvoiceStorage())
	ctx := context.Background()

	createInvoice(t, svc, "user-1", "Acme", 100)
	createInvoice(t, svc, "user-2", "Globex", 200)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
