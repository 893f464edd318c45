package service

import (
	"context"
	"fmt"
	"time"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/models"
	"github.com/billow-app/billow/internal/storage"
	"github.com/google/uuid"
)

const (
	DefaultPage  = 0
	DefaultLimit = 10
)

type InvoiceService struct {
	invoices storage.InvoiceStorage
}

func NewInvoiceService(invoices storage.InvoiceStorage) *InvoiceService {
	return &InvoiceService{invoices: invoices}
}

// ListAll is the unscoped administrative listing; it carries no ownership
// filter.
func (s *InvoiceService) ListAll(ctx context.Context) ([]*models.Invoice, error) {
	invoices, err := s.invoices.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []*models.Invoice{}
	}
	return invoices, nil
}

// ListForUser returns the caller's page of invoices. An empty sortDirection
// keeps storage order; anything other than "asc" sorts by amount descending,
// matching the lenient coercion of the original API.
func (s *InvoiceService) ListForUser(ctx context.Context, userID, sortDirection string, page, limit int) (*models.PaginatedInvoices, error) {
	if page < 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var (
		data  []*models.Invoice
		total int
		err   error
	)

	if sortDirection == "" {
		data, total, err = s.invoices.ListByUser(ctx, userID, page, limit)
	} else {
		dir := models.SortDesc
		if sortDirection == string(models.SortAsc) {
			dir = models.SortAsc
		}
		data, total, err = s.invoices.ListByUserSorted(ctx, userID, dir, page, limit)
	}
	if err != nil {
		return nil, err
	}

	if data == nil {
		data = []*models.Invoice{}
	}

	return &models.PaginatedInvoices{
		Data: data,
		Meta: models.PageMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

// Get returns the invoice only when the caller owns it. Foreign rows answer
// ErrNotFound rather than Forbidden so ids cannot be probed for existence.
func (s *InvoiceService) Get(ctx context.Context, callerID, id string) (*models.Invoice, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.UserID != callerID {
		return nil, apperr.ErrNotFound
	}
	return inv, nil
}

func (s *InvoiceService) Create(ctx context.Context, userID string, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	var fields []string
	if req.VendorName == "" {
		fields = append(fields, "vendor_name is required")
	}
	if req.Amount < 0 {
		fields = append(fields, "amount must not be negative")
	}
	if req.Description == "" {
		fields = append(fields, "description is required")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		fields = append(fields, "due_date must be a valid date")
	}

	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	now := time.Now()
	inv := &models.Invoice{
		ID:          uuid.New().String(),
		UserID:      userID, // owner always comes from the authenticated caller
		VendorName:  req.VendorName,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Description: req.Description,
		Paid:        req.Paid != nil && *req.Paid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *InvoiceService) Update(ctx context.Context, callerID, id string, req *models.UpdateInvoiceRequest) (*models.Invoice, error) {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return nil, err
	}

	upd := storage.InvoiceUpdate{
		VendorName:  req.VendorName,
		Amount:      req.Amount,
		Description: req.Description,
		Paid:        req.Paid,
	}

	if req.VendorName != nil && *req.VendorName == "" {
		return nil, apperr.Validation("vendor_name must not be empty")
	}
	if req.Amount != nil && *req.Amount < 0 {
		return nil, apperr.Validationf("amount must not be negative, got %v", *req.Amount)
	}
	if req.Description != nil && *req.Description == "" {
		return nil, apperr.Validation("description must not be empty")
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, apperr.Validationf("due_date must be a valid date, got %q", *req.DueDate)
		}
		upd.DueDate = &dueDate
	}

	return s.invoices.Update(ctx, id, upd)
}

func (s *InvoiceService) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.Get(ctx, callerID, id); err != nil {
		return err
	}
	return s.invoices.Delete(ctx, id)
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
