package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/billow-app/billow/internal/models"
)

// Invoice is the client-side shape. Status is derived here at the
// boundary; the server never sends it.
type Invoice struct {
	ID          string
	ClientName  string
	Amount      float64
	DueDate     string
	Description string
	Paid        bool
	Status      models.Status
	CreatedAt   time.Time
}

type InvoicePage struct {
	Invoices   []Invoice
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

func fromWire(inv *models.Invoice) Invoice {
	return Invoice{
		ID:          inv.ID,
		ClientName:  inv.VendorName,
		Amount:      inv.Amount,
		DueDate:     inv.DueDate.Format("2006-01-02"),
		Description: inv.Description,
		Paid:        inv.Paid,
		Status:      inv.Status(time.Now()),
		CreatedAt:   inv.CreatedAt,
	}
}

func (c *Client) ListInvoices(sortDirection string, page, limit int) (*InvoicePage, error) {
	query := url.Values{}
	if sortDirection != "" {
		query.Set("sortDirection", sortDirection)
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	cacheKey := fmt.Sprintf("invoices|%s|%d|%d", sortDirection, page, limit)

	var wire models.PaginatedInvoices
	if err := c.read(cacheKey, "/api/invoices?"+query.Encode(), &wire); err != nil {
		return nil, err
	}

	result := &InvoicePage{
		Invoices:   make([]Invoice, 0, len(wire.Data)),
		Page:       wire.Meta.Page,
		Limit:      wire.Meta.Limit,
		Total:      wire.Meta.Total,
		TotalPages: wire.Meta.TotalPages,
	}
	for _, inv := range wire.Data {
		result.Invoices = append(result.Invoices, fromWire(inv))
	}
	return result, nil
}

func (c *Client) GetInvoice(id string) (*Invoice, error) {
	var wire models.Invoice
	if err := c.read("invoice|"+id, "/api/invoices/"+id, &wire); err != nil {
		return nil, err
	}
	inv := fromWire(&wire)
	return &inv, nil
}

func (c *Client) CreateInvoice(req *models.CreateInvoiceRequest) (*Invoice, error) {
	var wire models.Invoice
	if err := c.write(http.MethodPost, "/api/invoices", req, &wire); err != nil {
		return nil, err
	}
	inv := fromWire(&wire)
	return &inv, nil
}

func (c *Client) UpdateInvoice(id string, req *models.UpdateInvoiceRequest) (*Invoice, error) {
	var wire models.Invoice
	if err := c.write(http.MethodPatch, "/api/invoices/"+id, req, &wire); err != nil {
		return nil, err
	}
	inv := fromWire(&wire)
	return &inv, nil
}

func (c *Client) DeleteInvoice(id string) error {
	return c.write(http.MethodDelete, "/api/invoices/"+id, nil, nil)
}

// DownloadInvoicePDF fetches the rendered document; it bypasses the cache
// since the payload is binary and regenerated per request.
func (c *Client) DownloadInvoicePDF(id string) ([]byte, error) {
	return c.do(http.MethodGet, "/api/invoices/"+id+"/pdf", nil)
}
