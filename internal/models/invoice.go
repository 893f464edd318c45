package models

import "time"

// Status is the client-facing view of an invoice's payment state. The
// store only tracks the paid flag; OVERDUE is derived at read time and
// never persisted.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
)

// Invoice is the persisted shape. JSON field names match the wire contract
// (snake_case for the columns, createdAt/userId kept as the original API
// exposed them).
type Invoice struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	VendorName  string    `json:"vendor_name"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Description string    `json:"description"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Status derives the payment state as of now.
func (i *Invoice) Status(now time.Time) Status {
	if i.Paid {
		return StatusPaid
	}
	if i.DueDate.Before(now) {
		return StatusOverdue
	}
	return StatusPending
}

type CreateInvoiceRequest struct {
	VendorName  string  `json:"vendor_name"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description"`
	Paid        *bool   `json:"paid,omitempty"`
}

// UpdateInvoiceRequest carries a partial update; nil fields are left
// untouched.
type UpdateInvoiceRequest struct {
	VendorName  *string  `json:"vendor_name,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Paid        *bool    `json:"paid,omitempty"`
}

type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PaginatedInvoices struct {
	Data []*Invoice `json:"data"`
	Meta PageMeta   `json:"meta"`
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error,omitempty"`
}
