package storage

import (
	"context"
	"time"

	"github.com/billow-app/billow/internal/models"
	usermodel "github.com/billow-app/billow/internal/models/user"
)

// UserStorage is the user directory. Lookups return (nil, nil) when no row
// matches; CreateUser fails with apperr.ErrEmailTaken on a duplicate email.
type UserStorage interface {
	CreateUser(ctx context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error)
	GetUserByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetUserByID(ctx context.Context, userID string) (*usermodel.User, error)
}

// InvoiceUpdate is a partial update; nil fields keep their stored value.
type InvoiceUpdate struct {
	VendorName  *string
	Amount      *float64
	DueDate     *time.Time
	Description *string
	Paid        *bool
}

// InvoiceStorage is the per-user invoice collection. List calls return the
// page of rows plus the owner's full row count. GetByID returns (nil, nil)
// when no row matches; Update and Delete fail with apperr.ErrNotFound.
type InvoiceStorage interface {
	Create(ctx context.Context, inv *models.Invoice) error
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	Update(ctx context.Context, id string, upd InvoiceUpdate) (*models.Invoice, error)
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*models.Invoice, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*models.Invoice, int, error)
	ListByUserSorted(ctx context.Context, userID string, dir models.SortDirection, page, limit int) ([]*models.Invoice, int, error)
}
