package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/models"
	usermodel "github.com/billow-app/billow/internal/models/user"
	"github.com/google/uuid"
)

// MemoryUserStorage is an in-memory UserStorage used in tests and local
// development without Postgres.
type MemoryUserStorage struct {
	mu    sync.RWMutex
	users map[string]*usermodel.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{
		users: make(map[string]*usermodel.User),
	}
}

func (s *MemoryUserStorage) CreateUser(_ context.Context, req *usermodel.CreateUserRequest, passwordHash string) (*usermodel.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == req.Email {
			return nil, apperr.ErrEmailTaken
		}
	}

	now := time.Now()
	user := &usermodel.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (s *MemoryUserStorage) GetUserByEmail(_ context.Context, email string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStorage) GetUserByID(_ context.Context, userID string) (*usermodel.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[userID]
	if !exists {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

// MemoryInvoiceStorage keeps invoices in insertion order so that unsorted
// listings and sort tie-breaking stay stable, like rows in the real store.
type MemoryInvoiceStorage struct {
	mu       sync.RWMutex
	invoices []*models.Invoice
}

func NewMemoryInvoiceStorage() *MemoryInvoiceStorage {
	return &MemoryInvoiceStorage{}
}

func (s *MemoryInvoiceStorage) Create(_ context.Context, inv *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *inv
	s.invoices = append(s.invoices, &copied)
	return nil
}

func (s *MemoryInvoiceStorage) GetByID(_ context.Context, id string) (*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, inv := range s.invoices {
		if inv.ID == id {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryInvoiceStorage) Update(_ context.Context, id string, upd InvoiceUpdate) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invoices {
		if inv.ID != id {
			continue
		}
		if upd.VendorName != nil {
			inv.VendorName = *upd.VendorName
		}
		if upd.Amount != nil {
			inv.Amount = *upd.Amount
		}
		if upd.DueDate != nil {
			inv.DueDate = *upd.DueDate
		}
		if upd.Description != nil {
			inv.Description = *upd.Description
		}
		if upd.Paid != nil {
			inv.Paid = *upd.Paid
		}
		inv.UpdatedAt = time.Now()

		copied := *inv
		return &copied, nil
	}
	return nil, apperr.ErrNotFound
}

func (s *MemoryInvoiceStorage) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return nil
		}
	}
	return apperr.ErrNotFound
}

func (s *MemoryInvoiceStorage) ListAll(_ context.Context) ([]*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		copied := *inv
		out = append(out, &copied)
	}
	return out, nil
}

func (s *MemoryInvoiceStorage) ListByUser(_ context.Context, userID string, page, limit int) ([]*models.Invoice, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.ownedLocked(userID)
	return pageOf(owned, page, limit), len(owned), nil
}

func (s *MemoryInvoiceStorage) ListByUserSorted(_ context.Context, userID string, dir models.SortDirection, page, limit int) ([]*models.Invoice, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := s.ownedLocked(userID)
	sort.SliceStable(owned, func(i, j int) bool {
		if dir == models.SortDesc {
			return owned[i].Amount > owned[j].Amount
		}
		return owned[i].Amount < owned[j].Amount
	})
	return pageOf(owned, page, limit), len(owned), nil
}

func (s *MemoryInvoiceStorage) ownedLocked(userID string) []*models.Invoice {
	var owned []*models.Invoice
	for _, inv := range s.invoices {
		if inv.UserID == userID {
			copied := *inv
			owned = append(owned, &copied)
		}
	}
	return owned
}

func pageOf(invoices []*models.Invoice, page, limit int) []*models.Invoice {
	start := page * limit
	if start >= len(invoices) {
		return []*models.Invoice{}
	}
	end := start + limit
	if end > len(invoices) {
		end = len(invoices)
	}
	return invoices[start:end]
}
