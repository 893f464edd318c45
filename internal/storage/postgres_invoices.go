package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/billow-app/billow/internal/apperr"
	"github.com/billow-app/billow/internal/database"
	"github.com/billow-app/billow/internal/models"
	"github.com/jackc/pgx/v5"
)

type PostgresInvoiceStorage struct {
	db *database.DBManager
}

func NewPostgresInvoiceStorage(db *database.DBManager) *PostgresInvoiceStorage {
	return &PostgresInvoiceStorage{db: db}
}

const invoiceColumns = `id, user_id, vendor_name, amount, due_date, description, paid, created_at, updated_at`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.UserID,
		&inv.VendorName,
		&inv.Amount,
		&inv.DueDate,
		&inv.Description,
		&inv.Paid,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (s *PostgresInvoiceStorage) Create(ctx context.Context, inv *models.Invoice) error {
	query := `
		INSERT INTO invoices (id, user_id, vendor_name, amount, due_date, description, paid, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := s.db.Write().Exec(ctx, query,
		inv.ID,
		inv.UserID,
		inv.VendorName,
		inv.Amount,
		inv.DueDate,
		inv.Description,
		inv.Paid,
		inv.CreatedAt,
		inv.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	return nil
}

func (s *PostgresInvoiceStorage) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.Read().QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return inv, nil
}

func (s *PostgresInvoiceStorage) Update(ctx context.Context, id string, upd InvoiceUpdate) (*models.Invoice, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if upd.VendorName != nil {
		sets = append(sets, "vendor_name = "+arg(*upd.VendorName))
	}
	if upd.Amount != nil {
		sets = append(sets, "amount = "+arg(*upd.Amount))
	}
	if upd.DueDate != nil {
		sets = append(sets, "due_date = "+arg(*upd.DueDate))
	}
	if upd.Description != nil {
		sets = append(sets, "description = "+arg(*upd.Description))
	}
	if upd.Paid != nil {
		sets = append(sets, "paid = "+arg(*upd.Paid))
	}

	query := `
		UPDATE invoices
		SET ` + strings.Join(sets, ", ") + `
		WHERE id = ` + arg(id) + `
		RETURNING ` + invoiceColumns

	inv, err := scanInvoice(s.db.Write().QueryRow(ctx, query, args...))
	if err == pgx.ErrNoRows {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return inv, nil
}

func (s *PostgresInvoiceStorage) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`

	cmdTag, err := s.db.Write().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}

	return nil
}

func (s *PostgresInvoiceStorage) ListAll(ctx context.Context) ([]*models.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices ORDER BY created_at DESC`

	rows, err := s.db.Read().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

func (s *PostgresInvoiceStorage) ListByUser(ctx context.Context, userID string, page, limit int) ([]*models.Invoice, int, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE user_id = $1
		ORDER BY created_at
		OFFSET $2 LIMIT $3
	`
	return s.pageWithCount(ctx, userID, query, page, limit)
}

func (s *PostgresInvoiceStorage) ListByUserSorted(ctx context.Context, userID string, dir models.SortDirection, page, limit int) ([]*models.Invoice, int, error) {
	order := "ASC"
	if dir == models.SortDesc {
		order = "DESC"
	}

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE user_id = $1
		ORDER BY amount ` + order + `
		OFFSET $2 LIMIT $3
	`
	return s.pageWithCount(ctx, userID, query, page, limit)
}

// pageWithCount issues the page query and the owner count concurrently.
// The two reads are independent snapshots; under concurrent writes the
// count may drift from the page by a row, which callers accept.
func (s *PostgresInvoiceStorage) pageWithCount(ctx context.Context, userID, pageQuery string, page, limit int) ([]*models.Invoice, int, error) {
	type countResult struct {
		total int
		err   error
	}
	countCh := make(chan countResult, 1)

	go func() {
		var total int
		err := s.db.Read().QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE user_id = $1`, userID).Scan(&total)
		countCh <- countResult{total: total, err: err}
	}()

	rows, err := s.db.Read().Query(ctx, pageQuery, userID, page*limit, limit)
	if err != nil {
		<-countCh
		return nil, 0, fmt.Errorf("failed to list invoices: %w", err)
	}
	invoices, err := collectInvoices(rows)
	rows.Close()
	if err != nil {
		<-countCh
		return nil, 0, err
	}

	count := <-countCh
	if count.err != nil {
		return nil, 0, fmt.Errorf("failed to count invoices: %w", count.err)
	}

	return invoices, count.total, nil
}

func collectInvoices(rows pgx.Rows) ([]*models.Invoice, error) {
	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return invoices, nil
}
