package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
)

// TransactionRepository provides data access methods for the
// fund_transaction table.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, fund_id, type, amount, date, currency, description, created_at, updated_at`

func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var tx model.Transaction
	var description sql.NullString
	var date, createdAt, updatedAt string

	err := scan(
		&tx.ID,
		&tx.FundID,
		&tx.Type,
		&tx.Amount,
		&date,
		&tx.Currency,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	if description.Valid {
		tx.Description = description.String
	}
	if tx.Date, err = ParseTime(date); err != nil {
		return model.Transaction{}, err
	}
	if tx.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Transaction{}, err
	}
	if tx.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Transaction{}, err
	}

	return tx, nil
}

func (r *TransactionRepository) queryTransactions(query string, args ...any) ([]model.Transaction, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund_transaction table results: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransactions retrieves all transactions, optionally scoped to a fund,
// sorted by date descending (most recent first).
func (r *TransactionRepository) GetTransactions(fundID string) ([]model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM fund_transaction WHERE 1=1`

	var args []any

	if fundID != "" {
		query += ` AND fund_id = ?`
		args = append(args, fundID)
	}

	query += ` ORDER BY date DESC`

	return r.queryTransactions(query, args...)
}

// GetTransactionsByDateRange retrieves a fund's transactions with dates in
// [startDate, endDate], sorted ascending (oldest first).
func (r *TransactionRepository) GetTransactionsByDateRange(fundID string, startDate, endDate time.Time) ([]model.Transaction, error) {
	if startDate.After(endDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM fund_transaction
		WHERE fund_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`

	return r.queryTransactions(query, fundID, formatDate(startDate), formatDate(endDate))
}

// GetTransactionByID retrieves a single transaction by ID.
// Returns apperrors.ErrTransactionNotFound if no such transaction exists.
func (r *TransactionRepository) GetTransactionByID(transactionID string) (model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM fund_transaction WHERE id = ?`

	tx, err := scanTransaction(r.db.QueryRow(query, transactionID).Scan)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to query fund_transaction table: %w", err)
	}

	return tx, nil
}

// InsertTransaction inserts a new transaction row.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		INSERT INTO fund_transaction (` + transactionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.FundID,
		tx.Type,
		tx.Amount,
		formatDate(tx.Date),
		tx.Currency,
		tx.Description,
		formatDateTime(tx.CreatedAt),
		formatDateTime(tx.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// UpdateTransaction writes back a fully merged transaction row.
// Returns apperrors.ErrTransactionNotFound when the ID does not exist.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, tx *model.Transaction) error {
	query := `
		UPDATE fund_transaction
		SET type = ?, amount = ?, date = ?, currency = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		tx.Type,
		tx.Amount,
		formatDate(tx.Date),
		tx.Currency,
		tx.Description,
		formatDateTime(tx.UpdatedAt),
		tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by ID.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fund_transaction WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}
