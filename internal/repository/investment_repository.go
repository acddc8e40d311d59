package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
)

// InvestmentRepository provides data access methods for the investment table.
type InvestmentRepository struct {
	db *sql.DB
}

// NewInvestmentRepository creates a new InvestmentRepository with the provided database connection.
func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

const investmentColumns = `id, fund_id, company_name, invested_amount, current_value, investment_date, currency, status, description, created_at, updated_at`

func scanInvestment(scan func(...any) error) (model.Investment, error) {
	var inv model.Investment
	var description sql.NullString
	var investmentDate, createdAt, updatedAt string

	err := scan(
		&inv.ID,
		&inv.FundID,
		&inv.CompanyName,
		&inv.InvestedAmount,
		&inv.CurrentValue,
		&investmentDate,
		&inv.Currency,
		&inv.Status,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Investment{}, err
	}

	if description.Valid {
		inv.Description = description.String
	}
	if inv.InvestmentDate, err = ParseTime(investmentDate); err != nil {
		return model.Investment{}, err
	}
	if inv.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Investment{}, err
	}
	if inv.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Investment{}, err
	}

	return inv, nil
}

// GetInvestments retrieves investments matching the given filters and
// optional case-insensitive company-name substring search, sorted by
// investment date descending (most recent first).
//
// All supplied predicates are ANDed. A nil filter set with an empty search
// string returns every investment.
func (r *InvestmentRepository) GetInvestments(filters *request.InvestmentFilters, search string) ([]model.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investment WHERE 1=1`

	var args []any

	if search != "" {
		// Escape LIKE wildcards so the search text is matched literally.
		escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
		query += ` AND company_name LIKE ? ESCAPE '\'`
		args = append(args, "%"+escaped+"%")
	}

	if filters != nil {
		if filters.FundID != "" {
			query += ` AND fund_id = ?`
			args = append(args, filters.FundID)
		}
		if filters.Status != "" {
			query += ` AND status = ?`
			args = append(args, filters.Status)
		}
		if filters.Currency != "" {
			query += ` AND currency = ?`
			args = append(args, filters.Currency)
		}
		if filters.MinInvestedAmount != nil {
			query += ` AND invested_amount >= ?`
			args = append(args, *filters.MinInvestedAmount)
		}
		if filters.MaxInvestedAmount != nil {
			query += ` AND invested_amount <= ?`
			args = append(args, *filters.MaxInvestedAmount)
		}
		if filters.MinCurrentValue != nil {
			query += ` AND current_value >= ?`
			args = append(args, *filters.MinCurrentValue)
		}
		if filters.MaxCurrentValue != nil {
			query += ` AND current_value <= ?`
			args = append(args, *filters.MaxCurrentValue)
		}
		if filters.StartDate != nil {
			query += ` AND investment_date >= ?`
			args = append(args, formatDate(*filters.StartDate))
		}
		if filters.EndDate != nil {
			query += ` AND investment_date <= ?`
			args = append(args, formatDate(*filters.EndDate))
		}
	}

	query += ` ORDER BY investment_date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query investment table: %w", err)
	}
	defer rows.Close()

	investments := []model.Investment{}

	for rows.Next() {
		inv, err := scanInvestment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment table results: %w", err)
		}
		investments = append(investments, inv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment table: %w", err)
	}

	return investments, nil
}

// GetInvestmentByID retrieves a single investment by ID.
// Returns apperrors.ErrInvestmentNotFound if no such investment exists.
func (r *InvestmentRepository) GetInvestmentByID(investmentID string) (model.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investment WHERE id = ?`

	inv, err := scanInvestment(r.db.QueryRow(query, investmentID).Scan)
	if err == sql.ErrNoRows {
		return model.Investment{}, apperrors.ErrInvestmentNotFound
	}
	if err != nil {
		return model.Investment{}, fmt.Errorf("failed to query investment table: %w", err)
	}

	return inv, nil
}

// InsertInvestment inserts a new investment row.
func (r *InvestmentRepository) InsertInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		INSERT INTO investment (` + investmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		inv.ID,
		inv.FundID,
		inv.CompanyName,
		inv.InvestedAmount,
		inv.CurrentValue,
		formatDate(inv.InvestmentDate),
		inv.Currency,
		inv.Status,
		inv.Description,
		formatDateTime(inv.CreatedAt),
		formatDateTime(inv.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert investment: %w", err)
	}

	return nil
}

// UpdateInvestment writes back a fully merged investment row.
// Returns apperrors.ErrInvestmentNotFound when the ID does not exist.
func (r *InvestmentRepository) UpdateInvestment(ctx context.Context, inv *model.Investment) error {
	query := `
		UPDATE investment
		SET company_name = ?, invested_amount = ?, current_value = ?,
		    investment_date = ?, currency = ?, status = ?, description = ?,
		    updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		inv.CompanyName,
		inv.InvestedAmount,
		inv.CurrentValue,
		formatDate(inv.InvestmentDate),
		inv.Currency,
		inv.Status,
		inv.Description,
		formatDateTime(inv.UpdatedAt),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}

// DeleteInvestment removes an investment by ID.
func (r *InvestmentRepository) DeleteInvestment(ctx context.Context, investmentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM investment WHERE id = ?`, investmentID)
	if err != nil {
		return fmt.Errorf("failed to delete investment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrInvestmentNotFound
	}

	return nil
}
