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

// FundRepository provides data access methods for the fund table.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

const fundColumns = `id, name, description, fund_size, vintage_year, management_fee_percent, carry_percent, currency, status, created_at, updated_at`

func scanFund(scan func(...any) error) (model.Fund, error) {
	var f model.Fund
	var description sql.NullString
	var createdAt, updatedAt string

	err := scan(
		&f.ID,
		&f.Name,
		&description,
		&f.FundSize,
		&f.VintageYear,
		&f.ManagementFeePercent,
		&f.CarryPercent,
		&f.Currency,
		&f.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return model.Fund{}, err
	}

	if description.Valid {
		f.Description = description.String
	}
	if f.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Fund{}, err
	}
	if f.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Fund{}, err
	}

	return f, nil
}

// GetFunds retrieves funds matching the given filters.
// A nil filter set returns all funds. Supplied predicates are ANDed;
// unsupplied bounds are omitted from the query entirely.
func (r *FundRepository) GetFunds(filters *request.FundFilters) ([]model.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM fund WHERE 1=1`

	var args []any

	if filters != nil {
		if filters.Status != "" {
			query += ` AND status = ?`
			args = append(args, filters.Status)
		}
		if filters.Currency != "" {
			query += ` AND currency = ?`
			args = append(args, filters.Currency)
		}
		if filters.VintageYear != nil {
			query += ` AND vintage_year = ?`
			args = append(args, *filters.VintageYear)
		}
		if filters.MinFundSize != nil {
			query += ` AND fund_size >= ?`
			args = append(args, *filters.MinFundSize)
		}
		if filters.MaxFundSize != nil {
			query += ` AND fund_size <= ?`
			args = append(args, *filters.MaxFundSize)
		}
	}

	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}

	for rows.Next() {
		f, err := scanFund(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// GetFundByID retrieves a single fund by ID.
// Returns apperrors.ErrFundNotFound if no such fund exists.
func (r *FundRepository) GetFundByID(fundID string) (model.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM fund WHERE id = ?`

	f, err := scanFund(r.db.QueryRow(query, fundID).Scan)
	if err == sql.ErrNoRows {
		return model.Fund{}, apperrors.ErrFundNotFound
	}
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to query fund table: %w", err)
	}

	return f, nil
}

// GetFundByName retrieves a fund by exact, case-sensitive name match.
// Returns nil, nil if no fund carries the name.
func (r *FundRepository) GetFundByName(name string) (*model.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM fund WHERE name = ?`

	f, err := scanFund(r.db.QueryRow(query, name).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}

	return &f, nil
}

// GetFundRefs batch-fetches name and currency for the given fund IDs.
// This is the read-side join step: investments and transactions hold weak
// fund references, so display fields are fetched here and attached by the
// service. IDs that no longer resolve are simply absent from the map.
func (r *FundRepository) GetFundRefs(fundIDs []string) (map[string]model.FundRef, error) {
	refs := make(map[string]model.FundRef)
	if len(fundIDs) == 0 {
		return refs, nil
	}

	placeholders := make([]string, len(fundIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT id, name, currency FROM fund WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	args := make([]any, len(fundIDs))
	for i, id := range fundIDs {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ref model.FundRef
		if err := rows.Scan(&ref.ID, &ref.Name, &ref.Currency); err != nil {
			return nil, fmt.Errorf("failed to scan fund table results: %w", err)
		}
		refs[ref.ID] = ref
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return refs, nil
}

// FundExists reports whether a fund with the given ID exists.
func (r *FundRepository) FundExists(fundID string) (bool, error) {
	var one int
	err := r.db.QueryRow(`SELECT 1 FROM fund WHERE id = ?`, fundID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query fund table: %w", err)
	}
	return true, nil
}

// InsertFund inserts a new fund row.
func (r *FundRepository) InsertFund(ctx context.Context, f *model.Fund) error {
	query := `
		INSERT INTO fund (` + fundColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.Name,
		f.Description,
		f.FundSize,
		f.VintageYear,
		f.ManagementFeePercent,
		f.CarryPercent,
		f.Currency,
		f.Status,
		formatDateTime(f.CreatedAt),
		formatDateTime(f.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fund: %w", err)
	}

	return nil
}

// UpdateFund writes back a fully merged fund row.
// Returns apperrors.ErrFundNotFound when the ID does not exist.
func (r *FundRepository) UpdateFund(ctx context.Context, f *model.Fund) error {
	query := `
		UPDATE fund
		SET name = ?, description = ?, fund_size = ?, vintage_year = ?,
		    management_fee_percent = ?, carry_percent = ?, currency = ?,
		    status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		f.Name,
		f.Description,
		f.FundSize,
		f.VintageYear,
		f.ManagementFeePercent,
		f.CarryPercent,
		f.Currency,
		f.Status,
		formatDateTime(f.UpdatedAt),
		f.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update fund: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// DeleteFund removes a fund by ID. Deletion is unconditional: investments
// and transactions referencing the fund are left in place as orphans.
func (r *FundRepository) DeleteFund(ctx context.Context, fundID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fund WHERE id = ?`, fundID)
	if err != nil {
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}
