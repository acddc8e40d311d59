package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/fundlens/backoffice/internal/model"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithName("Growth Fund III").
//	    WithCurrency("EUR").
//	    WithStatus(model.FundStatusClosed).
//	    Build(t, db)
type FundBuilder struct {
	ID                   string
	Name                 string
	Description          string
	FundSize             float64
	VintageYear          int
	ManagementFeePercent float64
	CarryPercent         float64
	Currency             string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	now := time.Now().UTC()
	return &FundBuilder{
		ID:                   MakeID(),
		Name:                 MakeFundName("Test Fund"),
		Description:          "Test description",
		FundSize:             100_000_000,
		VintageYear:          2020,
		ManagementFeePercent: 2,
		CarryPercent:         20,
		Currency:             "USD",
		Status:               model.FundStatusOpen,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// WithID sets a custom ID.
func (b *FundBuilder) WithID(id string) *FundBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithFundSize sets a custom fund size.
func (b *FundBuilder) WithFundSize(size float64) *FundBuilder {
	b.FundSize = size
	return b
}

// WithVintageYear sets a custom vintage year.
func (b *FundBuilder) WithVintageYear(year int) *FundBuilder {
	b.VintageYear = year
	return b
}

// WithCurrency sets a custom currency.
func (b *FundBuilder) WithCurrency(currency string) *FundBuilder {
	b.Currency = currency
	return b
}

// WithStatus sets a custom status.
func (b *FundBuilder) WithStatus(status string) *FundBuilder {
	b.Status = status
	return b
}

// Build creates the fund in the database and returns it.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	query := `
		INSERT INTO fund (id, name, description, fund_size, vintage_year,
			management_fee_percent, carry_percent, currency, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Name, b.Description, b.FundSize, b.VintageYear,
		b.ManagementFeePercent, b.CarryPercent, b.Currency, b.Status,
		formatTestDateTime(b.CreatedAt), formatTestDateTime(b.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test fund: %v", err)
	}

	return model.Fund{
		ID:                   b.ID,
		Name:                 b.Name,
		Description:          b.Description,
		FundSize:             b.FundSize,
		VintageYear:          b.VintageYear,
		ManagementFeePercent: b.ManagementFeePercent,
		CarryPercent:         b.CarryPercent,
		Currency:             b.Currency,
		Status:               b.Status,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// InvestmentBuilder provides a fluent interface for creating test investments.
//
// Example usage:
//
//	investment := testutil.NewInvestment(fund.ID).
//	    WithCompanyName("Acme Robotics").
//	    WithInvestedAmount(1_000_000).
//	    WithCurrentValue(1_500_000).
//	    Build(t, db)
type InvestmentBuilder struct {
	ID             string
	FundID         string
	CompanyName    string
	InvestedAmount float64
	CurrentValue   float64
	InvestmentDate time.Time
	Currency       string
	Status         string
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewInvestment creates an InvestmentBuilder with sensible defaults,
// attached to the given fund.
func NewInvestment(fundID string) *InvestmentBuilder {
	now := time.Now().UTC()
	return &InvestmentBuilder{
		ID:             MakeID(),
		FundID:         fundID,
		CompanyName:    MakeCompanyName("Test Company"),
		InvestedAmount: 1_000_000,
		CurrentValue:   1_000_000,
		InvestmentDate: now.AddDate(0, 0, -30),
		Currency:       "USD",
		Status:         model.InvestmentStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// WithID sets a custom ID.
func (b *InvestmentBuilder) WithID(id string) *InvestmentBuilder {
	b.ID = id
	return b
}

// WithCompanyName sets a custom company name.
func (b *InvestmentBuilder) WithCompanyName(name string) *InvestmentBuilder {
	b.CompanyName = name
	return b
}

// WithInvestedAmount sets a custom invested amount.
func (b *InvestmentBuilder) WithInvestedAmount(amount float64) *InvestmentBuilder {
	b.InvestedAmount = amount
	return b
}

// WithCurrentValue sets a custom current value.
func (b *InvestmentBuilder) WithCurrentValue(value float64) *InvestmentBuilder {
	b.CurrentValue = value
	return b
}

// WithInvestmentDate sets a custom investment date.
func (b *InvestmentBuilder) WithInvestmentDate(date time.Time) *InvestmentBuilder {
	b.InvestmentDate = date
	return b
}

// WithCurrency sets a custom currency.
func (b *InvestmentBuilder) WithCurrency(currency string) *InvestmentBuilder {
	b.Currency = currency
	return b
}

// WithStatus sets a custom status.
func (b *InvestmentBuilder) WithStatus(status string) *InvestmentBuilder {
	b.Status = status
	return b
}

// Exited marks the investment as exited.
func (b *InvestmentBuilder) Exited() *InvestmentBuilder {
	b.Status = model.InvestmentStatusExited
	return b
}

// WrittenOff marks the investment as written off with zero current value.
func (b *InvestmentBuilder) WrittenOff() *InvestmentBuilder {
	b.Status = model.InvestmentStatusWrittenOff
	b.CurrentValue = 0
	return b
}

// Build creates the investment in the database and returns it.
func (b *InvestmentBuilder) Build(t *testing.T, db *sql.DB) model.Investment {
	t.Helper()

	query := `
		INSERT INTO investment (id, fund_id, company_name, invested_amount,
			current_value, investment_date, currency, status, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.FundID, b.CompanyName, b.InvestedAmount, b.CurrentValue,
		formatTestDate(b.InvestmentDate), b.Currency, b.Status, b.Description,
		formatTestDateTime(b.CreatedAt), formatTestDateTime(b.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test investment: %v", err)
	}

	return model.Investment{
		ID:             b.ID,
		FundID:         b.FundID,
		CompanyName:    b.CompanyName,
		InvestedAmount: b.InvestedAmount,
		CurrentValue:   b.CurrentValue,
		InvestmentDate: b.InvestmentDate,
		Currency:       b.Currency,
		Status:         b.Status,
		Description:    b.Description,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	tx := testutil.NewTransaction(fund.ID).
//	    OfType(model.TransactionTypeDistribution).
//	    WithAmount(250_000).
//	    Build(t, db)
type TransactionBuilder struct {
	ID          string
	FundID      string
	Type        string
	Amount      float64
	Date        time.Time
	Currency    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a TransactionBuilder with sensible defaults,
// attached to the given fund.
func NewTransaction(fundID string) *TransactionBuilder {
	now := time.Now().UTC()
	return &TransactionBuilder{
		ID:        MakeID(),
		FundID:    fundID,
		Type:      model.TransactionTypeCapitalCall,
		Amount:    100_000,
		Date:      now.AddDate(0, 0, -7),
		Currency:  "USD",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithID sets a custom ID.
func (b *TransactionBuilder) WithID(id string) *TransactionBuilder {
	b.ID = id
	return b
}

// OfType sets a custom transaction type.
func (b *TransactionBuilder) OfType(txType string) *TransactionBuilder {
	b.Type = txType
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithDate sets a custom transaction date.
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	b.Date = date
	return b
}

// WithCurrency sets a custom currency.
func (b *TransactionBuilder) WithCurrency(currency string) *TransactionBuilder {
	b.Currency = currency
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO fund_transaction (id, fund_id, type, amount, date,
			currency, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.FundID, b.Type, b.Amount, formatTestDate(b.Date),
		b.Currency, b.Description,
		formatTestDateTime(b.CreatedAt), formatTestDateTime(b.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		FundID:      b.FundID,
		Type:        b.Type,
		Amount:      b.Amount,
		Date:        b.Date,
		Currency:    b.Currency,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// UserBuilder provides a fluent interface for creating test users.
// The password hash must be produced with auth.HashPassword when the
// test needs to log in with the account.
//
// Example usage:
//
//	user := testutil.NewUser().
//	    WithEmail("alice@example.com").
//	    WithPasswordHash(hash).
//	    Verified().
//	    Build(t, db)
type UserBuilder struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	now := time.Now().UTC()
	return &UserBuilder{
		ID:           MakeID(),
		Email:        MakeEmail(),
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         model.RoleUser,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// WithID sets a custom ID.
func (b *UserBuilder) WithID(id string) *UserBuilder {
	b.ID = id
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithPasswordHash sets a custom bcrypt hash.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

// WithRole sets a custom role.
func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

// Verified marks the account as verified.
func (b *UserBuilder) Verified() *UserBuilder {
	b.IsVerified = true
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user (id, email, password_hash, role, is_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query,
		b.ID, b.Email, b.PasswordHash, b.Role, b.IsVerified,
		formatTestDateTime(b.CreatedAt), formatTestDateTime(b.UpdatedAt),
	)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:           b.ID,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		IsVerified:   b.IsVerified,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// Convenience functions

// CreateFund creates a fund with the given name and default values.
func CreateFund(t *testing.T, db *sql.DB, name string) model.Fund {
	t.Helper()
	return NewFund().WithName(name).Build(t, db)
}

// CreateInvestment creates an investment for the given fund with default values.
func CreateInvestment(t *testing.T, db *sql.DB, fundID string) model.Investment {
	t.Helper()
	return NewInvestment(fundID).Build(t, db)
}

// CreateTransaction creates a transaction of the given type for the given fund.
func CreateTransaction(t *testing.T, db *sql.DB, fundID, txType string, amount float64) model.Transaction {
	t.Helper()
	return NewTransaction(fundID).OfType(txType).WithAmount(amount).Build(t, db)
}

func formatTestDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func formatTestDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
