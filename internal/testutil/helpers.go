package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/repository"
	"github.com/fundlens/backoffice/internal/service"
)

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestFundService(t *testing.T, db *sql.DB) *service.FundService {
	t.Helper()

	fundRepo := repository.NewFundRepository(db)

	return service.NewFundService(fundRepo)
}

func NewTestInvestmentService(t *testing.T, db *sql.DB) *service.InvestmentService {
	t.Helper()

	investmentRepo := repository.NewInvestmentRepository(db)
	fundRepo := repository.NewFundRepository(db)

	return service.NewInvestmentService(
		investmentRepo,
		fundRepo,
	)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	fundRepo := repository.NewFundRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		fundRepo,
	)
}

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)

	return service.NewUserService(userRepo)
}

// NewTestAuthService creates an AuthService backed by a TokenManager with a
// fixed test secret and a one-hour expiry.
func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)

	return service.NewAuthService(userRepo, NewTestTokenManager(t))
}

// NewTestTokenManager creates a TokenManager with a fixed test secret.
func NewTestTokenManager(t *testing.T) *auth.TokenManager {
	t.Helper()

	return auth.NewTokenManager("test-secret", time.Hour)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeFundName generates a unique fund name for testing.
//
// Example usage:
//
//	name := testutil.MakeFundName("Growth Fund")
//	// Returns: "Growth Fund XYZ789"
func MakeFundName(base string) string {
	if base == "" {
		base = "Fund"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeCompanyName generates a unique company name for testing.
//
// Example usage:
//
//	name := testutil.MakeCompanyName("Acme")
//	// Returns: "Acme XYZ789"
func MakeCompanyName(base string) string {
	if base == "" {
		base = "Company"
	}
	return base + " " + randomAlphanumeric(6)
}

// MakeEmail generates a unique lowercase email address for testing.
//
// Example usage:
//
//	email := testutil.MakeEmail()
//	// Returns: "userabc123@example.com"
func MakeEmail() string {
	return "user" + randomLowerAlphanumeric(8) + "@example.com"
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// randomLowerAlphanumeric generates a random lowercase alphanumeric string.
func randomLowerAlphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}

// Common test constants

var (
	// CommonCurrencies contains the currency codes accepted by validation
	CommonCurrencies = []string{"USD", "EUR", "GBP", "INR", "CAD", "AUD"}
)

// RandomCurrency returns a random currency from CommonCurrencies.
func RandomCurrency() string {
	//nolint:gosec // G404: Using math/rand for test data generation is acceptable
	return CommonCurrencies[rand.Intn(len(CommonCurrencies))]
}
