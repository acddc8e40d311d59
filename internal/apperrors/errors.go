package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrFundNameTaken indicates that a fund with the same name already exists.
	ErrFundNameTaken = errors.New("fund name already exists")

	// ErrEmailTaken indicates that a user with the same email already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch so that responses do not leak which field was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotVerified indicates a login attempt against an
	// unverified account.
	ErrAccountNotVerified = errors.New("account is not verified")

	// ErrInvalidToken indicates a missing, malformed, or expired bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInsufficientRole indicates the authenticated user's role is not in
	// the allowed set for the route.
	ErrInsufficientRole = errors.New("insufficient role")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data, not missing entities or validation issues.
var (
	ErrFailedToRetrieveFunds        = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveFund         = errors.New("failed to retrieve fund")
	ErrFailedToRetrieveInvestments  = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment   = errors.New("failed to retrieve investment")
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToRetrieveUsers        = errors.New("failed to retrieve users")
	ErrFailedToRetrieveUser         = errors.New("failed to retrieve user")
	ErrFailedToGetSummary           = errors.New("failed to get summary")
)
