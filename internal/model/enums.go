package model

// Fund lifecycle statuses.
const (
	FundStatusDraft      = "DRAFT"
	FundStatusOpen       = "OPEN"
	FundStatusClosed     = "CLOSED"
	FundStatusLiquidated = "LIQUIDATED"
)

// Investment statuses.
const (
	InvestmentStatusActive     = "ACTIVE"
	InvestmentStatusExited     = "EXITED"
	InvestmentStatusWrittenOff = "WRITTEN_OFF"
)

// Transaction types.
const (
	TransactionTypeCapitalCall  = "CAPITAL_CALL"
	TransactionTypeInvestment   = "INVESTMENT"
	TransactionTypeDistribution = "DISTRIBUTION"
)

// User roles.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

var ValidCurrency = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "INR": true, "CAD": true, "AUD": true,
}

var ValidFundStatus = map[string]bool{
	FundStatusDraft: true, FundStatusOpen: true, FundStatusClosed: true, FundStatusLiquidated: true,
}

var ValidInvestmentStatus = map[string]bool{
	InvestmentStatusActive: true, InvestmentStatusExited: true, InvestmentStatusWrittenOff: true,
}

var ValidTransactionType = map[string]bool{
	TransactionTypeCapitalCall: true, TransactionTypeInvestment: true, TransactionTypeDistribution: true,
}

var ValidRole = map[string]bool{
	RoleUser: true, RoleAdmin: true, RoleSuperAdmin: true,
}
