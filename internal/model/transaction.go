package model

import "time"

// Transaction represents a cash-flow event against a fund: a capital call,
// an investment outlay, or a distribution.
type Transaction struct {
	ID          string    `json:"id"`
	FundID      string    `json:"fundId"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionResponse represents a transaction enriched with the owning
// fund's name for API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	FundID      string  `json:"fundId"`
	FundName    string  `json:"fundName,omitempty"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// FundCashFlowSummary totals a fund's transactions by type.
//
// NetCashFlow is (distributions + investments) - capital calls. Adding the
// investment outlays is the documented business rule of this system and is
// reproduced as-is.
type FundCashFlowSummary struct {
	TotalCapitalCalls  float64 `json:"totalCapitalCalls"`
	TotalInvestments   float64 `json:"totalInvestments"`
	TotalDistributions float64 `json:"totalDistributions"`
	NetCashFlow        float64 `json:"netCashFlow"`
}
