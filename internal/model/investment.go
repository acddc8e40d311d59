package model

import "time"

// Investment represents capital deployed from a fund into a single
// portfolio company.
type Investment struct {
	ID             string    `json:"id"`
	FundID         string    `json:"fundId"`
	CompanyName    string    `json:"companyName"`
	InvestedAmount float64   `json:"investedAmount"`
	CurrentValue   float64   `json:"currentValue"`
	InvestmentDate time.Time `json:"investmentDate"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// InvestmentResponse represents an investment enriched for API responses.
// The owning fund's name and currency are attached by the repository join
// and the derived figures are computed at read time, never stored.
type InvestmentResponse struct {
	ID                string  `json:"id"`
	FundID            string  `json:"fundId"`
	FundName          string  `json:"fundName,omitempty"`
	FundCurrency      string  `json:"fundCurrency,omitempty"`
	CompanyName       string  `json:"companyName"`
	InvestedAmount    float64 `json:"investedAmount"`
	CurrentValue      float64 `json:"currentValue"`
	InvestmentDate    string  `json:"investmentDate"`
	Currency          string  `json:"currency"`
	Status            string  `json:"status"`
	Description       string  `json:"description,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
	UnrealizedGain    float64 `json:"unrealizedGain"`
	ROI               float64 `json:"roi"`
	HoldingPeriodDays int     `json:"holdingPeriodDays"`
}

// InvestmentPerformance holds the derived figures for a single investment.
type InvestmentPerformance struct {
	ID                string  `json:"id"`
	CompanyName       string  `json:"companyName"`
	InvestedAmount    float64 `json:"investedAmount"`
	CurrentValue      float64 `json:"currentValue"`
	UnrealizedGain    float64 `json:"unrealizedGain"`
	ROI               float64 `json:"roi"`
	HoldingPeriodDays int     `json:"holdingPeriodDays"`
}

// FundInvestmentSummary aggregates all investments of a single fund.
// Amounts are sums in the fund's declared currency; no conversion is done.
type FundInvestmentSummary struct {
	TotalInvestments      int     `json:"totalInvestments"`
	TotalInvestedAmount   float64 `json:"totalInvestedAmount"`
	TotalCurrentValue     float64 `json:"totalCurrentValue"`
	TotalUnrealizedGain   float64 `json:"totalUnrealizedGain"`
	AverageROI            float64 `json:"averageROI"`
	ActiveInvestments     int     `json:"activeInvestments"`
	ExitedInvestments     int     `json:"exitedInvestments"`
	WrittenOffInvestments int     `json:"writtenOffInvestments"`
}
