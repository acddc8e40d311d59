package model

import "time"

// Fund represents a pooled investment vehicle as stored in the database.
type Fund struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	FundSize             float64   `json:"fundSize"`
	VintageYear          int       `json:"vintageYear"`
	ManagementFeePercent float64   `json:"managementFeePercent"`
	CarryPercent         float64   `json:"carryPercent"`
	Currency             string    `json:"currency"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// FundRef carries the fund fields that the read-side join attaches to
// investment and transaction responses.
type FundRef struct {
	ID       string
	Name     string
	Currency string
}
