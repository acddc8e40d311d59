package request

import (
	"fmt"
	"strconv"

	"github.com/fundlens/backoffice/internal/model"
)

// CreateFundRequest represents the request body for creating a fund.
type CreateFundRequest struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description,omitempty"`
	FundSize             float64 `json:"fundSize"`
	VintageYear          int     `json:"vintageYear"`
	ManagementFeePercent float64 `json:"managementFeePercent"`
	CarryPercent         float64 `json:"carryPercent"`
	Currency             string  `json:"currency"`
	Status               string  `json:"status"`
}

// UpdateFundRequest represents the request body for a partial fund update.
// All fields are optional; only provided fields are merged into the record.
type UpdateFundRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Description          *string  `json:"description,omitempty"`
	FundSize             *float64 `json:"fundSize,omitempty"`
	VintageYear          *int     `json:"vintageYear,omitempty"`
	ManagementFeePercent *float64 `json:"managementFeePercent,omitempty"`
	CarryPercent         *float64 `json:"carryPercent,omitempty"`
	Currency             *string  `json:"currency,omitempty"`
	Status               *string  `json:"status,omitempty"`
}

// FundFilters holds the optional predicates for a filtered fund listing.
// Unsupplied bounds are left nil and omitted from the query.
type FundFilters struct {
	Status      string
	Currency    string
	VintageYear *int
	MinFundSize *float64
	MaxFundSize *float64
}

// ParseFundFilters converts raw query string parameters into a validated
// FundFilters struct. All parameters are optional.
func ParseFundFilters(statusParam, currencyParam, vintageYearParam, minFundSizeParam, maxFundSizeParam string) (*FundFilters, error) {
	filters := &FundFilters{
		Status:   statusParam,
		Currency: currencyParam,
	}

	if filters.Status != "" && !model.ValidFundStatus[filters.Status] {
		return nil, fmt.Errorf("invalid status: %s", filters.Status)
	}
	if filters.Currency != "" && !model.ValidCurrency[filters.Currency] {
		return nil, fmt.Errorf("invalid currency: %s", filters.Currency)
	}

	if vintageYearParam != "" {
		year, err := strconv.Atoi(vintageYearParam)
		if err != nil {
			return nil, fmt.Errorf("invalid vintageYear: must be a number")
		}
		filters.VintageYear = &year
	}
	if minFundSizeParam != "" {
		minSize, err := strconv.ParseFloat(minFundSizeParam, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid minFundSize: must be a number")
		}
		filters.MinFundSize = &minSize
	}
	if maxFundSizeParam != "" {
		maxSize, err := strconv.ParseFloat(maxFundSizeParam, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid maxFundSize: must be a number")
		}
		filters.MaxFundSize = &maxSize
	}

	return filters, nil
}
