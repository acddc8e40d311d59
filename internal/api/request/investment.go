package request

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fundlens/backoffice/internal/model"
)

// CreateInvestmentRequest represents the request body for creating an investment.
// Status defaults to ACTIVE when omitted.
type CreateInvestmentRequest struct {
	FundID         string  `json:"fundId"`
	CompanyName    string  `json:"companyName"`
	InvestedAmount float64 `json:"investedAmount"`
	CurrentValue   float64 `json:"currentValue"`
	InvestmentDate string  `json:"investmentDate"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// UpdateInvestmentRequest represents the request body for a partial
// investment update. All fields are optional; only provided fields are
// merged into the record.
type UpdateInvestmentRequest struct {
	CompanyName    *string  `json:"companyName,omitempty"`
	InvestedAmount *float64 `json:"investedAmount,omitempty"`
	CurrentValue   *float64 `json:"currentValue,omitempty"`
	InvestmentDate *string  `json:"investmentDate,omitempty"`
	Currency       *string  `json:"currency,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Description    *string  `json:"description,omitempty"`
}

// InvestmentFilters holds the optional predicates for a filtered investment
// listing. All supplied predicates are ANDed; unsupplied bounds are omitted
// rather than defaulted.
type InvestmentFilters struct {
	FundID            string
	Status            string
	Currency          string
	MinInvestedAmount *float64
	MaxInvestedAmount *float64
	MinCurrentValue   *float64
	MaxCurrentValue   *float64
	StartDate         *time.Time
	EndDate           *time.Time
}

// ParseInvestmentFilters converts raw query string parameters into a
// validated InvestmentFilters struct. All parameters are optional.
//
// Validation rules:
//   - fundId: must be a UUID when present (checked by the handler middleware)
//   - status/currency: must be members of their enums
//   - amount bounds: must be numbers
//   - startDate/endDate: must be YYYY-MM-DD or RFC3339
func ParseInvestmentFilters(
	fundIDParam, statusParam, currencyParam,
	minInvestedParam, maxInvestedParam, minValueParam, maxValueParam,
	startDateParam, endDateParam string,
) (*InvestmentFilters, error) {
	filters := &InvestmentFilters{
		FundID:   fundIDParam,
		Status:   statusParam,
		Currency: currencyParam,
	}

	if filters.Status != "" && !model.ValidInvestmentStatus[filters.Status] {
		return nil, fmt.Errorf("invalid status: %s", filters.Status)
	}
	if filters.Currency != "" && !model.ValidCurrency[filters.Currency] {
		return nil, fmt.Errorf("invalid currency: %s", filters.Currency)
	}

	var err error
	if filters.MinInvestedAmount, err = parseFilterFloat("minInvestedAmount", minInvestedParam); err != nil {
		return nil, err
	}
	if filters.MaxInvestedAmount, err = parseFilterFloat("maxInvestedAmount", maxInvestedParam); err != nil {
		return nil, err
	}
	if filters.MinCurrentValue, err = parseFilterFloat("minCurrentValue", minValueParam); err != nil {
		return nil, err
	}
	if filters.MaxCurrentValue, err = parseFilterFloat("maxCurrentValue", maxValueParam); err != nil {
		return nil, err
	}

	if startDateParam != "" {
		startTime, err := parseFilterTime(startDateParam)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate format: %w", err)
		}
		filters.StartDate = &startTime
	}
	if endDateParam != "" {
		endTime, err := parseFilterTime(endDateParam)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate format: %w", err)
		}
		filters.EndDate = &endTime
	}

	return filters, nil
}

func parseFilterFloat(name, value string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: must be a number", name)
	}
	return &f, nil
}

// parseFilterTime parses date strings for filter parameters.
// Accepts YYYY-MM-DD and RFC3339 formats.
func parseFilterTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date or datetime", str)
}
