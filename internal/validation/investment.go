package validation

import (
	"fmt"
	"strings"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
)

func ValidateCreateInvestment(req request.CreateInvestmentRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FundID) == "" {
		errors["fundId"] = "fundId is required"
	} else if err := ValidateUUID(req.FundID); err != nil {
		errors["fundId"] = "fundId must be a valid UUID"
	}

	if strings.TrimSpace(req.CompanyName) == "" {
		errors["companyName"] = "companyName is required"
	} else if len(req.CompanyName) > 100 {
		errors["companyName"] = "companyName must be 100 characters or less"
	}

	if req.InvestedAmount < 0 {
		errors["investedAmount"] = "investedAmount cannot be negative"
	}
	if req.CurrentValue < 0 {
		errors["currentValue"] = "currentValue cannot be negative"
	}

	if strings.TrimSpace(req.InvestmentDate) == "" {
		errors["investmentDate"] = "investmentDate is required"
	} else if !ValidDate(req.InvestmentDate) {
		errors["investmentDate"] = "investmentDate must be a YYYY-MM-DD date or RFC3339 timestamp"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if !model.ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	// Optional, defaults to ACTIVE in the service
	if req.Status != "" && !model.ValidInvestmentStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateInvestment(req request.UpdateInvestmentRequest) error {
	errors := make(map[string]string)

	if req.CompanyName != nil {
		if strings.TrimSpace(*req.CompanyName) == "" {
			errors["companyName"] = "companyName is required"
		} else if len(*req.CompanyName) > 100 {
			errors["companyName"] = "companyName must be 100 characters or less"
		}
	}
	if req.InvestedAmount != nil && *req.InvestedAmount < 0 {
		errors["investedAmount"] = "investedAmount cannot be negative"
	}
	if req.CurrentValue != nil && *req.CurrentValue < 0 {
		errors["currentValue"] = "currentValue cannot be negative"
	}
	if req.InvestmentDate != nil && !ValidDate(*req.InvestmentDate) {
		errors["investmentDate"] = "investmentDate must be a YYYY-MM-DD date or RFC3339 timestamp"
	}
	if req.Currency != nil && !model.ValidCurrency[*req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", *req.Currency)
	}
	if req.Status != nil && !model.ValidInvestmentStatus[*req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
