package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
)

func ValidateCreateFund(req request.CreateFundRequest) error {
	errors := make(map[string]string)

	// Required fields
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.FundSize <= 0 {
		errors["fundSize"] = "fundSize must be greater than 0"
	}

	if req.VintageYear < 1900 || req.VintageYear > time.Now().UTC().Year()+10 {
		errors["vintageYear"] = "vintageYear is out of range"
	}

	if req.ManagementFeePercent < 0 || req.ManagementFeePercent > 100 {
		errors["managementFeePercent"] = "managementFeePercent must be between 0 and 100"
	}

	if req.CarryPercent < 0 || req.CarryPercent > 100 {
		errors["carryPercent"] = "carryPercent must be between 0 and 100"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if !model.ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	if strings.TrimSpace(req.Status) == "" {
		errors["status"] = "status is required"
	} else if !model.ValidFundStatus[req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateFund(req request.UpdateFundRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name is required"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}
	if req.FundSize != nil && *req.FundSize <= 0 {
		errors["fundSize"] = "fundSize must be greater than 0"
	}
	if req.VintageYear != nil && (*req.VintageYear < 1900 || *req.VintageYear > time.Now().UTC().Year()+10) {
		errors["vintageYear"] = "vintageYear is out of range"
	}
	if req.ManagementFeePercent != nil && (*req.ManagementFeePercent < 0 || *req.ManagementFeePercent > 100) {
		errors["managementFeePercent"] = "managementFeePercent must be between 0 and 100"
	}
	if req.CarryPercent != nil && (*req.CarryPercent < 0 || *req.CarryPercent > 100) {
		errors["carryPercent"] = "carryPercent must be between 0 and 100"
	}
	if req.Currency != nil && !model.ValidCurrency[*req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", *req.Currency)
	}
	if req.Status != nil && !model.ValidFundStatus[*req.Status] {
		errors["status"] = fmt.Sprintf("invalid status: %s", *req.Status)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
