package validation

import (
	"fmt"
	"strings"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
)

func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FundID) == "" {
		errors["fundId"] = "fundId is required"
	} else if err := ValidateUUID(req.FundID); err != nil {
		errors["fundId"] = "fundId must be a valid UUID"
	}

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !model.ValidTransactionType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if !ValidDate(req.Date) {
		errors["date"] = "date must be a YYYY-MM-DD date or RFC3339 timestamp"
	}

	if strings.TrimSpace(req.Currency) == "" {
		errors["currency"] = "currency is required"
	} else if !model.ValidCurrency[req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateTransaction(req request.UpdateTransactionRequest) error {
	errors := make(map[string]string)

	if req.Type != nil && !model.ValidTransactionType[*req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", *req.Type)
	}
	if req.Amount != nil && *req.Amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}
	if req.Date != nil && !ValidDate(*req.Date) {
		errors["date"] = "date must be a YYYY-MM-DD date or RFC3339 timestamp"
	}
	if req.Currency != nil && !model.ValidCurrency[*req.Currency] {
		errors["currency"] = fmt.Sprintf("invalid currency: %s", *req.Currency)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
