package request

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	FundID      string  `json:"fundId"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. All fields are optional; only provided fields are
// merged into the record.
type UpdateTransactionRequest struct {
	Type        *string  `json:"type,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Description *string  `json:"description,omitempty"`
}
