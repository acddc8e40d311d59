package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/service"
	"github.com/fundlens/backoffice/internal/validation"
)

// TransactionHandler handles HTTP requests for transaction endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the transactionService.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// TransactionsPerFund handles GET requests to retrieve all transactions for a
// specific fund, newest first. Each entry carries the fund's name and currency.
//
// Endpoint: GET /v1/transactions/fund/{fundId}
// Response: 200 OK with array of TransactionResponse
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) TransactionsPerFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	transactions, err := h.transactionService.GetTransactions(fundID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// AllTransactions handles GET requests to retrieve all transactions across all funds.
//
// Endpoint: GET /v1/transactions
// Response: 200 OK with array of TransactionResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, _ *http.Request) {
	transactions, err := h.transactionService.GetTransactions("")
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// TransactionsByDateRange handles GET requests to retrieve a fund's
// transactions whose dates fall within [startDate, endDate], oldest first.
//
// Endpoint: GET /v1/transactions/fund/{fundId}/date-range?startDate=&endDate=
// Response: 200 OK with array of TransactionResponse
// Error: 400 Bad Request if either date is missing or malformed, or startDate is after endDate
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) TransactionsByDateRange(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	startDate, err := parseDateParam(r.URL.Query().Get("startDate"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid startDate", err.Error())
		return
	}
	endDate, err := parseDateParam(r.URL.Query().Get("endDate"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid endDate", err.Error())
		return
	}

	transactions, err := h.transactionService.GetTransactionsByDateRange(fundID, startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDateRange) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidDateRange.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransactions.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transactions)
}

// GetCashFlowSummary handles GET requests to retrieve aggregate cash-flow
// totals for a fund, including the net cash flow from the investor's
// perspective.
//
// Endpoint: GET /v1/transactions/fund/{fundId}/summary
// Response: 200 OK with FundCashFlowSummary
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetCashFlowSummary(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	summary, err := h.transactionService.GetCashFlowSummary(fundID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// GetTransaction handles GET requests to retrieve a single transaction by ID.
//
// Endpoint: GET /v1/transactions/{uuid}
// Response: 200 OK with TransactionResponse
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if retrieval fails
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	transaction, err := h.transactionService.GetTransaction(transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTransaction.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// CreateTransaction handles POST requests to create a new transaction.
// The referenced fund must exist at creation time.
//
// Endpoint: POST /v1/transactions
// Request Body: CreateTransactionRequest (fundId, type, amount, date, currency, description)
// Response: 201 Created with TransactionResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the referenced fund does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT requests to update an existing transaction.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /v1/transactions/{uuid}
// Request Body: UpdateTransactionRequest (all fields optional)
// Response: 200 OK with updated TransactionResponse
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if update fails
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(r.Context(), transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
//
// Endpoint: DELETE /v1/transactions/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if transaction ID is invalid (validated by middleware)
// Error: 404 Not Found if transaction not found
// Error: 500 Internal Server Error if deletion fails
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "uuid")

	err := h.transactionService.DeleteTransaction(r.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTransactionNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete transaction", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// parseDateParam parses a required date query parameter. Both YYYY-MM-DD and
// RFC3339 are accepted, matching the formats accepted in request bodies.
func parseDateParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date parameter is required")
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC3339")
		}
	}

	return parsed.UTC(), nil
}
