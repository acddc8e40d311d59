package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/repository"
)

// TransactionService handles cash-flow business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	fundRepo        *repository.FundRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	fundRepo *repository.FundRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		fundRepo:        fundRepo,
	}
}

// GetTransactions retrieves transactions, optionally scoped to a fund,
// sorted by date descending.
func (s *TransactionService) GetTransactions(fundID string) ([]model.TransactionResponse, error) {
	transactions, err := s.transactionRepo.GetTransactions(fundID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(transactions)
}

// GetTransactionsByDateRange retrieves a fund's transactions with dates in
// [start, end], sorted ascending.
func (s *TransactionService) GetTransactionsByDateRange(fundID string, start, end time.Time) ([]model.TransactionResponse, error) {
	transactions, err := s.transactionRepo.GetTransactionsByDateRange(fundID, start, end)
	if err != nil {
		return nil, err
	}
	return s.toResponses(transactions)
}

// GetTransaction retrieves a single transaction by ID.
func (s *TransactionService) GetTransaction(transactionID string) (model.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	responses, err := s.toResponses([]model.Transaction{tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// CreateTransaction creates a new transaction after verifying the
// referenced fund exists.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (model.TransactionResponse, error) {
	exists, err := s.fundRepo.FundExists(req.FundID)
	if err != nil {
		return model.TransactionResponse{}, fmt.Errorf("failed to check fund: %w", err)
	}
	if !exists {
		return model.TransactionResponse{}, apperrors.ErrFundNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	now := time.Now().UTC()
	tx := &model.Transaction{
		ID:          uuid.New().String(),
		FundID:      req.FundID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        date,
		Currency:    req.Currency,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, tx); err != nil {
		return model.TransactionResponse{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	responses, err := s.toResponses([]model.Transaction{*tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// UpdateTransaction applies a partial update: only supplied fields are
// merged into the stored record.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req request.UpdateTransactionRequest) (model.TransactionResponse, error) {
	tx, err := s.transactionRepo.GetTransactionByID(transactionID)
	if err != nil {
		return model.TransactionResponse{}, err
	}

	if req.Type != nil {
		tx.Type = *req.Type
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return model.TransactionResponse{}, err
		}
		tx.Date = date
	}
	if req.Currency != nil {
		tx.Currency = *req.Currency
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := s.transactionRepo.UpdateTransaction(ctx, &tx); err != nil {
		return model.TransactionResponse{}, err
	}

	responses, err := s.toResponses([]model.Transaction{tx})
	if err != nil {
		return model.TransactionResponse{}, err
	}
	return responses[0], nil
}

// DeleteTransaction removes a transaction by ID.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// GetCashFlowSummary totals a fund's transactions by type and computes the
// net cash flow.
func (s *TransactionService) GetCashFlowSummary(fundID string) (model.FundCashFlowSummary, error) {
	transactions, err := s.transactionRepo.GetTransactions(fundID)
	if err != nil {
		return model.FundCashFlowSummary{}, err
	}

	return summarizeCashFlows(transactions), nil
}

// toResponses maps transactions to their API shape, attaching the owning
// fund's name via a batch fetch. Orphaned fund references leave the fund
// name empty.
func (s *TransactionService) toResponses(transactions []model.Transaction) ([]model.TransactionResponse, error) {
	fundIDs := make([]string, 0, len(transactions))
	seen := make(map[string]bool)
	for _, tx := range transactions {
		if !seen[tx.FundID] {
			seen[tx.FundID] = true
			fundIDs = append(fundIDs, tx.FundID)
		}
	}

	refs, err := s.fundRepo.GetFundRefs(fundIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]model.TransactionResponse, 0, len(transactions))

	for _, tx := range transactions {
		responses = append(responses, model.TransactionResponse{
			ID:          tx.ID,
			FundID:      tx.FundID,
			FundName:    refs[tx.FundID].Name,
			Type:        tx.Type,
			Amount:      tx.Amount,
			Date:        tx.Date.Format(time.RFC3339),
			Currency:    tx.Currency,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
		})
	}

	return responses, nil
}
