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

// InvestmentService handles investment-related business logic operations.
// Read paths enrich each record with the owning fund's name and currency
// (fetched in one batch) and with the derived figures.
type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
	fundRepo       *repository.FundRepository
}

// NewInvestmentService creates a new InvestmentService with the provided repository dependencies.
func NewInvestmentService(
	investmentRepo *repository.InvestmentRepository,
	fundRepo *repository.FundRepository,
) *InvestmentService {
	return &InvestmentService{
		investmentRepo: investmentRepo,
		fundRepo:       fundRepo,
	}
}

// GetInvestments retrieves investments, optionally scoped to a fund, sorted
// by investment date descending.
func (s *InvestmentService) GetInvestments(fundID string) ([]model.InvestmentResponse, error) {
	filters := &request.InvestmentFilters{FundID: fundID}
	investments, err := s.investmentRepo.GetInvestments(filters, "")
	if err != nil {
		return nil, err
	}
	return s.toResponses(investments)
}

// SearchInvestments performs a case-insensitive substring match on company
// name, ANDed with the optional fundId/status/currency equality filters.
func (s *InvestmentService) SearchInvestments(query string, filters *request.InvestmentFilters) ([]model.InvestmentResponse, error) {
	investments, err := s.investmentRepo.GetInvestments(filters, query)
	if err != nil {
		return nil, err
	}
	return s.toResponses(investments)
}

// GetInvestmentsWithFilters retrieves investments matching range filters on
// amounts and investment date plus the equality filters. All supplied
// predicates are ANDed; bounds are inclusive.
func (s *InvestmentService) GetInvestmentsWithFilters(filters *request.InvestmentFilters) ([]model.InvestmentResponse, error) {
	investments, err := s.investmentRepo.GetInvestments(filters, "")
	if err != nil {
		return nil, err
	}
	return s.toResponses(investments)
}

// GetInvestment retrieves a single investment by ID.
func (s *InvestmentService) GetInvestment(investmentID string) (model.InvestmentResponse, error) {
	inv, err := s.investmentRepo.GetInvestmentByID(investmentID)
	if err != nil {
		return model.InvestmentResponse{}, err
	}

	responses, err := s.toResponses([]model.Investment{inv})
	if err != nil {
		return model.InvestmentResponse{}, err
	}
	return responses[0], nil
}

// CreateInvestment creates a new investment after verifying the referenced
// fund exists. Status defaults to ACTIVE when omitted.
//
// The existence check and the insert are separate statements; a fund
// deleted between them leaves an orphaned investment rather than an error.
func (s *InvestmentService) CreateInvestment(ctx context.Context, req request.CreateInvestmentRequest) (model.InvestmentResponse, error) {
	exists, err := s.fundRepo.FundExists(req.FundID)
	if err != nil {
		return model.InvestmentResponse{}, fmt.Errorf("failed to check fund: %w", err)
	}
	if !exists {
		return model.InvestmentResponse{}, apperrors.ErrFundNotFound
	}

	investmentDate, err := parseDate(req.InvestmentDate)
	if err != nil {
		return model.InvestmentResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = model.InvestmentStatusActive
	}

	now := time.Now().UTC()
	inv := &model.Investment{
		ID:             uuid.New().String(),
		FundID:         req.FundID,
		CompanyName:    req.CompanyName,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
		InvestmentDate: investmentDate,
		Currency:       req.Currency,
		Status:         status,
		Description:    req.Description,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.investmentRepo.InsertInvestment(ctx, inv); err != nil {
		return model.InvestmentResponse{}, fmt.Errorf("failed to create investment: %w", err)
	}

	responses, err := s.toResponses([]model.Investment{*inv})
	if err != nil {
		return model.InvestmentResponse{}, err
	}
	return responses[0], nil
}

// UpdateInvestment applies a partial update: only supplied fields are
// merged into the stored record.
func (s *InvestmentService) UpdateInvestment(ctx context.Context, investmentID string, req request.UpdateInvestmentRequest) (model.InvestmentResponse, error) {
	inv, err := s.investmentRepo.GetInvestmentByID(investmentID)
	if err != nil {
		return model.InvestmentResponse{}, err
	}

	if req.CompanyName != nil {
		inv.CompanyName = *req.CompanyName
	}
	if req.InvestedAmount != nil {
		inv.InvestedAmount = *req.InvestedAmount
	}
	if req.CurrentValue != nil {
		inv.CurrentValue = *req.CurrentValue
	}
	if req.InvestmentDate != nil {
		investmentDate, err := parseDate(*req.InvestmentDate)
		if err != nil {
			return model.InvestmentResponse{}, err
		}
		inv.InvestmentDate = investmentDate
	}
	if req.Currency != nil {
		inv.Currency = *req.Currency
	}
	if req.Status != nil {
		inv.Status = *req.Status
	}
	if req.Description != nil {
		inv.Description = *req.Description
	}
	inv.UpdatedAt = time.Now().UTC()

	if err := s.investmentRepo.UpdateInvestment(ctx, &inv); err != nil {
		return model.InvestmentResponse{}, err
	}

	responses, err := s.toResponses([]model.Investment{inv})
	if err != nil {
		return model.InvestmentResponse{}, err
	}
	return responses[0], nil
}

// DeleteInvestment removes an investment by ID.
func (s *InvestmentService) DeleteInvestment(ctx context.Context, investmentID string) error {
	return s.investmentRepo.DeleteInvestment(ctx, investmentID)
}

// GetPerformance computes the derived figures for a single investment.
func (s *InvestmentService) GetPerformance(investmentID string) (model.InvestmentPerformance, error) {
	inv, err := s.investmentRepo.GetInvestmentByID(investmentID)
	if err != nil {
		return model.InvestmentPerformance{}, err
	}

	return calculatePerformance(inv, time.Now().UTC()), nil
}

// GetFundSummary aggregates all investments of a fund.
func (s *InvestmentService) GetFundSummary(fundID string) (model.FundInvestmentSummary, error) {
	filters := &request.InvestmentFilters{FundID: fundID}
	investments, err := s.investmentRepo.GetInvestments(filters, "")
	if err != nil {
		return model.FundInvestmentSummary{}, err
	}

	return summarizeInvestments(investments), nil
}

// toResponses maps investments to their API shape: fund name/currency are
// batch-fetched and attached, dates rendered as strings, derived figures
// computed. Orphaned fund references simply leave the fund fields empty.
func (s *InvestmentService) toResponses(investments []model.Investment) ([]model.InvestmentResponse, error) {
	fundIDs := make([]string, 0, len(investments))
	seen := make(map[string]bool)
	for _, inv := range investments {
		if !seen[inv.FundID] {
			seen[inv.FundID] = true
			fundIDs = append(fundIDs, inv.FundID)
		}
	}

	refs, err := s.fundRepo.GetFundRefs(fundIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	responses := make([]model.InvestmentResponse, 0, len(investments))

	for _, inv := range investments {
		gain := unrealizedGain(inv.InvestedAmount, inv.CurrentValue)
		ref := refs[inv.FundID]

		responses = append(responses, model.InvestmentResponse{
			ID:                inv.ID,
			FundID:            inv.FundID,
			FundName:          ref.Name,
			FundCurrency:      ref.Currency,
			CompanyName:       inv.CompanyName,
			InvestedAmount:    inv.InvestedAmount,
			CurrentValue:      inv.CurrentValue,
			InvestmentDate:    inv.InvestmentDate.Format(time.RFC3339),
			Currency:          inv.Currency,
			Status:            inv.Status,
			Description:       inv.Description,
			CreatedAt:         inv.CreatedAt.Format(time.RFC3339),
			UpdatedAt:         inv.UpdatedAt.Format(time.RFC3339),
			UnrealizedGain:    gain,
			ROI:               roiPercent(inv.InvestedAmount, gain),
			HoldingPeriodDays: holdingPeriodDays(inv.InvestmentDate, now),
		})
	}

	return responses, nil
}
