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

// FundService handles fund-related business logic operations.
type FundService struct {
	fundRepo *repository.FundRepository
}

// NewFundService creates a new FundService with the provided repository dependency.
func NewFundService(fundRepo *repository.FundRepository) *FundService {
	return &FundService{
		fundRepo: fundRepo,
	}
}

// GetFunds retrieves funds matching the given filters, or all funds when
// filters is nil.
func (s *FundService) GetFunds(filters *request.FundFilters) ([]model.Fund, error) {
	return s.fundRepo.GetFunds(filters)
}

// GetFund retrieves a single fund by ID.
func (s *FundService) GetFund(fundID string) (model.Fund, error) {
	return s.fundRepo.GetFundByID(fundID)
}

// CreateFund creates a new fund. Fails with apperrors.ErrFundNameTaken when
// a fund with the same name already exists (case-sensitive exact match).
func (s *FundService) CreateFund(ctx context.Context, req request.CreateFundRequest) (*model.Fund, error) {
	existing, err := s.fundRepo.GetFundByName(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check fund name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFundNameTaken
	}

	now := time.Now().UTC()
	fund := &model.Fund{
		ID:                   uuid.New().String(),
		Name:                 req.Name,
		Description:          req.Description,
		FundSize:             req.FundSize,
		VintageYear:          req.VintageYear,
		ManagementFeePercent: req.ManagementFeePercent,
		CarryPercent:         req.CarryPercent,
		Currency:             req.Currency,
		Status:               req.Status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.fundRepo.InsertFund(ctx, fund); err != nil {
		return nil, fmt.Errorf("failed to create fund: %w", err)
	}

	return fund, nil
}

// UpdateFund applies a partial update: only supplied fields are merged into
// the stored record. Renaming to a name held by another fund fails with
// apperrors.ErrFundNameTaken.
func (s *FundService) UpdateFund(ctx context.Context, fundID string, req request.UpdateFundRequest) (*model.Fund, error) {
	fund, err := s.fundRepo.GetFundByID(fundID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != fund.Name {
		existing, err := s.fundRepo.GetFundByName(*req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check fund name: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrFundNameTaken
		}
		fund.Name = *req.Name
	}
	if req.Description != nil {
		fund.Description = *req.Description
	}
	if req.FundSize != nil {
		fund.FundSize = *req.FundSize
	}
	if req.VintageYear != nil {
		fund.VintageYear = *req.VintageYear
	}
	if req.ManagementFeePercent != nil {
		fund.ManagementFeePercent = *req.ManagementFeePercent
	}
	if req.CarryPercent != nil {
		fund.CarryPercent = *req.CarryPercent
	}
	if req.Currency != nil {
		fund.Currency = *req.Currency
	}
	if req.Status != nil {
		fund.Status = *req.Status
	}
	fund.UpdatedAt = time.Now().UTC()

	if err := s.fundRepo.UpdateFund(ctx, &fund); err != nil {
		return nil, err
	}

	return &fund, nil
}

// DeleteFund removes a fund by ID. No cascade check is made against
// dependent investments or transactions; they become orphans.
func (s *FundService) DeleteFund(ctx context.Context, fundID string) error {
	return s.fundRepo.DeleteFund(ctx, fundID)
}
