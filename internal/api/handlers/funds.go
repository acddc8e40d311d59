package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/service"
	"github.com/fundlens/backoffice/internal/validation"
)

// FundHandler handles HTTP requests for fund endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// GetFunds handles GET requests to retrieve all funds.
//
// Endpoint: GET /v1/funds
// Response: 200 OK with array of Fund
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetFunds(w http.ResponseWriter, _ *http.Request) {
	funds, err := h.fundService.GetFunds(nil)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, funds)
}

// FilterFunds handles GET requests to retrieve funds matching query filters.
// All filters are optional and combine with AND semantics.
//
// Endpoint: GET /v1/funds/filter?status=&currency=&vintageYear=&minFundSize=&maxFundSize=
// Response: 200 OK with array of Fund
// Error: 400 Bad Request if a filter value is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) FilterFunds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := request.ParseFundFilters(
		q.Get("status"),
		q.Get("currency"),
		q.Get("vintageYear"),
		q.Get("minFundSize"),
		q.Get("maxFundSize"),
	)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	funds, err := h.fundService.GetFunds(filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFunds.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, funds)
}

// GetFund handles GET requests to retrieve a single fund by ID.
//
// Endpoint: GET /v1/funds/{uuid}
// Response: 200 OK with Fund
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 404 Not Found if fund not found
// Error: 500 Internal Server Error if retrieval fails
func (h *FundHandler) GetFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	fund, err := h.fundService.GetFund(fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveFund.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}

// CreateFund handles POST requests to create a new fund.
// Validates the request body and rejects duplicate fund names.
//
// Endpoint: POST /v1/funds
// Request Body: CreateFundRequest
// Response: 201 Created with Fund
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 409 Conflict if a fund with the same name already exists
// Error: 500 Internal Server Error if creation fails
func (h *FundHandler) CreateFund(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.CreateFund(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNameTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrFundNameTaken.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create fund", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, fund)
}

// UpdateFund handles PUT requests to update an existing fund.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /v1/funds/{uuid}
// Request Body: UpdateFundRequest (all fields optional)
// Response: 200 OK with updated Fund
// Error: 400 Bad Request if fund ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if fund not found
// Error: 409 Conflict if the new name is taken by another fund
// Error: 500 Internal Server Error if update fails
func (h *FundHandler) UpdateFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateFundRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateFund(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	fund, err := h.fundService.UpdateFund(r.Context(), fundID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrFundNameTaken) {
			response.RespondError(w, http.StatusConflict, apperrors.ErrFundNameTaken.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update fund", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, fund)
}

// DeleteFund handles DELETE requests to remove a fund.
// Investments and transactions referencing the fund are left in place and
// render without fund details afterwards.
//
// Endpoint: DELETE /v1/funds/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 404 Not Found if fund not found
// Error: 500 Internal Server Error if deletion fails
func (h *FundHandler) DeleteFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "uuid")

	err := h.fundService.DeleteFund(r.Context(), fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete fund", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
