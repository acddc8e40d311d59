package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/service"
	"github.com/fundlens/backoffice/internal/validation"
)

// InvestmentHandler handles HTTP requests for investment endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the investmentService.
type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

// NewInvestmentHandler creates a new InvestmentHandler with the provided service dependency.
func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		investmentService: investmentService,
	}
}

// GetInvestments handles GET requests to retrieve all investments.
// Each entry carries the owning fund's name and currency plus derived
// performance fields.
//
// Endpoint: GET /v1/investments
// Response: 200 OK with array of InvestmentResponse
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestments(w http.ResponseWriter, _ *http.Request) {
	investments, err := h.investmentService.GetInvestments("")
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// InvestmentsPerFund handles GET requests to retrieve all investments for a specific fund.
//
// Endpoint: GET /v1/investments/fund/{fundId}
// Response: 200 OK with array of InvestmentResponse
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) InvestmentsPerFund(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	investments, err := h.investmentService.GetInvestments(fundID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// SearchInvestments handles GET requests for a case-insensitive name search,
// optionally combined with the same filters as FilterInvestments.
//
// Endpoint: GET /v1/investments/search?q=<term>&...
// Response: 200 OK with array of InvestmentResponse
// Error: 400 Bad Request if a filter value is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) SearchInvestments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters, err := parseInvestmentFilterQuery(q)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	investments, err := h.investmentService.SearchInvestments(q.Get("q"), filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// FilterInvestments handles GET requests to retrieve investments matching
// query filters. All filters are optional and combine with AND semantics.
//
// Endpoint: GET /v1/investments/filter?fundId=&status=&currency=&minInvestedAmount=&maxInvestedAmount=&minCurrentValue=&maxCurrentValue=&startDate=&endDate=
// Response: 200 OK with array of InvestmentResponse
// Error: 400 Bad Request if a filter value is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) FilterInvestments(w http.ResponseWriter, r *http.Request) {
	filters, err := parseInvestmentFilterQuery(r.URL.Query())
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid filter parameters", err.Error())
		return
	}

	investments, err := h.investmentService.GetInvestmentsWithFilters(filters)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestments.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investments)
}

// GetInvestment handles GET requests to retrieve a single investment by ID.
//
// Endpoint: GET /v1/investments/{uuid}
// Response: 200 OK with InvestmentResponse
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	investment, err := h.investmentService.GetInvestment(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveInvestment.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// GetPerformance handles GET requests to retrieve derived performance metrics
// for a single investment: unrealized gain, ROI percentage, and holding period.
//
// Endpoint: GET /v1/investments/{uuid}/performance
// Response: 200 OK with InvestmentPerformance
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetPerformance(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	performance, err := h.investmentService.GetPerformance(investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, performance)
}

// GetFundSummary handles GET requests to retrieve aggregate investment totals
// for a fund: counts, invested and current totals, and aggregate ROI.
//
// Endpoint: GET /v1/investments/fund/{fundId}/summary
// Response: 200 OK with FundInvestmentSummary
// Error: 400 Bad Request if fund ID is invalid (validated by middleware)
// Error: 500 Internal Server Error if retrieval fails
func (h *InvestmentHandler) GetFundSummary(w http.ResponseWriter, r *http.Request) {
	fundID := chi.URLParam(r, "fundId")

	summary, err := h.investmentService.GetFundSummary(fundID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// CreateInvestment handles POST requests to create a new investment.
// The referenced fund must exist at creation time.
//
// Endpoint: POST /v1/investments
// Request Body: CreateInvestmentRequest
// Response: 201 Created with InvestmentResponse
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the referenced fund does not exist
// Error: 500 Internal Server Error if creation fails
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.CreateInvestment(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrFundNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrFundNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, investment)
}

// UpdateInvestment handles PUT requests to update an existing investment.
// Only the fields present in the body are changed.
//
// Endpoint: PUT /v1/investments/{uuid}
// Request Body: UpdateInvestmentRequest (all fields optional)
// Response: 200 OK with updated InvestmentResponse
// Error: 400 Bad Request if investment ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if update fails
func (h *InvestmentHandler) UpdateInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateInvestmentRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateInvestment(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	investment, err := h.investmentService.UpdateInvestment(r.Context(), investmentID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to update investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, investment)
}

// DeleteInvestment handles DELETE requests to remove an investment.
//
// Endpoint: DELETE /v1/investments/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if investment ID is invalid (validated by middleware)
// Error: 404 Not Found if investment not found
// Error: 500 Internal Server Error if deletion fails
func (h *InvestmentHandler) DeleteInvestment(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	err := h.investmentService.DeleteInvestment(r.Context(), investmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvestmentNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrInvestmentNotFound.Error(), err.Error())
			return
		}

		response.RespondError(w, http.StatusInternalServerError, "failed to delete investment", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

func parseInvestmentFilterQuery(q url.Values) (*request.InvestmentFilters, error) {
	return request.ParseInvestmentFilters(
		q.Get("fundId"),
		q.Get("status"),
		q.Get("currency"),
		q.Get("minInvestedAmount"),
		q.Get("maxInvestedAmount"),
		q.Get("minCurrentValue"),
		q.Get("maxCurrentValue"),
		q.Get("startDate"),
		q.Get("endDate"),
	)
}
