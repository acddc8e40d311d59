package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fundlens/backoffice/internal/api/handlers"
	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestFundHandler_GetFunds(t *testing.T) {
	t.Run("returns empty array when no funds exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		w := httptest.NewRecorder()

		handler.GetFunds(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		contentType := w.Header().Get("Content-Type")
		if contentType != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
		}

		var response []model.Fund
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("returns all funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		testutil.NewFund().WithName("Growth Fund I").Build(t, db)
		testutil.NewFund().WithName("Growth Fund II").Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/v1/funds", nil)
		w := httptest.NewRecorder()

		handler.GetFunds(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Fund
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 2 {
			t.Errorf("Expected 2 funds, got %d", len(response))
		}
	})
}

func TestFundHandler_FilterFunds(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		testutil.NewFund().WithStatus(model.FundStatusOpen).Build(t, db)
		testutil.NewFund().WithStatus(model.FundStatusClosed).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/v1/funds/filter",
			map[string]string{"status": "CLOSED"})
		w := httptest.NewRecorder()

		handler.FilterFunds(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.Fund
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Fatalf("Expected 1 fund, got %d", len(response))
		}
		if response[0].Status != model.FundStatusClosed {
			t.Errorf("Expected status CLOSED, got '%s'", response[0].Status)
		}
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/v1/funds/filter",
			map[string]string{"status": "BOGUS"})
		w := httptest.NewRecorder()

		handler.FilterFunds(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("rejects a non-numeric fund size bound", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/v1/funds/filter",
			map[string]string{"minFundSize": "lots"})
		w := httptest.NewRecorder()

		handler.FilterFunds(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestFundHandler_GetFund(t *testing.T) {
	t.Run("returns a fund by ID", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		fund := testutil.NewFund().WithName("Growth Fund I").Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/v1/funds/"+fund.ID,
			map[string]string{"uuid": fund.ID})
		w := httptest.NewRecorder()

		handler.GetFund(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response model.Fund
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.Name != "Growth Fund I" {
			t.Errorf("Expected name 'Growth Fund I', got '%s'", response.Name)
		}
	})

	t.Run("returns 404 for an unknown fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/v1/funds/"+id,
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.GetFund(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestFundHandler_CreateFund(t *testing.T) {
	t.Run("creates a fund and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		body := request.CreateFundRequest{
			Name:                 "Growth Fund I",
			FundSize:             100_000_000,
			VintageYear:          2021,
			ManagementFeePercent: 2,
			CarryPercent:         20,
			Currency:             "USD",
			Status:               model.FundStatusOpen,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/funds", body, nil)
		w := httptest.NewRecorder()

		handler.CreateFund(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		testutil.AssertRowCount(t, db, "fund", 1)
	})

	t.Run("returns 400 for a validation failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		body := request.CreateFundRequest{
			Name:     "",
			Currency: "DOGE",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/funds", body, nil)
		w := httptest.NewRecorder()

		handler.CreateFund(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 409 for a duplicate name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		testutil.NewFund().WithName("Growth Fund I").Build(t, db)

		body := request.CreateFundRequest{
			Name:        "Growth Fund I",
			FundSize:    100_000_000,
			VintageYear: 2021,
			Currency:    "USD",
			Status:      model.FundStatusOpen,
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/funds", body, nil)
		w := httptest.NewRecorder()

		handler.CreateFund(w, req)

		if w.Code != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", w.Code)
		}
	})
}

func TestFundHandler_DeleteFund(t *testing.T) {
	t.Run("deletes a fund and returns 204", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		fund := testutil.NewFund().Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/v1/funds/"+fund.ID,
			map[string]string{"uuid": fund.ID})
		w := httptest.NewRecorder()

		handler.DeleteFund(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}

		testutil.AssertRowCount(t, db, "fund", 0)
	})

	t.Run("returns 404 for an unknown fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewFundHandler(testutil.NewTestFundService(t, db))

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/v1/funds/"+id,
			map[string]string{"uuid": id})
		w := httptest.NewRecorder()

		handler.DeleteFund(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}
