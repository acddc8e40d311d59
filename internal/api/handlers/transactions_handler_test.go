package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fundlens/backoffice/internal/api/handlers"
	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestTransactionHandler_TransactionsPerFund(t *testing.T) {
	t.Run("returns a fund's transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)
		testutil.NewTransaction(fund.ID).Build(t, db)
		testutil.NewTransaction(fund.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(http.MethodGet, "/v1/transactions/fund/"+fund.ID,
			map[string]string{"fundId": fund.ID})
		w := httptest.NewRecorder()

		handler.TransactionsPerFund(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var response []model.TransactionResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(response))
		}
	})
}

func TestTransactionHandler_TransactionsByDateRange(t *testing.T) {
	t.Run("returns transactions within the range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)
		testutil.NewTransaction(fund.ID).
			WithDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewTransaction(fund.ID).
			WithDate(time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet,
			"/v1/transactions/fund/"+fund.ID+"/date-range",
			map[string]string{"startDate": "2024-01-01", "endDate": "2024-12-31"})
		req = withURLParam(req, "fundId", fund.ID)
		w := httptest.NewRecorder()

		handler.TransactionsByDateRange(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.TransactionResponse
		if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 1 {
			t.Errorf("Expected 1 transaction in range, got %d", len(response))
		}
	})

	t.Run("returns 400 when a date is missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet,
			"/v1/transactions/fund/"+fund.ID+"/date-range",
			map[string]string{"startDate": "2024-01-01"})
		req = withURLParam(req, "fundId", fund.ID)
		w := httptest.NewRecorder()

		handler.TransactionsByDateRange(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when startDate is after endDate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet,
			"/v1/transactions/fund/"+fund.ID+"/date-range",
			map[string]string{"startDate": "2024-12-31", "endDate": "2024-01-01"})
		req = withURLParam(req, "fundId", fund.ID)
		w := httptest.NewRecorder()

		handler.TransactionsByDateRange(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestTransactionHandler_GetCashFlowSummary(t *testing.T) {
	t.Run("returns the fund's cash-flow totals", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeCapitalCall, 1_000_000)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeDistribution, 400_000)

		req := testutil.NewRequestWithURLParams(http.MethodGet,
			"/v1/transactions/fund/"+fund.ID+"/summary",
			map[string]string{"fundId": fund.ID})
		w := httptest.NewRecorder()

		handler.GetCashFlowSummary(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var summary model.FundCashFlowSummary
		if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if summary.NetCashFlow != -600_000 {
			t.Errorf("Expected net cash flow -600000, got %f", summary.NetCashFlow)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("creates a transaction and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)

		body := request.CreateTransactionRequest{
			FundID:   fund.ID,
			Type:     model.TransactionTypeCapitalCall,
			Amount:   500_000,
			Date:     "2024-02-01",
			Currency: "USD",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/transactions", body, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 when the fund does not exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		body := request.CreateTransactionRequest{
			FundID:   testutil.MakeID(),
			Type:     model.TransactionTypeCapitalCall,
			Amount:   500_000,
			Date:     "2024-02-01",
			Currency: "USD",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/transactions", body, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("returns 400 for an invalid type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewTransactionHandler(testutil.NewTestTransactionService(t, db))

		fund := testutil.NewFund().Build(t, db)

		body := request.CreateTransactionRequest{
			FundID:   fund.ID,
			Type:     "REFUND",
			Amount:   500_000,
			Date:     "2024-02-01",
			Currency: "USD",
		}
		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/transactions", body, nil)
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
