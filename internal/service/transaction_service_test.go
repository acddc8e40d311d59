package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundlens/backoffice/internal/api/request"
	"github.com/fundlens/backoffice/internal/apperrors"
	"github.com/fundlens/backoffice/internal/model"
	"github.com/fundlens/backoffice/internal/testutil"
)

func TestTransactionService_GetTransactions(t *testing.T) {
	t.Run("returns empty slice when no transactions exist", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		transactions, err := ts.GetTransactions("")
		if err != nil {
			t.Fatalf("GetTransactions failed: %v", err)
		}

		if len(transactions) != 0 {
			t.Errorf("Expected 0 transactions, got %d", len(transactions))
		}
	})

	t.Run("returns transactions newest first with fund name attached", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().WithName("Growth Fund I").Build(t, db)
		older := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
		testutil.NewTransaction(fund.ID).WithDate(older).WithAmount(100_000).Build(t, db)
		testutil.NewTransaction(fund.ID).WithDate(newer).WithAmount(200_000).Build(t, db)

		transactions, err := ts.GetTransactions(fund.ID)
		if err != nil {
			t.Fatalf("GetTransactions failed: %v", err)
		}

		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(transactions))
		}
		if transactions[0].Amount != 200_000 {
			t.Errorf("Expected newest transaction first, got amount %f", transactions[0].Amount)
		}
		if transactions[0].FundName != "Growth Fund I" {
			t.Errorf("Expected fund name 'Growth Fund I', got '%s'", transactions[0].FundName)
		}
	})
}

func TestTransactionService_GetTransactionsByDateRange(t *testing.T) {
	t.Run("returns transactions within inclusive bounds oldest first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)
		testutil.NewTransaction(fund.ID).
			WithDate(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).WithAmount(1).Build(t, db)
		testutil.NewTransaction(fund.ID).
			WithDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)).WithAmount(2).Build(t, db)
		testutil.NewTransaction(fund.ID).
			WithDate(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)).WithAmount(3).Build(t, db)

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		transactions, err := ts.GetTransactionsByDateRange(fund.ID, start, end)
		if err != nil {
			t.Fatalf("GetTransactionsByDateRange failed: %v", err)
		}

		if len(transactions) != 2 {
			t.Fatalf("Expected 2 transactions in range, got %d", len(transactions))
		}
		if transactions[0].Amount != 1 || transactions[1].Amount != 2 {
			t.Errorf("Expected ascending date order, got amounts %f, %f",
				transactions[0].Amount, transactions[1].Amount)
		}
	})

	t.Run("rejects a start date after the end date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := ts.GetTransactionsByDateRange(fund.ID, start, end)

		if !errors.Is(err, apperrors.ErrInvalidDateRange) {
			t.Errorf("Expected ErrInvalidDateRange, got %v", err)
		}
	})
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	t.Run("creates a transaction for an existing fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)

		created, err := ts.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			FundID:   fund.ID,
			Type:     model.TransactionTypeCapitalCall,
			Amount:   500_000,
			Date:     "2024-02-01",
			Currency: "USD",
		})
		if err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		if created.Type != model.TransactionTypeCapitalCall {
			t.Errorf("Expected type CAPITAL_CALL, got '%s'", created.Type)
		}

		testutil.AssertRowCount(t, db, "fund_transaction", 1)
	})

	t.Run("rejects creation against a missing fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		_, err := ts.CreateTransaction(context.Background(), request.CreateTransactionRequest{
			FundID:   testutil.MakeID(),
			Type:     model.TransactionTypeCapitalCall,
			Amount:   500_000,
			Date:     "2024-02-01",
			Currency: "USD",
		})

		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	t.Run("merges only the supplied fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)
		tx := testutil.NewTransaction(fund.ID).WithAmount(100_000).Build(t, db)

		newAmount := 750_000.0
		updated, err := ts.UpdateTransaction(context.Background(), tx.ID, request.UpdateTransactionRequest{
			Amount: &newAmount,
		})
		if err != nil {
			t.Fatalf("UpdateTransaction failed: %v", err)
		}

		if updated.Amount != 750_000 {
			t.Errorf("Expected amount 750000, got %f", updated.Amount)
		}
		if updated.Type != tx.Type {
			t.Errorf("Type should be unchanged, got '%s'", updated.Type)
		}
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		amount := 1.0
		_, err := ts.UpdateTransaction(context.Background(), testutil.MakeID(), request.UpdateTransactionRequest{
			Amount: &amount,
		})

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionService_GetCashFlowSummary(t *testing.T) {
	t.Run("computes net cash flow as distributions plus investments minus capital calls", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeCapitalCall, 1_000_000)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeCapitalCall, 500_000)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeInvestment, 800_000)
		testutil.CreateTransaction(t, db, fund.ID, model.TransactionTypeDistribution, 300_000)

		summary, err := ts.GetCashFlowSummary(fund.ID)
		if err != nil {
			t.Fatalf("GetCashFlowSummary failed: %v", err)
		}

		if summary.TotalCapitalCalls != 1_500_000 {
			t.Errorf("Expected total capital calls 1500000, got %f", summary.TotalCapitalCalls)
		}
		if summary.TotalInvestments != 800_000 {
			t.Errorf("Expected total investments 800000, got %f", summary.TotalInvestments)
		}
		if summary.TotalDistributions != 300_000 {
			t.Errorf("Expected total distributions 300000, got %f", summary.TotalDistributions)
		}

		// (300000 + 800000) - 1500000
		if summary.NetCashFlow != -400_000 {
			t.Errorf("Expected net cash flow -400000, got %f", summary.NetCashFlow)
		}
	})

	t.Run("returns zero summary for a fund with no transactions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)

		summary, err := ts.GetCashFlowSummary(fund.ID)
		if err != nil {
			t.Fatalf("GetCashFlowSummary failed: %v", err)
		}

		if summary.NetCashFlow != 0 {
			t.Errorf("Expected net cash flow 0, got %f", summary.NetCashFlow)
		}
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	t.Run("deletes an existing transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		fund := testutil.NewFund().Build(t, db)
		tx := testutil.NewTransaction(fund.ID).Build(t, db)

		if err := ts.DeleteTransaction(context.Background(), tx.ID); err != nil {
			t.Fatalf("DeleteTransaction failed: %v", err)
		}

		testutil.AssertRowCount(t, db, "fund_transaction", 0)
	})

	t.Run("returns not found for unknown transaction", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ts := testutil.NewTestTransactionService(t, db)

		err := ts.DeleteTransaction(context.Background(), testutil.MakeID())

		if !errors.Is(err, apperrors.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})
}
