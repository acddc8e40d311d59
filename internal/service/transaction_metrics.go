package service

import "github.com/fundlens/backoffice/internal/model"

// summarizeCashFlows totals a fund's transactions by type.
//
// Business rule: netCashFlow = (distributions + investments) - capital
// calls. Investment outlays are added, not subtracted; this is the
// documented behavior of the system and is reproduced exactly.
func summarizeCashFlows(transactions []model.Transaction) model.FundCashFlowSummary {
	var summary model.FundCashFlowSummary

	for _, tx := range transactions {
		switch tx.Type {
		case model.TransactionTypeCapitalCall:
			summary.TotalCapitalCalls += tx.Amount
		case model.TransactionTypeInvestment:
			summary.TotalInvestments += tx.Amount
		case model.TransactionTypeDistribution:
			summary.TotalDistributions += tx.Amount
		}
	}

	summary.NetCashFlow = (summary.TotalDistributions + summary.TotalInvestments) - summary.TotalCapitalCalls

	return summary
}
