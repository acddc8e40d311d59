package service

import (
	"math"
	"time"

	"github.com/fundlens/backoffice/internal/model"
)

// Derived investment figures are never stored; everything in this file is
// computed from persisted records at read time.

// unrealizedGain is currentValue - investedAmount.
func unrealizedGain(investedAmount, currentValue float64) float64 {
	return currentValue - investedAmount
}

// roiPercent is the percentage gain relative to the amount invested.
// A zero invested amount yields 0 rather than a division by zero; the same
// rule applies to per-investment and aggregate ROI so the two paths agree.
func roiPercent(investedAmount, gain float64) float64 {
	if investedAmount == 0 {
		return 0
	}
	return gain / investedAmount * 100
}

// holdingPeriodDays is the number of whole days between the investment date
// and now.
func holdingPeriodDays(investmentDate, now time.Time) int {
	return int(math.Floor(now.Sub(investmentDate).Hours() / 24))
}

// calculatePerformance computes the derived figures for a single investment
// as of the given time.
func calculatePerformance(inv model.Investment, now time.Time) model.InvestmentPerformance {
	gain := unrealizedGain(inv.InvestedAmount, inv.CurrentValue)

	return model.InvestmentPerformance{
		ID:                inv.ID,
		CompanyName:       inv.CompanyName,
		InvestedAmount:    inv.InvestedAmount,
		CurrentValue:      inv.CurrentValue,
		UnrealizedGain:    gain,
		ROI:               roiPercent(inv.InvestedAmount, gain),
		HoldingPeriodDays: holdingPeriodDays(inv.InvestmentDate, now),
	}
}

// summarizeInvestments aggregates a fund's investments: totals, aggregate
// ROI, and per-status counts. Amounts are summed in the fund's declared
// currency; no cross-currency conversion is performed.
func summarizeInvestments(investments []model.Investment) model.FundInvestmentSummary {
	summary := model.FundInvestmentSummary{
		TotalInvestments: len(investments),
	}

	for _, inv := range investments {
		summary.TotalInvestedAmount += inv.InvestedAmount
		summary.TotalCurrentValue += inv.CurrentValue

		switch inv.Status {
		case model.InvestmentStatusActive:
			summary.ActiveInvestments++
		case model.InvestmentStatusExited:
			summary.ExitedInvestments++
		case model.InvestmentStatusWrittenOff:
			summary.WrittenOffInvestments++
		}
	}

	summary.TotalUnrealizedGain = summary.TotalCurrentValue - summary.TotalInvestedAmount
	summary.AverageROI = roiPercent(summary.TotalInvestedAmount, summary.TotalUnrealizedGain)

	return summary
}
