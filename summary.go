package forecast

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses a forecast into the few figures worth a headline.
//
// Years are zero when the event does not happen within the horizon.
type Summary struct {
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`
	// GoalYear is the first year the net income reaches the goal.
	GoalYear int `json:"goalYear"`
	// RealGoalYear is the first year the cash flow after principal reaches
	// the goal.
	RealGoalYear int `json:"realGoalYear"`
	// DebtFreeYear is the first year from which no loan is left until the end
	// of the horizon.
	DebtFreeYear   int             `json:"debtFreeYear"`
	PeakEquity     decimal.Decimal `json:"peakEquity"`
	PeakEquityYear int             `json:"peakEquityYear"`
	FinalEquity    decimal.Decimal `json:"finalEquity"`
	// MeanNetIncome and NetIncomeStdDev describe the yearly net income over
	// the horizon.
	MeanNetIncome   decimal.Decimal `json:"meanNetIncome"`
	NetIncomeStdDev decimal.Decimal `json:"netIncomeStdDev"`
}

// Summarize computes the Summary of results sorted by year.
func Summarize(results []Result) Summary {
	var s Summary
	if len(results) == 0 {
		return s
	}
	s.StartYear = results[0].Year
	s.EndYear = results[len(results)-1].Year
	s.FinalEquity = results[len(results)-1].Equity

	incomes := make([]float64, 0, len(results))
	indebted := -1 // index of the last year with a loan
	for i, r := range results {
		incomes = append(incomes, r.NetIncome.InexactFloat64())
		if s.GoalYear == 0 && !r.GapToIncomeGoal.IsPositive() {
			s.GoalYear = r.Year
		}
		if s.RealGoalYear == 0 && !r.RealGapToGoal.IsPositive() {
			s.RealGoalYear = r.Year
		}
		if i == 0 || r.Equity.GreaterThan(s.PeakEquity) {
			s.PeakEquity, s.PeakEquityYear = r.Equity, r.Year
		}
		if r.AssetLoanBalance.IsPositive() {
			indebted = i
		}
	}
	if indebted+1 < len(results) {
		s.DebtFreeYear = results[indebted+1].Year
	}

	s.MeanNetIncome = cents(decimal.NewFromFloat(stat.Mean(incomes, nil)))
	if len(incomes) > 1 {
		s.NetIncomeStdDev = cents(decimal.NewFromFloat(stat.StdDev(incomes, nil)))
	}
	return s
}
