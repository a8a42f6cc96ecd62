package renderer

import (
	"github.com/etnz/forecast"
)

// Summary holds the formatted figures of a forecast.Summary.
type Summary struct {
	StartYear       int    `json:"startYear"`
	EndYear         int    `json:"endYear"`
	Goal            string `json:"goal"`
	GoalYear        string `json:"goalYear"`
	RealGoalYear    string `json:"realGoalYear"`
	DebtFreeYear    string `json:"debtFreeYear"`
	PeakEquity      string `json:"peakEquity"`
	PeakEquityYear  int    `json:"peakEquityYear"`
	FinalEquity     string `json:"finalEquity"`
	MeanNetIncome   string `json:"meanNetIncome"`
	NetIncomeStdDev string `json:"netIncomeStdDev"`
}

// NewSummary formats s in the profile currency.
func NewSummary(p forecast.Profile, s forecast.Summary) *Summary {
	cur := p.DisplayCurrency()
	return &Summary{
		StartYear:       s.StartYear,
		EndYear:         s.EndYear,
		Goal:            Amount(p.PassiveIncomeGoal, cur),
		GoalYear:        YearOrNever(s.GoalYear),
		RealGoalYear:    YearOrNever(s.RealGoalYear),
		DebtFreeYear:    YearOrNever(s.DebtFreeYear),
		PeakEquity:      Amount(s.PeakEquity, cur),
		PeakEquityYear:  s.PeakEquityYear,
		FinalEquity:     Amount(s.FinalEquity, cur),
		MeanNetIncome:   Amount(s.MeanNetIncome, cur),
		NetIncomeStdDev: Amount(s.NetIncomeStdDev, cur),
	}
}

// SummaryMarkdown renders the Summary struct to a markdown string.
func SummaryMarkdown(s *Summary) string {
	partials := map[string]string{
		"summary_goals":  "summary_goals.md",
		"summary_equity": "summary_equity.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}
