package forecast

import "github.com/shopspring/decimal"

const (
	// fallbacks for a zero loan term in Settings.
	fallbackLoanTermYears          = 30
	fallbackResidenceLoanTermYears = 20
)

// Settings holds the global defaults used when an Asset leaves a field out.
//
// Rates and the loan-to-value ratio are percentages (5 means 5%), but the
// percentage rule of R applies so decimal fractions are accepted too. Periods
// and terms are in years. Settings are never modified by a forecast.
type Settings struct {
	DefaultCapitalGrowthRate               decimal.Decimal `json:"defaultCapitalGrowthRate"`
	DefaultIncomeGrowthRate                decimal.Decimal `json:"defaultIncomeGrowthRate"`
	DefaultExpenseGrowthRate               decimal.Decimal `json:"defaultExpenseGrowthRate"`
	DefaultLoanToValueRatio                decimal.Decimal `json:"defaultLoanToValueRatio"`
	DefaultLoanInterestRate                decimal.Decimal `json:"defaultLoanInterestRate"`
	DefaultLoanInterestOnlyPeriod          int             `json:"defaultLoanInterestOnlyPeriod"`
	DefaultLoanTermYears                   int             `json:"defaultLoanTermYears"`
	DefaultPrincipalResidenceLoanTermYears int             `json:"defaultPrincipalResidenceLoanTermYears"`
}

// DefaultSettings returns the settings used when none are supplied.
func DefaultSettings() Settings {
	return Settings{
		DefaultCapitalGrowthRate:               decimal.NewFromInt(5),
		DefaultIncomeGrowthRate:                decimal.NewFromInt(3),
		DefaultExpenseGrowthRate:               decimal.NewFromInt(3),
		DefaultLoanToValueRatio:                decimal.NewFromInt(80),
		DefaultLoanInterestRate:                decimal.NewFromInt(5),
		DefaultLoanInterestOnlyPeriod:          3,
		DefaultLoanTermYears:                   fallbackLoanTermYears,
		DefaultPrincipalResidenceLoanTermYears: fallbackResidenceLoanTermYears,
	}
}

// loanTerm returns the default loan term for a type of asset.
func (s Settings) loanTerm(t AssetType) int {
	if t.IsResidence() {
		if s.DefaultPrincipalResidenceLoanTermYears > 0 {
			return s.DefaultPrincipalResidenceLoanTermYears
		}
		return fallbackResidenceLoanTermYears
	}
	if s.DefaultLoanTermYears > 0 {
		return s.DefaultLoanTermYears
	}
	return fallbackLoanTermYears
}
