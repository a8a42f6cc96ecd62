package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AssetType identifies the kind of holding.
type AssetType string

const (
	InvestmentProperty        AssetType = "investmentProperty"
	CommercialProperty        AssetType = "commercialProperty"
	SelfManagedSuperFund      AssetType = "selfManagedSuperFund"
	StockPortfolio            AssetType = "stockPortfolio"
	PrincipalPlaceOfResidence AssetType = "principalPlaceOfResidence"
)

// AssetTypes lists every known asset type.
func AssetTypes() []AssetType {
	return []AssetType{
		InvestmentProperty,
		CommercialProperty,
		SelfManagedSuperFund,
		StockPortfolio,
		PrincipalPlaceOfResidence,
	}
}

// ParseAssetType parses a string into a known AssetType.
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AssetTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type: %q", s)
}

func (t AssetType) String() string { return string(t) }

// IsResidence is true for the principal place of residence, whose loan term
// defaults differ from the other assets.
func (t AssetType) IsResidence() bool { return t == PrincipalPlaceOfResidence }

// Asset is one holding of the portfolio as supplied by the user.
//
// Every numeric field is optional: nil means absent and is resolved from
// Settings or to zero by the normalization stage. Rates accept both
// percentages (5) and decimal fractions (0.05).
type Asset struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Type         AssetType `json:"type"`
	PurchaseYear int       `json:"purchaseYear"`

	PurchaseMarketValue *decimal.Decimal `json:"purchaseMarketValue,omitempty"`
	CapitalGrowthRate   *decimal.Decimal `json:"capitalGrowthRate,omitempty"`

	IncomePerYear    *decimal.Decimal `json:"incomePerYear,omitempty"`
	IncomePerWeek    *decimal.Decimal `json:"incomePerWeek,omitempty"` // legacy, superseded by IncomePerYear
	IncomeGrowthRate *decimal.Decimal `json:"incomeGrowthRate,omitempty"`

	ExpensesPerYear   *decimal.Decimal `json:"expensesPerYear,omitempty"`
	ExpenseGrowthRate *decimal.Decimal `json:"expenseGrowthRate,omitempty"`

	LoanAmount             *decimal.Decimal `json:"loanAmount,omitempty"`
	LoanToValueRatio       *decimal.Decimal `json:"loanToValueRatio,omitempty"`
	LoanInterestRate       *decimal.Decimal `json:"loanInterestRate,omitempty"`
	LoanInterestOnlyPeriod *int             `json:"loanInterestOnlyPeriod,omitempty"`
	LoanTermYears          *int             `json:"loanTermYears,omitempty"`

	// Hidden assets are kept in the profile but ignored by the forecast.
	Hidden bool `json:"hidden,omitempty"`
}

// Ptr returns a pointer to v. It helps filling the optional fields of an
// Asset in code.
func Ptr[T any](v T) *T { return &v }

// EarliestPurchaseYear returns the smallest purchase year among the visible
// assets. Callers reconstructing the history of a portfolio use it as the
// Profile start year.
func EarliestPurchaseYear(assets []Asset) (year int, ok bool) {
	for _, a := range assets {
		if a.Hidden {
			continue
		}
		if !ok || a.PurchaseYear < year {
			year, ok = a.PurchaseYear, true
		}
	}
	return year, ok
}
