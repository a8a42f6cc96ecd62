package forecast

import "github.com/shopspring/decimal"

// DefaultHorizon is the number of years forecast when the Profile does not
// say otherwise.
const DefaultHorizon = 50

// MaxHorizon is the largest number of years a forecast runs.
const MaxHorizon = 100

// DefaultCurrency is used to display amounts when the Profile has none.
const DefaultCurrency = "AUD"

// Profile describes the portfolio to forecast and the income goal.
type Profile struct {
	CurrentYear int `json:"currentYear"`
	// StartYear is the first forecast year, CurrentYear when zero.
	StartYear         int             `json:"startYear,omitempty"`
	PassiveIncomeGoal decimal.Decimal `json:"passiveIncomeGoal"`
	// Horizon is the number of forecast years, DefaultHorizon when zero and
	// at most MaxHorizon.
	Horizon int `json:"horizon,omitempty"`
	// YearsToGoal is only a display hint for how many years are worth
	// showing, it never shortens the forecast.
	YearsToGoal int `json:"yearsToGoal,omitempty"`
	// Currency is the ISO code used to display amounts. It plays no part in
	// the calculation.
	Currency string  `json:"currency,omitempty"`
	Assets   []Asset `json:"assets"`
}

// Start returns the first forecast year.
func (p Profile) Start() int {
	if p.StartYear != 0 {
		return p.StartYear
	}
	return p.CurrentYear
}

// Years returns the forecast horizon, clamped to MaxHorizon.
func (p Profile) Years() int {
	switch {
	case p.Horizon > MaxHorizon:
		return MaxHorizon
	case p.Horizon > 0:
		return p.Horizon
	}
	return DefaultHorizon
}

// DisplayCurrency returns the profile currency or DefaultCurrency.
func (p Profile) DisplayCurrency() string {
	if p.Currency != "" {
		return p.Currency
	}
	return DefaultCurrency
}

// WithHistory returns a copy of the profile starting at the earliest purchase
// year of its visible assets, if that is before the current start.
func (p Profile) WithHistory() Profile {
	if y, ok := EarliestPurchaseYear(p.Assets); ok && y < p.Start() {
		p.StartYear = y
	}
	return p
}
