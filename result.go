package forecast

import "github.com/shopspring/decimal"

// Result is the snapshot of the whole portfolio for one calendar year.
//
// Amounts are rounded to cents. Expenses include loan interest.
type Result struct {
	Year                   int             `json:"currentYear"`
	GrossIncome            decimal.Decimal `json:"grossIncome"`
	Expenses               decimal.Decimal `json:"expenses"`
	NetIncome              decimal.Decimal `json:"netIncome"`
	TotalPrincipalPaid     decimal.Decimal `json:"totalPrincipalPaid"`
	CashFlowAfterPrincipal decimal.Decimal `json:"cashFlowAfterPrincipal"`
	GapToIncomeGoal        decimal.Decimal `json:"gapToIncomeGoal"`
	// RealGapToGoal is the gap measured on the cash flow after principal.
	// A negative gap means the goal is exceeded.
	RealGapToGoal    decimal.Decimal `json:"realGapToGoal"`
	NumberOfAssets   int             `json:"numberOfAssets"`
	AssetValue       decimal.Decimal `json:"assetValue"`
	AssetLoanBalance decimal.Decimal `json:"assetLoanBalance"`
	Equity           decimal.Decimal `json:"equity"`
	// Assets is the breakdown of the active assets, in input order.
	Assets []AssetYear `json:"assets"`
}

// AssetYear is the contribution of a single asset to a Result.
type AssetYear struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Type                   AssetType       `json:"type"`
	GrossIncome            decimal.Decimal `json:"grossIncome"`
	OperatingExpenses      decimal.Decimal `json:"operatingExpenses"`
	InterestPaid           decimal.Decimal `json:"interestPaid"`
	PrincipalPaid          decimal.Decimal `json:"principalPaid"`
	NetIncome              decimal.Decimal `json:"netIncome"`
	CashFlowAfterPrincipal decimal.Decimal `json:"cashFlowAfterPrincipal"`
	LoanBalanceEnd         decimal.Decimal `json:"loanBalanceEnd"`
	AssetValue             decimal.Decimal `json:"assetValue"`
	LoanPhase              LoanPhase       `json:"loanPhase,omitempty"`
}

// FindYear returns the result of a calendar year.
func FindYear(results []Result, year int) (Result, bool) {
	for _, r := range results {
		if r.Year == year {
			return r, true
		}
	}
	return Result{}, false
}

// cents rounds an amount for publication.
func cents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

// assetYear holds the exact figures of one asset for one year.
type assetYear struct {
	h        *holding
	income   decimal.Decimal
	expenses decimal.Decimal // operating only
	value    decimal.Decimal
	loan     loanYear
}

// netIncome is the gross income less operating expenses and interest.
func (a assetYear) netIncome() decimal.Decimal {
	return a.income.Sub(a.expenses.Add(a.loan.interest))
}

func (a assetYear) cashFlow() decimal.Decimal {
	return a.netIncome().Sub(a.loan.principal)
}

func (a assetYear) publish() AssetYear {
	return AssetYear{
		ID:                     a.h.id,
		Name:                   a.h.name,
		Type:                   a.h.kind,
		GrossIncome:            cents(a.income),
		OperatingExpenses:      cents(a.expenses),
		InterestPaid:           cents(a.loan.interest),
		PrincipalPaid:          cents(a.loan.principal),
		NetIncome:              cents(a.netIncome()),
		CashFlowAfterPrincipal: cents(a.cashFlow()),
		LoanBalanceEnd:         cents(a.loan.balance),
		AssetValue:             cents(a.value),
		LoanPhase:              a.loan.phase,
	}
}

// yearTotals accumulates the active assets of a year. Its zero value is
// ready to use.
type yearTotals struct {
	income    decimal.Decimal
	expenses  decimal.Decimal // operating and interest
	principal decimal.Decimal
	value     decimal.Decimal
	balance   decimal.Decimal
	assets    []AssetYear
}

func (t *yearTotals) add(a assetYear) {
	t.income = t.income.Add(a.income)
	t.expenses = t.expenses.Add(a.expenses).Add(a.loan.interest)
	t.principal = t.principal.Add(a.loan.principal)
	t.value = t.value.Add(a.value)
	t.balance = t.balance.Add(a.loan.balance)
	t.assets = append(t.assets, a.publish())
}

// result closes the year against the passive income goal.
func (t *yearTotals) result(year int, goal decimal.Decimal) Result {
	net := t.income.Sub(t.expenses)
	cashFlow := net.Sub(t.principal)
	value, balance := cents(t.value), cents(t.balance)
	assets := t.assets
	if assets == nil {
		assets = []AssetYear{}
	}
	return Result{
		Year:                   year,
		GrossIncome:            cents(t.income),
		Expenses:               cents(t.expenses),
		NetIncome:              cents(net),
		TotalPrincipalPaid:     cents(t.principal),
		CashFlowAfterPrincipal: cents(cashFlow),
		GapToIncomeGoal:        cents(goal.Sub(net)),
		RealGapToGoal:          cents(goal.Sub(cashFlow)),
		NumberOfAssets:         len(t.assets),
		AssetValue:             value,
		AssetLoanBalance:       balance,
		// computed on published figures so the identity holds to the cent.
		Equity: value.Sub(balance),
		Assets: assets,
	}
}
