package forecast

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// weeksPerYear converts the legacy weekly income into an annual one.
var weeksPerYear = decimal.NewFromInt(52)

// assetNamespace seeds the name-based identifiers of assets without an ID.
var assetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/etnz/forecast/asset"))

// holding is the canonical, fully resolved form of an Asset. Every rate is a
// decimal fraction and every amount is set.
type holding struct {
	id           string
	name         string
	kind         AssetType
	purchaseYear int

	value         decimal.Decimal
	capitalGrowth Rate

	income       decimal.Decimal
	incomeGrowth Rate

	expenses      decimal.Decimal
	expenseGrowth Rate

	loanAmount decimal.Decimal
	lvr        Rate
	loanRate   Rate
	ioPeriod   int
	term       int
}

// normalize drops hidden assets and resolves the others against the
// settings, preserving their order. Each holding gets a stable identifier
// that does not depend on its position in the list.
func normalize(assets []Asset, s Settings) []holding {
	holdings := make([]holding, 0, len(assets))
	seen := make(map[string]int)
	for _, a := range assets {
		if a.Hidden {
			continue
		}
		h := resolve(a, s)
		key := a.ID
		if key == "" {
			key = fmt.Sprintf("%s\x00%s\x00%d", a.Name, a.Type, a.PurchaseYear)
		}
		rank := seen[key]
		seen[key]++
		h.id = holdingID(a.ID, key, rank)
		holdings = append(holdings, h)
	}
	return holdings
}

// holdingID returns the explicit id, or a name-based UUID. The rank tells
// apart identical assets.
func holdingID(explicit, key string, rank int) string {
	if explicit != "" {
		if rank == 0 {
			return explicit
		}
		return fmt.Sprintf("%s-%d", explicit, rank+1)
	}
	return uuid.NewSHA1(assetNamespace, []byte(fmt.Sprintf("%s\x00%d", key, rank))).String()
}

// resolve fills the missing fields of a single asset.
func resolve(a Asset, s Settings) holding {
	h := holding{
		name:         a.Name,
		kind:         a.Type,
		purchaseYear: a.PurchaseYear,

		value:         amount(a.PurchaseMarketValue),
		capitalGrowth: rate(a.CapitalGrowthRate, s.DefaultCapitalGrowthRate),

		income:       amount(a.IncomePerYear),
		incomeGrowth: rate(a.IncomeGrowthRate, s.DefaultIncomeGrowthRate),

		expenses:      amount(a.ExpensesPerYear),
		expenseGrowth: rate(a.ExpenseGrowthRate, s.DefaultExpenseGrowthRate),

		loanAmount: amount(a.LoanAmount),
		lvr:        rate(a.LoanToValueRatio, s.DefaultLoanToValueRatio),
		loanRate:   rate(a.LoanInterestRate, s.DefaultLoanInterestRate),
		ioPeriod:   years(a.LoanInterestOnlyPeriod, s.DefaultLoanInterestOnlyPeriod),
		term:       years(a.LoanTermYears, s.loanTerm(a.Type)),
	}
	if a.IncomePerYear == nil && a.IncomePerWeek != nil {
		h.income = amount(a.IncomePerWeek).Mul(weeksPerYear)
	}
	return h
}

// amount returns the value or zero when absent. Negative amounts are
// meaningless here and degrade to zero.
func amount(v *decimal.Decimal) decimal.Decimal {
	if v == nil || v.IsNegative() {
		return decimal.Zero
	}
	return *v
}

func rate(v *decimal.Decimal, def decimal.Decimal) Rate {
	if v == nil {
		return R(def)
	}
	return R(*v)
}

func years(v *int, def int) int {
	y := def
	if v != nil {
		y = *v
	}
	return max(y, 0)
}

// asset converts back to the canonical Asset shape.
func (h holding) asset() Asset {
	dec := func(d decimal.Decimal) *decimal.Decimal { return &d }
	return Asset{
		ID:                     h.id,
		Name:                   h.name,
		Type:                   h.kind,
		PurchaseYear:           h.purchaseYear,
		PurchaseMarketValue:    dec(h.value),
		CapitalGrowthRate:      dec(h.capitalGrowth.Decimal()),
		IncomePerYear:          dec(h.income),
		IncomeGrowthRate:       dec(h.incomeGrowth.Decimal()),
		ExpensesPerYear:        dec(h.expenses),
		ExpenseGrowthRate:      dec(h.expenseGrowth.Decimal()),
		LoanAmount:             dec(h.loanAmount),
		LoanToValueRatio:       dec(h.lvr.Decimal()),
		LoanInterestRate:       dec(h.loanRate.Decimal()),
		LoanInterestOnlyPeriod: Ptr(h.ioPeriod),
		LoanTermYears:          Ptr(h.term),
	}
}

// Normalize returns the visible assets in their canonical shape: every
// field is set, rates are decimal fractions, weekly incomes are annualized
// and every asset has an ID.
//
// Normalizing a normalized list is a no-op as long as no rate exceeds 100%.
func Normalize(assets []Asset, s Settings) []Asset {
	holdings := normalize(assets, s)
	out := make([]Asset, 0, len(holdings))
	for _, h := range holdings {
		out = append(out, h.asset())
	}
	return out
}
