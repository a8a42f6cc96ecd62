package renderer

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/etnz/forecast"
	"github.com/shopspring/decimal"
)

// Amount formats an amount in the currency, e.g. "$1,234.50" in AUD.
// Amounts too large for money are printed plainly, e.g. "1e20 AUD" as
// "100000000000000000000.00 AUD".
func Amount(d decimal.Decimal, currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	if !minor.BigInt().IsInt64() {
		return fmt.Sprintf("%s %s", d.StringFixed(int32(cur.Fraction)), cur.Code)
	}
	return cur.Formatter().Format(minor.IntPart())
}

// Gap formats a gap to goal. A gap that is not positive means the goal is
// reached and is shown as such.
func Gap(d decimal.Decimal, currency string) string {
	if d.IsPositive() {
		return Amount(d, currency)
	}
	return fmt.Sprintf("reached (%s)", Amount(d.Neg(), currency))
}

// YearOrNever formats a year that may not happen.
func YearOrNever(year int) string {
	if year == 0 {
		return "never"
	}
	return fmt.Sprint(year)
}

// Phase formats a loan phase for a table cell.
func Phase(p forecast.LoanPhase) string {
	switch p {
	case forecast.NoLoan:
		return "-"
	case forecast.PrePurchase:
		return "pre-purchase"
	case forecast.InterestOnly:
		return "interest only"
	case forecast.Amortizing:
		return "amortizing"
	case forecast.Retired:
		return "repaid"
	default:
		return p.String()
	}
}

// Window returns the results of years consecutive years starting at year
// from. A zero from starts at the first result, a zero years runs to the
// last one.
func Window(results []forecast.Result, from, years int) []forecast.Result {
	start := 0
	if from != 0 {
		for start < len(results) && results[start].Year < from {
			start++
		}
	}
	end := len(results)
	if years > 0 && start+years < end {
		end = start + years
	}
	return results[start:end]
}

func rate(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return forecast.R(*d).String()
}

func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
