package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// halfCent is the largest balance left by rounding that the last scheduled
// payment settles.
var halfCent = decimal.New(5, -3)

// LoanPhase is the state of a loan in a given year.
//
// A loan moves through PrePurchase, InterestOnly, Amortizing and Retired, in
// that order, never backward. The phase only depends on the year of the loan
// relative to its interest-only period and its term.
type LoanPhase int

const (
	// NoLoan is reported for assets that are not financed.
	NoLoan LoanPhase = iota
	// PrePurchase is the phase before the asset is bought.
	PrePurchase
	// InterestOnly means only the interest is paid, the balance is unchanged.
	InterestOnly
	// Amortizing means a level payment covers interest and principal.
	Amortizing
	// Retired means the term is over, the loan is repaid.
	Retired
)

func (p LoanPhase) String() string {
	switch p {
	case NoLoan:
		return "none"
	case PrePurchase:
		return "prePurchase"
	case InterestOnly:
		return "interestOnly"
	case Amortizing:
		return "amortizing"
	case Retired:
		return "retired"
	default:
		return "unknown"
	}
}

// ParseLoanPhase parses a string into a LoanPhase.
func ParseLoanPhase(s string) (LoanPhase, error) {
	for p := NoLoan; p <= Retired; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown loan phase: %q", s)
}

func (p LoanPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *LoanPhase) UnmarshalText(b []byte) (err error) {
	*p, err = ParseLoanPhase(string(b))
	return err
}

// phaseOf returns the phase of a loan in its yearOfLoan-th year, the
// purchase year being the first one.
func phaseOf(yearOfLoan, ioPeriod, term int) LoanPhase {
	switch {
	case yearOfLoan < 1:
		return PrePurchase
	case yearOfLoan > term:
		return Retired
	case yearOfLoan <= ioPeriod:
		return InterestOnly
	default:
		return Amortizing
	}
}

// AnnualPayment returns the level annual payment that repays principal at
// the annual rate in the given number of years.
//
// It is zero when years is not positive, and principal/years for a zero rate.
func AnnualPayment(principal decimal.Decimal, r Rate, years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	if r.IsZero() {
		return principal.Div(decimal.NewFromInt(int64(years)))
	}
	// P·i/(1-(1+i)^-n) written as P·i·f/(f-1) with f = (1+i)^n
	f := r.Compound(years)
	denom := f.Sub(one)
	if denom.IsZero() {
		return decimal.Zero
	}
	return r.Of(principal).Mul(f).Div(denom)
}

// loan is the per-asset amortization state of a single forecast run.
type loan struct {
	balance  decimal.Decimal
	payment  decimal.Decimal // fixed payment once amortizing
	rate     Rate
	ioPeriod int
	term     int
	drawn    bool
}

// loanYear is what happened to a loan during one year.
type loanYear struct {
	interest  decimal.Decimal
	principal decimal.Decimal
	balance   decimal.Decimal // at the end of the year
	phase     LoanPhase
}

// newLoan precomputes the payment of the principal-and-interest period,
// which lasts max(0, term-ioPeriod) years.
func newLoan(principal decimal.Decimal, r Rate, ioPeriod, term int) *loan {
	return &loan{
		balance:  principal,
		payment:  AnnualPayment(principal, r, max(0, term-ioPeriod)),
		rate:     r,
		ioPeriod: ioPeriod,
		term:     term,
		drawn:    principal.IsPositive(),
	}
}

// step advances the loan by one year. yearsHeld is 0 in the purchase year.
// It must be called once per forecast year, in order.
func (l *loan) step(yearsHeld int) loanYear {
	yearOfLoan := yearsHeld + 1
	phase := phaseOf(yearOfLoan, l.ioPeriod, l.term)

	if !l.drawn {
		return loanYear{phase: NoLoan}
	}
	if l.balance.IsZero() {
		// repaid before the end of the term.
		return loanYear{phase: Retired}
	}

	switch phase {
	case Retired:
		l.balance = decimal.Zero
		return loanYear{phase: Retired}
	case InterestOnly:
		return loanYear{
			interest: l.rate.Of(l.balance),
			balance:  l.balance,
			phase:    InterestOnly,
		}
	case Amortizing:
		interest := l.rate.Of(l.balance)
		principal := l.payment.Sub(interest)
		if principal.IsNegative() {
			// a payment below the interest due would grow the balance.
			principal = decimal.Zero
		}
		if principal.GreaterThan(l.balance) {
			principal = l.balance
		}
		rest := l.balance.Sub(principal)
		if yearOfLoan == l.term && rest.LessThan(halfCent) {
			principal, rest = l.balance, decimal.Zero
		}
		l.balance = rest
		return loanYear{
			interest:  interest,
			principal: principal,
			balance:   rest,
			phase:     Amortizing,
		}
	default:
		return loanYear{balance: l.balance, phase: phase}
	}
}
