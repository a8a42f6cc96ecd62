package forecast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// D converts a literal into a decimal. It is meant for tests and callers
// building profiles in code.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	return newDecimal(value)
}

// Rate is an annual rate held as a decimal fraction: 0.05 means 5%.
type Rate struct {
	value decimal.Decimal
}

// R creates a Rate from a user supplied value.
//
// A value greater than 1 is read as a percentage and divided by 100, any
// other value is already a decimal fraction. So R(5) and R(0.05) are both 5%,
// but R(1) is 100%, not 1%.
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	d := newDecimal(value)
	if d.GreaterThan(one) {
		d = d.Div(hundred)
	}
	return Rate{value: d}
}

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) IsZero() bool             { return r.value.IsZero() }
func (r Rate) Equal(q Rate) bool        { return r.value.Equal(q.value) }

// Of returns the rate applied to an amount.
func (r Rate) Of(amount decimal.Decimal) decimal.Decimal { return amount.Mul(r.value) }

// MaxCompoundYears bounds the exponent of Compound.
const MaxCompoundYears = 1000

// Compound returns (1+r)^years. Years below 1 yield exactly 1, years above
// MaxCompoundYears are clamped to it.
func (r Rate) Compound(years int) decimal.Decimal {
	if years <= 0 {
		return one
	}
	years = min(years, MaxCompoundYears)
	f, err := one.Add(r.value).PowInt32(int32(years))
	if err != nil {
		// only 0**0 is undefined, and years is positive here.
		return decimal.Zero
	}
	return f
}

// String returns the rate as a percentage, e.g. "5.00%".
func (r Rate) String() string {
	return fmt.Sprintf("%s%%", r.value.Mul(hundred).StringFixed(2))
}

// MarshalJSON writes the rate as a decimal fraction number.
func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}

// UnmarshalJSON reads the rate applying the percentage rule of R.
func (r *Rate) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*r = R(d)
	return nil
}
