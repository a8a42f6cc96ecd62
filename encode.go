package forecast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file maps every historical JSON shape of a profile into the canonical
// types. Old profiles quote numbers, leave fields empty, write the purchase
// year as a string, give a weekly income, or use the short keys of the shared
// state (cy, pig, a). Decoding never rejects a missing field, only malformed
// values.

// optDecimal is an optional number, quoted or not. Empty strings and null are
// absent.
type optDecimal struct{ v *decimal.Decimal }

func (o *optDecimal) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" || s == "null" {
		o.v = nil
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", b, err)
	}
	o.v = &d
	return nil
}

// optInt is an optional integer, quoted or not. Fractions are truncated.
type optInt struct{ v *int }

func (o *optInt) UnmarshalJSON(b []byte) error {
	var d optDecimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	if d.v == nil {
		o.v = nil
		return nil
	}
	i := int(d.v.IntPart())
	o.v = &i
	return nil
}

func unquote(b []byte) string {
	s := string(bytes.TrimSpace(b))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// UnmarshalJSON reads an asset in any of its historical shapes.
func (a *Asset) UnmarshalJSON(b []byte) error {
	// a dedicated local struct accepts loose values for every field.
	var j struct {
		ID                     string     `json:"id"`
		Name                   string     `json:"name"`
		Type                   AssetType  `json:"type"`
		PurchaseYear           optInt     `json:"purchaseYear"`
		PurchaseMarketValue    optDecimal `json:"purchaseMarketValue"`
		CapitalGrowthRate      optDecimal `json:"capitalGrowthRate"`
		IncomePerYear          optDecimal `json:"incomePerYear"`
		IncomePerWeek          optDecimal `json:"incomePerWeek"`
		IncomeGrowthRate       optDecimal `json:"incomeGrowthRate"`
		ExpensesPerYear        optDecimal `json:"expensesPerYear"`
		ExpenseGrowthRate      optDecimal `json:"expenseGrowthRate"`
		LoanAmount             optDecimal `json:"loanAmount"`
		LoanToValueRatio       optDecimal `json:"loanToValueRatio"`
		LoanInterestRate       optDecimal `json:"loanInterestRate"`
		LoanInterestOnlyPeriod optInt     `json:"loanInterestOnlyPeriod"`
		LoanTermYears          optInt     `json:"loanTermYears"`
		Hidden                 bool       `json:"hidden"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("cannot decode asset: %w", err)
	}
	*a = Asset{
		ID:                     j.ID,
		Name:                   j.Name,
		Type:                   j.Type,
		PurchaseMarketValue:    j.PurchaseMarketValue.v,
		CapitalGrowthRate:      j.CapitalGrowthRate.v,
		IncomePerYear:          j.IncomePerYear.v,
		IncomePerWeek:          j.IncomePerWeek.v,
		IncomeGrowthRate:       j.IncomeGrowthRate.v,
		ExpensesPerYear:        j.ExpensesPerYear.v,
		ExpenseGrowthRate:      j.ExpenseGrowthRate.v,
		LoanAmount:             j.LoanAmount.v,
		LoanToValueRatio:       j.LoanToValueRatio.v,
		LoanInterestRate:       j.LoanInterestRate.v,
		LoanInterestOnlyPeriod: j.LoanInterestOnlyPeriod.v,
		LoanTermYears:          j.LoanTermYears.v,
		Hidden:                 j.Hidden,
	}
	if j.PurchaseYear.v != nil {
		a.PurchaseYear = *j.PurchaseYear.v
	}
	return nil
}

// UnmarshalJSON reads a profile, accepting the short keys of the shared
// state. Canonical keys win over short ones.
func (p *Profile) UnmarshalJSON(b []byte) error {
	var j struct {
		CurrentYear       optInt     `json:"currentYear"`
		CY                optInt     `json:"cy"`
		StartYear         optInt     `json:"startYear"`
		PassiveIncomeGoal optDecimal `json:"passiveIncomeGoal"`
		PIG               optDecimal `json:"pig"`
		Horizon           optInt     `json:"horizon"`
		YearsToGoal       optInt     `json:"yearsToGoal"`
		Currency          string     `json:"currency"`
		Assets            []Asset    `json:"assets"`
		A                 []Asset    `json:"a"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("cannot decode profile: %w", err)
	}
	*p = Profile{
		CurrentYear:       firstInt(j.CurrentYear, j.CY),
		StartYear:         firstInt(j.StartYear),
		PassiveIncomeGoal: decimal.Zero,
		Horizon:           firstInt(j.Horizon),
		YearsToGoal:       firstInt(j.YearsToGoal),
		Currency:          j.Currency,
		Assets:            j.Assets,
	}
	if j.PassiveIncomeGoal.v != nil {
		p.PassiveIncomeGoal = *j.PassiveIncomeGoal.v
	} else if j.PIG.v != nil {
		p.PassiveIncomeGoal = *j.PIG.v
	}
	if p.Assets == nil {
		p.Assets = j.A
	}
	return nil
}

func firstInt(values ...optInt) int {
	for _, v := range values {
		if v.v != nil {
			return *v.v
		}
	}
	return 0
}

// UnmarshalJSON overwrites only the fields present in b, so decoding into
// DefaultSettings() completes partial settings.
func (s *Settings) UnmarshalJSON(b []byte) error {
	var j struct {
		DefaultCapitalGrowthRate               optDecimal `json:"defaultCapitalGrowthRate"`
		DefaultIncomeGrowthRate                optDecimal `json:"defaultIncomeGrowthRate"`
		DefaultExpenseGrowthRate               optDecimal `json:"defaultExpenseGrowthRate"`
		DefaultLoanToValueRatio                optDecimal `json:"defaultLoanToValueRatio"`
		DefaultLoanInterestRate                optDecimal `json:"defaultLoanInterestRate"`
		DefaultLoanInterestOnlyPeriod          optInt     `json:"defaultLoanInterestOnlyPeriod"`
		DefaultLoanTermYears                   optInt     `json:"defaultLoanTermYears"`
		DefaultPrincipalResidenceLoanTermYears optInt     `json:"defaultPrincipalResidenceLoanTermYears"`
	}
	if err := json.Unmarshal(b, &j); err != nil {
		return fmt.Errorf("cannot decode settings: %w", err)
	}
	setDecimal(&s.DefaultCapitalGrowthRate, j.DefaultCapitalGrowthRate)
	setDecimal(&s.DefaultIncomeGrowthRate, j.DefaultIncomeGrowthRate)
	setDecimal(&s.DefaultExpenseGrowthRate, j.DefaultExpenseGrowthRate)
	setDecimal(&s.DefaultLoanToValueRatio, j.DefaultLoanToValueRatio)
	setDecimal(&s.DefaultLoanInterestRate, j.DefaultLoanInterestRate)
	setInt(&s.DefaultLoanInterestOnlyPeriod, j.DefaultLoanInterestOnlyPeriod)
	setInt(&s.DefaultLoanTermYears, j.DefaultLoanTermYears)
	setInt(&s.DefaultPrincipalResidenceLoanTermYears, j.DefaultPrincipalResidenceLoanTermYears)
	return nil
}

func setDecimal(dst *decimal.Decimal, o optDecimal) {
	if o.v != nil {
		*dst = *o.v
	}
}

func setInt(dst *int, o optInt) {
	if o.v != nil {
		*dst = *o.v
	}
}

// DecodeProfile reads a JSON profile in any of its historical shapes.
func DecodeProfile(r io.Reader) (Profile, error) {
	var p Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// DecodeSettings reads JSON settings, the absent fields keep the value of
// DefaultSettings.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// EncodeProfile writes the profile as indented JSON.
func EncodeProfile(w io.Writer, p Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("cannot encode profile: %w", err)
	}
	return nil
}

// EncodeJSON writes the results as an indented JSON array.
func EncodeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}
	return nil
}

// EncodeMsgpack writes the results as a MessagePack array. Keys are the JSON
// ones and amounts are floats.
func EncodeMsgpack(w io.Writer, results []Result) error {
	if results == nil {
		results = []Result{}
	}
	if err := msgpack.NewEncoder(w).Encode(results); err != nil {
		return fmt.Errorf("cannot encode results: %w", err)
	}
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (r Result) EncodeMsgpack(enc *msgpack.Encoder) error {
	assets := r.Assets
	if assets == nil {
		assets = []AssetYear{}
	}
	return encodeMsgpackMap(enc,
		"currentYear", r.Year,
		"grossIncome", r.GrossIncome,
		"expenses", r.Expenses,
		"netIncome", r.NetIncome,
		"totalPrincipalPaid", r.TotalPrincipalPaid,
		"cashFlowAfterPrincipal", r.CashFlowAfterPrincipal,
		"gapToIncomeGoal", r.GapToIncomeGoal,
		"realGapToGoal", r.RealGapToGoal,
		"numberOfAssets", r.NumberOfAssets,
		"assetValue", r.AssetValue,
		"assetLoanBalance", r.AssetLoanBalance,
		"equity", r.Equity,
		"assets", assets,
	)
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (a AssetYear) EncodeMsgpack(enc *msgpack.Encoder) error {
	return encodeMsgpackMap(enc,
		"id", a.ID,
		"name", a.Name,
		"type", string(a.Type),
		"grossIncome", a.GrossIncome,
		"operatingExpenses", a.OperatingExpenses,
		"interestPaid", a.InterestPaid,
		"principalPaid", a.PrincipalPaid,
		"netIncome", a.NetIncome,
		"cashFlowAfterPrincipal", a.CashFlowAfterPrincipal,
		"loanBalanceEnd", a.LoanBalanceEnd,
		"assetValue", a.AssetValue,
		"loanPhase", a.LoanPhase.String(),
	)
}

// encodeMsgpackMap writes alternating keys and values as a map, keeping the
// order of the keys.
func encodeMsgpackMap(enc *msgpack.Encoder, kv ...any) error {
	if err := enc.EncodeMapLen(len(kv) / 2); err != nil {
		return err
	}
	for i := 0; i+1 < len(kv); i += 2 {
		if err := enc.EncodeString(kv[i].(string)); err != nil {
			return err
		}
		v := kv[i+1]
		if d, ok := v.(decimal.Decimal); ok {
			v = d.InexactFloat64()
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("cannot encode %s: %w", kv[i], err)
		}
	}
	return nil
}
