package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/forecast"
	md "github.com/nao1215/markdown"
)

// YearMarkdown renders the totals of a year and the breakdown per asset.
func YearMarkdown(p forecast.Profile, r forecast.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := p.DisplayCurrency()

	doc.H1(fmt.Sprintf("Year %d", r.Year))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Gross Income", Amount(r.GrossIncome, cur)},
			{"Expenses", Amount(r.Expenses, cur)},
			{"Net Income", Amount(r.NetIncome, cur)},
			{"Principal Paid", Amount(r.TotalPrincipalPaid, cur)},
			{"Cash Flow After Principal", Amount(r.CashFlowAfterPrincipal, cur)},
			{"Gap to Goal", Gap(r.GapToIncomeGoal, cur)},
			{"Real Gap to Goal", Gap(r.RealGapToGoal, cur)},
			{"Asset Value", Amount(r.AssetValue, cur)},
			{"Loan Balance", Amount(r.AssetLoanBalance, cur)},
			{"Equity", Amount(r.Equity, cur)},
		},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})

	doc.H2(fmt.Sprintf("Assets (%d)", r.NumberOfAssets))
	if len(r.Assets) == 0 {
		doc.PlainText("No asset is held this year.")
		return doc.String()
	}
	rows := make([][]string, 0, len(r.Assets))
	for _, a := range r.Assets {
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			Phase(a.LoanPhase),
			Amount(a.GrossIncome, cur),
			Amount(a.OperatingExpenses, cur),
			Amount(a.InterestPaid, cur),
			Amount(a.PrincipalPaid, cur),
			Amount(a.NetIncome, cur),
			Amount(a.CashFlowAfterPrincipal, cur),
			Amount(a.LoanBalanceEnd, cur),
			Amount(a.AssetValue, cur),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Type", "Loan", "Gross Income", "Expenses", "Interest", "Principal", "Net Income", "Cash Flow", "Loan Balance", "Value"},
		Rows:   rows,
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
	})
	return doc.String()
}

// AssetsMarkdown renders the normalized assets of a profile.
func AssetsMarkdown(p forecast.Profile, assets []forecast.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := p.DisplayCurrency()

	doc.H1("Assets")
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{
			a.Name,
			string(a.Type),
			fmt.Sprint(a.PurchaseYear),
			Amount(deref(a.PurchaseMarketValue), cur),
			rate(a.CapitalGrowthRate),
			Amount(deref(a.IncomePerYear), cur),
			Amount(deref(a.ExpensesPerYear), cur),
			Amount(deref(a.LoanAmount), cur),
			rate(a.LoanInterestRate),
			fmt.Sprintf("%d/%d", derefInt(a.LoanInterestOnlyPeriod), derefInt(a.LoanTermYears)),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Asset", "Type", "Purchase", "Value", "Growth", "Income", "Expenses", "Loan", "Rate", "IO/Term"},
		Rows:   rows,
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
	})
	return doc.String()
}
