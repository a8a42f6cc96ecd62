package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/forecast"
	md "github.com/nao1215/markdown"
)

// ForecastMarkdown renders the yearly results as a single table.
func ForecastMarkdown(p forecast.Profile, results []forecast.Result) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := p.DisplayCurrency()

	if len(results) == 0 {
		doc.H1("Forecast")
		doc.PlainText("No year to forecast.")
		return doc.String()
	}
	doc.H1(fmt.Sprintf("Forecast %d to %d", results[0].Year, results[len(results)-1].Year))
	doc.PlainText(fmt.Sprintf("Passive income goal: %s per year.", Amount(p.PassiveIncomeGoal, cur)))

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			fmt.Sprint(r.Year),
			fmt.Sprint(r.NumberOfAssets),
			Amount(r.GrossIncome, cur),
			Amount(r.Expenses, cur),
			Amount(r.NetIncome, cur),
			Amount(r.TotalPrincipalPaid, cur),
			Amount(r.CashFlowAfterPrincipal, cur),
			Gap(r.GapToIncomeGoal, cur),
			Amount(r.AssetValue, cur),
			Amount(r.AssetLoanBalance, cur),
			Amount(r.Equity, cur),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Year", "Assets", "Gross Income", "Expenses", "Net Income", "Principal", "Cash Flow", "Gap to Goal", "Asset Value", "Loans", "Equity"},
		Rows:   rows,
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
	})
	return doc.String()
}
