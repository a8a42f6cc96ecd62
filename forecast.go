package forecast

// Forecast computes one Result per year of the profile horizon, starting at
// its start year.
//
// It is a pure function of its arguments: the loan state lives for the
// duration of the call only, so concurrent calls are independent.
func Forecast(p Profile, s Settings) []Result {
	holdings := normalize(p.Assets, s)

	loans := make(map[string]*loan, len(holdings))
	for _, h := range holdings {
		loans[h.id] = newLoan(h.loanAmount, h.loanRate, h.ioPeriod, h.term)
	}

	start, n := p.Start(), p.Years()
	results := make([]Result, 0, n)
	for offset := range n {
		year := start + offset
		var totals yearTotals
		for i := range holdings {
			h := &holdings[i]
			if year < h.purchaseYear {
				continue
			}
			totals.add(h.project(year-h.purchaseYear, loans[h.id]))
		}
		results = append(results, totals.result(year, p.PassiveIncomeGoal))
	}
	return results
}

// project computes the figures of the holding after yearsHeld years and
// advances its loan.
func (h *holding) project(yearsHeld int, l *loan) assetYear {
	return assetYear{
		h:        h,
		value:    h.value.Mul(h.capitalGrowth.Compound(yearsHeld)),
		income:   h.income.Mul(h.incomeGrowth.Compound(yearsHeld)),
		expenses: h.expenses.Mul(h.expenseGrowth.Compound(yearsHeld)),
		loan:     l.step(yearsHeld),
	}
}
