// Package forecast projects the multi-year financial trajectory of a
// portfolio of heterogeneous assets (investment and commercial property,
// self managed super funds, stock portfolios and the principal place of
// residence), each one possibly financed by a loan.
//
// The core functionalities include:
//   - Normalization: every historical shape of an asset record (weekly
//     income, percentage rates, missing loan terms) is mapped to one canonical
//     holding before any calculation runs.
//   - Loan Amortization: an interest-only period followed by a level
//     principal-and-interest annuity, computed once per loan and advanced one
//     year at a time.
//   - Forecasting: a stateless engine compounding capital, income and
//     expense growth year by year and emitting one Result per year.
//   - Aggregation: per-asset figures rolled up into portfolio totals (net
//     income, cash flow after principal, equity, gap to the passive income
//     goal) using exact decimal arithmetic, rounded to cents only in the
//     published Result.
//
// This package serves as the foundational logic for the `fcs` command-line
// tool and the forecast HTTP service.
package forecast
