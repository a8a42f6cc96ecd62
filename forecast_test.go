package forecast

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// scenario is a single financed investment property bought in 2025.
func scenario() Profile {
	return Profile{
		CurrentYear:       2025,
		PassiveIncomeGoal: D(50000),
		Assets: []Asset{{
			Name:                   "Flat",
			Type:                   InvestmentProperty,
			PurchaseYear:           2025,
			PurchaseMarketValue:    Ptr(D(500000)),
			CapitalGrowthRate:      Ptr(D(0.05)),
			LoanAmount:             Ptr(D(400000)),
			LoanInterestRate:       Ptr(D(0.06)),
			LoanInterestOnlyPeriod: Ptr(3),
			LoanTermYears:          Ptr(30),
			IncomePerYear:          Ptr(D(26000)),
			IncomeGrowthRate:       Ptr(D(0)),
			ExpensesPerYear:        Ptr(D(8000)),
			ExpenseGrowthRate:      Ptr(D(0)),
		}},
	}
}

func mustYear(t *testing.T, results []Result, year int) Result {
	t.Helper()
	r, ok := FindYear(results, year)
	if !ok {
		t.Fatalf("FindYear(%d) not found", year)
	}
	return r
}

func assertEqual(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

func TestForecast_Horizon(t *testing.T) {
	testCases := []struct {
		name      string
		profile   Profile
		wantFirst int
		wantLen   int
	}{
		{name: "default", profile: Profile{CurrentYear: 2025}, wantFirst: 2025, wantLen: 50},
		{name: "explicit horizon", profile: Profile{CurrentYear: 2025, Horizon: 10}, wantFirst: 2025, wantLen: 10},
		{name: "start year", profile: Profile{CurrentYear: 2025, StartYear: 2020}, wantFirst: 2020, wantLen: 50},
		{name: "horizon is clamped", profile: Profile{CurrentYear: 2025, Horizon: 1_000_000_000}, wantFirst: 2025, wantLen: MaxHorizon},
		{name: "years to goal is ignored", profile: Profile{CurrentYear: 2025, YearsToGoal: 12}, wantFirst: 2025, wantLen: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Forecast(tc.profile, DefaultSettings())
			if len(got) != tc.wantLen {
				t.Fatalf("len(Forecast()) = %d, want %d", len(got), tc.wantLen)
			}
			for i, r := range got {
				if r.Year != tc.wantFirst+i {
					t.Errorf("Forecast()[%d].Year = %d, want %d", i, r.Year, tc.wantFirst+i)
				}
				if r.Assets == nil {
					t.Errorf("Forecast()[%d].Assets is nil, want empty", i)
				}
			}
		})
	}
}

func TestForecast_Scenario(t *testing.T) {
	results := Forecast(scenario(), DefaultSettings())

	r := mustYear(t, results, 2025)
	assertEqual(t, "2025 grossIncome", r.GrossIncome, "26000")
	assertEqual(t, "2025 expenses", r.Expenses, "32000")
	assertEqual(t, "2025 netIncome", r.NetIncome, "-6000")
	assertEqual(t, "2025 totalPrincipalPaid", r.TotalPrincipalPaid, "0")
	assertEqual(t, "2025 assetValue", r.AssetValue, "500000")
	assertEqual(t, "2025 assetLoanBalance", r.AssetLoanBalance, "400000")
	assertEqual(t, "2025 equity", r.Equity, "100000")
	assertEqual(t, "2025 gapToIncomeGoal", r.GapToIncomeGoal, "56000")
	assertEqual(t, "2025 realGapToGoal", r.RealGapToGoal, "56000")
	if r.NumberOfAssets != 1 || len(r.Assets) != 1 {
		t.Fatalf("2025 numberOfAssets = %d, len(assets) = %d, want 1", r.NumberOfAssets, len(r.Assets))
	}
	a := r.Assets[0]
	assertEqual(t, "2025 interestPaid", a.InterestPaid, "24000")
	assertEqual(t, "2025 operatingExpenses", a.OperatingExpenses, "8000")
	assertEqual(t, "2025 loanBalanceEnd", a.LoanBalanceEnd, "400000")
	if a.LoanPhase != InterestOnly {
		t.Errorf("2025 loanPhase = %v, want %v", a.LoanPhase, InterestOnly)
	}

	// the first amortizing year pays the annuity on 27 years.
	r2028 := mustYear(t, results, 2028)
	payment := r2028.Assets[0].InterestPaid.Add(r2028.Assets[0].PrincipalPaid)
	if want := cents(AnnualPayment(D(400000), R(0.06), 27)); payment.Sub(want).Abs().GreaterThan(D(0.01)) {
		t.Errorf("2028 payment = %v, want %v", payment, want)
	}

	r2029 := mustYear(t, results, 2029)
	a = r2029.Assets[0]
	if a.LoanPhase != Amortizing {
		t.Errorf("2029 loanPhase = %v, want %v", a.LoanPhase, Amortizing)
	}
	if !a.PrincipalPaid.IsPositive() {
		t.Errorf("2029 principalPaid = %v, want > 0", a.PrincipalPaid)
	}
	if !a.LoanBalanceEnd.LessThan(D(400000)) {
		t.Errorf("2029 loanBalanceEnd = %v, want < 400000", a.LoanBalanceEnd)
	}
	wantInterest := cents(r2028.AssetLoanBalance.Mul(D(0.06)))
	if a.InterestPaid.Sub(wantInterest).Abs().GreaterThan(D(0.01)) {
		t.Errorf("2029 interestPaid = %v, want %v", a.InterestPaid, wantInterest)
	}
	assertEqual(t, "2029 assetValue", a.AssetValue, cents(D(500000).Mul(R(0.05).Compound(4))).String())
}

func TestForecast_GeometricGrowth(t *testing.T) {
	results := Forecast(scenario(), DefaultSettings())
	for k, r := range results {
		want := D(500000)
		for range k {
			want = want.Mul(D(1.05))
		}
		want = cents(want)
		if r.AssetValue.Sub(want).Abs().GreaterThan(D(0.01)) {
			t.Errorf("year %d assetValue = %v, want %v", r.Year, r.AssetValue, want)
		}
	}
}

func TestForecast_ZeroInterestAmortization(t *testing.T) {
	p := Profile{
		CurrentYear: 2030,
		Horizon:     15,
		Assets: []Asset{{
			Name:                   "Shop",
			Type:                   CommercialProperty,
			PurchaseYear:           2030,
			PurchaseMarketValue:    Ptr(D(400000)),
			LoanAmount:             Ptr(D(300000)),
			LoanInterestRate:       Ptr(D(0)),
			LoanInterestOnlyPeriod: Ptr(2),
			LoanTermYears:          Ptr(12),
		}},
	}
	results := Forecast(p, DefaultSettings())
	for _, r := range results {
		yearOfLoan := r.Year - 2030 + 1
		a := r.Assets[0]
		if !a.InterestPaid.IsZero() {
			t.Errorf("year %d interestPaid = %v, want 0", r.Year, a.InterestPaid)
		}
		switch {
		case yearOfLoan <= 2:
			assertEqual(t, "principalPaid", a.PrincipalPaid, "0")
		case yearOfLoan <= 12:
			assertEqual(t, "principalPaid", a.PrincipalPaid, "30000")
		}
		if yearOfLoan >= 12 {
			assertEqual(t, "loanBalanceEnd", a.LoanBalanceEnd, "0")
		}
	}
}

func TestForecast_MonotonicPayoffAndRetirement(t *testing.T) {
	results := Forecast(scenario(), DefaultSettings())
	prev := D(400000)
	for _, r := range results {
		yearOfLoan := r.Year - 2025 + 1
		a := r.Assets[0]
		if a.LoanBalanceEnd.IsNegative() {
			t.Errorf("year %d loanBalanceEnd = %v, want >= 0", r.Year, a.LoanBalanceEnd)
		}
		if a.LoanBalanceEnd.GreaterThan(prev) {
			t.Errorf("year %d loanBalanceEnd = %v, want <= %v", r.Year, a.LoanBalanceEnd, prev)
		}
		prev = a.LoanBalanceEnd
		if yearOfLoan == 30 && !a.LoanBalanceEnd.IsZero() {
			t.Errorf("year %d loanBalanceEnd = %v, want 0 at the end of the term", r.Year, a.LoanBalanceEnd)
		}
		if yearOfLoan > 30 {
			if a.LoanPhase != Retired || !a.InterestPaid.IsZero() || !a.PrincipalPaid.IsZero() || !a.LoanBalanceEnd.IsZero() {
				t.Errorf("year %d = %+v, want a retired loan", r.Year, a)
			}
		}
	}
}

func TestForecast_PrePurchaseExclusion(t *testing.T) {
	p := scenario()
	p.Assets = append(p.Assets, Asset{
		Name:                "Later",
		Type:                StockPortfolio,
		PurchaseYear:        2030,
		PurchaseMarketValue: Ptr(D(100000)),
		IncomePerYear:       Ptr(D(4000)),
		ExpensesPerYear:     Ptr(D(500)),
		LoanAmount:          Ptr(D(50000)),
	})
	alone := Forecast(scenario(), DefaultSettings())
	both := Forecast(p, DefaultSettings())

	for i, r := range both {
		if r.Year < 2030 {
			if r.NumberOfAssets != 1 || len(r.Assets) != 1 {
				t.Errorf("year %d numberOfAssets = %d, want 1", r.Year, r.NumberOfAssets)
			}
			for _, c := range []struct {
				field     string
				got, want decimal.Decimal
			}{
				{"grossIncome", r.GrossIncome, alone[i].GrossIncome},
				{"expenses", r.Expenses, alone[i].Expenses},
				{"assetValue", r.AssetValue, alone[i].AssetValue},
				{"assetLoanBalance", r.AssetLoanBalance, alone[i].AssetLoanBalance},
			} {
				if !c.got.Equal(c.want) {
					t.Errorf("year %d %s = %v, want %v", r.Year, c.field, c.got, c.want)
				}
			}
			continue
		}
		if r.NumberOfAssets != 2 {
			t.Errorf("year %d numberOfAssets = %d, want 2", r.Year, r.NumberOfAssets)
		}
		if r.Assets[0].Name != "Flat" || r.Assets[1].Name != "Later" {
			t.Errorf("year %d assets are not in input order", r.Year)
		}
	}
	r := mustYear(t, both, 2030)
	assertEqual(t, "2030 Later assetValue", r.Assets[1].AssetValue, "100000")
	if r.Assets[1].LoanPhase != InterestOnly {
		t.Errorf("2030 Later loanPhase = %v, want %v", r.Assets[1].LoanPhase, InterestOnly)
	}
}

func TestForecast_EquityIdentity(t *testing.T) {
	p := scenario()
	p.Assets = append(p.Assets,
		Asset{Name: "Home", Type: PrincipalPlaceOfResidence, PurchaseYear: 2021, PurchaseMarketValue: Ptr(D(812345.67)), LoanAmount: Ptr(D(623456.78))},
		Asset{Name: "Super", Type: SelfManagedSuperFund, PurchaseYear: 2027, PurchaseMarketValue: Ptr(D(123456.789)), CapitalGrowthRate: Ptr(D(7.3))},
	)
	for _, r := range Forecast(p, DefaultSettings()) {
		if !r.Equity.Equal(r.AssetValue.Sub(r.AssetLoanBalance)) {
			t.Errorf("year %d equity = %v, want %v - %v", r.Year, r.Equity, r.AssetValue, r.AssetLoanBalance)
		}
		if r.AssetLoanBalance.IsNegative() {
			t.Errorf("year %d assetLoanBalance = %v, want >= 0", r.Year, r.AssetLoanBalance)
		}
		if !r.NetIncome.Equal(r.GrossIncome.Sub(r.Expenses)) {
			t.Errorf("year %d netIncome = %v, want %v - %v", r.Year, r.NetIncome, r.GrossIncome, r.Expenses)
		}
	}
}

func TestForecast_HiddenAssets(t *testing.T) {
	p := scenario()
	p.Assets = append(p.Assets, Asset{Name: "Ghost", Type: StockPortfolio, PurchaseYear: 2020, PurchaseMarketValue: Ptr(D(1e6)), Hidden: true})
	got := Forecast(p, DefaultSettings())
	want := Forecast(scenario(), DefaultSettings())
	for i := range got {
		if got[i].NumberOfAssets != 1 || !got[i].AssetValue.Equal(want[i].AssetValue) {
			t.Errorf("year %d includes a hidden asset", got[i].Year)
		}
	}
}

func TestForecast_SettingsDefaults(t *testing.T) {
	p := Profile{
		CurrentYear: 2025,
		Horizon:     1,
		Assets: []Asset{
			{Name: "Home", Type: PrincipalPlaceOfResidence, PurchaseYear: 2025, PurchaseMarketValue: Ptr(D(100)), LoanAmount: Ptr(D(100))},
		},
	}
	r := Forecast(p, DefaultSettings())[0]
	// 5% default loan rate, 3 interest-only years.
	assertEqual(t, "interestPaid", r.Assets[0].InterestPaid, "5")
	assertEqual(t, "principalPaid", r.Assets[0].PrincipalPaid, "0")
}

func TestForecast_Concurrent(t *testing.T) {
	p := scenario()
	want, err := json.Marshal(Forecast(p, DefaultSettings()))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var wg sync.WaitGroup
	got := make([][]byte, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i], _ = json.Marshal(Forecast(p, DefaultSettings()))
		}()
	}
	wg.Wait()
	for i, g := range got {
		if string(g) != string(want) {
			t.Errorf("concurrent run %d differs from the sequential one", i)
		}
	}
}

func TestForecast_ReorderedAssets(t *testing.T) {
	p := scenario()
	p.Assets = append(p.Assets, Asset{Name: "Shop", Type: CommercialProperty, PurchaseYear: 2026, PurchaseMarketValue: Ptr(D(300000)), LoanAmount: Ptr(D(200000))})
	q := p
	q.Assets = []Asset{p.Assets[1], p.Assets[0]}

	a, b := Forecast(p, DefaultSettings()), Forecast(q, DefaultSettings())
	for i := range a {
		if !a[i].Equity.Equal(b[i].Equity) || !a[i].NetIncome.Equal(b[i].NetIncome) {
			t.Errorf("year %d totals depend on the asset order", a[i].Year)
		}
		if len(a[i].Assets) == 2 && (a[i].Assets[0].ID != b[i].Assets[1].ID || a[i].Assets[1].ID != b[i].Assets[0].ID) {
			t.Errorf("year %d asset IDs depend on the asset order", a[i].Year)
		}
	}
}
