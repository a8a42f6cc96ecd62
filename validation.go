package forecast

import (
	"errors"
	"fmt"
)

// Years a profile may refer to, see CheckBounds.
const (
	MinYear = 1900
	MaxYear = 2200
)

// CheckBounds reports a profile that asks for more work than a forecast is
// meant to do: a horizon above MaxHorizon, or a start year or visible
// purchase year outside MinYear and MaxYear. A missing purchase year is out
// of bounds too.
//
// Forecast itself clamps the horizon, CheckBounds is for services that must
// refuse such profiles.
func CheckBounds(p Profile) error {
	var errs []error
	if p.Horizon > MaxHorizon {
		errs = append(errs, fmt.Errorf("horizon %d exceeds %d years", p.Horizon, MaxHorizon))
	}
	if y := p.Start(); y < MinYear || y > MaxYear {
		errs = append(errs, fmt.Errorf("start year %d is outside %d-%d", y, MinYear, MaxYear))
	}
	for i, a := range p.Assets {
		if a.Hidden {
			continue
		}
		if a.PurchaseYear < MinYear || a.PurchaseYear > MaxYear {
			errs = append(errs, fmt.Errorf("asset #%d %q: purchase year %d is outside %d-%d", i+1, a.Name, a.PurchaseYear, MinYear, MaxYear))
		}
	}
	return errors.Join(errs...)
}

// Validate reports the visible assets a form would refuse: no purchase year,
// no market value or an unknown type. It also reports loans whose
// interest-only period covers the whole term, as they are never repaid.
//
// Forecast accepts such profiles anyway, Validate is for callers that want to
// warn the user. It returns nil or all the failures joined.
func Validate(p Profile, s Settings) error {
	var errs []error
	for i, a := range p.Assets {
		if a.Hidden {
			continue
		}
		label := fmt.Sprintf("asset #%d %q", i+1, a.Name)
		if a.PurchaseYear == 0 {
			errs = append(errs, fmt.Errorf("%s: missing purchase year", label))
		}
		if a.PurchaseMarketValue == nil {
			errs = append(errs, fmt.Errorf("%s: missing purchase market value", label))
		}
		if _, err := ParseAssetType(string(a.Type)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", label, err))
		}
		h := resolve(a, s)
		if h.loanAmount.IsPositive() && h.term <= h.ioPeriod {
			errs = append(errs, fmt.Errorf("%s: interest-only period of %d years covers the %d years term, the loan is never repaid", label, h.ioPeriod, h.term))
		}
	}
	return errors.Join(errs...)
}
