// Package calc provides deterministic enterprise-value calculations:
// discounted-cash-flow building blocks and economic-profit valuations with a
// fading excess-return spread. Every function is a pure mapping from scalar
// inputs to one float64 result; functions with mathematically undefined
// input regions return a DomainError instead of a NaN or Inf.
package calc

import (
	"math"
)

// realPow guards the exponentiations used by the discount and fade formulas.
// A non-positive base raised to a non-integer exponent has no real result,
// so it is rejected rather than letting math.Pow produce NaN.
func realPow(op string, base, exp float64) (float64, error) {
	if base <= 0 && exp != math.Trunc(exp) {
		return 0, domainErrorf(op, "base %g raised to non-integer exponent %g has no real result", base, exp)
	}
	return math.Pow(base, exp), nil
}

// =============================================================================
// DISCOUNTED CASH FLOW
// =============================================================================

// PresentValue discounts a single future free cash flow to the firm back to
// the present at the firm's cost of capital.
//
// FORMULA: PV = FCFF / (1 + r)^t
//
// Where:
//   - FCFF = free cash flow to the firm, t periods out
//   - r = cost of capital
//   - t = periods until the cash flow, t >= 0, may be fractional
//
// Returns a DomainError when 1+r <= 0 and t is non-integer (the discount
// factor would be complex). At t = 0 the cash flow is returned unchanged.
func PresentValue(fcff, r, t float64) (float64, error) {
	discount, err := realPow("PresentValue", 1+r, t)
	if err != nil {
		return 0, err
	}
	return fcff / discount, nil
}

// FutureFreeCashFlow returns NOPAT less the change in invested capital over
// the period.
//
// FORMULA: FCFF = NOPAT - ΔIC
//
// When g carries a rate (GrowthAt), ic is the prior period's invested capital
// and the consumption is ic × rate. With NoGrowth, ic is already ΔIC.
func FutureFreeCashFlow(nopat, ic float64, g Growth) float64 {
	if rate, ok := g.Rate(); ok {
		ic = ic * rate
	}
	return nopat - ic
}

// ReturnOnInvestedCapital returns NOPAT over the opening invested capital.
//
// FORMULA: ROIC = NOPAT / IC_0
//
// Returns a DomainError when ic is zero.
func ReturnOnInvestedCapital(nopat, ic float64) (float64, error) {
	if ic == 0 {
		return 0, domainError("ReturnOnInvestedCapital", "invested capital is zero")
	}
	return nopat / ic, nil
}

// PerpetuityValue prices NOPAT as a growing perpetuity under constant growth,
// ROIC and cost of capital.
//
// FORMULA: V = NOPAT × (1 - g/ROIC) / (r - g)
//
// The perpetuity only converges for r > g. The function does not enforce
// that: with r < g it propagates the sign-inverted arithmetic result and the
// caller is expected to have screened the inputs. roic = 0 and r = g are
// undefined and return a DomainError.
func PerpetuityValue(nopat, g, roic, r float64) (float64, error) {
	if roic == 0 {
		return 0, domainError("PerpetuityValue", "return on invested capital is zero")
	}
	if r == g {
		return 0, domainError("PerpetuityValue", "cost of capital equals growth rate")
	}
	return (nopat * (1 - g/roic)) / (r - g), nil
}

// =============================================================================
// ECONOMIC PROFIT WITH FADE
// Relaxes the constant-ROIC assumption: the excess-return spread (ROIC - r)
// mean-reverts to zero at fade rate f while invested capital compounds at g,
// so the model carries no perpetual excess returns.
// =============================================================================

// EconomicProfit evaluates the economic profit expected at period t when the
// period-1 spread fades at rate f and invested capital grows at rate g.
//
// FORMULA: EP_t = (NOPAT_1/IC_0 - r) × (1-f)^(t-1) × (1+g)^(t-1) × IC_0
//
// Where:
//   - NOPAT_1 = net operating profit after tax in period 1
//   - IC_0 = opening invested capital (the period-0 enterprise book value)
//   - r = constant cost of capital
//   - f = fade rate of the excess-return spread
//   - g = constant invested-capital growth, usually the risk-free rate
//   - t = periods into the future; the base period is t = 1, where no
//     decay or compounding applies
//
// Returns a DomainError when ic0 is zero, or when a non-integer t makes
// (1-f) or (1+g) a non-positive base raised to a non-integer power.
func EconomicProfit(nopat1, ic0, r, f, g, t float64) (float64, error) {
	if ic0 == 0 {
		return 0, domainError("EconomicProfit", "opening invested capital is zero")
	}
	fade, err := realPow("EconomicProfit", 1-f, t-1)
	if err != nil {
		return 0, err
	}
	compound, err := realPow("EconomicProfit", 1+g, t-1)
	if err != nil {
		return 0, err
	}
	spread := nopat1/ic0 - r
	return spread * fade * compound * ic0, nil
}

// EnterpriseValueFade values the firm as opening invested capital plus the
// capitalized stream of fading economic profits.
//
// FORMULA: EV = IC_0 + EP_1 / (r - (1+g)(1-f) + 1)
//
//	EP_1 = (NOPAT_1/IC_0 - r) × IC_0
//
// Returns a DomainError when ic0 is zero or the capitalization denominator
// r - (1+g)(1-f) + 1 is zero.
func EnterpriseValueFade(nopat1, ic0, r, f, g float64) (float64, error) {
	if ic0 == 0 {
		return 0, domainError("EnterpriseValueFade", "opening invested capital is zero")
	}
	denom := r - (1+g)*(1-f) + 1
	if denom == 0 {
		return 0, domainError("EnterpriseValueFade", "fade capitalization denominator is zero")
	}
	ep1 := (nopat1/ic0 - r) * ic0
	return ic0 + ep1/denom, nil
}

// EnterpriseValueFadeFromROIC is the fade valuation restated in terms of the
// period-1 ROIC, for callers holding NOPAT and ROIC from the same period
// rather than NOPAT and invested capital separately.
//
// FORMULA: EV = NOPAT_1 × (1 - (g-f)/ROIC_1) / (r - g + f)
//
// The two fade parameterizations group the algebra differently, so for
// matching inputs (roic1 = nopat1/ic0) they land close but not identical;
// neither is derived from the other here.
//
// Returns a DomainError when roic1 is zero or r - g + f is zero.
func EnterpriseValueFadeFromROIC(nopat1, roic1, r, f, g float64) (float64, error) {
	if roic1 == 0 {
		return 0, domainError("EnterpriseValueFadeFromROIC", "return on invested capital is zero")
	}
	discount := r - g + f
	if discount == 0 {
		return 0, domainError("EnterpriseValueFadeFromROIC", "discount denominator r - g + f is zero")
	}
	return nopat1 * (1 - (g-f)/roic1) / discount, nil
}

// CompetitiveAdvantagePeriod converts a fade rate into the expected number of
// periods the excess-return spread survives. The fade rate doubles as the
// per-period probability of the spread being shut off for good, so its
// inverse is the expected competitive advantage period (f = 0.5 implies two
// periods from the initial one).
//
// FORMULA: ECAP = 1 / f
//
// Returns a DomainError when f is zero.
func CompetitiveAdvantagePeriod(f float64) (float64, error) {
	if f == 0 {
		return 0, domainError("CompetitiveAdvantagePeriod", "fade rate is zero")
	}
	return 1 / f, nil
}
