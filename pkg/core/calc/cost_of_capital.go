// This file implements the cost-of-capital inputs to the valuation formulas:
// CAPM, WACC, and the Gordon growth terminal value.
package calc

// CostOfEquityCAPM calculates the required return on equity using CAPM.
//
// FORMULA: r_e = r_f + β × MRP
//
// Where:
//   - r_f = risk-free rate (10-year Treasury)
//   - β = equity beta (market sensitivity)
//   - MRP = market risk premium (expected market return - risk-free rate)
func CostOfEquityCAPM(riskFreeRate, beta, marketRiskPremium float64) float64 {
	return riskFreeRate + beta*marketRiskPremium
}

// WACC calculates the weighted average cost of capital.
//
// FORMULA: WACC = r_d × (1 - T) × (D/V) + r_e × (E/V)
//
// Where:
//   - r_d = cost of debt (yield on debt)
//   - T = corporate tax rate
//   - D/V = debt weight in the capital structure
//   - r_e = cost of equity (from CAPM)
//   - E/V = equity weight in the capital structure
func WACC(costOfDebt, taxRate, debtWeight, costOfEquity, equityWeight float64) float64 {
	afterTaxDebtCost := costOfDebt * (1 - taxRate) * debtWeight
	equityCost := costOfEquity * equityWeight
	return afterTaxDebtCost + equityCost
}

// TerminalValueGordonGrowth capitalizes the first post-horizon cash flow as a
// growing perpetuity.
//
// FORMULA: TV = CF_{t+1} / (r - g)
//
// Convergence requires r > g; as with PerpetuityValue the function only
// rejects the undefined r = g case and otherwise propagates the arithmetic.
func TerminalValueGordonGrowth(nextPeriodCF, discountRate, growthRate float64) (float64, error) {
	if discountRate == growthRate {
		return 0, domainError("TerminalValueGordonGrowth", "discount rate equals growth rate")
	}
	return nextPeriodCF / (discountRate - growthRate), nil
}
