package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDomainError(t *testing.T, err error, op string) {
	t.Helper()
	require.Error(t, err)
	var derr *DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, op, derr.Op)
}

func TestDomainErrors(t *testing.T) {
	t.Run("present value rejects complex discount factor", func(t *testing.T) {
		// 1 + r = -0.5, t = 0.5: (-0.5)^0.5 has no real result.
		_, err := PresentValue(100, -1.5, 0.5)
		requireDomainError(t, err, "PresentValue")
	})

	t.Run("present value allows negative base at integer periods", func(t *testing.T) {
		// (-0.5)^2 = 0.25 is real, so no guard fires.
		pv, err := PresentValue(100, -1.5, 2)
		require.NoError(t, err)
		assert.InDelta(t, 400.0, pv, 0.0001)
	})

	t.Run("roic rejects zero invested capital", func(t *testing.T) {
		_, err := ReturnOnInvestedCapital(50, 0)
		requireDomainError(t, err, "ReturnOnInvestedCapital")
	})

	t.Run("perpetuity rejects zero roic", func(t *testing.T) {
		_, err := PerpetuityValue(100, 0.03, 0, 0.08)
		requireDomainError(t, err, "PerpetuityValue")
	})

	t.Run("perpetuity rejects r equal to g", func(t *testing.T) {
		_, err := PerpetuityValue(100, 0.05, 0.12, 0.05)
		requireDomainError(t, err, "PerpetuityValue")
	})

	t.Run("economic profit rejects zero opening capital", func(t *testing.T) {
		_, err := EconomicProfit(100, 0, 0.09, 0.2, 0.03, 1)
		requireDomainError(t, err, "EconomicProfit")
	})

	t.Run("economic profit rejects complex fade factor", func(t *testing.T) {
		// f = 1.5 makes 1-f negative; t = 1.5 makes the exponent non-integer.
		_, err := EconomicProfit(100, 800, 0.09, 1.5, 0.03, 1.5)
		requireDomainError(t, err, "EconomicProfit")
	})

	t.Run("fade valuation rejects zero opening capital", func(t *testing.T) {
		_, err := EnterpriseValueFade(100, 0, 0.09, 0.2, 0.03)
		requireDomainError(t, err, "EnterpriseValueFade")
	})

	t.Run("fade valuation rejects zero denominator", func(t *testing.T) {
		// r - (1+g)(1-f) + 1 = 0 - 1*1 + 1 = 0 with r = f = g = 0.
		_, err := EnterpriseValueFade(100, 800, 0, 0, 0)
		requireDomainError(t, err, "EnterpriseValueFade")
	})

	t.Run("roic fade valuation rejects zero roic", func(t *testing.T) {
		_, err := EnterpriseValueFadeFromROIC(100, 0, 0.09, 0.2, 0.03)
		requireDomainError(t, err, "EnterpriseValueFadeFromROIC")
	})

	t.Run("roic fade valuation rejects zero discount", func(t *testing.T) {
		// r - g + f = 0 - 0 + 0 = 0.
		_, err := EnterpriseValueFadeFromROIC(100, 0.125, 0, 0, 0)
		requireDomainError(t, err, "EnterpriseValueFadeFromROIC")
	})

	t.Run("gordon terminal value rejects r equal to g", func(t *testing.T) {
		_, err := TerminalValueGordonGrowth(100, 0.04, 0.04)
		requireDomainError(t, err, "TerminalValueGordonGrowth")
	})

	t.Run("competitive advantage period rejects zero fade", func(t *testing.T) {
		_, err := CompetitiveAdvantagePeriod(0)
		requireDomainError(t, err, "CompetitiveAdvantagePeriod")
	})
}

func TestDomainErrorMessage(t *testing.T) {
	_, err := ReturnOnInvestedCapital(50, 0)
	require.Error(t, err)
	assert.Equal(t, "ReturnOnInvestedCapital: invested capital is zero", err.Error())

	// The kind is a single taxonomy: plain errors don't match it.
	var derr *DomainError
	assert.False(t, errors.As(errors.New("other"), &derr))
}
