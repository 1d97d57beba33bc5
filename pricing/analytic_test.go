// Package pricing_test validates the closed forms against reference values,
// put-call parity, and the Black-76 ↔ Black-Scholes forward identity.
package pricing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcpath/pricing"
)

// The two reference scenarios used throughout this package's tests.
var (
	refNear = pricing.OptionParams{
		Spot: 300, Strike: 250, TimeToExpiry: 1, RiskFree: 0.03, Vola: 0.15,
	}
	refFar = pricing.OptionParams{
		Spot: 310, Strike: 250, TimeToExpiry: 3.5, RiskFree: 0.05, Vola: 0.25,
	}
)

// TestBlackScholes_ReferenceValues pins both formulas to reference prices
// quoted at four decimals.
func TestBlackScholes_ReferenceValues(t *testing.T) {
	call, err := pricing.BlackScholesCall(refNear)
	require.NoError(t, err)
	assert.InDelta(t, 58.8197, call, 1e-3)

	put, err := pricing.BlackScholesPut(refNear)
	require.NoError(t, err)
	assert.InDelta(t, 1.4311, put, 1e-3)

	call, err = pricing.BlackScholesCall(refFar)
	require.NoError(t, err)
	assert.InDelta(t, 113.4155, call, 1e-3)

	put, err = pricing.BlackScholesPut(refFar)
	require.NoError(t, err)
	assert.InDelta(t, 13.2797, put, 1e-3)
}

// TestBlackScholes_PutCallParity holds C − P = S − K·e^{−rT} to numerical
// precision on both scenarios and an at-the-money one.
func TestBlackScholes_PutCallParity(t *testing.T) {
	atm := pricing.OptionParams{
		Spot: 100, Strike: 100, TimeToExpiry: 0.5, RiskFree: 0.01, Vola: 0.3,
	}
	for _, p := range []pricing.OptionParams{refNear, refFar, atm} {
		call, err := pricing.BlackScholesCall(p)
		require.NoError(t, err)
		put, err := pricing.BlackScholesPut(p)
		require.NoError(t, err)

		want := p.Spot - p.Strike*math.Exp(-p.RiskFree*p.TimeToExpiry)
		assert.InDelta(t, want, call-put, 1e-9, "S=%v K=%v", p.Spot, p.Strike)
	}
}

// TestBlack76_ForwardIdentity checks that pricing the forward F = S·e^{rT}
// under Black-76 reproduces the spot formulas exactly. The identity fails
// when the σ²T/2 term in d1 loses its T, so it guards the formula itself.
func TestBlack76_ForwardIdentity(t *testing.T) {
	for _, p := range []pricing.OptionParams{refNear, refFar} {
		fwd := p.Spot * math.Exp(p.RiskFree*p.TimeToExpiry)

		bsCall, err := pricing.BlackScholesCall(p)
		require.NoError(t, err)
		b76Call, err := pricing.Black76Call(fwd, p.Strike, p.TimeToExpiry, p.RiskFree, p.Vola)
		require.NoError(t, err)
		assert.InDelta(t, bsCall, b76Call, 1e-9)

		bsPut, err := pricing.BlackScholesPut(p)
		require.NoError(t, err)
		b76Put, err := pricing.Black76Put(fwd, p.Strike, p.TimeToExpiry, p.RiskFree, p.Vola)
		require.NoError(t, err)
		assert.InDelta(t, bsPut, b76Put, 1e-9)
	}
}

// TestBlack76_Parity holds the forward parity C − P = e^{−rT}·(F − K).
func TestBlack76_Parity(t *testing.T) {
	const fwd, strike, tte, rfr, vola = 105.0, 100.0, 2.0, 0.02, 0.4
	call, err := pricing.Black76Call(fwd, strike, tte, rfr, vola)
	require.NoError(t, err)
	put, err := pricing.Black76Put(fwd, strike, tte, rfr, vola)
	require.NoError(t, err)

	want := math.Exp(-rfr*tte) * (fwd - strike)
	assert.InDelta(t, want, call-put, 1e-9)
}

// TestAnalytic_RejectsBadParameters walks the shared validation table.
func TestAnalytic_RejectsBadParameters(t *testing.T) {
	bad := []pricing.OptionParams{
		{Spot: 0, Strike: 250, TimeToExpiry: 1, RiskFree: 0.03, Vola: 0.15},
		{Spot: 300, Strike: -1, TimeToExpiry: 1, RiskFree: 0.03, Vola: 0.15},
		{Spot: 300, Strike: 250, TimeToExpiry: 0, RiskFree: 0.03, Vola: 0.15},
		{Spot: 300, Strike: 250, TimeToExpiry: 1, RiskFree: 0.03, Vola: 0},
		{Spot: 300, Strike: 250, TimeToExpiry: 1, RiskFree: math.NaN(), Vola: 0.15},
	}
	for i, p := range bad {
		_, err := pricing.BlackScholesCall(p)
		assert.ErrorIs(t, err, pricing.ErrInvalidParameter, "call case %d", i)
		_, err = pricing.BlackScholesPut(p)
		assert.ErrorIs(t, err, pricing.ErrInvalidParameter, "put case %d", i)
		_, err = pricing.Black76Call(p.Spot, p.Strike, p.TimeToExpiry, p.RiskFree, p.Vola)
		assert.ErrorIs(t, err, pricing.ErrInvalidParameter, "black76 case %d", i)
	}
}
