// Package pricing: closed-form European option prices.
package pricing

import "math"

// OptionParams describes one European option on a spot underlying.
type OptionParams struct {
	Spot         float64 // current underlying price S
	Strike       float64 // strike K
	TimeToExpiry float64 // T in years
	RiskFree     float64 // continuously compounded rate r
	Vola         float64 // volatility σ
}

// validate rejects parameters the closed forms cannot price: S, K, T and σ
// must be strictly positive and finite, r must be finite (negative rates are
// legal).
func (p OptionParams) validate() error {
	if !(p.Spot > 0) || !(p.Strike > 0) || !(p.TimeToExpiry > 0) || !(p.Vola > 0) {
		return ErrInvalidParameter
	}
	if math.IsInf(p.Spot, 0) || math.IsInf(p.Strike, 0) || math.IsInf(p.TimeToExpiry, 0) ||
		math.IsInf(p.Vola, 0) || math.IsNaN(p.RiskFree) || math.IsInf(p.RiskFree, 0) {
		return ErrInvalidParameter
	}
	return nil
}

// normCdf is the standard normal CDF via the error function:
// Φ(x) = (1 + erf(x/√2)) / 2.
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// d1d2 returns the Black-Scholes auxiliaries for ln-moneyness ln(S/K) with
// total drift term driftT over the life of the option.
func d1d2(logMoneyness, driftT, vola, tte float64) (d1, d2 float64) {
	volSqrtT := vola * math.Sqrt(tte)
	d1 = (logMoneyness + driftT) / volSqrtT
	d2 = d1 - volSqrtT
	return d1, d2
}

// BlackScholesCall prices a European call on spot:
//
//	C = S·Φ(d1) − K·e^{−rT}·Φ(d2),
//	d1 = (ln(S/K) + (r+σ²/2)T) / (σ√T), d2 = d1 − σ√T.
func BlackScholesCall(p OptionParams) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	d1, d2 := d1d2(math.Log(p.Spot/p.Strike),
		(p.RiskFree+0.5*p.Vola*p.Vola)*p.TimeToExpiry, p.Vola, p.TimeToExpiry)
	disc := math.Exp(-p.RiskFree * p.TimeToExpiry)
	return p.Spot*normCdf(d1) - p.Strike*disc*normCdf(d2), nil
}

// BlackScholesPut prices a European put on spot:
//
//	P = K·e^{−rT}·Φ(−d2) − S·Φ(−d1).
func BlackScholesPut(p OptionParams) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	d1, d2 := d1d2(math.Log(p.Spot/p.Strike),
		(p.RiskFree+0.5*p.Vola*p.Vola)*p.TimeToExpiry, p.Vola, p.TimeToExpiry)
	disc := math.Exp(-p.RiskFree * p.TimeToExpiry)
	return p.Strike*disc*normCdf(-d2) - p.Spot*normCdf(-d1), nil
}

// Black76Call prices a European call on a forward F:
//
//	C = e^{−rT}·(F·Φ(d1) − K·Φ(d2)),
//	d1 = (ln(F/K) + σ²T/2) / (σ√T), d2 = d1 − σ√T.
//
// With F = S·e^{rT} this reduces to the spot formula, an identity the tests
// hold both functions to.
func Black76Call(forward, strike, timeToExpiry, riskFree, vola float64) (float64, error) {
	p := OptionParams{Spot: forward, Strike: strike, TimeToExpiry: timeToExpiry,
		RiskFree: riskFree, Vola: vola}
	if err := p.validate(); err != nil {
		return 0, err
	}

	d1, d2 := d1d2(math.Log(forward/strike),
		0.5*vola*vola*timeToExpiry, vola, timeToExpiry)
	disc := math.Exp(-riskFree * timeToExpiry)
	return disc * (forward*normCdf(d1) - strike*normCdf(d2)), nil
}

// Black76Put prices a European put on a forward F:
//
//	P = e^{−rT}·(K·Φ(−d2) − F·Φ(−d1)).
func Black76Put(forward, strike, timeToExpiry, riskFree, vola float64) (float64, error) {
	p := OptionParams{Spot: forward, Strike: strike, TimeToExpiry: timeToExpiry,
		RiskFree: riskFree, Vola: vola}
	if err := p.validate(); err != nil {
		return 0, err
	}

	d1, d2 := d1d2(math.Log(forward/strike),
		0.5*vola*vola*timeToExpiry, vola, timeToExpiry)
	disc := math.Exp(-riskFree * timeToExpiry)
	return disc * (strike*normCdf(-d2) - forward*normCdf(-d1)), nil
}
