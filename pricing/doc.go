// Package pricing values European options two ways: in closed form
// (Black-Scholes-Merton on spot, Black-76 on forwards) and by Monte Carlo
// simulation over the mcpath engine, including correlated basket options.
//
// 🚀 The two routes
//
//	Analytic: BlackScholesCall/Put and Black76Call/Put price instantly and
//	serve as references. Monte Carlo: EuropeanPricer and BasketPricer
//	simulate risk-neutral GBM paths (drift = the risk-free rate), average
//	the terminal payoff and discount it at e^{-rT}. On the same inputs the
//	two routes converge at the usual O(1/√N) rate, which is exactly what
//	the test suite pins down.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcpath/pricing"
//
//	p := pricing.OptionParams{
//	    Spot: 300, Strike: 250, TimeToExpiry: 1, RiskFree: 0.03, Vola: 0.15,
//	}
//	ref, _ := pricing.BlackScholesCall(p)
//
//	mc, _ := pricing.NewEuropeanPricer(100_000, 100)
//	est, _ := mc.Call(42, p)
//
// Determinism: a Monte Carlo price is a pure function of (seed, geometry,
// parameters); rerunning with the same seed reproduces it exactly.
package pricing
