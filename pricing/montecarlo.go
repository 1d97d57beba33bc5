// Package pricing: Monte Carlo pricers over the path engine.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mcpath/dist"
	"github.com/katalvlaran/mcpath/gbm"
	"github.com/katalvlaran/mcpath/mc"
)

// EuropeanPricer values European calls and puts by simulating risk-neutral
// GBM paths: drift is the risk-free rate, the terminal payoff is averaged
// over all paths and discounted at e^{−rT}. Paths step with the exact
// log-normal transition, so the only pricing error is statistical.
type EuropeanPricer struct {
	sim *mc.PathSimulator
}

// NewEuropeanPricer builds a pricer over an nrPaths×nrSteps simulation.
// nrSteps must be at least 1 (the step size is TimeToExpiry/nrSteps);
// mc options such as mc.WithWorkers pass through to the simulator.
func NewEuropeanPricer(nrPaths, nrSteps int, opts ...mc.Option) (*EuropeanPricer, error) {
	if nrSteps < 1 {
		return nil, ErrInvalidParameter
	}
	sim, err := mc.NewPathSimulator(nrPaths, nrSteps, opts...)
	if err != nil {
		return nil, err
	}
	return &EuropeanPricer{sim: sim}, nil
}

// Call estimates the call price max(S_T − K, 0), discounted.
func (ep *EuropeanPricer) Call(seed uint64, p OptionParams) (float64, error) {
	return ep.price(seed, p, func(terminal float64) float64 {
		return math.Max(terminal-p.Strike, 0)
	})
}

// Put estimates the put price max(K − S_T, 0), discounted.
func (ep *EuropeanPricer) Put(seed uint64, p OptionParams) (float64, error) {
	return ep.price(seed, p, func(terminal float64) float64 {
		return math.Max(p.Strike-terminal, 0)
	})
}

// price runs one risk-neutral simulation and averages payoff over the
// terminal values. The in-place simulation mode keeps it at one allocation
// per path.
func (ep *EuropeanPricer) price(seed uint64, p OptionParams, payoff func(terminal float64) float64) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	dt := p.TimeToExpiry / float64(ep.sim.NumSteps())
	model, err := gbm.New(p.Spot, p.RiskFree, p.Vola, dt)
	if err != nil {
		return 0, err
	}

	paths := ep.sim.SimulatePathsInPlace(seed, dist.StandardNormal{}, model.FillPath)
	mean, ok := mc.NewPathEvaluator(paths).EvaluateAverage(func(path mc.Path) (float64, bool) {
		return payoff(path.Terminal()), true
	})
	if !ok {
		return 0, ErrNoEstimate
	}
	return math.Exp(-p.RiskFree*p.TimeToExpiry) * mean, nil
}

// BasketParams describes one European option on a weighted basket of
// correlated underlyings. All slices share the asset order; Correlations is
// the d×d correlation matrix (unit diagonal) and must be positive definite.
type BasketParams struct {
	Spots        []float64
	Volas        []float64
	Weights      []float64
	Correlations *mat.SymDense
	Strike       float64
	TimeToExpiry float64
	RiskFree     float64
}

// validate rejects inconsistent basket inputs. Shape errors come back as
// ErrDimensionMismatch, value errors as ErrInvalidParameter.
func (p BasketParams) validate() error {
	d := len(p.Spots)
	if d == 0 || len(p.Volas) != d || len(p.Weights) != d {
		return ErrDimensionMismatch
	}
	if p.Correlations == nil {
		return ErrInvalidParameter
	}
	if n, _ := p.Correlations.Dims(); n != d {
		return ErrDimensionMismatch
	}
	if !(p.Strike > 0) || !(p.TimeToExpiry > 0) ||
		math.IsNaN(p.RiskFree) || math.IsInf(p.RiskFree, 0) {
		return ErrInvalidParameter
	}
	for i := 0; i < d; i++ {
		if !(p.Spots[i] > 0) || !(p.Volas[i] > 0) {
			return ErrInvalidParameter
		}
		if math.IsNaN(p.Weights[i]) || math.IsInf(p.Weights[i], 0) {
			return ErrInvalidParameter
		}
	}
	return nil
}

// BasketPricer values European basket options by simulating the correlated
// risk-neutral system with Euler steps and averaging the discounted payoff
// of the weighted terminal basket.
type BasketPricer struct {
	sim *mc.PathSimulator
}

// NewBasketPricer builds a pricer over an nrPaths×nrSteps simulation;
// nrSteps must be at least 1. mc options pass through to the simulator.
func NewBasketPricer(nrPaths, nrSteps int, opts ...mc.Option) (*BasketPricer, error) {
	if nrSteps < 1 {
		return nil, ErrInvalidParameter
	}
	sim, err := mc.NewPathSimulator(nrPaths, nrSteps, opts...)
	if err != nil {
		return nil, err
	}
	return &BasketPricer{sim: sim}, nil
}

// Call estimates the basket call price max(Σwᵢ·S_T,ᵢ − K, 0), discounted.
func (bp *BasketPricer) Call(seed uint64, p BasketParams) (float64, error) {
	return bp.price(seed, p, func(basket float64) float64 {
		return math.Max(basket-p.Strike, 0)
	})
}

// Put estimates the basket put price max(K − Σwᵢ·S_T,ᵢ, 0), discounted.
func (bp *BasketPricer) Put(seed uint64, p BasketParams) (float64, error) {
	return bp.price(seed, p, func(basket float64) float64 {
		return math.Max(p.Strike-basket, 0)
	})
}

// price builds the correlated model and runs one vector simulation.
//
// The instantaneous covariance is Σᵢⱼ = ρᵢⱼ·σᵢ·σⱼ; its Cholesky factor
// drives the diffusion. A correlation matrix that fails to factorize is
// reported as ErrInvalidParameter.
func (bp *BasketPricer) price(seed uint64, p BasketParams, payoff func(basket float64) float64) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	d := len(p.Spots)
	cov := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			cov.SetSym(i, j, p.Correlations.At(i, j)*p.Volas[i]*p.Volas[j])
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(cov) {
		return 0, ErrInvalidParameter
	}
	factor := mat.NewTriDense(d, mat.Lower, nil)
	chol.LTo(factor)

	drifts := make([]float64, d)
	for i := range drifts {
		drifts[i] = p.RiskFree
	}
	dt := p.TimeToExpiry / float64(bp.sim.NumSteps())
	model, err := gbm.NewMulti(p.Spots, drifts, factor, dt)
	if err != nil {
		return 0, err
	}

	paths := bp.sim.SimulateVectorPaths(seed, model)
	mean, ok := mc.NewPathEvaluator(paths).EvaluateAverage(func(vp *mc.VectorPath) (float64, bool) {
		return payoff(floats.Dot(p.Weights, vp.Terminal())), true
	})
	if !ok {
		return 0, ErrNoEstimate
	}
	return math.Exp(-p.RiskFree*p.TimeToExpiry) * mean, nil
}
