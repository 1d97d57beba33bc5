// SPDX-License-Identifier: MIT

// Package dist: correlated gaussian sampling via a caller-supplied factor.
package dist

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MultivariateNormal samples x = μ + C·z with z ~ N(0, I_d), where C is a
// user-supplied d×d factor (typically the Cholesky factor of the target
// covariance, so that Cov(x) = C·Cᵀ).
//
// The distribution owns private copies of μ and C taken at construction;
// mutating the caller's inputs afterwards has no effect. A value is immutable
// after construction and safe for concurrent use, provided each goroutine
// samples with its own rand.Source.
type MultivariateNormal struct {
	mu   []float64
	chol *mat.Dense
	dim  int
}

// NewMultivariateNormal builds the distribution from a mean vector and a d×d
// factor, where d = len(mu).
//
// Errors:
//   - ErrDimensionMismatch when the factor is not d×d.
//   - ErrNotTriangular when WithTriangularCheck is set and the factor is
//     neither lower- nor upper-triangular.
//
// The factor's orientation is deliberately unchecked by default: the
// transform is a plain linear map and yields covariance C·Cᵀ either way.
//
// Complexity: O(d²) copy (plus O(d²) for the optional check).
func NewMultivariateNormal(mu []float64, chol mat.Matrix, opts ...Option) (*MultivariateNormal, error) {
	o := gatherOptions(opts...)

	d := len(mu)
	r, c := chol.Dims()
	if r != d || c != d {
		return nil, ErrDimensionMismatch
	}
	if o.triangularCheck && !isTriangular(chol) {
		return nil, ErrNotTriangular
	}

	m := &MultivariateNormal{
		mu:   append([]float64(nil), mu...),
		chol: mat.DenseCopyOf(chol),
		dim:  d,
	}
	return m, nil
}

// isTriangular reports whether a is lower- or upper-triangular. A matrix whose
// strict upper AND strict lower triangles are zero (diagonal, including the
// zero matrix) passes as both.
func isTriangular(a mat.Matrix) bool {
	n, _ := a.Dims()

	lower, upper := true, true
	for i := 0; i < n && (lower || upper); i++ {
		for j := 0; j < i; j++ {
			if a.At(i, j) != 0 {
				upper = false
			}
			if a.At(j, i) != 0 {
				lower = false
			}
		}
	}
	return lower || upper
}

// Dim returns the dimensionality d of the distribution.
func (m *MultivariateNormal) Dim() int { return m.dim }

// Mean returns a copy of μ.
func (m *MultivariateNormal) Mean() []float64 {
	return append([]float64(nil), m.mu...)
}

// SampleVector draws one variate into dst: it consumes exactly d standard
// normal draws from src (component order, index 0 first) and applies the
// affine transform. len(dst) must equal Dim(); anything else panics.
//
// Complexity: O(d²) per call (the matrix-vector product dominates).
func (m *MultivariateNormal) SampleVector(src rand.Source, dst []float64) {
	if len(dst) != m.dim {
		panic(panicDstLength)
	}

	r := rand.New(src)
	z := make([]float64, m.dim)
	for i := range z {
		z[i] = r.NormFloat64()
	}
	m.TransformInto(dst, z)
}

// TransformSample maps one standard normal vector z to μ + C·z, allocating
// the result. len(z) must equal Dim(); anything else panics.
func (m *MultivariateNormal) TransformSample(z []float64) []float64 {
	out := make([]float64, m.dim)
	m.TransformInto(out, z)
	return out
}

// TransformInto is the allocation-free form of TransformSample: dst = μ + C·z.
// dst and z must be distinct slices of length Dim(); sharing backing storage
// between them corrupts the product.
func (m *MultivariateNormal) TransformInto(dst, z []float64) {
	if len(dst) != m.dim {
		panic(panicDstLength)
	}
	if len(z) != m.dim {
		panic(panicZLength)
	}

	dv := mat.NewVecDense(m.dim, dst)
	dv.MulVec(m.chol, mat.NewVecDense(m.dim, z))
	floats.Add(dst, m.mu)
}

// TransformPath applies the affine transform to a whole matrix of draws at
// once. zs is d×n with one standard normal vector per column; the result is
// d×n with column j equal to μ + C·zs[:,j]. μ is added exactly once per
// column, never accumulated along the path.
//
// zs must have Dim() rows and at least one column; anything else panics.
//
// Complexity: O(d²·n), a single dense multiply.
func (m *MultivariateNormal) TransformPath(zs *mat.Dense) *mat.Dense {
	r, n := zs.Dims()
	if r != m.dim || n == 0 {
		panic(panicPathShape)
	}

	out := mat.NewDense(m.dim, n, nil)
	out.Mul(m.chol, zs)
	for i := 0; i < m.dim; i++ {
		row := out.RawRowView(i)
		for j := range row {
			row[j] += m.mu[i]
		}
	}
	return out
}

// TransformRows is TransformPath for the transposed layout used when samples
// live in rows (gonum's n×d convention): zs is n×d with one draw per row, and
// row i of the result is μ + C·zs[i,:]. Computed as zs·Cᵀ in one multiply.
//
// zs must have Dim() columns and at least one row; anything else panics.
func (m *MultivariateNormal) TransformRows(zs *mat.Dense) *mat.Dense {
	n, c := zs.Dims()
	if c != m.dim || n == 0 {
		panic(panicRowShape)
	}

	out := mat.NewDense(n, m.dim, nil)
	out.Mul(zs, m.chol.T())
	for i := 0; i < n; i++ {
		floats.Add(out.RawRowView(i), m.mu)
	}
	return out
}
