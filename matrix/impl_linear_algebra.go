// SPDX-License-Identifier: MIT
// Package matrix provides the inversion kernels used by the cache layer:
// LU (Doolittle, no pivoting), Inverse (LU-based or Gauss-Jordan with
// partial pivoting) and Mul for verification. All functions perform strict
// fail-fast validation and return sentinels wrapped with an operation tag.
//
// Notes:
//   - Kernels never mutate their inputs; results are freshly allocated *Dense.
//   - Non-*Dense inputs are materialized once through At (toDense) so every
//     kernel body runs on flat slices.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul     = "Mul"
	opInverse = "Inverse"
	opLU      = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isSingularPivot reports whether |p| is at or below tol.
func isSingularPivot(p, tol float64) bool { return math.Abs(p) <= tol }

// toDense returns m itself when it is a *Dense, otherwise a flat copy read via At.
// Callers must not mutate the returned value.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a × b.
//
// Errors:
//   - ErrNilMatrix          (a or b nil).
//   - ErrDimensionMismatch  (a.Cols != b.Rows).
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i-k-j order: row-major friendly on both operands.
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on L (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (if |U[i,i]| <= tol during factorization).
//
// Complexity: Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, error) {
	L, U, err := luWithTolerance(m, DefaultPivotTolerance)
	if err != nil {
		return nil, nil, err
	}

	return L, U, nil
}

// luWithTolerance is the LU body shared by LU and Inverse.
func luWithTolerance(m Matrix, tol float64) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := a.r
	L, _ := NewDense(n, n) // n > 0 is guaranteed by the source matrix
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var (
		i, j, k      int
		sum, pivot   float64
		baseI, baseJ int
	)
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U for j >= i.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[baseI+k] * U.data[k*n+j]
			}
			U.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = U.data[baseI+i]
		if isSingularPivot(pivot, tol) {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L for j > i.
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k = 0; k < i; k++ {
				sum += L.data[baseJ+k] * U.data[k*n+i]
			}
			L.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse computes A^{-1}. The input must be non-nil and square; it is never mutated.
//
// Implementation:
//   - Default: Doolittle LU without pivoting, then for each basis column e_col
//     forward-solve L*y = e_col and backward-solve U*x = y.
//   - WithPartialPivoting: Gauss-Jordan on [A | I] choosing the largest |a[r][col]|
//     row as pivot for each column.
//
// Errors:
//   - ErrNilMatrix (nil input).
//   - ErrNonSquare (Rows != Cols; also matches ErrDimensionMismatch).
//   - ErrSingular  (a pivot with |p| <= pivot tolerance).
//
// Determinism:
//   - Fixed traversal; ties in pivot selection go to the first row.
//
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...InverseOption) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherInverseOptions(opts...)

	var (
		inv *Dense
		err error
	)
	if o.partialPivot {
		inv, err = inverseGaussJordan(m, o.pivotTol)
	} else {
		inv, err = inverseLU(m, o.pivotTol)
	}
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// inverseLU solves n triangular systems against the Doolittle factors.
func inverseLU(m Matrix, tol float64) (*Dense, error) {
	L, U, err := luWithTolerance(m, tol)
	if err != nil {
		return nil, err
	}

	n := L.r
	inv, _ := NewDense(n, n)
	var (
		col, i, k     int
		sum           float64
		baseLi, baseU int
		y             = make([]float64, n) // forward substitution workspace
		x             = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			baseLi = i * n
			for k = 0; k < i; k++ {
				sum += L.data[baseLi+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 where -sum would give -0
			}
		}
		// U*x = y; pivots were already checked by LU.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			baseU = i * n
			for k = i + 1; k < n; k++ {
				sum += U.data[baseU+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[baseU+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// inverseGaussJordan reduces a working copy of A to I while applying the
// same row operations to an identity matrix.
func inverseGaussJordan(m Matrix, tol float64) (*Dense, error) {
	src, err := toDense(m)
	if err != nil {
		return nil, err
	}
	n := src.r
	a := src.Clone().(*Dense) // working copy; input stays untouched
	inv, _ := NewIdentity(n)

	var (
		col, r, j, best int
		maxAbs, f, p    float64
	)
	for col = 0; col < n; col++ {
		// Select pivot row.
		best, maxAbs = col, math.Abs(a.data[col*n+col])
		for r = col + 1; r < n; r++ {
			if v := math.Abs(a.data[r*n+col]); v > maxAbs {
				best, maxAbs = r, v
			}
		}
		if isSingularPivot(maxAbs, tol) {
			return nil, ErrSingular
		}
		if best != col {
			swapRows(a, best, col)
			swapRows(inv, best, col)
		}

		// Normalize pivot row.
		p = a.data[col*n+col]
		for j = 0; j < n; j++ {
			a.data[col*n+j] /= p
			inv.data[col*n+j] /= p
		}

		// Eliminate column in every other row.
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			f = a.data[r*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				a.data[r*n+j] -= f * a.data[col*n+j]
				inv.data[r*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// swapRows exchanges rows i and k of d in place.
func swapRows(d *Dense, i, k int) {
	ri := d.data[i*d.c : (i+1)*d.c]
	rk := d.data[k*d.c : (k+1)*d.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}
