// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the generic At-based materialization path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return d
}

// NewFilledDense builds an r×c *Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, vals[i*c+j])
		}
	}

	return d
}

// RandFilledDense returns an r×c Dense with values in [-1,1) from a fixed seed.
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, d, i, j, rng.Float64()*2-1)
		}
	}

	return d
}

// WellConditioned returns MᵀM + n·I for a random M: symmetric positive
// definite, so every Doolittle pivot is positive.
func WellConditioned(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	M := RandFilledDense(t, n, n, seed)
	out := MustDense(t, n, n)
	var i, j, k int
	var s float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s = 0
			for k = 0; k < n; k++ {
				s += MustAt(t, M, k, i) * MustAt(t, M, k, j)
			}
			if i == j {
				s += float64(n)
			}
			MustSet(t, out, i, j, s)
		}
	}

	return out
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose fails unless a and b are element-wise close.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("matrices differ beyond rtol=%g atol=%g:\n%v\nvs\n%v", rtol, atol, a, b)
	}
}

// AssertIdentityProduct fails unless A·inv ≈ I and inv·A ≈ I.
func AssertIdentityProduct(t *testing.T, A, inv matrix.Matrix, atol float64) {
	t.Helper()
	I, err := matrix.IdentityLike(A)
	if err != nil {
		t.Fatalf("IdentityLike: %v", err)
	}
	left, err := matrix.Mul(A, inv)
	if err != nil {
		t.Fatalf("Mul(A, inv): %v", err)
	}
	right, err := matrix.Mul(inv, A)
	if err != nil {
		t.Fatalf("Mul(inv, A): %v", err)
	}
	CompareClose(t, left, I, 0, atol)
	CompareClose(t, right, I, 0, atol)
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic fails unless fn panics.
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}
