// SPDX-License-Identifier: MIT

package cache

import "github.com/katalvlaran/matcache/matrix"

//go:generate go run go.uber.org/mock/mockgen -source=inverter.go -destination=mocks/mock_inverter.go -package=mocks

// Inverter computes the inverse of a square matrix. Implementations must fail
// (and return no matrix) for singular or non-square input.
type Inverter interface {
	Invert(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error)
}

// InverterFunc adapts a plain function to Inverter.
type InverterFunc func(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error)

// Invert calls f(m, opts...).
func (f InverterFunc) Invert(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	return f(m, opts...)
}

// DefaultInverter delegates to matrix.Inverse.
var DefaultInverter Inverter = InverterFunc(matrix.Inverse)
