// SPDX-License-Identifier: MIT

package cache

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
)

// CachedMatrix holds a matrix and, once computed, its inverse.
//
// Both slots are owned by the container: every matrix passed in is cloned on
// the way in and every read returns a clone, so callers can never alias (and
// silently mutate) the cached state. A nil inverse means "not yet computed
// for the current matrix".
//
// The zero value holds no matrix; use NewCachedMatrix.
type CachedMatrix struct {
	value   matrix.Matrix // current matrix (square by caller contract, unvalidated)
	inverse matrix.Matrix // nil == absent
}

// NewCachedMatrix returns a container holding a copy of m with no cached inverse.
// A nil m is rejected with ErrNilMatrix; there is no default matrix.
func NewCachedMatrix(m matrix.Matrix) (*CachedMatrix, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewCachedMatrix: %w", err)
	}

	return &CachedMatrix{value: m.Clone()}, nil
}

// SetMatrix replaces the stored matrix and drops any cached inverse, even when
// m equals the current value. Shape is not validated here; Solve surfaces a
// non-square matrix as the inverter's error.
func (c *CachedMatrix) SetMatrix(m matrix.Matrix) {
	c.value = cloneOrNil(m)
	c.inverse = nil
}

// Matrix returns a copy of the stored matrix.
func (c *CachedMatrix) Matrix() matrix.Matrix { return cloneOrNil(c.value) }

// SetInverse stores inv as the cached inverse without checking it against the
// current matrix. Storing nil clears the cache.
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) { c.inverse = cloneOrNil(inv) }

// Inverse returns a copy of the cached inverse and whether one is present.
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	if c.inverse == nil {
		return nil, false
	}

	return c.inverse.Clone(), true
}

// HasInverse reports whether an inverse is cached for the current matrix.
func (c *CachedMatrix) HasInverse() bool { return c.inverse != nil }

// cloneOrNil deep-copies m; nil and typed-nil inputs map to an untyped nil.
func cloneOrNil(m matrix.Matrix) matrix.Matrix {
	if matrix.ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
