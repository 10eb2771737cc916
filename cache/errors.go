// SPDX-License-Identifier: MIT

package cache

import (
	"errors"

	"github.com/katalvlaran/matcache/matrix"
)

var (
	// ErrNilContainer is returned by Solve when the container is nil.
	ErrNilContainer = errors.New("cache: nil container")

	// ErrNoResult is returned when an Inverter reports success without a matrix.
	// Nothing is cached in that case.
	ErrNoResult = errors.New("cache: inverter returned no matrix")

	// ErrNilMatrix is returned by NewCachedMatrix for a nil initial matrix.
	// It is the matrix package sentinel, so errors.Is matches either name.
	ErrNilMatrix = matrix.ErrNilMatrix
)
