// SPDX-License-Identifier: MIT
// Package: livegraph/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows, cols >= 1 (else ErrTooFewVertices).
//   - Vertex IDs use the fixed coordinate scheme "r,c" (row-major), not cfg.idFn.
//   - For each (r,c): edge to the right neighbor, then to the bottom neighbor.
//
// Complexity: O(rows*cols) vertices + O(2*rows*cols) edges.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/livegraph/core"
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string {
			return cfg.fixed(strconv.Itoa(r) + "," + strconv.Itoa(c))
		}

		ids := make([]string, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				ids = append(ids, cell(r, c))
			}
		}
		if err := addVertices(g, MethodGrid, ids); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, MethodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, MethodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
