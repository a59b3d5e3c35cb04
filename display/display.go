// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package display renders a learned dictionary as a tiled grayscale
// grid, one square patch per atom. It requires atoms whose length is
// a perfect square; the optimizer itself carries no such constraint.
package display

import (
	"image"

	"gonum.org/v1/gonum/mat"

	internaldisplay "github.com/born-ml/sparsecode/internal/display"
)

// Grid tiles the atom columns of features into a single matrix with
// values in [-1, 1], each atom renormalized by its max absolute
// value. rows <= 0 picks an approximately square layout.
func Grid(features mat.Matrix, rows int) (*mat.Dense, error) {
	return internaldisplay.Grid(features, rows)
}

// Image renders the tiled grid to an 8-bit grayscale buffer.
func Image(features mat.Matrix, rows int) (*image.Gray, error) {
	return internaldisplay.Image(features, rows)
}

// SavePNG renders the grid and writes it to path as a PNG file.
func SavePNG(path string, features mat.Matrix, rows int) error {
	return internaldisplay.SavePNG(path, features, rows)
}
