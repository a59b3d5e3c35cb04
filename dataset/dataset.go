// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset supplies data matrices and random initializations
// for sparse coding runs.
package dataset

import (
	"image"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	internaldataset "github.com/born-ml/sparsecode/internal/dataset"
)

// LoadCSV reads a numeric CSV file, one sample per record, and
// returns the (L, N) data matrix with samples as columns.
func LoadCSV(path string) (*mat.Dense, error) {
	return internaldataset.LoadCSV(path)
}

// Randn returns an (rows, cols) matrix of N(0, sigma^2) draws from
// src.
func Randn(rows, cols int, sigma float64, src rand.Source) *mat.Dense {
	return internaldataset.Randn(rows, cols, sigma, src)
}

// Patches samples count random size x size patches from img as
// columns of a (size*size, count) matrix scaled to [0, 1].
func Patches(img *image.Gray, size, count int, src rand.Source) (*mat.Dense, error) {
	return internaldataset.Patches(img, size, count, src)
}
