// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package sparse is the public API for dictionary learning via
// L1-regularized sparse coding.
//
// Given a data matrix X (L x N), Learn refines a dictionary A
// (L x M) and a sparse code matrix S (M x N) in place so that
// X ≈ A*S with mostly-zero codes, by alternating coordinate-descent
// phases over codes and dictionary atoms.
//
// Example:
//
//	x, _ := dataset.LoadCSV("patches.csv")
//	l, _ := x.Dims()
//	a := dataset.Randn(l, 64, 1, rand.NewSource(0))
//	s := dataset.Randn(64, n, 1, rand.NewSource(1))
//
//	energy, err := sparse.Learn(x, a, s, sparse.Config{
//	    Sparsity:      0.1,
//	    MaxIters:      150,
//	    MaxInnerIters: 10,
//	})
package sparse

import (
	"gonum.org/v1/gonum/mat"

	internalsparse "github.com/born-ml/sparsecode/internal/sparse"
)

// Config holds the parameters of a Learn call.
type Config = internalsparse.Config

// Learn runs alternating block coordinate descent on the sparse
// coding objective, mutating a and s in place, and returns the
// energy history with one entry per outer iteration.
func Learn(x mat.Matrix, a, s *mat.Dense, cfg Config) ([]float64, error) {
	return internalsparse.Learn(x, a, s, cfg)
}

// Energy evaluates 0.5*||X - A*S||_F^2 + sparsity*||S||_1.
func Energy(x mat.Matrix, a, s *mat.Dense, sparsity float64) float64 {
	return internalsparse.Energy(x, a, s, sparsity)
}
