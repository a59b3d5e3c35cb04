package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// softThreshold is the proximal operator of t*|x|: it shrinks u
// toward zero by t, clipping to zero inside the margin.
func softThreshold(u, t float64) float64 {
	switch {
	case u > t:
		return u - t
	case u < -t:
		return u + t
	default:
		return 0
	}
}

// updateCodes refines S row by row against a fixed dictionary,
// minimizing 0.5*||X - A*S||_F^2 + sparsity*||S||_1 by coordinate
// descent over atom indices.
//
// The Gram matrix A^T A and its diagonal are computed once for the
// whole phase; the diagonal is snapshotted and then zeroed so the
// cross-coupling product excludes the self term. Each row update is
// the exact minimizer of the L1-regularized quadratic in that row
// with all other rows held fixed, and is written back immediately so
// later rows in the same sweep see it (Gauss–Seidel). Rows are
// visited in ascending index order.
func updateCodes(x mat.Matrix, a, s *mat.Dense, sparsity float64, sweeps int) {
	_, m := a.Dims()
	_, n := x.Dims()

	gram := mat.NewDense(m, m, nil)
	gram.Mul(a.T(), a)
	selfEnergy := make([]float64, m)
	for i := 0; i < m; i++ {
		selfEnergy[i] = gram.At(i, i)
		gram.Set(i, i, 0)
	}

	corr := mat.NewDense(m, n, nil)
	corr.Mul(a.T(), x)

	coupling := mat.NewVecDense(n, nil)
	row := make([]float64, n)
	for sweep := 0; sweep < sweeps; sweep++ {
		for i := 0; i < m; i++ {
			// coupling[j] = sum_k gram[i,k] * S[k,j], the
			// contribution of every other atom to row i's target.
			coupling.MulVec(s.T(), gram.RowView(i))

			degenerate := math.Abs(selfEnergy[i]) <= degenerateEps
			for j := 0; j < n; j++ {
				v := softThreshold(corr.At(i, j)-coupling.AtVec(j), sparsity)
				if !degenerate {
					v /= selfEnergy[i]
				}
				row[j] = v
			}
			s.SetRow(i, row)
		}
	}
}
