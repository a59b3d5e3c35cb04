package sparse

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// updateDictionary refines A column by column against fixed codes,
// minimizing 0.5*||X - A*S||_F^2 by block coordinate descent over
// atom columns.
//
// The code Gram matrix S S^T and its diagonal are computed once per
// phase, diagonal snapshotted then zeroed, mirroring updateCodes.
// There is no hard unit-norm constraint on atoms; instead the update
// divides by max(||a||, 1/e[i]), which caps how large a column can
// grow when its residual is tiny relative to its code energy. Atoms
// whose code energy is below degenerateEps are skipped for the sweep:
// their columns keep their previous values rather than dividing by a
// near-zero denominator. Columns are visited in ascending index
// order and written back immediately (Gauss–Seidel).
func updateDictionary(x mat.Matrix, a, s *mat.Dense, sweeps int) {
	l, m := a.Dims()

	corr := mat.NewDense(l, m, nil)
	corr.Mul(x, s.T())

	gram := mat.NewDense(m, m, nil)
	gram.Mul(s, s.T())
	codeEnergy := make([]float64, m)
	for i := 0; i < m; i++ {
		codeEnergy[i] = gram.At(i, i)
		gram.Set(i, i, 0)
	}

	coupling := mat.NewVecDense(l, nil)
	col := make([]float64, l)
	for sweep := 0; sweep < sweeps; sweep++ {
		for i := 0; i < m; i++ {
			if math.Abs(codeEnergy[i]) < degenerateEps {
				continue
			}

			coupling.MulVec(a, gram.ColView(i))
			for j := 0; j < l; j++ {
				col[j] = corr.At(j, i) - coupling.AtVec(j)
			}

			denom := math.Max(floats.Norm(col, 2), 1/codeEnergy[i])
			floats.Scale(1/denom, col)
			a.SetCol(i, col)
		}
	}
}
