package sparse

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Energy evaluates the sparse coding objective
//
//	0.5*||X - A*S||_F^2 + sparsity*||S||_1
//
// for the given matrices. Learn records this value once per outer
// iteration; it is exported so callers can score a factorization
// independently of a run.
func Energy(x mat.Matrix, a, s *mat.Dense, sparsity float64) float64 {
	l, n := x.Dims()

	resid := mat.NewDense(l, n, nil)
	resid.Mul(a, s)
	resid.Sub(x, resid)
	fro := mat.Norm(resid, 2)

	var l1 float64
	m, _ := s.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			l1 += math.Abs(s.At(i, j))
		}
	}

	return 0.5*fro*fro + sparsity*l1
}
