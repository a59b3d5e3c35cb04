// Package sparse implements dictionary learning via L1-regularized
// sparse coding.
//
// Given a data matrix X of shape (L, N), the solver jointly learns a
// dictionary A of shape (L, M) and a sparse code matrix S of shape
// (M, N) minimizing
//
//	0.5*||X - A*S||_F^2 + sparsity*||S||_1
//
// by alternating block coordinate descent: the codes S are refined
// row by row with a soft-threshold update, then the dictionary A is
// refined column by column with a norm-capped least-squares update.
// Both phases use Gauss–Seidel ordering, so the result of a run is
// deterministic for identical inputs.
//
// Example usage:
//
//	cfg := sparse.Config{
//	    Sparsity:      0.1,
//	    MaxIters:      50,
//	    MaxInnerIters: 10,
//	}
//	energy, err := sparse.Learn(x, dict, codes, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// dict and codes now hold the learned factorization;
//	// energy[len(energy)-1] is the final objective value.
package sparse

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// degenerateEps is the threshold under which a per-atom self-energy
// (Gram diagonal entry) counts as degenerate and the guarded fallback
// applies instead of the division.
const degenerateEps = 1e-8

// Learn runs alternating block coordinate descent on the sparse
// coding objective.
//
// X is the (L, N) data matrix and is read-only for the duration of
// the call. A (L, M) and S (M, N) carry the caller's initial guesses
// and are refined in place: the caller's matrices hold the learned
// dictionary and codes after Learn returns. The caller must not read
// or mutate A and S concurrently with the call.
//
// Learn always runs exactly cfg.MaxIters outer iterations and returns
// the energy history, one objective value per completed iteration.
// There is no convergence check or early exit; per-coordinate
// sub-problems are solved exactly, but the joint alternating scheme
// with a fixed inner-sweep budget carries no monotone-decrease
// guarantee, and every step is accepted regardless.
//
// Preconditions are validated before any matrix is touched; a
// violation returns an error and leaves A and S unchanged.
func Learn(x mat.Matrix, a, s *mat.Dense, cfg Config) ([]float64, error) {
	if err := validate(x, a, s, cfg); err != nil {
		return nil, err
	}

	energy := make([]float64, 0, cfg.MaxIters)
	for iter := 0; iter < cfg.MaxIters; iter++ {
		updateCodes(x, a, s, cfg.Sparsity, cfg.MaxInnerIters)
		updateDictionary(x, a, s, cfg.MaxInnerIters)

		e := Energy(x, a, s, cfg.Sparsity)
		energy = append(energy, e)

		if cfg.Logger != nil {
			cfg.Logger.Info().
				Int("iter", iter+1).
				Float64("energy", e).
				Msg("sparse coding iteration")
		}
	}

	return energy, nil
}

// validate checks the Learn preconditions: non-nil matrices,
// consistent shapes, finite entries, and sane configuration values.
func validate(x mat.Matrix, a, s *mat.Dense, cfg Config) error {
	if x == nil || a == nil || s == nil {
		return fmt.Errorf("sparse: nil matrix argument")
	}

	l, n := x.Dims()
	la, m := a.Dims()
	ms, ns := s.Dims()
	if la != l {
		return fmt.Errorf("sparse: dictionary has %d rows, data has %d", la, l)
	}
	if ms != m || ns != n {
		return fmt.Errorf("sparse: codes are %dx%d, want %dx%d to match dictionary and data", ms, ns, m, n)
	}

	if cfg.Sparsity < 0 {
		return fmt.Errorf("sparse: negative sparsity %v", cfg.Sparsity)
	}
	if cfg.MaxIters < 1 {
		return fmt.Errorf("sparse: MaxIters must be >= 1, got %d", cfg.MaxIters)
	}
	if cfg.MaxInnerIters < 1 {
		return fmt.Errorf("sparse: MaxInnerIters must be >= 1, got %d", cfg.MaxInnerIters)
	}

	if !allFinite(x) {
		return fmt.Errorf("sparse: data matrix contains non-finite entries")
	}
	if !allFinite(a) {
		return fmt.Errorf("sparse: dictionary matrix contains non-finite entries")
	}
	if !allFinite(s) {
		return fmt.Errorf("sparse: code matrix contains non-finite entries")
	}

	return nil
}

func allFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
