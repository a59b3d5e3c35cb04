package sparse

import "github.com/rs/zerolog"

// Config holds the parameters of a Learn call.
//
// The zero value is not usable: MaxIters and MaxInnerIters must both
// be at least 1 and are validated by Learn.
type Config struct {
	// Sparsity is the weight of the L1 penalty on the codes. It must
	// be non-negative; with Sparsity == 0 the objective reduces to
	// the pure reconstruction error.
	Sparsity float64

	// MaxIters is the number of outer iterations. The solver always
	// runs the full count; there is no early stopping.
	MaxIters int

	// MaxInnerIters is the number of coordinate-descent sweeps spent
	// on each of the two phases (code update and dictionary update)
	// per outer iteration.
	MaxInnerIters int

	// MaxNorm2 is accepted for call-signature compatibility with
	// older callers.
	//
	// Deprecated: the value is ignored.
	MaxNorm2 float64

	// Logger, when non-nil, receives one progress event per outer
	// iteration carrying the iteration index and current energy.
	// Diagnostic only; it does not affect the computation.
	Logger *zerolog.Logger
}
