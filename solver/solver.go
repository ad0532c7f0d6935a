// Package solver solves the assembled sparse linear systems, either by a
// direct dense LU factorization or by conjugate gradients on the sparse
// matrix.
package solver

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"github.com/vladimir-ch/iterative"
	"gonum.org/v1/gonum/mat"
)

// Method selects the factorization/iteration used for the solve.
type Method string

const (
	// LU performs a direct dense LU factorization. Deterministic:
	// identical inputs give bit-for-bit identical solutions.
	LU Method = "lu"
	// CG runs conjugate gradients on the sparse matrix. Requires the
	// operator to be symmetric positive definite.
	CG Method = "cg"
)

// Config holds the solver configuration.
type Config struct {
	Method    Method
	Tolerance float64 // Residual bound used to verify the solve
}

// DefaultConfig returns the direct-solver configuration.
func DefaultConfig() Config {
	return Config{Method: LU, Tolerance: 1e-9}
}

// Solve solves A x = b with the configured method and verifies the residual
// against the configured tolerance.
func Solve(a *sparse.CSR, b []float64, cfg Config) ([]float64, error) {
	if cfg.Method == "" {
		cfg.Method = LU
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultConfig().Tolerance
	}

	var (
		x   []float64
		err error
	)
	switch cfg.Method {
	case LU:
		x, err = SolveLU(a, b)
	case CG:
		x, err = SolveCG(a, b)
	default:
		return nil, fmt.Errorf("unknown solver method %q", cfg.Method)
	}
	if err != nil {
		return nil, err
	}

	if res := Residual(a, x, b); res > cfg.Tolerance {
		return nil, fmt.Errorf("solution residual %.3e exceeds tolerance %.3e",
			res, cfg.Tolerance)
	}
	return x, nil
}

// SolveLU solves A x = b by dense LU factorization with partial pivoting.
func SolveLU(a mat.Matrix, b []float64) ([]float64, error) {
	n := len(b)
	r, c := a.Dims()
	if r != n || c != n {
		return nil, fmt.Errorf("dimension mismatch: matrix %d×%d, rhs %d", r, c, n)
	}

	var lu mat.LU
	lu.Factorize(a)

	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("LU solve failed: %v", err)
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = x.AtVec(i)
	}
	return out, nil
}

// SolveCG solves A x = b by conjugate gradients. A must be symmetric
// positive definite.
func SolveCG(a *sparse.CSR, b []float64) ([]float64, error) {
	result, err := iterative.LinearSolve(iterative.MatrixOps{MatVec: MatVec(a)},
		b, &iterative.CG{}, iterative.Settings{})
	if err != nil {
		return nil, fmt.Errorf("CG did not converge: %v", err)
	}
	return result.X, nil
}

// MatVec returns the matrix-vector product kernel dst = A·src for a CSR
// matrix.
func MatVec(a *sparse.CSR) func(dst, src []float64) {
	return func(dst, src []float64) {
		for i := range dst {
			dst[i] = 0
		}
		a.DoNonZero(func(i, j int, v float64) {
			dst[i] += v * src[j]
		})
	}
}

// Residual returns the Euclidean norm ‖A·x - b‖₂.
func Residual(a *sparse.CSR, x, b []float64) float64 {
	r := make([]float64, len(b))
	MatVec(a)(r, x)
	sum := 0.0
	for i := range r {
		d := r[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
