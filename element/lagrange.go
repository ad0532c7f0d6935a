package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vandermonde1D builds the 1D Vandermonde matrix V with
// V[i][j] = P_j(r[i]) for the orthonormal Legendre polynomials P_j, j=0..n.
func Vandermonde1D(n int, r []float64) *mat.Dense {
	v := mat.NewDense(len(r), n+1, nil)
	for j := 0; j <= n; j++ {
		p := JacobiP(r, 0, 0, j)
		for i := range p {
			v.Set(i, j, p[i])
		}
	}
	return v
}

// GradVandermonde1D builds the matrix of Legendre polynomial derivatives,
// Vr[i][j] = P'_j(r[i]).
func GradVandermonde1D(n int, r []float64) *mat.Dense {
	vr := mat.NewDense(len(r), n+1, nil)
	for j := 0; j <= n; j++ {
		dp := GradJacobiP(r, 0, 0, j)
		for i := range dp {
			vr.Set(i, j, dp[i])
		}
	}
	return vr
}

// Basis1D is the nodal Lagrange basis of order N on the Gauss-Lobatto points
// of [-1,1]. Basis values and derivatives at arbitrary points are obtained
// modally through the Vandermonde matrix: ℓ(r) = P(r) V⁻¹.
type Basis1D struct {
	N    int        // Polynomial order
	Np   int        // Number of nodes (N+1)
	R    []float64  // Gauss-Lobatto node coordinates
	V    *mat.Dense // Vandermonde matrix at the nodes
	Vinv *mat.Dense // Inverse Vandermonde matrix
}

// NewBasis1D constructs the order-n Lobatto Lagrange basis.
func NewBasis1D(n int) (*Basis1D, error) {
	if n < 1 {
		return nil, fmt.Errorf("invalid polynomial order %d", n)
	}
	b := &Basis1D{
		N:  n,
		Np: n + 1,
		R:  JacobiGL(0, 0, n),
	}
	b.V = Vandermonde1D(n, b.R)
	b.Vinv = mat.NewDense(b.Np, b.Np, nil)
	if err := b.Vinv.Inverse(b.V); err != nil {
		return nil, fmt.Errorf("singular Vandermonde matrix for order %d: %v", n, err)
	}
	return b, nil
}

// InterpMatrix returns the matrix I with I[i][j] = ℓ_j(r[i]), interpolating
// nodal values to the points r.
func (b *Basis1D) InterpMatrix(r []float64) *mat.Dense {
	im := mat.NewDense(len(r), b.Np, nil)
	im.Mul(Vandermonde1D(b.N, r), b.Vinv)
	return im
}

// DerivMatrix returns the matrix D with D[i][j] = ℓ'_j(r[i]).
func (b *Basis1D) DerivMatrix(r []float64) *mat.Dense {
	dm := mat.NewDense(len(r), b.Np, nil)
	dm.Mul(GradVandermonde1D(b.N, r), b.Vinv)
	return dm
}
