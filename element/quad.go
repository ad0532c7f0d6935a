package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LagrangeQuad is the tensor-product Lagrange reference quadrilateral on
// [-1,1]². Its Np = (N+1)² nodes are tensor products of the 1D Gauss-Lobatto
// points, ordered lexicographically (r fastest, then s), so nodes on shared
// edges of neighboring cells coincide and the assembled global space is C0.
//
// The element also carries an (N+1)×(N+1) tensor Gauss-Legendre quadrature
// rule together with the basis values and reference-space derivatives
// evaluated at the quadrature points, which is everything stiffness and load
// assembly needs.
type LagrangeQuad struct {
	Props Properties
	B     *Basis1D // 1D factor basis

	// Node coordinates in reference space, length Np each
	R, S []float64

	// Quadrature: Nq = (N+1)² tensor Gauss-Legendre points and weights
	QR, QS, QW []float64

	// Basis values and derivatives at the quadrature points [Nq × Np]
	Phi   *mat.Dense
	PhiDr *mat.Dense
	PhiDs *mat.Dense
}

// NewLagrangeQuad constructs the order-n reference quadrilateral.
func NewLagrangeQuad(n int) (*LagrangeQuad, error) {
	b, err := NewBasis1D(n)
	if err != nil {
		return nil, err
	}

	np1d := b.Np
	np := np1d * np1d
	q := &LagrangeQuad{
		Props: Properties{
			Name:       fmt.Sprintf("Lagrange Quadrilateral Order %d", n),
			ShortName:  fmt.Sprintf("Quad%d", n),
			Type:       Quad,
			Order:      n,
			Np:         np,
			NFp:        np1d,
			NVp:        4,
			NIp:        (np1d - 2) * (np1d - 2),
			NFaces:     4,
			Dimensions: D2,
		},
		B: b,
	}

	// Tensor node coordinates
	q.R = make([]float64, np)
	q.S = make([]float64, np)
	for j := 0; j < np1d; j++ {
		for i := 0; i < np1d; i++ {
			q.R[j*np1d+i] = b.R[i]
			q.S[j*np1d+i] = b.R[j]
		}
	}

	// Tensor Gauss-Legendre quadrature, exact for degree 2N+1 per direction
	gq, gw := JacobiGQ(0, 0, n)
	nq1d := len(gq)
	nq := nq1d * nq1d
	q.QR = make([]float64, nq)
	q.QS = make([]float64, nq)
	q.QW = make([]float64, nq)
	for j := 0; j < nq1d; j++ {
		for i := 0; i < nq1d; i++ {
			p := j*nq1d + i
			q.QR[p] = gq[i]
			q.QS[p] = gq[j]
			q.QW[p] = gw[i] * gw[j]
		}
	}

	// Basis values and derivatives at the quadrature points from the 1D
	// interpolation and differentiation matrices
	im := b.InterpMatrix(gq)
	dm := b.DerivMatrix(gq)
	q.Phi = mat.NewDense(nq, np, nil)
	q.PhiDr = mat.NewDense(nq, np, nil)
	q.PhiDs = mat.NewDense(nq, np, nil)
	for qj := 0; qj < nq1d; qj++ {
		for qi := 0; qi < nq1d; qi++ {
			row := qj*nq1d + qi
			for j := 0; j < np1d; j++ {
				for i := 0; i < np1d; i++ {
					col := j*np1d + i
					q.Phi.Set(row, col, im.At(qi, i)*im.At(qj, j))
					q.PhiDr.Set(row, col, dm.At(qi, i)*im.At(qj, j))
					q.PhiDs.Set(row, col, im.At(qi, i)*dm.At(qj, j))
				}
			}
		}
	}
	return q, nil
}

// Np returns the number of nodes per element.
func (q *LagrangeQuad) Np() int { return q.Props.Np }

// Nq returns the number of quadrature points per element.
func (q *LagrangeQuad) Nq() int { return len(q.QW) }

// Order returns the polynomial order.
func (q *LagrangeQuad) Order() int { return q.Props.Order }

// EvalBasis evaluates every basis function at the reference point (r,s).
func (q *LagrangeQuad) EvalBasis(r, s float64) []float64 {
	lr := q.B.InterpMatrix([]float64{r})
	ls := q.B.InterpMatrix([]float64{s})
	np1d := q.B.Np
	phi := make([]float64, q.Np())
	for j := 0; j < np1d; j++ {
		for i := 0; i < np1d; i++ {
			phi[j*np1d+i] = lr.At(0, i) * ls.At(0, j)
		}
	}
	return phi
}
