package assembly

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/quadfem/quadfem/element"
	"github.com/quadfem/quadfem/mesh"
	"gonum.org/v1/gonum/mat"
)

// ScalarField is a pointwise-defined coefficient or source, f(x,y).
type ScalarField func(x, y float64) float64

// Constant returns the constant scalar field c.
func Constant(c float64) ScalarField {
	return func(x, y float64) float64 { return c }
}

// Assembler turns the weak form of the Poisson operator -∇·(κ∇u) into a
// global sparse stiffness matrix and load vector by cell-wise Gauss-Legendre
// quadrature. The grid is uniform, so the element stiffness matrix is
// computed once and scattered into every cell.
type Assembler struct {
	Mesh  *mesh.Mesh
	Elem  *element.LagrangeQuad
	Dofs  *DOFMap
	Kappa float64 // Constant diffusivity
}

// System is the assembled linear system K u = F. The stiffness matrix stays
// in DOK form so boundary conditions can still be applied; solvers convert it
// with CSR or Dense.
type System struct {
	N    int
	K    *sparse.DOK
	F    []float64
	Dofs *DOFMap

	fixed map[int]float64 // DOF → prescribed value, set by ApplyDirichlet
}

// NewAssembler creates an assembler for the order-n Lagrange space on m.
func NewAssembler(m *mesh.Mesh, n int) (*Assembler, error) {
	elem, err := element.NewLagrangeQuad(n)
	if err != nil {
		return nil, fmt.Errorf("cannot build order-%d quadrilateral: %v", n, err)
	}
	return &Assembler{
		Mesh:  m,
		Elem:  elem,
		Dofs:  NewDOFMap(m, elem.B),
		Kappa: 1,
	}, nil
}

// Assemble builds the global stiffness matrix and the load vector for the
// source field f.
func (a *Assembler) Assemble(f ScalarField) (*System, error) {
	if f == nil {
		return nil, fmt.Errorf("nil source field")
	}

	nd := a.Dofs.NumDOFs
	sys := &System{
		N:     nd,
		K:     sparse.NewDOK(nd, nd),
		F:     make([]float64, nd),
		Dofs:  a.Dofs,
		fixed: make(map[int]float64),
	}

	ke := a.elementStiffness()
	np := a.Elem.Np()

	hx, hy := a.Mesh.CellSize()
	detJ := hx * hy / 4
	for k := 0; k < a.Mesh.K; k++ {
		dofs := a.Dofs.CellDOFs(k)
		cx, cy := a.Mesh.CellOrigin(k)

		// Scatter the element stiffness
		for i := 0; i < np; i++ {
			gi := dofs[i]
			for j := 0; j < np; j++ {
				gj := dofs[j]
				sys.K.Set(gi, gj, sys.K.At(gi, gj)+ke.At(i, j))
			}
		}

		// Element load by quadrature on the mapped cell
		for q := 0; q < a.Elem.Nq(); q++ {
			xq := cx + (a.Elem.QR[q]+1)/2*hx
			yq := cy + (a.Elem.QS[q]+1)/2*hy
			fw := a.Elem.QW[q] * detJ * f(xq, yq)
			for i := 0; i < np; i++ {
				sys.F[dofs[i]] += fw * a.Elem.Phi.At(q, i)
			}
		}
	}
	return sys, nil
}

// elementStiffness computes the element stiffness matrix
//
//	Ke[i][j] = κ ∫ ∇φi·∇φj dx
//
// on one cell. Cells are axis-aligned rectangles, so the reference-to-
// physical map is affine with dr/dx = 2/hx and ds/dy = 2/hy.
func (a *Assembler) elementStiffness() *mat.Dense {
	np := a.Elem.Np()
	hx, hy := a.Mesh.CellSize()
	detJ := hx * hy / 4
	rx := 2 / hx
	sy := 2 / hy

	ke := mat.NewDense(np, np, nil)
	for q := 0; q < a.Elem.Nq(); q++ {
		w := a.Elem.QW[q] * detJ * a.Kappa
		for i := 0; i < np; i++ {
			dxi := rx * a.Elem.PhiDr.At(q, i)
			dyi := sy * a.Elem.PhiDs.At(q, i)
			for j := 0; j < np; j++ {
				dxj := rx * a.Elem.PhiDr.At(q, j)
				dyj := sy * a.Elem.PhiDs.At(q, j)
				ke.Set(i, j, ke.At(i, j)+w*(dxi*dxj+dyi*dyj))
			}
		}
	}
	return ke
}

// CSR returns the stiffness matrix in compressed sparse row form.
func (s *System) CSR() *sparse.CSR { return s.K.ToCSR() }

// Dense expands the stiffness matrix into a dense gonum matrix.
func (s *System) Dense() *mat.Dense {
	d := mat.NewDense(s.N, s.N, nil)
	s.K.DoNonZero(func(i, j int, v float64) {
		d.Set(i, j, v)
	})
	return d
}

// FixedValue returns the prescribed value of a constrained DOF, if any.
func (s *System) FixedValue(dof int) (float64, bool) {
	v, ok := s.fixed[dof]
	return v, ok
}
