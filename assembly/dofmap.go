package assembly

import (
	"github.com/quadfem/quadfem/element"
	"github.com/quadfem/quadfem/mesh"
)

// DOFMap numbers the global degrees of freedom of the continuous order-N
// Lagrange space on a structured quadrilateral mesh. The global nodes form an
// (N*Nx+1)×(N*Ny+1) grid and are numbered lexicographically (x fastest, then
// y), which for N=1 reduces to the mesh vertex numbering.
type DOFMap struct {
	Order   int
	NxNodes int // Global nodes per row
	NyNodes int // Global node rows
	NumDOFs int

	m *mesh.Mesh
	b *element.Basis1D

	cellDOFs [][]int // [cell][local node] → global DOF
}

// NewDOFMap builds the DOF numbering for mesh m and the 1D factor basis b.
func NewDOFMap(m *mesh.Mesh, b *element.Basis1D) *DOFMap {
	n := b.N
	d := &DOFMap{
		Order:   n,
		NxNodes: n*m.Nx + 1,
		NyNodes: n*m.Ny + 1,
		m:       m,
		b:       b,
	}
	d.NumDOFs = d.NxNodes * d.NyNodes

	d.cellDOFs = make([][]int, m.K)
	np1d := b.Np
	for k := 0; k < m.K; k++ {
		ex, ey := k%m.Nx, k/m.Nx
		dofs := make([]int, np1d*np1d)
		for j := 0; j < np1d; j++ {
			for i := 0; i < np1d; i++ {
				ix := ex*n + i
				iy := ey*n + j
				dofs[j*np1d+i] = iy*d.NxNodes + ix
			}
		}
		d.cellDOFs[k] = dofs
	}
	return d
}

// CellDOFs returns the global DOF numbers of cell k in local tensor order.
func (d *DOFMap) CellDOFs(k int) []int { return d.cellDOFs[k] }

// Coords returns the physical coordinates of a global DOF. Interior nodes of
// a cell sit at the mapped Gauss-Lobatto points of the 1D basis.
func (d *DOFMap) Coords(dof int) (x, y float64) {
	ix, iy := dof%d.NxNodes, dof/d.NxNodes
	hx, hy := d.m.CellSize()
	return d.m.X0 + d.axisCoord(ix, d.m.Nx)*hx, d.m.Y0 + d.axisCoord(iy, d.m.Ny)*hy
}

// axisCoord maps a global node index along one axis to its offset in cell
// widths from the domain origin.
func (d *DOFMap) axisCoord(i, ncells int) float64 {
	n := d.Order
	e := i / n
	if e >= ncells {
		e = ncells - 1
	}
	local := i - e*n
	return float64(e) + (d.b.R[local]+1)/2
}

// IsBoundary reports whether the DOF lies on the domain boundary.
func (d *DOFMap) IsBoundary(dof int) bool {
	ix, iy := dof%d.NxNodes, dof/d.NxNodes
	return ix == 0 || ix == d.NxNodes-1 || iy == 0 || iy == d.NyNodes-1
}

// BoundaryDOFs returns all boundary DOF numbers in ascending order.
func (d *DOFMap) BoundaryDOFs() []int {
	var bd []int
	for dof := 0; dof < d.NumDOFs; dof++ {
		if d.IsBoundary(dof) {
			bd = append(bd, dof)
		}
	}
	return bd
}
