package mesh

import (
	"fmt"
	"strings"
)

// Mesh is a structured quadrilateral mesh over an axis-aligned rectangle.
// Vertices are numbered lexicographically (x fastest, then y) and cells are
// numbered the same way, so cell k = ey*Nx + ex covers
// [X0+ex*hx, X0+(ex+1)*hx] × [Y0+ey*hy, Y0+(ey+1)*hy].
type Mesh struct {
	Nx, Ny int // cell subdivisions per direction

	// Rectangle extents
	X0, Y0 float64
	X1, Y1 float64

	K           int // Total number of cells (Nx*Ny)
	NumVertices int // (Nx+1)*(Ny+1)

	// Vertex coordinates, lexicographic ordering
	VX, VY []float64

	// Cell to vertex connectivity, counterclockwise starting at the
	// lower-left corner: [k][lower-left, lower-right, upper-right, upper-left]
	EToV [][]int
}

// NewUnitSquare builds an nx×ny quadrilateral mesh of the unit square [0,1]².
func NewUnitSquare(nx, ny int) (*Mesh, error) {
	return NewRectangle(0, 0, 1, 1, nx, ny)
}

// NewRectangle builds an nx×ny quadrilateral mesh of [x0,x1]×[y0,y1].
func NewRectangle(x0, y0, x1, y1 float64, nx, ny int) (*Mesh, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("invalid subdivisions: nx=%d, ny=%d", nx, ny)
	}
	if x1 <= x0 || y1 <= y0 {
		return nil, fmt.Errorf("invalid extents: [%g,%g]×[%g,%g]", x0, x1, y0, y1)
	}

	m := &Mesh{
		Nx: nx, Ny: ny,
		X0: x0, Y0: y0,
		X1: x1, Y1: y1,
		K:           nx * ny,
		NumVertices: (nx + 1) * (ny + 1),
	}

	hx, hy := m.CellSize()
	m.VX = make([]float64, m.NumVertices)
	m.VY = make([]float64, m.NumVertices)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			v := m.VertexIndex(i, j)
			m.VX[v] = x0 + float64(i)*hx
			m.VY[v] = y0 + float64(j)*hy
		}
	}

	m.EToV = make([][]int, m.K)
	for ey := 0; ey < ny; ey++ {
		for ex := 0; ex < nx; ex++ {
			k := ey*nx + ex
			m.EToV[k] = []int{
				m.VertexIndex(ex, ey),
				m.VertexIndex(ex+1, ey),
				m.VertexIndex(ex+1, ey+1),
				m.VertexIndex(ex, ey+1),
			}
		}
	}
	return m, nil
}

// CellSize returns the cell extents hx, hy. The grid is uniform.
func (m *Mesh) CellSize() (hx, hy float64) {
	return (m.X1 - m.X0) / float64(m.Nx), (m.Y1 - m.Y0) / float64(m.Ny)
}

// VertexIndex maps grid coordinates (i,j) to the lexicographic vertex number.
func (m *Mesh) VertexIndex(i, j int) int {
	return j*(m.Nx+1) + i
}

// CellOrigin returns the lower-left corner of cell k.
func (m *Mesh) CellOrigin(k int) (x, y float64) {
	hx, hy := m.CellSize()
	ex, ey := k%m.Nx, k/m.Nx
	return m.X0 + float64(ex)*hx, m.Y0 + float64(ey)*hy
}

// IsBoundaryVertex reports whether vertex v lies on the rectangle boundary.
func (m *Mesh) IsBoundaryVertex(v int) bool {
	i, j := v%(m.Nx+1), v/(m.Nx+1)
	return i == 0 || i == m.Nx || j == 0 || j == m.Ny
}

// BoundaryVertices returns the boundary vertex numbers in ascending order.
func (m *Mesh) BoundaryVertices() []int {
	var bv []int
	for v := 0; v < m.NumVertices; v++ {
		if m.IsBoundaryVertex(v) {
			bv = append(bv, v)
		}
	}
	return bv
}

// String returns a summary of the mesh properties.
func (m *Mesh) String() string {
	var sb strings.Builder
	hx, hy := m.CellSize()
	sb.WriteString("=== Quadrilateral Mesh Summary ===\n")
	sb.WriteString(fmt.Sprintf("  Domain: [%g,%g] × [%g,%g]\n", m.X0, m.X1, m.Y0, m.Y1))
	sb.WriteString(fmt.Sprintf("  Subdivisions: %d × %d\n", m.Nx, m.Ny))
	sb.WriteString(fmt.Sprintf("  Cells: %d\n", m.K))
	sb.WriteString(fmt.Sprintf("  Vertices: %d (%d on the boundary)\n",
		m.NumVertices, len(m.BoundaryVertices())))
	sb.WriteString(fmt.Sprintf("  Cell size: %g × %g\n", hx, hy))
	return sb.String()
}
