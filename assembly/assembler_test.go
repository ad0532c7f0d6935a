package assembly

import (
	"testing"

	"github.com/quadfem/quadfem/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Q1 stiffness on a square cell has the classic entries 2/3 on the diagonal,
// -1/6 for edge neighbors and -1/3 across the diagonal, independent of the
// cell size.
func TestElementStiffnessQ1(t *testing.T) {
	m, err := mesh.NewUnitSquare(1, 1)
	require.NoError(t, err)
	a, err := NewAssembler(m, 1)
	require.NoError(t, err)

	sys, err := a.Assemble(Constant(0))
	require.NoError(t, err)

	k := sys.Dense()
	// Local tensor ordering: 0=(0,0), 1=(1,0), 2=(0,1), 3=(1,1)
	assert.InDelta(t, 2.0/3.0, k.At(0, 0), 1e-13)
	assert.InDelta(t, -1.0/6.0, k.At(0, 1), 1e-13)
	assert.InDelta(t, -1.0/6.0, k.At(0, 2), 1e-13)
	assert.InDelta(t, -1.0/3.0, k.At(0, 3), 1e-13)
}

func TestStiffnessSymmetryAndRowSums(t *testing.T) {
	m, err := mesh.NewUnitSquare(3, 2)
	require.NoError(t, err)

	for _, order := range []int{1, 2, 3} {
		a, err := NewAssembler(m, order)
		require.NoError(t, err)
		sys, err := a.Assemble(Constant(1))
		require.NoError(t, err)

		k := sys.Dense()
		for i := 0; i < sys.N; i++ {
			rowSum := 0.0
			for j := 0; j < sys.N; j++ {
				rowSum += k.At(i, j)
				assert.InDelta(t, k.At(j, i), k.At(i, j), 1e-12,
					"order %d entry (%d,%d)", order, i, j)
			}
			// The basis reproduces constants, so stiffness rows sum to zero
			assert.InDelta(t, 0.0, rowSum, 1e-11, "order %d row %d", order, i)
		}
	}
}

// With a constant source the load vector entries sum to f times the domain
// area, because the basis functions form a partition of unity.
func TestLoadVectorConstantSource(t *testing.T) {
	m, err := mesh.NewRectangle(0, 0, 2, 3, 4, 5)
	require.NoError(t, err)
	a, err := NewAssembler(m, 2)
	require.NoError(t, err)

	sys, err := a.Assemble(Constant(-6))
	require.NoError(t, err)

	sum := 0.0
	for _, v := range sys.F {
		sum += v
	}
	assert.InDelta(t, -6.0*6.0, sum, 1e-11)
}

func TestDOFMapStructure(t *testing.T) {
	m, err := mesh.NewUnitSquare(8, 8)
	require.NoError(t, err)
	a, err := NewAssembler(m, 1)
	require.NoError(t, err)
	d := a.Dofs

	assert.Equal(t, 81, d.NumDOFs)
	assert.Len(t, d.BoundaryDOFs(), 32)

	// Order-1 DOF coordinates coincide with mesh vertices
	for v := 0; v < m.NumVertices; v++ {
		x, y := d.Coords(v)
		assert.InDelta(t, m.VX[v], x, 1e-14)
		assert.InDelta(t, m.VY[v], y, 1e-14)
	}

	// Horizontally adjacent cells share their common edge DOFs
	left, right := d.CellDOFs(0), d.CellDOFs(1)
	assert.Equal(t, left[1], right[0])
	assert.Equal(t, left[3], right[2])
}

func TestDOFMapHigherOrderCoords(t *testing.T) {
	m, err := mesh.NewUnitSquare(2, 2)
	require.NoError(t, err)
	a, err := NewAssembler(m, 2)
	require.NoError(t, err)
	d := a.Dofs

	assert.Equal(t, 25, d.NumDOFs)

	// Mid-edge node of the first cell sits at the cell midpoint
	x, y := d.Coords(1)
	assert.InDelta(t, 0.25, x, 1e-14)
	assert.InDelta(t, 0.0, y, 1e-14)

	// Last DOF is the top-right corner
	x, y = d.Coords(d.NumDOFs - 1)
	assert.InDelta(t, 1.0, x, 1e-14)
	assert.InDelta(t, 1.0, y, 1e-14)
}

func TestDirichletApply(t *testing.T) {
	m, err := mesh.NewUnitSquare(4, 4)
	require.NoError(t, err)
	a, err := NewAssembler(m, 1)
	require.NoError(t, err)
	sys, err := a.Assemble(Constant(-6))
	require.NoError(t, err)

	g := func(x, y float64) float64 { return 1 + x*x + 2*y*y }
	bc := &DirichletBC{G: g}
	require.NoError(t, bc.Apply(sys))

	k := sys.Dense()
	for _, dof := range sys.Dofs.BoundaryDOFs() {
		x, y := sys.Dofs.Coords(dof)

		// Constrained rows are identity rows carrying the boundary value
		for j := 0; j < sys.N; j++ {
			want := 0.0
			if j == dof {
				want = 1.0
			}
			assert.InDelta(t, want, k.At(dof, j), 1e-14)
			assert.InDelta(t, want, k.At(j, dof), 1e-14)
		}
		assert.InDelta(t, g(x, y), sys.F[dof], 1e-14)

		v, ok := sys.FixedValue(dof)
		require.True(t, ok)
		assert.Equal(t, sys.F[dof], v)
	}

	_, ok := sys.FixedValue(sys.N / 2)
	assert.False(t, ok)

	err = (&DirichletBC{}).Apply(sys)
	assert.Error(t, err)
}
