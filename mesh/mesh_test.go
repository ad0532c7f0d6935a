package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnitSquareCounts(t *testing.T) {
	m, err := NewUnitSquare(8, 8)
	require.NoError(t, err)

	assert.Equal(t, 64, m.K)
	assert.Equal(t, 81, m.NumVertices)
	assert.Len(t, m.VX, 81)
	assert.Len(t, m.VY, 81)

	// Perimeter vertices: 2*(Nx+1) + 2*(Ny-1)
	assert.Len(t, m.BoundaryVertices(), 32)
}

func TestConnectivityCounterclockwise(t *testing.T) {
	m, err := NewRectangle(-1, 2, 3, 5, 4, 3)
	require.NoError(t, err)

	for k := 0; k < m.K; k++ {
		verts := m.EToV[k]
		require.Len(t, verts, 4)

		// Signed area of the quad must be positive (counterclockwise)
		area := 0.0
		for a := 0; a < 4; a++ {
			b := (a + 1) % 4
			area += m.VX[verts[a]]*m.VY[verts[b]] - m.VX[verts[b]]*m.VY[verts[a]]
		}
		hx, hy := m.CellSize()
		assert.InDelta(t, hx*hy, 0.5*area, 1e-14, "cell %d area", k)
	}
}

func TestCellOrigin(t *testing.T) {
	m, err := NewUnitSquare(4, 4)
	require.NoError(t, err)

	x, y := m.CellOrigin(0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	// Last cell sits at the top-right corner
	x, y = m.CellOrigin(m.K - 1)
	assert.InDelta(t, 0.75, x, 1e-15)
	assert.InDelta(t, 0.75, y, 1e-15)
}

func TestInvalidParameters(t *testing.T) {
	_, err := NewUnitSquare(0, 4)
	assert.Error(t, err)
	_, err = NewRectangle(0, 0, 0, 1, 4, 4)
	assert.Error(t, err)
}
