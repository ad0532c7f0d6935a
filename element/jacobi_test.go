package element

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Gauss quadrature of order n must integrate monomials up to degree 2n+1
// exactly on [-1,1].
func TestJacobiGQExactness(t *testing.T) {
	for n := 0; n <= 6; n++ {
		x, w := JacobiGQ(0, 0, n)
		assert.Len(t, x, n+1)

		for deg := 0; deg <= 2*n+1; deg++ {
			sum := 0.0
			for i := range x {
				sum += w[i] * math.Pow(x[i], float64(deg))
			}
			exact := 0.0
			if deg%2 == 0 {
				exact = 2.0 / float64(deg+1)
			}
			assert.InDelta(t, exact, sum, 1e-12, "order %d, degree %d", n, deg)
		}
	}
}

func TestJacobiGLEndpoints(t *testing.T) {
	for n := 1; n <= 6; n++ {
		x := JacobiGL(0, 0, n)
		assert.Len(t, x, n+1)
		assert.Equal(t, -1.0, x[0])
		assert.Equal(t, 1.0, x[n])

		// Lobatto points are symmetric about the origin
		for i := range x {
			assert.InDelta(t, -x[n-i], x[i], 1e-12)
		}
	}
}

// The normalized Legendre polynomials returned by JacobiP(.,0,0,.) must be
// orthonormal under Gauss quadrature of sufficient order.
func TestJacobiPOrthonormal(t *testing.T) {
	const nmax = 5
	x, w := JacobiGQ(0, 0, nmax+1)

	for i := 0; i <= nmax; i++ {
		pi := JacobiP(x, 0, 0, i)
		for j := 0; j <= nmax; j++ {
			pj := JacobiP(x, 0, 0, j)
			sum := 0.0
			for q := range x {
				sum += w[q] * pi[q] * pj[q]
			}
			exact := 0.0
			if i == j {
				exact = 1.0
			}
			assert.InDelta(t, exact, sum, 1e-12, "(%d,%d)", i, j)
		}
	}
}

func TestGradJacobiPLowOrders(t *testing.T) {
	x := []float64{-0.7, 0.0, 0.3, 1.0}

	// P_0 is constant, P_1(x) = sqrt(3/2) x
	d0 := GradJacobiP(x, 0, 0, 0)
	d1 := GradJacobiP(x, 0, 0, 1)
	for i := range x {
		assert.Equal(t, 0.0, d0[i])
		assert.InDelta(t, math.Sqrt(1.5), d1[i], 1e-14)
	}
}
