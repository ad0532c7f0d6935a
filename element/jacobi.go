package element

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// JacobiP evaluates the orthonormalized Jacobi polynomial of type (alpha,beta)
// and order n at the points x. With alpha=beta=0 these are the normalized
// Legendre polynomials used for the nodal bases here.
func JacobiP(x []float64, alpha, beta float64, n int) []float64 {
	np := len(x)

	// P_0 is constant
	gamma0 := math.Pow(2, alpha+beta+1) / (alpha + beta + 1) *
		math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(alpha+beta+1)
	prev := make([]float64, np)
	for i := range prev {
		prev[i] = 1.0 / math.Sqrt(gamma0)
	}
	if n == 0 {
		return prev
	}

	gamma1 := (alpha + 1) * (beta + 1) / (alpha + beta + 3) * gamma0
	cur := make([]float64, np)
	for i := range cur {
		cur[i] = ((alpha+beta+2)*x[i]/2 + (alpha-beta)/2) / math.Sqrt(gamma1)
	}
	if n == 1 {
		return cur
	}

	// Three-term recurrence for higher orders
	aold := 2.0 / (2.0 + alpha + beta) *
		math.Sqrt((alpha+1)*(beta+1)/(alpha+beta+3))
	for i := 1; i < n; i++ {
		h1 := 2*float64(i) + alpha + beta
		fi := float64(i)
		anew := 2.0 / (h1 + 2) * math.Sqrt((fi+1)*(fi+1+alpha+beta)*
			(fi+1+alpha)*(fi+1+beta)/(h1+1)/(h1+3))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2)

		next := make([]float64, np)
		for j := range next {
			next[j] = (-aold*prev[j] + (x[j]-bnew)*cur[j]) / anew
		}
		prev, cur = cur, next
		aold = anew
	}
	return cur
}

// GradJacobiP evaluates the derivative of the orthonormalized Jacobi
// polynomial of type (alpha,beta) and order n at the points x, using
//
//	d/dx P_n^(a,b)(x) = sqrt(n(n+a+b+1)) P_{n-1}^(a+1,b+1)(x)
func GradJacobiP(x []float64, alpha, beta float64, n int) []float64 {
	dp := make([]float64, len(x))
	if n == 0 {
		return dp
	}
	p := JacobiP(x, alpha+1, beta+1, n-1)
	fac := math.Sqrt(float64(n) * (float64(n) + alpha + beta + 1))
	for i := range dp {
		dp[i] = fac * p[i]
	}
	return dp
}

// JacobiGQ computes the order-N Gauss quadrature points and weights for the
// Jacobi weight (1-x)^alpha (1+x)^beta on [-1,1] via the eigendecomposition
// of the symmetric tridiagonal Jacobi matrix (Golub-Welsch).
func JacobiGQ(alpha, beta float64, n int) (x, w []float64) {
	if n == 0 {
		return []float64{-(alpha - beta) / (alpha + beta + 2)}, []float64{2}
	}

	h1 := make([]float64, n+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// Main diagonal
	d0 := make([]float64, n+1)
	fac := beta*beta - alpha*alpha
	for i := range d0 {
		d0[i] = fac / (h1[i] * (h1[i] + 2))
	}
	if alpha+beta < 10*machEps {
		d0[0] = 0
	}

	// First superdiagonal
	d1 := make([]float64, n)
	for i := range d1 {
		ip1 := float64(i + 1)
		d1[i] = 2.0 / (h1[i] + 2) * math.Sqrt(
			ip1*(ip1+alpha+beta)*(ip1+alpha)*(ip1+beta)/(h1[i]+1)/(h1[i]+3))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(newSymTriDiagonal(d0, d1), true); !ok {
		panic("element: Jacobi matrix eigendecomposition failed")
	}
	x = eig.Values(nil)

	// Weights come from the first component of each eigenvector
	vecs := mat.NewDense(n+1, n+1, nil)
	eig.VectorsTo(vecs)
	w = make([]float64, n+1)
	g0 := gamma0(alpha, beta)
	for i := range w {
		v := vecs.At(0, i)
		w[i] = v * v * g0
	}
	return x, w
}

// JacobiGL computes the N+1 Gauss-Lobatto points for the Jacobi weight
// (alpha,beta): the endpoints ±1 plus the zeros of P'_N^{alpha,beta}.
func JacobiGL(alpha, beta float64, n int) []float64 {
	switch n {
	case 0:
		return []float64{0}
	case 1:
		return []float64{-1, 1}
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, n-2)
	x := make([]float64, n+1)
	x[0] = -1
	copy(x[1:n], xint)
	x[n] = 1
	return x
}

const machEps = 2.220446049250313e-16

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1
	return math.Gamma(alpha+1) * math.Gamma(beta+1) * math.Pow(2, ab1) / ab1 /
		math.Gamma(ab1)
}

func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	tri := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		tri.SetSym(i, i, d0[i])
		if i < n-1 {
			tri.SetSym(i, i+1, d1[i])
		}
	}
	return tri
}
