package assembly

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
)

// DirichletBC fixes the solution on the whole domain boundary to the values
// of an analytic function interpolated at the boundary DOF coordinates.
type DirichletBC struct {
	G ScalarField
}

// Apply eliminates the boundary DOFs from the system symmetrically: known
// values are lifted into the right-hand side, the constrained rows and
// columns are cleared and a unit diagonal is set, with F[d] carrying the
// prescribed value. The reduced operator stays symmetric positive definite,
// which the conjugate-gradient solver relies on.
func (bc *DirichletBC) Apply(sys *System) error {
	if bc.G == nil {
		return fmt.Errorf("nil boundary value function")
	}

	fixed := make(map[int]float64)
	for _, dof := range sys.Dofs.BoundaryDOFs() {
		x, y := sys.Dofs.Coords(dof)
		fixed[dof] = bc.G(x, y)
	}

	// Snapshot the nonzeros, then rebuild the matrix without the
	// constrained rows and columns. The snapshot is sorted because DOK
	// iteration order is not stable and the lifted right-hand-side sums
	// must be reproducible.
	type entry struct {
		i, j int
		v    float64
	}
	var entries []entry
	sys.K.DoNonZero(func(i, j int, v float64) {
		entries = append(entries, entry{i, j, v})
	})
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].i != entries[b].i {
			return entries[a].i < entries[b].i
		}
		return entries[a].j < entries[b].j
	})

	k := sparse.NewDOK(sys.N, sys.N)
	for _, e := range entries {
		_, rowFixed := fixed[e.i]
		gj, colFixed := fixed[e.j]
		switch {
		case rowFixed:
			// dropped; unit diagonal set below
		case colFixed:
			sys.F[e.i] -= e.v * gj
		default:
			k.Set(e.i, e.j, e.v)
		}
	}
	for dof, g := range fixed {
		k.Set(dof, dof, 1)
		sys.F[dof] = g
		sys.fixed[dof] = g
	}
	sys.K = k
	return nil
}
