package matrix

import "errors"

// ErrSingular marks a singular or ill-conditioned MNA system. The
// engine resolves it locally by zeroing the affected subcircuit.
var ErrSingular = errors.New("matrix: singular or ill-conditioned system")

// System is an assembled MNA system A·x = z of node and branch
// equations. Indices are 1-based; index 0 is the ground row/column and
// stamps touching it are dropped.
type System interface {
	Size() int
	AddElement(i, j int, value float64)
	AddRHS(i int, value float64)
	Clear()
	Solve() error
	// Solution returns the solved vector, 1-based (length Size()+1):
	// entries 1..n are non-ground node voltages, n+1..n+m branch
	// currents. Valid after a nil-returning Solve.
	Solution() []float64
}
