package device

import (
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// Device is anything that can stamp its contribution into the MNA
// system. Node indices are effective-node indices, 0 meaning ground.
type Device interface {
	Name() string
	Stamp(m matrix.System) error
}

// BaseDevice carries the identity shared by all device kinds.
type BaseDevice struct {
	name  string
	nodes []int
}

func (d *BaseDevice) Name() string { return d.name }

func (d *BaseDevice) Nodes() []int { return d.nodes }

// stampConductance adds a two-terminal conductance symmetrically.
// Ground rows are dropped by the matrix itself.
func stampConductance(m matrix.System, n1, n2 int, g float64) {
	m.AddElement(n1, n1, g)
	m.AddElement(n1, n2, -g)
	m.AddElement(n2, n1, -g)
	m.AddElement(n2, n2, g)
}

// stampSource adds an ideal voltage source with series resistance as
// one auxiliary branch row: v(n+) − v(n−) + Rs·I = E, with the branch
// current I oriented out of the positive terminal, so a discharging
// source solves to a positive current.
func stampSource(m matrix.System, nPos, nNeg, branch int, emf, series float64) {
	m.AddElement(nPos, branch, -1)
	m.AddElement(nNeg, branch, 1)
	m.AddElement(branch, nPos, 1)
	m.AddElement(branch, nNeg, -1)
	m.AddElement(branch, branch, series)
	m.AddRHS(branch, emf)
}
