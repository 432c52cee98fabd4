package device

import (
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// Resistor is the two-terminal conductance stamp. It also models the
// lightbulb filament, the voltmeter's input impedance and the ammeter
// shunt, which differ only in their resistance value.
type Resistor struct {
	BaseDevice
	resistance float64
}

func NewResistor(name string, n1, n2 int, ohms float64) *Resistor {
	if ohms < consts.MinResistance {
		ohms = consts.MinResistance
	}
	return &Resistor{
		BaseDevice: BaseDevice{name: name, nodes: []int{n1, n2}},
		resistance: ohms,
	}
}

func (r *Resistor) Resistance() float64 { return r.resistance }

func (r *Resistor) Stamp(m matrix.System) error {
	stampConductance(m, r.nodes[0], r.nodes[1], 1.0/r.resistance)
	return nil
}
