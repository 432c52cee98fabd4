package device

import (
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// Potentiometer splits its track resistance at the wiper: R·(1−ratio)
// between A and the wiper, R·ratio between the wiper and B, each
// stamped as an independent resistor. Leg resistances are clamped so a
// wiper at either end stop cannot stamp an infinite conductance.
type Potentiometer struct {
	BaseDevice // nodes: A, wiper, B
	resistance float64
	ratio      float64
}

func NewPotentiometer(name string, a, wiper, b int, ohms, ratio float64) *Potentiometer {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	return &Potentiometer{
		BaseDevice: BaseDevice{name: name, nodes: []int{a, wiper, b}},
		resistance: ohms,
		ratio:      ratio,
	}
}

// LegA returns the clamped A-to-wiper resistance.
func (p *Potentiometer) LegA() float64 {
	return clampLeg(p.resistance * (1 - p.ratio))
}

// LegB returns the clamped wiper-to-B resistance.
func (p *Potentiometer) LegB() float64 {
	return clampLeg(p.resistance * p.ratio)
}

func clampLeg(r float64) float64 {
	if r < consts.MinResistance {
		return consts.MinResistance
	}
	return r
}

func (p *Potentiometer) Stamp(m matrix.System) error {
	stampConductance(m, p.nodes[0], p.nodes[1], 1.0/p.LegA())
	stampConductance(m, p.nodes[1], p.nodes[2], 1.0/p.LegB())
	return nil
}
