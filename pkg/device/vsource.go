package device

import (
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// VoltageSource is an ideal EMF with series resistance, solved through
// one auxiliary branch unknown. Batteries, power supplies, controller
// rails, high-driven controller pins (EMF 0, tying pin to rail) and the
// ohmmeter's test source all use this stamp.
type VoltageSource struct {
	BaseDevice
	branch int
	emf    float64
	series float64
}

func NewVoltageSource(name string, nPos, nNeg, branch int, emf, series float64) *VoltageSource {
	return &VoltageSource{
		BaseDevice: BaseDevice{name: name, nodes: []int{nPos, nNeg}},
		branch:     branch,
		emf:        emf,
		series:     series,
	}
}

// Branch returns the source's row/column in the assembled system.
func (v *VoltageSource) Branch() int { return v.branch }

func (v *VoltageSource) EMF() float64 { return v.emf }

func (v *VoltageSource) Stamp(m matrix.System) error {
	stampSource(m, v.nodes[0], v.nodes[1], v.branch, v.emf, v.series)
	return nil
}
