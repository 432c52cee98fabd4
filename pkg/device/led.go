package device

import (
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/matrix"
)

// forwardVoltages maps LED colors to their conduction threshold (V).
var forwardVoltages = map[string]float64{
	"red":    1.8,
	"orange": 1.8,
	"yellow": 2.0,
	"green":  2.1,
	"blue":   2.8,
	"white":  2.8,
}

// ForwardVoltage returns the threshold for a color, defaulting to red
// for unknown colors.
func ForwardVoltage(color string) float64 {
	if v, ok := forwardVoltages[color]; ok {
		return v
	}
	return forwardVoltages["red"]
}

// LED is an ideal threshold diode: while conducting it stamps a fixed
// on-state resistance between anode and cathode, otherwise it is an
// open circuit and contributes nothing. Whether it conducts is decided
// between solves by the engine's fixed-point loop.
type LED struct {
	BaseDevice
	threshold  float64
	conducting bool
}

func NewLED(name string, anode, cathode int, color string) *LED {
	return &LED{
		BaseDevice: BaseDevice{name: name, nodes: []int{anode, cathode}},
		threshold:  ForwardVoltage(color),
	}
}

func (l *LED) Anode() int         { return l.nodes[0] }
func (l *LED) Cathode() int       { return l.nodes[1] }
func (l *LED) Threshold() float64 { return l.threshold }
func (l *LED) Conducting() bool   { return l.conducting }

// UpdateConduction sets the conduction flag from a freshly solved
// forward voltage and reports whether the flag changed. The threshold
// comparison is inclusive.
func (l *LED) UpdateConduction(forward float64) (changed bool) {
	on := forward >= l.threshold
	changed = on != l.conducting
	l.conducting = on
	return changed
}

func (l *LED) Stamp(m matrix.System) error {
	if !l.conducting {
		return nil
	}
	stampConductance(m, l.nodes[0], l.nodes[1], 1.0/consts.LEDOnResistance)
	return nil
}
