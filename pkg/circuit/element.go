package circuit

import "regexp"

// Type identifies one of the sandbox part kinds. Types outside this set
// are decorative: they carry no electrical behavior and the solver
// ignores them.
type Type string

const (
	TypeResistor         Type = "resistor"
	TypeLightbulb        Type = "lightbulb"
	TypeLED              Type = "led"
	TypeBattery          Type = "battery"
	TypePowerSupply      Type = "powersupply"
	TypePotentiometer    Type = "potentiometer"
	TypeMultimeter       Type = "multimeter"
	TypeMicrobit         Type = "microbit"
	TypeMicrobitBreakout Type = "microbit-breakout"
)

// IsController reports whether elements of this type expose individually
// driven pins instead of an internally shorted terminal set.
func (t Type) IsController() bool {
	return t == TypeMicrobit || t == TypeMicrobitBreakout
}

// Electrical reports whether the solver knows how to stamp this type.
func (t Type) Electrical() bool {
	switch t {
	case TypeResistor, TypeLightbulb, TypeLED, TypeBattery, TypePowerSupply,
		TypePotentiometer, TypeMultimeter, TypeMicrobit, TypeMicrobitBreakout:
		return true
	}
	return false
}

// Powered reports whether elements of this type inject energy into a
// subcircuit on their own (relevant for resistance-mode meters).
func (t Type) Powered() bool {
	switch t {
	case TypeBattery, TypePowerSupply, TypeMicrobit, TypeMicrobitBreakout:
		return true
	}
	return false
}

type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// MeterMode selects the multimeter's measurement function.
type MeterMode string

const (
	ModeVoltage    MeterMode = "voltage"
	ModeCurrent    MeterMode = "current"
	ModeResistance MeterMode = "resistance"
)

// Terminal placeholder labels used by controller elements.
const (
	PlaceholderRail   = "3.3V"
	PlaceholderGround = "GND"
	PlaceholderWiper  = "Wiper"
)

var digitalPinPattern = regexp.MustCompile(`^P\d+$`)

// IsDigitalPin reports whether a terminal placeholder names a
// digitally drivable controller pin (P0, P1, ...).
func IsDigitalPin(placeholder string) bool {
	return digitalPinPattern.MatchString(placeholder)
}

// Properties holds the user-editable values of an element. Which fields
// are meaningful depends on the element type.
type Properties struct {
	Resistance float64   `json:"resistance,omitempty"` // Ohm
	Voltage    float64   `json:"voltage,omitempty"`    // Nominal EMF (V)
	Ratio      float64   `json:"ratio,omitempty"`      // Potentiometer wiper position, 0..1
	Mode       MeterMode `json:"mode,omitempty"`       // Multimeter mode
	Color      string    `json:"color,omitempty"`      // LED color
}

// PinState is the externally supplied state of one controller pin.
type PinState struct {
	Digital int `json:"digital"`
}

// Computed is the per-element solve result. A zero value means the
// element sits outside any solvable subcircuit.
type Computed struct {
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Power       float64 `json:"power"`
	Measurement float64 `json:"measurement"`
}

// Node is one terminal of exactly one element. Node ids are globally
// unique across the schematic.
type Node struct {
	ID          string   `json:"id"`
	ParentID    string   `json:"parentId"`
	Polarity    Polarity `json:"polarity,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
}

// Wire is an ideal zero-resistance connection between two node ids.
type Wire struct {
	FromNodeID string `json:"fromNodeId"`
	ToNodeID   string `json:"toNodeId"`
}

// Element is one schematic component.
type Element struct {
	ID         string              `json:"id"`
	Type       Type                `json:"type"`
	Nodes      []Node              `json:"nodes"`
	Properties Properties          `json:"properties"`
	Controller map[string]PinState `json:"controller,omitempty"`
	Computed   Computed            `json:"computed"`
}

// NodeByPolarity returns the first terminal with the given polarity.
func (e *Element) NodeByPolarity(p Polarity) (Node, bool) {
	for _, n := range e.Nodes {
		if n.Polarity == p {
			return n, true
		}
	}
	return Node{}, false
}

// NodeByPlaceholder returns the first terminal with the given role label.
func (e *Element) NodeByPlaceholder(ph string) (Node, bool) {
	for _, n := range e.Nodes {
		if n.Placeholder == ph {
			return n, true
		}
	}
	return Node{}, false
}

// NodeIDs returns the ids of all terminals in declaration order.
func (e *Element) NodeIDs() []string {
	ids := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// PinHigh reports whether the supplied controller state drives the named
// pin placeholder high.
func (e *Element) PinHigh(placeholder string) bool {
	if e.Controller == nil {
		return false
	}
	return e.Controller[placeholder].Digital != 0
}
