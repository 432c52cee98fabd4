package engine

import (
	"fmt"
	"strings"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/circuit"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/device"
)

// assembly holds one subcircuit's effective-node numbering and its
// stampable devices.
type assembly struct {
	group   *circuit.Subcircuit
	merger  *circuit.Merger
	ground  string         // representative of the ground class, "" if none
	index   map[string]int // representative -> 1..n
	n, m    int
	powered bool

	devices []device.Device
	leds    []*device.LED
	ledByID map[string]*device.LED
	sources map[string]*device.VoltageSource // element id -> primary source
	pots    map[string]*device.Potentiometer
}

// newAssembly resolves effective nodes, picks ground, classifies
// sources and builds the device list for one subcircuit.
func newAssembly(group *circuit.Subcircuit) *assembly {
	a := &assembly{
		group:   group,
		merger:  circuit.Resolve(group.Elements, group.Wires),
		index:   make(map[string]int),
		ledByID: make(map[string]*device.LED),
		sources: make(map[string]*device.VoltageSource),
		pots:    make(map[string]*device.Potentiometer),
	}

	// Effective nodes in first-touch order over the input element order,
	// so numbering is deterministic for identical inputs.
	var roots []string
	seen := make(map[string]bool)
	for _, e := range group.Elements {
		for _, node := range e.Nodes {
			root := a.merger.Find(node.ID)
			if root == "" || seen[root] {
				continue
			}
			seen[root] = true
			roots = append(roots, root)

			// Ground preference: a terminal carrying a GND marker.
			if a.ground == "" && (strings.Contains(node.ID, "GND") || node.Placeholder == circuit.PlaceholderGround) {
				a.ground = root
			}
		}
	}
	if a.ground == "" && len(roots) > 0 {
		a.ground = roots[0]
	}
	for _, root := range roots {
		if root != a.ground {
			a.n++
			a.index[root] = a.n
		}
	}

	for _, e := range group.Elements {
		if e.Type.Powered() {
			a.powered = true
			break
		}
	}

	for _, e := range group.Elements {
		a.addElement(e)
	}
	return a
}

func (a *assembly) size() int { return a.n + a.m }

// nodeIndex maps a terminal to its matrix index: 0 for ground, -1 for
// terminals invisible to the solver (unwired controller pins).
func (a *assembly) nodeIndex(nodeID string) int {
	root := a.merger.Find(nodeID)
	if root == "" {
		return -1
	}
	if root == a.ground {
		return 0
	}
	return a.index[root]
}

// volts reads a terminal's voltage from a 1-based solution vector.
func (a *assembly) volts(x []float64, nodeID string) float64 {
	i := a.nodeIndex(nodeID)
	if i <= 0 {
		return 0
	}
	return x[i]
}

// branch allocates the next auxiliary unknown's row.
func (a *assembly) branch() int {
	a.m++
	return a.n + a.m
}

func (a *assembly) addElement(e *circuit.Element) {
	switch e.Type {
	case circuit.TypeResistor:
		if len(e.Nodes) < 2 {
			return
		}
		a.devices = append(a.devices, device.NewResistor(e.ID,
			a.nodeIndex(e.Nodes[0].ID), a.nodeIndex(e.Nodes[1].ID), e.Properties.Resistance))

	case circuit.TypeLightbulb:
		if len(e.Nodes) < 2 {
			return
		}
		a.devices = append(a.devices, device.NewResistor(e.ID,
			a.nodeIndex(e.Nodes[0].ID), a.nodeIndex(e.Nodes[1].ID), consts.LightbulbResistance))

	case circuit.TypeLED:
		anode, cathode, ok := ledTerminals(e)
		if !ok {
			return
		}
		led := device.NewLED(e.ID, a.nodeIndex(anode), a.nodeIndex(cathode), e.Properties.Color)
		a.devices = append(a.devices, led)
		a.leds = append(a.leds, led)
		a.ledByID[e.ID] = led

	case circuit.TypeBattery, circuit.TypePowerSupply:
		pos, neg, ok := sourceTerminals(e)
		if !ok {
			return
		}
		src := device.NewVoltageSource(e.ID,
			a.nodeIndex(pos), a.nodeIndex(neg), a.branch(),
			e.Properties.Voltage, e.Properties.Resistance)
		a.devices = append(a.devices, src)
		a.sources[e.ID] = src

	case circuit.TypePotentiometer:
		if len(e.Nodes) < 3 {
			return
		}
		termA, wiper, termB := potTerminals(e)
		pot := device.NewPotentiometer(e.ID,
			a.nodeIndex(termA), a.nodeIndex(wiper), a.nodeIndex(termB),
			e.Properties.Resistance, e.Properties.Ratio)
		a.devices = append(a.devices, pot)
		a.pots[e.ID] = pot

	case circuit.TypeMultimeter:
		a.addMultimeter(e)

	case circuit.TypeMicrobit, circuit.TypeMicrobitBreakout:
		a.addController(e)
	}
}

func (a *assembly) addMultimeter(e *circuit.Element) {
	if len(e.Nodes) < 2 {
		return
	}
	n1, n2 := a.nodeIndex(e.Nodes[0].ID), a.nodeIndex(e.Nodes[1].ID)
	switch e.Properties.Mode {
	case circuit.ModeCurrent:
		a.devices = append(a.devices, device.NewResistor(e.ID, n1, n2, consts.AmmeterShunt))
	case circuit.ModeResistance:
		// A resistance reading only makes sense on a dead circuit; on a
		// powered one the meter stays unstamped and reads NaN.
		if a.powered {
			return
		}
		src := device.NewVoltageSource(e.ID, n1, n2, a.branch(), consts.OhmmeterTestVoltage, 0)
		a.devices = append(a.devices, src)
		a.sources[e.ID] = src
	default: // voltage
		a.devices = append(a.devices, device.NewResistor(e.ID, n1, n2, consts.VoltmeterResistance))
	}
}

func (a *assembly) addController(e *circuit.Element) {
	railNode, hasRail := a.railIndex(e, circuit.PlaceholderRail)
	gndNode, hasGnd := a.railIndex(e, circuit.PlaceholderGround)
	if !hasRail && !hasGnd {
		return
	}

	if hasRail && hasGnd {
		src := device.NewVoltageSource(e.ID, railNode, gndNode, a.branch(),
			consts.RailVoltage, consts.ControllerResistance)
		a.devices = append(a.devices, src)
		a.sources[e.ID] = src
	}

	if !hasRail {
		return
	}
	// A pin driven high is an ideal 0 V tie to the supply rail through
	// the controller's series resistance. Only wired pins participate.
	for _, node := range e.Nodes {
		if !circuit.IsDigitalPin(node.Placeholder) || !a.merger.Has(node.ID) {
			continue
		}
		if !e.PinHigh(node.Placeholder) {
			continue
		}
		src := device.NewVoltageSource(fmt.Sprintf("%s.%s", e.ID, node.Placeholder),
			railNode, a.nodeIndex(node.ID), a.branch(), 0, consts.ControllerResistance)
		a.devices = append(a.devices, src)
	}
}

// railIndex finds the matrix index of a controller's merged supply rail.
func (a *assembly) railIndex(e *circuit.Element, placeholder string) (int, bool) {
	for _, node := range e.Nodes {
		if node.Placeholder == placeholder && a.merger.Has(node.ID) {
			return a.nodeIndex(node.ID), true
		}
	}
	return -1, false
}

// ledTerminals orders an LED's terminals as anode, cathode, by polarity
// when marked, else by declaration order.
func ledTerminals(e *circuit.Element) (anode, cathode string, ok bool) {
	if len(e.Nodes) < 2 {
		return "", "", false
	}
	anode, cathode = e.Nodes[0].ID, e.Nodes[1].ID
	if n, found := e.NodeByPolarity(circuit.PolarityPositive); found {
		anode = n.ID
	}
	if n, found := e.NodeByPolarity(circuit.PolarityNegative); found {
		cathode = n.ID
	}
	return anode, cathode, true
}

func sourceTerminals(e *circuit.Element) (pos, neg string, ok bool) {
	if len(e.Nodes) < 2 {
		return "", "", false
	}
	pos, neg = e.Nodes[0].ID, e.Nodes[1].ID
	if n, found := e.NodeByPolarity(circuit.PolarityPositive); found {
		pos = n.ID
	}
	if n, found := e.NodeByPolarity(circuit.PolarityNegative); found {
		neg = n.ID
	}
	return pos, neg, true
}

// potTerminals orders a potentiometer's terminals as A, wiper, B. The
// wiper is found by its placeholder when present, else the middle
// terminal is assumed.
func potTerminals(e *circuit.Element) (termA, wiper, termB string) {
	termA, wiper, termB = e.Nodes[0].ID, e.Nodes[1].ID, e.Nodes[2].ID
	w, found := e.NodeByPlaceholder(circuit.PlaceholderWiper)
	if !found {
		return termA, wiper, termB
	}
	var rest []string
	for _, n := range e.Nodes {
		if n.ID != w.ID {
			rest = append(rest, n.ID)
		}
	}
	if len(rest) >= 2 {
		return rest[0], w.ID, rest[1]
	}
	return termA, wiper, termB
}
