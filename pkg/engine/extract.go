package engine

import (
	"math"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/internal/consts"
	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/circuit"
)

// extract maps the final solution vector back onto each element's
// computed record.
func (a *assembly) extract(x []float64) {
	for _, e := range a.group.Elements {
		switch e.Type {
		case circuit.TypeResistor:
			a.extractResistive(e, x, e.Properties.Resistance)

		case circuit.TypeLightbulb:
			a.extractResistive(e, x, consts.LightbulbResistance)

		case circuit.TypeLED:
			a.extractLED(e, x)

		case circuit.TypeBattery, circuit.TypePowerSupply:
			src, ok := a.sources[e.ID]
			if !ok {
				continue
			}
			current := x[src.Branch()]
			e.Computed = circuit.Computed{
				Voltage: e.Properties.Voltage,
				Current: current,
				Power:   e.Properties.Voltage * current,
			}

		case circuit.TypePotentiometer:
			a.extractPotentiometer(e, x)

		case circuit.TypeMultimeter:
			a.extractMultimeter(e, x)

		case circuit.TypeMicrobit, circuit.TypeMicrobitBreakout:
			src, ok := a.sources[e.ID]
			if !ok {
				continue
			}
			current := x[src.Branch()]
			e.Computed = circuit.Computed{
				Voltage: consts.RailVoltage,
				Current: current,
				Power:   consts.RailVoltage * current,
			}
		}
	}
}

func (a *assembly) extractResistive(e *circuit.Element, x []float64, ohms float64) {
	if len(e.Nodes) < 2 {
		return
	}
	if ohms < consts.MinResistance {
		ohms = consts.MinResistance
	}
	v := a.volts(x, e.Nodes[0].ID) - a.volts(x, e.Nodes[1].ID)
	i := v / ohms
	e.Computed = circuit.Computed{Voltage: v, Current: i, Power: v * i}
}

func (a *assembly) extractLED(e *circuit.Element, x []float64) {
	led, ok := a.ledByID[e.ID]
	if !ok || !led.Conducting() {
		return
	}
	forward := nodeVoltage(x, led.Anode()) - nodeVoltage(x, led.Cathode())
	current := forward / consts.LEDOnResistance
	e.Computed = circuit.Computed{
		Voltage: forward,
		Current: current,
		Power:   forward * current,
	}
}

// extractPotentiometer reports the A-leg current as the element
// current; the B-leg is not separately reported.
func (a *assembly) extractPotentiometer(e *circuit.Element, x []float64) {
	pot, ok := a.pots[e.ID]
	if !ok {
		return
	}
	termA, wiper, termB := potTerminals(e)
	vA, vW, vB := a.volts(x, termA), a.volts(x, wiper), a.volts(x, termB)
	total := vA - vB
	current := (vA - vW) / pot.LegA()
	e.Computed = circuit.Computed{
		Voltage: total,
		Current: current,
		Power:   total * current,
	}
}

func (a *assembly) extractMultimeter(e *circuit.Element, x []float64) {
	if len(e.Nodes) < 2 {
		return
	}
	diff := a.volts(x, e.Nodes[0].ID) - a.volts(x, e.Nodes[1].ID)

	switch e.Properties.Mode {
	case circuit.ModeCurrent:
		current := diff / consts.AmmeterShunt
		e.Computed = circuit.Computed{
			Voltage:     diff,
			Current:     current,
			Power:       diff * current,
			Measurement: current,
		}

	case circuit.ModeResistance:
		if a.powered {
			// A live circuit defeats the meter's own test source; the
			// reading is an explicit error, not a number.
			e.Computed = circuit.Computed{Measurement: math.NaN()}
			return
		}
		src, ok := a.sources[e.ID]
		if !ok {
			return
		}
		current := x[src.Branch()]
		e.Computed = circuit.Computed{
			Voltage:     diff,
			Current:     current,
			Measurement: consts.OhmmeterTestVoltage / math.Abs(current),
		}

	default: // voltage
		e.Computed = circuit.Computed{
			Voltage:     diff,
			Current:     diff / consts.VoltmeterResistance,
			Measurement: diff,
		}
	}
}
