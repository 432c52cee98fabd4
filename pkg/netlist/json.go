// Package netlist loads schematic documents: the JSON form of the
// element/wire graph the engine solves.
package netlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/Sakshamsmoonpreneur/circuit-demo-master-sub001/pkg/circuit"
)

// Document is one schematic file.
type Document struct {
	Title    string            `json:"title,omitempty"`
	Elements []circuit.Element `json:"elements"`
	Wires    []circuit.Wire    `json:"wires"`
}

// Load reads and parses a schematic file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schematic: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schematic document, assigns ids to elements that
// arrive without one and fills in default part values. Wires whose
// endpoints reference no known terminal are kept; the engine ignores
// them.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schematic: %w", err)
	}

	for i := range doc.Elements {
		e := &doc.Elements[i]
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		for j := range e.Nodes {
			if e.Nodes[j].ID == "" {
				e.Nodes[j].ID = fmt.Sprintf("%s-node-%d", e.ID, j)
			}
			if e.Nodes[j].ParentID == "" {
				e.Nodes[j].ParentID = e.ID
			}
		}
		applyDefaults(e)
	}
	return &doc, nil
}

func applyDefaults(e *circuit.Element) {
	p := &e.Properties
	switch e.Type {
	case circuit.TypeResistor, circuit.TypePotentiometer:
		if p.Resistance == 0 {
			p.Resistance = 100
		}
	case circuit.TypeBattery:
		if p.Voltage == 0 {
			p.Voltage = 9
		}
	case circuit.TypePowerSupply:
		if p.Voltage == 0 {
			p.Voltage = 5
		}
	case circuit.TypeLED:
		if p.Color == "" {
			p.Color = "red"
		}
	case circuit.TypeMultimeter:
		if p.Mode == "" {
			p.Mode = circuit.ModeVoltage
		}
	}
	if e.Type == circuit.TypePotentiometer {
		if p.Ratio < 0 {
			p.Ratio = 0
		} else if p.Ratio > 1 {
			p.Ratio = 1
		}
	}
}
