package circuit

import "testing"

func TestPartitionSeparatesIsolatedLoops(t *testing.T) {
	b1 := twoTerminal("b1", TypeBattery)
	r1 := twoTerminal("r1", TypeResistor)
	b2 := twoTerminal("b2", TypeBattery)
	r2 := twoTerminal("r2", TypeResistor)
	wires := []Wire{
		{FromNodeID: "b1-0", ToNodeID: "r1-0"},
		{FromNodeID: "r1-1", ToNodeID: "b1-1"},
		{FromNodeID: "b2-0", ToNodeID: "r2-0"},
		{FromNodeID: "r2-1", ToNodeID: "b2-1"},
	}

	groups, orphans := Partition([]*Element{b1, r1, b2, r2}, wires)
	if len(groups) != 2 {
		t.Fatalf("got %d subcircuits, want 2", len(groups))
	}
	if len(orphans) != 0 {
		t.Fatalf("got %d orphans, want 0", len(orphans))
	}
	if len(groups[0].Elements) != 2 || len(groups[1].Elements) != 2 {
		t.Errorf("uneven split: %d and %d elements",
			len(groups[0].Elements), len(groups[1].Elements))
	}
	if groups[0].Elements[0].ID != "b1" {
		t.Errorf("first group starts with %s, want deterministic input order", groups[0].Elements[0].ID)
	}
}

func TestPartitionElementBodyJoinsTerminals(t *testing.T) {
	// r1 bridges the two halves through its own body even though no
	// wire connects r1-0 to r1-1 directly.
	r1 := twoTerminal("r1", TypeResistor)
	r2 := twoTerminal("r2", TypeResistor)
	r3 := twoTerminal("r3", TypeResistor)
	wires := []Wire{
		{FromNodeID: "r2-1", ToNodeID: "r1-0"},
		{FromNodeID: "r1-1", ToNodeID: "r3-0"},
	}

	groups, _ := Partition([]*Element{r2, r1, r3}, wires)
	if len(groups) != 1 {
		t.Fatalf("got %d subcircuits, want 1 joined through the element body", len(groups))
	}
}

func TestPartitionControllerDoesNotTiePins(t *testing.T) {
	mb := &Element{
		ID: "mb", Type: TypeMicrobit,
		Nodes: []Node{
			{ID: "mb-3v3", ParentID: "mb", Placeholder: PlaceholderRail},
			{ID: "mb-GND", ParentID: "mb", Placeholder: PlaceholderGround},
			{ID: "mb-P0", ParentID: "mb", Placeholder: "P0"},
			{ID: "mb-P1", ParentID: "mb", Placeholder: "P1"},
		},
	}
	r1 := twoTerminal("r1", TypeResistor)
	r2 := twoTerminal("r2", TypeResistor)
	wires := []Wire{
		{FromNodeID: "mb-P0", ToNodeID: "r1-0"},
		{FromNodeID: "mb-P1", ToNodeID: "r2-0"},
	}

	groups, _ := Partition([]*Element{mb, r1, r2}, wires)
	if len(groups) != 2 {
		t.Fatalf("got %d subcircuits, want 2: pins must not short through the board", len(groups))
	}
}

func TestPartitionOrphansElementsWithoutNodes(t *testing.T) {
	sticker := &Element{ID: "note", Type: "sticker"}
	r1 := twoTerminal("r1", TypeResistor)

	groups, orphans := Partition([]*Element{sticker, r1}, nil)
	if len(groups) != 1 {
		t.Fatalf("got %d subcircuits, want 1", len(groups))
	}
	if len(orphans) != 1 || orphans[0].ID != "note" {
		t.Fatalf("orphans = %+v, want the node-less sticker", orphans)
	}
}
