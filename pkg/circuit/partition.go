package circuit

// Subcircuit is one galvanically isolated group of elements and the
// wires between them.
type Subcircuit struct {
	Elements []*Element
	Wires    []Wire
}

// Partition splits the schematic into independent subcircuits. The
// connectivity graph has an edge per wire plus, for every non-controller
// element, edges between all pairs of its own terminals: current can
// flow through the element body, so for connectivity its terminals count
// as joined. Controller elements contribute no internal edges; their
// rail-to-rail path is realized later as a source stamp, so two
// unconnected pins are never shorted through the board.
//
// Elements whose terminals reach no graph node at all (decorative parts
// without wires never enter the graph) are returned as orphans and get
// zeroed results.
func Partition(elements []*Element, wires []Wire) (groups []Subcircuit, orphans []*Element) {
	valid := make(map[string]bool)
	for _, e := range elements {
		for _, n := range e.Nodes {
			valid[n.ID] = true
		}
	}

	adj := make(map[string][]string)
	touch := func(id string) {
		if _, ok := adj[id]; !ok {
			adj[id] = nil
		}
	}
	link := func(a, b string) {
		touch(a)
		touch(b)
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}

	for _, e := range elements {
		if e.Type.IsController() {
			continue
		}
		ids := e.NodeIDs()
		for _, id := range ids {
			touch(id)
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				link(ids[i], ids[j])
			}
		}
	}
	for _, w := range wires {
		if valid[w.FromNodeID] && valid[w.ToNodeID] {
			link(w.FromNodeID, w.ToNodeID)
		}
	}

	// Components are numbered by first discovery while scanning elements
	// in input order, which keeps the output deterministic.
	comp := make(map[string]int)
	next := 0
	for _, e := range elements {
		for _, n := range e.Nodes {
			if _, ok := adj[n.ID]; !ok {
				continue
			}
			if _, seen := comp[n.ID]; seen {
				continue
			}
			bfs(adj, comp, n.ID, next)
			next++
		}
	}

	groups = make([]Subcircuit, next)
	for _, e := range elements {
		assigned := false
		for _, n := range e.Nodes {
			if c, ok := comp[n.ID]; ok {
				groups[c].Elements = append(groups[c].Elements, e)
				assigned = true
				break
			}
		}
		if !assigned {
			orphans = append(orphans, e)
		}
	}
	for _, w := range wires {
		if c, ok := comp[w.FromNodeID]; ok && valid[w.ToNodeID] {
			groups[c].Wires = append(groups[c].Wires, w)
		}
	}

	// Drop groups that ended up without elements (possible when every
	// node of a component belongs to skipped wires only).
	out := groups[:0]
	for _, g := range groups {
		if len(g.Elements) > 0 {
			out = append(out, g)
		}
	}
	return out, orphans
}

func bfs(adj map[string][]string, comp map[string]int, start string, c int) {
	queue := []string{start}
	comp[start] = c
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if _, seen := comp[nb]; !seen {
				comp[nb] = c
				queue = append(queue, nb)
			}
		}
	}
}
